package ticket

import (
	"errors"
	"time"

	"fastrider/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlotWindow = errors.New("slot end must be after slot start")
	ErrNotActive         = errors.New("ticket is not active")
)

// Status is derived from stored fields plus a reference time, never
// persisted, so state and clock cannot drift apart.
type Status string

const (
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// Ticket is a FastRider reservation for one slot of one attraction. Rows are
// never deleted; cancellation sets cancelledAt exactly once.
type Ticket struct {
	id           uuid.UUID
	userID       uuid.UUID
	attractionID uuid.UUID
	slotStart    time.Time
	slotEnd      time.Time
	createdAt    time.Time
	cancelledAt  *time.Time
}

// NewTicket binds a fresh reservation to the given slot's window.
func NewTicket(userID, attractionID uuid.UUID, slot schedule.Slot, now time.Time) (*Ticket, error) {
	if !slot.End().After(slot.Start()) {
		return nil, ErrInvalidSlotWindow
	}

	return &Ticket{
		id:           uuid.New(),
		userID:       userID,
		attractionID: attractionID,
		slotStart:    slot.Start(),
		slotEnd:      slot.End(),
		createdAt:    now,
	}, nil
}

func ReconstructTicket(
	id, userID, attractionID uuid.UUID,
	slotStart, slotEnd, createdAt time.Time,
	cancelledAt *time.Time,
) *Ticket {
	return &Ticket{
		id:           id,
		userID:       userID,
		attractionID: attractionID,
		slotStart:    slotStart,
		slotEnd:      slotEnd,
		createdAt:    createdAt,
		cancelledAt:  cancelledAt,
	}
}

// Status reports the ticket's state at the given reference time. Cancelled
// and Expired are terminal; Active decays to Expired purely by the clock.
func (t *Ticket) Status(now time.Time) Status {
	if t.cancelledAt != nil {
		return StatusCancelled
	}
	if !t.slotEnd.After(now) {
		return StatusExpired
	}
	return StatusActive
}

func (t *Ticket) IsActive(now time.Time) bool {
	return t.Status(now) == StatusActive
}

// Cancel marks the ticket cancelled at now. Only an Active ticket can be
// cancelled; cancelledAt is immutable once set.
func (t *Ticket) Cancel(now time.Time) error {
	if t.Status(now) != StatusActive {
		return ErrNotActive
	}
	at := now
	t.cancelledAt = &at
	return nil
}

func (t *Ticket) ID() uuid.UUID           { return t.id }
func (t *Ticket) UserID() uuid.UUID       { return t.userID }
func (t *Ticket) AttractionID() uuid.UUID { return t.attractionID }
func (t *Ticket) SlotStart() time.Time    { return t.slotStart }
func (t *Ticket) SlotEnd() time.Time      { return t.slotEnd }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) CancelledAt() *time.Time { return t.cancelledAt }
