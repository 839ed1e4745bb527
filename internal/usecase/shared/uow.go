package shared

import (
	"context"
	"time"

	"fastrider/internal/domain/ticket"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Tickets() TicketRepository
	Reads() CommandReads
}

type CommandReads interface {
	AttractionByID(ctx context.Context, id uuid.UUID) (*AttractionSnapshot, error)
}

// AttractionSnapshot is the minimal read model commands validate against.
type AttractionSnapshot struct {
	ID                uuid.UUID
	Name              string
	OpenMinute        int
	CloseMinute       int
	SlotMinutes       int
	TicketsPerDay     int
	SupportsFastRider bool
}

// TicketRepository is the write side of the capacity ledger. The lock methods
// pin per-user and per-slot serialization points for the lifetime of the
// enclosing transaction; count and insert are only meaningful between them.
type TicketRepository interface {
	// LockUser serializes all booking/cancel activity for one user.
	LockUser(ctx context.Context, userID uuid.UUID) error
	// LockSlot serializes reservations against one (attraction, slot) pair.
	LockSlot(ctx context.Context, attractionID uuid.UUID, slotStart time.Time) error
	// CountActiveAt counts non-cancelled tickets whose window covers the instant.
	CountActiveAt(ctx context.Context, attractionID uuid.UUID, at time.Time) (int, error)
	Create(ctx context.Context, t *ticket.Ticket) (uuid.UUID, error)
	// FindActiveByUserForUpdate returns the user's active ticket locked for
	// update, or nil when the user holds none.
	FindActiveByUserForUpdate(ctx context.Context, userID uuid.UUID, now time.Time) (*ticket.Ticket, error)
	MarkCancelled(ctx context.Context, id uuid.UUID, at time.Time) error
}
