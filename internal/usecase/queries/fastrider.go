package queries

import (
	"context"
	"time"

	"fastrider/internal/domain/ticket"
	"fastrider/internal/infra"
	"fastrider/internal/pkg/clock"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type AttractionView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	AreaID            uuid.UUID `json:"area_id"`
	Kind              string    `json:"kind"`
	WaitTimeMin       int       `json:"wait_time_min"`
	Rating            float64   `json:"rating"`
	SlotMinutes       int       `json:"slot_minutes"`
	TicketsPerDay     int       `json:"tickets_per_day"`
	SupportsFastRider bool      `json:"supports_fast_rider"`
}

type TicketView struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	AttractionID   uuid.UUID  `json:"attraction_id"`
	AttractionName string     `json:"attraction_name"`
	SlotStart      time.Time  `json:"slot_start"`
	SlotEnd        time.Time  `json:"slot_end"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`
}

// NewTicketView derives the status once from the caller's reference time so a
// response never mixes two clock readings.
func NewTicketView(t *ticket.Ticket, attractionName string, now time.Time) *TicketView {
	return &TicketView{
		ID:             t.ID(),
		UserID:         t.UserID(),
		AttractionID:   t.AttractionID(),
		AttractionName: attractionName,
		SlotStart:      t.SlotStart(),
		SlotEnd:        t.SlotEnd(),
		Status:         string(t.Status(now)),
		CreatedAt:      t.CreatedAt(),
		CancelledAt:    t.CancelledAt(),
	}
}

type FastRiderQueries interface {
	// ListAttractions is a read passthrough to the catalog, filtered to
	// FastRider-eligible attractions.
	ListAttractions(ctx context.Context) ([]*AttractionView, error)
	// GetActiveTicket returns the user's active ticket, or nil without error
	// when the user holds none.
	GetActiveTicket(ctx context.Context, userID uuid.UUID) (*TicketView, error)
}

type AttractionReadStore interface {
	ListFastRiderEligible(ctx context.Context) ([]*AttractionView, error)
}

type TicketReadStore interface {
	FindActiveByUser(ctx context.Context, userID uuid.UUID, now time.Time) (*TicketView, error)
}

type fastRiderQueriesImpl struct {
	attractions AttractionReadStore
	tickets     TicketReadStore
	clock       clock.Clock
}

func NewFastRiderQueries(attractions AttractionReadStore, tickets TicketReadStore, clk clock.Clock) FastRiderQueries {
	return &fastRiderQueriesImpl{
		attractions: attractions,
		tickets:     tickets,
		clock:       clk,
	}
}

func (q *fastRiderQueriesImpl) ListAttractions(ctx context.Context) ([]*AttractionView, error) {
	return q.attractions.ListFastRiderEligible(ctx)
}

func (q *fastRiderQueriesImpl) GetActiveTicket(ctx context.Context, userID uuid.UUID) (*TicketView, error) {
	view, err := q.tickets.FindActiveByUser(ctx, userID, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return view, nil
}
