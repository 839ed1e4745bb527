package response

import (
	"time"

	"fastrider/internal/usecase/queries"

	"github.com/google/uuid"
)

type AttractionResponse struct {
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

type TicketResponse struct {
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

type CancelTicketResponse struct {
	Message string         `json:"message"`
	Ticket  TicketResponse `json:"ticket"`
}

type NoActiveTicketResponse struct {
	Message string `json:"message"`
}

func FromAttractionView(v *queries.AttractionView) *AttractionResponse {
	return &AttractionResponse{
		ID:                v.ID,
		Name:              v.Name,
		AreaID:            v.AreaID,
		Kind:              v.Kind,
		WaitTimeMin:       v.WaitTimeMin,
		Rating:            v.Rating,
		SlotMinutes:       v.SlotMinutes,
		TicketsPerDay:     v.TicketsPerDay,
		SupportsFastRider: v.SupportsFastRider,
	}
}

func FromTicketView(v *queries.TicketView) *TicketResponse {
	return &TicketResponse{
		ID:             v.ID,
		UserID:         v.UserID,
		AttractionID:   v.AttractionID,
		AttractionName: v.AttractionName,
		SlotStart:      v.SlotStart,
		SlotEnd:        v.SlotEnd,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt,
		CancelledAt:    v.CancelledAt,
	}
}
