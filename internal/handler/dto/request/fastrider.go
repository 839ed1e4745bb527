package request

import "github.com/google/uuid"

type BookTicketRequest struct {
	AttractionID uuid.UUID `json:"attraction_id" binding:"required"`
}
