package api

import (
	"errors"
	"net/http"

	reqdto "fastrider/internal/handler/dto/request"
	resdto "fastrider/internal/handler/dto/response"
	"fastrider/internal/handler/httperr"
	"fastrider/internal/handler/middleware"
	"fastrider/internal/pkg/errs"
	"fastrider/internal/usecase/commands"
	"fastrider/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FastRiderHandler struct {
	fastRiderCommands commands.FastRiderCommands
	fastRiderQueries  queries.FastRiderQueries
}

func NewFastRiderHandler(fastRiderCommands commands.FastRiderCommands, fastRiderQueries queries.FastRiderQueries) *FastRiderHandler {
	return &FastRiderHandler{
		fastRiderCommands: fastRiderCommands,
		fastRiderQueries:  fastRiderQueries,
	}
}

// @Summary List FastRider attractions
// @Description List attractions that support FastRider reservations
// @Tags fastrider
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AttractionResponse
// @Failure 401 {object} httperr.Response
// @Router /fastrider/attractions [get]
func (h *FastRiderHandler) ListAttractions(c *gin.Context) {
	views, err := h.fastRiderQueries.ListAttractions(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.AttractionResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromAttractionView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Book nearest FastRider slot
// @Description Book the earliest remaining slot with capacity for an attraction
// @Tags fastrider
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookTicketRequest true "Booking request"
// @Success 201 {object} resdto.TicketResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /fastrider/book [post]
func (h *FastRiderHandler) BookTicket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.BookTicketRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.fastRiderCommands.BookNearestSlot(c.Request.Context(), userID, req.AttractionID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAttractionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Attraction not found", nil)
		case errors.Is(err, commands.ErrAttractionNotEligible):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Attraction does not support FastRider", nil)
		case errors.Is(err, commands.ErrActiveTicketExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "User already has an active ticket", nil)
		case errors.Is(err, commands.ErrNoSlotsAvailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "No available slots today", nil)
		case errors.Is(err, commands.ErrSlotConfiguration):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Attraction slot configuration yields no slots", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromTicketView(view))
}

// @Summary Get my active ticket
// @Description Get the caller's active FastRider ticket, if any
// @Tags fastrider
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TicketResponse
// @Failure 401 {object} httperr.Response
// @Router /fastrider/my-ticket [get]
func (h *FastRiderHandler) GetMyTicket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	view, err := h.fastRiderQueries.GetActiveTicket(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if view == nil {
		c.JSON(http.StatusOK, resdto.NoActiveTicketResponse{Message: "No active ticket"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTicketView(view))
}

// @Summary Cancel my active ticket
// @Description Cancel the caller's active FastRider ticket
// @Tags fastrider
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CancelTicketResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /fastrider/cancel [post]
func (h *FastRiderHandler) CancelTicket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	view, err := h.fastRiderCommands.CancelActiveTicket(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoActiveTicket):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No active ticket to cancel", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CancelTicketResponse{
		Message: "Ticket cancelled",
		Ticket:  *resdto.FromTicketView(view),
	})
}
