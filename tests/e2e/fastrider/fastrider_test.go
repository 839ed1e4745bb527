//go:build e2e

package fastrider_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"fastrider/internal/handler/dto/response"
	"fastrider/tests/common/dbtest"
	"fastrider/tests/common/httptest"
	"fastrider/tests/e2e"
	"fastrider/tests/e2e/common/helper"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	attractionsURL = "/api/fastrider/attractions"
	bookURL        = "/api/fastrider/book"
	myTicketURL    = "/api/fastrider/my-ticket"
	cancelURL      = "/api/fastrider/cancel"

	minutesPerDay = 24 * 60
)

type FastRiderSuite struct {
	e2e.SharedSuite
	jwtHelper *helper.JWTTestHelper
}

func (s *FastRiderSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = helper.NewJWTTestHelper(s.Config.JWT)
}

func TestFastRiderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(FastRiderSuite))
}

// fullDayAttraction always has bookable slots regardless of wall-clock time
// (except in the very last slot of the day).
func (s *FastRiderSuite) fullDayAttraction(name string, ticketsPerDay int) uuid.UUID {
	areaID := dbtest.CreateTestArea(s.T(), s.DB, "Gibbon Island")
	return dbtest.CreateTestAttraction(s.T(), s.DB, areaID, dbtest.AttractionFixture{
		Name:              name,
		OpenMinute:        0,
		CloseMinute:       minutesPerDay,
		SlotMinutes:       1,
		TicketsPerDay:     ticketsPerDay,
		SupportsFastRider: true,
	})
}

// singleFutureSlotAttraction builds an attraction whose operating window is
// exactly one slot starting shortly after now, so capacity contention is
// deterministic. Skips when the day is about to roll over.
func (s *FastRiderSuite) singleFutureSlotAttraction(name string, ticketsPerDay int) uuid.UUID {
	now := time.Now()
	openMinute := now.Hour()*60 + now.Minute() + 2
	if openMinute+30 > minutesPerDay {
		s.T().Skip("too close to midnight for a single-slot window")
	}

	areaID := dbtest.CreateTestArea(s.T(), s.DB, "Gibbon Island")
	return dbtest.CreateTestAttraction(s.T(), s.DB, areaID, dbtest.AttractionFixture{
		Name:              name,
		OpenMinute:        openMinute,
		CloseMinute:       openMinute + 30,
		SlotMinutes:       30,
		TicketsPerDay:     ticketsPerDay,
		SupportsFastRider: true,
	})
}

func (s *FastRiderSuite) countLiveTickets(attractionID uuid.UUID) int {
	var count int
	err := s.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM fastrider_tickets WHERE attraction_id = $1 AND cancelled_at IS NULL",
		attractionID).Scan(&count)
	require.NoError(s.T(), err)
	return count
}

// =============================================================================
// TestListAttractions
// =============================================================================

func (s *FastRiderSuite) TestListAttractions() {
	s.Run("Normal case: only FastRider attractions are listed", func() {
		t := s.T()

		areaID := dbtest.CreateTestArea(t, s.DB, "Gibbon Island")
		dbtest.CreateTestAttraction(t, s.DB, areaID, dbtest.AttractionFixture{
			Name: "Jungle Swing", OpenMinute: 540, CloseMinute: 1020,
			SlotMinutes: 30, TicketsPerDay: 100, SupportsFastRider: true,
		})
		dbtest.CreateTestAttraction(t, s.DB, areaID, dbtest.AttractionFixture{
			Name: "Gibbon Coaster", Kind: "RollerCoaster", OpenMinute: 540, CloseMinute: 1020,
			SlotMinutes: 30, TicketsPerDay: 100, SupportsFastRider: false,
		})

		token := s.jwtHelper.GenerateToken(t, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, attractionsURL, nil, token)

		var attractions []response.AttractionResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &attractions)
		require.Len(t, attractions, 1)
		require.Equal(t, "Jungle Swing", attractions[0].Name)
		require.True(t, attractions[0].SupportsFastRider)
	})

	s.Run("Error case: missing token is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, attractionsURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("Error case: expired token is rejected", func() {
		t := s.T()
		token := s.jwtHelper.CreateExpiredToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, attractionsURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestBookingLifecycle
// =============================================================================

func (s *FastRiderSuite) TestBookingLifecycle() {
	s.Run("Normal case: book, inspect, cancel, rebook", func() {
		t := s.T()

		attractionID := s.fullDayAttraction("Jungle Swing", minutesPerDay*2)
		userID := uuid.New()
		token := s.jwtHelper.GenerateToken(t, userID)
		reqBody := map[string]any{"attraction_id": attractionID.String()}

		// Book
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL, reqBody, token)
		var booked response.TicketResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &booked)
		require.Equal(t, userID, booked.UserID)
		require.Equal(t, attractionID, booked.AttractionID)
		require.Equal(t, "Jungle Swing", booked.AttractionName)
		require.Equal(t, "active", booked.Status)
		require.True(t, booked.SlotStart.After(time.Now().Add(-time.Minute)))
		require.Equal(t, booked.SlotStart.Add(time.Minute), booked.SlotEnd)

		// Second booking while one is active
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "active ticket")

		// My ticket shows the booking
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myTicketURL, nil, token)
		var current response.TicketResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &current)
		// created_at loses sub-microsecond precision on the PG round trip
		require.Empty(t, cmp.Diff(booked, current,
			cmpopts.IgnoreFields(response.TicketResponse{}, "CreatedAt")))

		// Cancel
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		var cancelled response.CancelTicketResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &cancelled)
		require.Equal(t, "Ticket cancelled", cancelled.Message)
		require.Equal(t, booked.ID, cancelled.Ticket.ID)
		require.Equal(t, "cancelled", cancelled.Ticket.Status)
		require.NotNil(t, cancelled.Ticket.CancelledAt)

		// No active ticket any more
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myTicketURL, nil, token)
		var none response.NoActiveTicketResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &none)
		require.Equal(t, "No active ticket", none.Message)

		// Cancelling again fails
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "No active ticket")

		// Cancellation freed the user for a new booking
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL, reqBody, token)
		var rebooked response.TicketResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &rebooked)
		require.NotEqual(t, booked.ID, rebooked.ID)
	})

	s.Run("Error case: unknown attraction", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL,
			map[string]any{"attraction_id": uuid.New().String()}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Attraction not found")
	})

	s.Run("Error case: attraction without FastRider support", func() {
		t := s.T()

		areaID := dbtest.CreateTestArea(t, s.DB, "Gibbon Island")
		attractionID := dbtest.CreateTestAttraction(t, s.DB, areaID, dbtest.AttractionFixture{
			Name: "Gibbon Coaster", Kind: "RollerCoaster", OpenMinute: 0, CloseMinute: minutesPerDay,
			SlotMinutes: 30, TicketsPerDay: 100, SupportsFastRider: false,
		})
		token := s.jwtHelper.GenerateToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL,
			map[string]any{"attraction_id": attractionID.String()}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "does not support FastRider")
	})

	s.Run("Error case: malformed request body", func() {
		t := s.T()
		token := s.jwtHelper.GenerateToken(t, uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL,
			map[string]any{"attraction_id": "not-a-uuid"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
	})
}

// =============================================================================
// TestBookingConcurrency - capacity must hold under parallel load
// =============================================================================

func (s *FastRiderSuite) TestBookingConcurrency() {
	s.Run("Concurrent case: slot capacity is never oversold", func() {
		t := s.T()

		const capacity = 3
		const bookers = 10
		attractionID := s.singleFutureSlotAttraction("Jungle Swing", capacity)
		reqBody := map[string]any{"attraction_id": attractionID.String()}

		tokens := make([]string, bookers)
		for i := range tokens {
			tokens[i] = s.jwtHelper.GenerateToken(t, uuid.New())
		}

		var (
			wg        sync.WaitGroup
			resultsMu sync.Mutex
			succeeded int
			soldOut   int
			others    []int
		)
		for i := 0; i < bookers; i++ {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL, reqBody, token)

				resultsMu.Lock()
				defer resultsMu.Unlock()
				switch w.Code {
				case http.StatusCreated:
					succeeded++
				case http.StatusConflict:
					soldOut++
				default:
					others = append(others, w.Code)
				}
			}(tokens[i])
		}
		wg.Wait()

		require.Empty(t, others, "unexpected status codes")
		require.Equal(t, capacity, succeeded)
		require.Equal(t, bookers-capacity, soldOut)
		require.Equal(t, capacity, s.countLiveTickets(attractionID))
	})

	s.Run("Concurrent case: one user gets exactly one ticket", func() {
		t := s.T()

		attractionID := s.fullDayAttraction("Jungle Swing", minutesPerDay*2)
		reqBody := map[string]any{"attraction_id": attractionID.String()}
		token := s.jwtHelper.GenerateToken(t, uuid.New())

		const attempts = 8
		var (
			wg        sync.WaitGroup
			resultsMu sync.Mutex
			succeeded int
			conflicts int
		)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookURL, reqBody, token)

				resultsMu.Lock()
				defer resultsMu.Unlock()
				switch w.Code {
				case http.StatusCreated:
					succeeded++
				case http.StatusConflict:
					conflicts++
				}
			}()
		}
		wg.Wait()

		require.Equal(t, 1, succeeded)
		require.Equal(t, attempts-1, conflicts)
	})
}
