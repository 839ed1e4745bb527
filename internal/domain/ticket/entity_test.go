//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"fastrider/internal/domain/schedule"
	"fastrider/internal/domain/ticket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func futureSlot(t *testing.T, now time.Time) schedule.Slot {
	t.Helper()
	s := schedule.Generate(schedule.Config{
		OpenMinute:    540,
		CloseMinute:   1020,
		SlotMinutes:   30,
		TicketsPerDay: 100,
	}, now)
	require.NotEmpty(t, s.Slots())
	return s.Slots()[0]
}

func TestTicket(t *testing.T) {
	now := time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)
	userID := uuid.New()
	attractionID := uuid.New()

	t.Run("new ticket is active within its slot window", func(t *testing.T) {
		slot := futureSlot(t, now)

		actual, err := ticket.NewTicket(userID, attractionID, slot, now)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, userID, actual.UserID())
		assert.Equal(t, attractionID, actual.AttractionID())
		assert.Equal(t, slot.Start(), actual.SlotStart())
		assert.Equal(t, slot.End(), actual.SlotEnd())
		assert.Equal(t, now, actual.CreatedAt())
		assert.Nil(t, actual.CancelledAt())
		assert.Equal(t, ticket.StatusActive, actual.Status(now))
		assert.True(t, actual.IsActive(now))
	})

	t.Run("rejects an inverted slot window", func(t *testing.T) {
		var zero schedule.Slot

		actual, err := ticket.NewTicket(userID, attractionID, zero, now)
		require.Nil(t, actual)
		require.ErrorIs(t, err, ticket.ErrInvalidSlotWindow)
	})

	t.Run("each ticket gets its own identity", func(t *testing.T) {
		slot := futureSlot(t, now)

		t1, err1 := ticket.NewTicket(userID, attractionID, slot, now)
		t2, err2 := ticket.NewTicket(userID, attractionID, slot, now)
		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, t1.ID(), t2.ID())
	})

	t.Run("status derivation", func(t *testing.T) {
		slot := futureSlot(t, now)
		cancelledAt := now.Add(5 * time.Minute)

		cases := []struct {
			name        string
			cancelledAt *time.Time
			at          time.Time
			want        ticket.Status
		}{
			{
				name: "before the slot starts",
				at:   now,
				want: ticket.StatusActive,
			},
			{
				name: "inside the slot window",
				at:   slot.Start().Add(time.Minute),
				want: ticket.StatusActive,
			},
			{
				name: "at the slot end boundary",
				at:   slot.End(),
				want: ticket.StatusExpired,
			},
			{
				name: "after the slot ends",
				at:   slot.End().Add(time.Hour),
				want: ticket.StatusExpired,
			},
			{
				name:        "cancelled wins over active",
				cancelledAt: &cancelledAt,
				at:          now,
				want:        ticket.StatusCancelled,
			},
			{
				name:        "cancelled wins over expired",
				cancelledAt: &cancelledAt,
				at:          slot.End().Add(time.Hour),
				want:        ticket.StatusCancelled,
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual := ticket.ReconstructTicket(
					uuid.New(), userID, attractionID,
					slot.Start(), slot.End(), now, c.cancelledAt,
				)

				assert.Equal(t, c.want, actual.Status(c.at))
			})
		}
	})

	t.Run("cancel records the cancellation time once", func(t *testing.T) {
		slot := futureSlot(t, now)
		actual, err := ticket.NewTicket(userID, attractionID, slot, now)
		require.NoError(t, err)

		cancelTime := now.Add(10 * time.Minute)
		require.NoError(t, actual.Cancel(cancelTime))

		require.NotNil(t, actual.CancelledAt())
		assert.Equal(t, cancelTime, *actual.CancelledAt())
		assert.Equal(t, ticket.StatusCancelled, actual.Status(cancelTime))

		err = actual.Cancel(cancelTime.Add(time.Minute))
		require.ErrorIs(t, err, ticket.ErrNotActive)
		assert.Equal(t, cancelTime, *actual.CancelledAt())
	})

	t.Run("cancel rejects an expired ticket", func(t *testing.T) {
		slot := futureSlot(t, now)
		actual, err := ticket.NewTicket(userID, attractionID, slot, now)
		require.NoError(t, err)

		err = actual.Cancel(slot.End())
		require.ErrorIs(t, err, ticket.ErrNotActive)
		assert.Nil(t, actual.CancelledAt())
	})

	t.Run("status reads never mutate the ticket", func(t *testing.T) {
		slot := futureSlot(t, now)
		actual, err := ticket.NewTicket(userID, attractionID, slot, now)
		require.NoError(t, err)

		assert.Equal(t, ticket.StatusExpired, actual.Status(slot.End()))
		assert.Equal(t, ticket.StatusActive, actual.Status(now))
	})
}
