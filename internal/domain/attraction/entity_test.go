//go:build unit

package attraction_test

import (
	"testing"

	"fastrider/internal/domain/attraction"
	"fastrider/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttraction(t *testing.T) {
	id := uuid.New()

	t.Run("valid configuration", func(t *testing.T) {
		actual, err := attraction.NewAttraction(id, "Jungle Swing", 540, 1020, 30, 100, true)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, id, actual.ID())
		assert.Equal(t, "Jungle Swing", actual.Name())
		assert.True(t, actual.SupportsFastRider())
		assert.Equal(t, schedule.Config{
			OpenMinute:    540,
			CloseMinute:   1020,
			SlotMinutes:   30,
			TicketsPerDay: 100,
		}, actual.ScheduleConfig())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name          string
			openMinute    int
			closeMinute   int
			slotMinutes   int
			ticketsPerDay int
			errIs         error
		}{
			{name: "negative open minute", openMinute: -1, closeMinute: 1020, slotMinutes: 30, ticketsPerDay: 100, errIs: attraction.ErrInvalidOperatingWindow},
			{name: "open minute past midnight", openMinute: 1440, closeMinute: 1020, slotMinutes: 30, ticketsPerDay: 100, errIs: attraction.ErrInvalidOperatingWindow},
			{name: "close minute past midnight", openMinute: 540, closeMinute: 1441, slotMinutes: 30, ticketsPerDay: 100, errIs: attraction.ErrInvalidOperatingWindow},
			{name: "close at midnight is allowed", openMinute: 540, closeMinute: 1440, slotMinutes: 30, ticketsPerDay: 100},
			{name: "zero slot minutes", openMinute: 540, closeMinute: 1020, slotMinutes: 0, ticketsPerDay: 100, errIs: attraction.ErrInvalidSlotMinutes},
			{name: "negative slot minutes", openMinute: 540, closeMinute: 1020, slotMinutes: -30, ticketsPerDay: 100, errIs: attraction.ErrInvalidSlotMinutes},
			{name: "negative tickets per day", openMinute: 540, closeMinute: 1020, slotMinutes: 30, ticketsPerDay: -1, errIs: attraction.ErrNegativeTickets},
			{name: "zero tickets per day is allowed", openMinute: 540, closeMinute: 1020, slotMinutes: 30, ticketsPerDay: 0},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual, err := attraction.NewAttraction(id, "a", c.openMinute, c.closeMinute, c.slotMinutes, c.ticketsPerDay, false)

				if c.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, actual)
				} else {
					require.Nil(t, actual)
					require.ErrorIs(t, err, c.errIs)
				}
			})
		}
	})
}
