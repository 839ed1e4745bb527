//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"fastrider/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardConfig() schedule.Config {
	return schedule.Config{
		OpenMinute:    540,  // 09:00
		CloseMinute:   1020, // 17:00
		SlotMinutes:   30,
		TicketsPerDay: 100,
	}
}

func dayAt(hour, minute int) time.Time {
	return time.Date(2026, 8, 31, hour, minute, 0, 0, time.UTC)
}

func TestGenerate(t *testing.T) {
	t.Run("partitions the operating day into equal slots", func(t *testing.T) {
		s := schedule.Generate(standardConfig(), dayAt(8, 0))

		assert.Equal(t, 16, s.TotalSlots())
		assert.Equal(t, 6, s.CapacityPerSlot())
		assert.Equal(t, 4, s.Unallocated())
		require.Len(t, s.Slots(), 16)

		first := s.Slots()[0]
		assert.Equal(t, dayAt(9, 0), first.Start())
		assert.Equal(t, dayAt(9, 30), first.End())
		assert.Equal(t, 30*time.Minute, first.Duration())

		last := s.Slots()[len(s.Slots())-1]
		assert.Equal(t, dayAt(16, 30), last.Start())
		assert.Equal(t, dayAt(17, 0), last.End())
	})

	t.Run("slots are contiguous and uniformly sized", func(t *testing.T) {
		s := schedule.Generate(standardConfig(), dayAt(8, 0))

		slots := s.Slots()
		for i := 1; i < len(slots); i++ {
			assert.Equal(t, slots[i-1].End(), slots[i].Start())
			assert.Equal(t, 30*time.Minute, slots[i].Duration())
			assert.Equal(t, 6, slots[i].Capacity())
		}
	})

	t.Run("mid-day reference keeps only slots starting strictly after it", func(t *testing.T) {
		s := schedule.Generate(standardConfig(), dayAt(10, 5))

		require.NotEmpty(t, s.Slots())
		assert.Equal(t, dayAt(10, 30), s.Slots()[0].Start())
		assert.Len(t, s.Slots(), 13)
		// Total still counts the already-started slots.
		assert.Equal(t, 16, s.TotalSlots())
	})

	t.Run("slot starting exactly now is excluded", func(t *testing.T) {
		s := schedule.Generate(standardConfig(), dayAt(10, 30))

		require.NotEmpty(t, s.Slots())
		assert.Equal(t, dayAt(11, 0), s.Slots()[0].Start())
	})

	t.Run("after close the day is exhausted but configuration is still valid", func(t *testing.T) {
		s := schedule.Generate(standardConfig(), dayAt(18, 0))

		assert.Empty(t, s.Slots())
		assert.Equal(t, 16, s.TotalSlots())
	})

	t.Run("zero-slot configurations", func(t *testing.T) {
		cases := []struct {
			name string
			cfg  schedule.Config
		}{
			{
				name: "close before open",
				cfg:  schedule.Config{OpenMinute: 1020, CloseMinute: 540, SlotMinutes: 30, TicketsPerDay: 100},
			},
			{
				name: "close equals open",
				cfg:  schedule.Config{OpenMinute: 540, CloseMinute: 540, SlotMinutes: 30, TicketsPerDay: 100},
			},
			{
				name: "slot longer than the whole window",
				cfg:  schedule.Config{OpenMinute: 540, CloseMinute: 560, SlotMinutes: 30, TicketsPerDay: 100},
			},
			{
				name: "zero slot minutes",
				cfg:  schedule.Config{OpenMinute: 540, CloseMinute: 1020, SlotMinutes: 0, TicketsPerDay: 100},
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				s := schedule.Generate(c.cfg, dayAt(8, 0))

				assert.Zero(t, s.TotalSlots())
				assert.Empty(t, s.Slots())
			})
		}
	})

	t.Run("window not divisible by slot size drops the tail", func(t *testing.T) {
		cfg := standardConfig()
		cfg.CloseMinute = 1035 // 17:15

		s := schedule.Generate(cfg, dayAt(8, 0))

		assert.Equal(t, 16, s.TotalSlots())
		assert.Equal(t, dayAt(17, 0), s.Slots()[len(s.Slots())-1].End())
	})

	t.Run("fewer tickets than slots yields zero capacity everywhere", func(t *testing.T) {
		cfg := standardConfig()
		cfg.TicketsPerDay = 10

		s := schedule.Generate(cfg, dayAt(8, 0))

		assert.Equal(t, 0, s.CapacityPerSlot())
		assert.Equal(t, 10, s.Unallocated())
		for _, slot := range s.Slots() {
			assert.Zero(t, slot.Capacity())
		}
	})

	t.Run("generation is deterministic for a fixed reference time", func(t *testing.T) {
		a := schedule.Generate(standardConfig(), dayAt(11, 45))
		b := schedule.Generate(standardConfig(), dayAt(11, 45))

		assert.Equal(t, a, b)
	})

	t.Run("day is anchored to the reference time's location", func(t *testing.T) {
		loc := time.FixedZone("UTC+9", 9*60*60)
		now := time.Date(2026, 8, 31, 8, 0, 0, 0, loc)

		s := schedule.Generate(standardConfig(), now)

		require.NotEmpty(t, s.Slots())
		assert.Equal(t, time.Date(2026, 8, 31, 9, 0, 0, 0, loc), s.Slots()[0].Start())
	})
}
