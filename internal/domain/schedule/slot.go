package schedule

import "time"

// Slot is a fixed-duration window inside an attraction's operating day with a
// bounded number of reservations. Slots are derived on every read and never
// persisted; remaining capacity is always recomputed from live ticket state.
type Slot struct {
	start    time.Time
	end      time.Time
	capacity int
}

func (s Slot) Start() time.Time {
	return s.start
}

func (s Slot) End() time.Time {
	return s.end
}

func (s Slot) Duration() time.Duration {
	return s.end.Sub(s.start)
}

func (s Slot) Capacity() int {
	return s.capacity
}

// Config is the static slot configuration of an attraction. Open and close
// are minutes after midnight on the operating day.
type Config struct {
	OpenMinute    int
	CloseMinute   int
	SlotMinutes   int
	TicketsPerDay int
}

type Schedule struct {
	slots           []Slot
	totalSlots      int
	capacityPerSlot int
	unallocated     int
}

// Generate partitions the operating day anchored on now's calendar date into
// equal contiguous slots and returns those starting strictly after now.
// Per-slot capacity is ticketsPerDay / numberOfSlots rounded down; the
// remainder stays unallocated. A window too short for a single whole slot
// yields an empty schedule, which callers must distinguish from a schedule
// whose remaining slots are exhausted.
func Generate(cfg Config, now time.Time) Schedule {
	if cfg.SlotMinutes <= 0 {
		return Schedule{}
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	open := day.Add(time.Duration(cfg.OpenMinute) * time.Minute)
	close := day.Add(time.Duration(cfg.CloseMinute) * time.Minute)
	slotSize := time.Duration(cfg.SlotMinutes) * time.Minute

	total := int(close.Sub(open) / slotSize)
	if total <= 0 {
		return Schedule{}
	}

	capacity := cfg.TicketsPerDay / total

	slots := make([]Slot, 0, total)
	for i := 0; i < total; i++ {
		start := open.Add(time.Duration(i) * slotSize)
		if !start.After(now) {
			continue
		}
		slots = append(slots, Slot{
			start:    start,
			end:      start.Add(slotSize),
			capacity: capacity,
		})
	}

	return Schedule{
		slots:           slots,
		totalSlots:      total,
		capacityPerSlot: capacity,
		unallocated:     cfg.TicketsPerDay - total*capacity,
	}
}

// Slots returns the remaining slots in ascending start order.
func (s Schedule) Slots() []Slot {
	return s.slots
}

// TotalSlots is the number of slots in the whole operating day, including
// ones that already started. Zero means the configuration yields no slots.
func (s Schedule) TotalSlots() int {
	return s.totalSlots
}

func (s Schedule) CapacityPerSlot() int {
	return s.capacityPerSlot
}

// Unallocated is the ticket remainder that no slot can ever grant.
func (s Schedule) Unallocated() int {
	return s.unallocated
}
