package attraction

import (
	"errors"

	"fastrider/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidOperatingWindow = errors.New("invalid operating window")
	ErrInvalidSlotMinutes     = errors.New("slot minutes must be positive")
	ErrNegativeTickets        = errors.New("tickets per day cannot be negative")
)

const minutesPerDay = 24 * 60

// Attraction is the read-only catalog configuration this service consumes.
// It is never mutated here; the catalog service owns it.
type Attraction struct {
	id                uuid.UUID
	name              string
	openMinute        int
	closeMinute       int
	slotMinutes       int
	ticketsPerDay     int
	supportsFastRider bool
}

func NewAttraction(
	id uuid.UUID,
	name string,
	openMinute, closeMinute, slotMinutes, ticketsPerDay int,
	supportsFastRider bool,
) (*Attraction, error) {
	if openMinute < 0 || openMinute >= minutesPerDay || closeMinute < 0 || closeMinute > minutesPerDay {
		return nil, ErrInvalidOperatingWindow
	}
	if slotMinutes <= 0 {
		return nil, ErrInvalidSlotMinutes
	}
	if ticketsPerDay < 0 {
		return nil, ErrNegativeTickets
	}

	return &Attraction{
		id:                id,
		name:              name,
		openMinute:        openMinute,
		closeMinute:       closeMinute,
		slotMinutes:       slotMinutes,
		ticketsPerDay:     ticketsPerDay,
		supportsFastRider: supportsFastRider,
	}, nil
}

func (a *Attraction) ID() uuid.UUID           { return a.id }
func (a *Attraction) Name() string            { return a.name }
func (a *Attraction) OpenMinute() int         { return a.openMinute }
func (a *Attraction) CloseMinute() int        { return a.closeMinute }
func (a *Attraction) SlotMinutes() int        { return a.slotMinutes }
func (a *Attraction) TicketsPerDay() int      { return a.ticketsPerDay }
func (a *Attraction) SupportsFastRider() bool { return a.supportsFastRider }

// ScheduleConfig exposes the slot configuration in the shape the generator
// consumes.
func (a *Attraction) ScheduleConfig() schedule.Config {
	return schedule.Config{
		OpenMinute:    a.openMinute,
		CloseMinute:   a.closeMinute,
		SlotMinutes:   a.slotMinutes,
		TicketsPerDay: a.ticketsPerDay,
	}
}
