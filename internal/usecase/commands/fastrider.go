package commands

import (
	"context"

	"fastrider/internal/domain/attraction"
	"fastrider/internal/domain/schedule"
	"fastrider/internal/domain/ticket"
	"fastrider/internal/infra"
	"fastrider/internal/pkg/clock"
	"fastrider/internal/pkg/errs"
	"fastrider/internal/usecase/queries"
	"fastrider/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAttractionNotFound    = errs.New("attraction not found")
	ErrAttractionNotEligible = errs.New("attraction does not support FastRider")
	ErrActiveTicketExists    = errs.New("user already has an active ticket")
	ErrNoSlotsAvailable      = errs.New("no available slots today")
	ErrSlotConfiguration     = errs.New("slot configuration yields no slots")
	ErrNoActiveTicket        = errs.New("no active ticket to cancel")
	ErrTicketStoreFailed     = errs.New("ticket store operation failed")
)

type FastRiderCommands interface {
	// BookNearestSlot grants the earliest remaining slot of the attraction
	// that still has capacity, creating exactly one ticket on success.
	BookNearestSlot(ctx context.Context, userID, attractionID uuid.UUID) (*queries.TicketView, error)
	// CancelActiveTicket cancels the user's active ticket, implicitly
	// returning its capacity unit to the slot.
	CancelActiveTicket(ctx context.Context, userID uuid.UUID) (*queries.TicketView, error)
}

type fastRiderUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewFastRiderCommands(uow shared.UnitOfWork, clk clock.Clock) FastRiderCommands {
	return &fastRiderUseCaseImpl{uow: uow, clock: clk}
}

func (uc *fastRiderUseCaseImpl) BookNearestSlot(ctx context.Context, userID, attractionID uuid.UUID) (*queries.TicketView, error) {
	// Single reference time for the whole operation: slot filtering, the
	// active-ticket check and the created ticket all agree on "now".
	now := uc.clock.Now()

	attr, err := uc.validateAttraction(ctx, attractionID)
	if err != nil {
		return nil, err
	}

	sched := schedule.Generate(attr.ScheduleConfig(), now)
	if sched.TotalSlots() == 0 {
		return nil, ErrSlotConfiguration
	}

	var booked *ticket.Ticket
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tickets := tx.Tickets()

		// The user lock is the serialization point for the one-active-ticket
		// invariant; a plain read-then-insert would race.
		if lockErr := tickets.LockUser(ctx, userID); lockErr != nil {
			return errs.Mark(lockErr, ErrTicketStoreFailed)
		}

		existing, findErr := tickets.FindActiveByUserForUpdate(ctx, userID, now)
		if findErr != nil {
			return errs.Mark(findErr, ErrTicketStoreFailed)
		}
		if existing != nil {
			return ErrActiveTicketExists
		}

		// Slot locks are taken in ascending start order, after the user
		// lock, so concurrent bookings cannot deadlock.
		for _, slot := range sched.Slots() {
			if lockErr := tickets.LockSlot(ctx, attractionID, slot.Start()); lockErr != nil {
				return errs.Mark(lockErr, ErrTicketStoreFailed)
			}

			occupied, countErr := tickets.CountActiveAt(ctx, attractionID, slot.Start())
			if countErr != nil {
				return errs.Mark(countErr, ErrTicketStoreFailed)
			}
			if occupied >= slot.Capacity() {
				// Slot full is not a failure of the attempt; try the next one.
				continue
			}

			t, newErr := ticket.NewTicket(userID, attractionID, slot, now)
			if newErr != nil {
				return newErr
			}
			if _, createErr := tickets.Create(ctx, t); createErr != nil {
				return errs.Mark(createErr, ErrTicketStoreFailed)
			}
			booked = t
			return nil
		}

		return ErrNoSlotsAvailable
	})
	if err != nil {
		return nil, err
	}

	return queries.NewTicketView(booked, attr.Name(), now), nil
}

func (uc *fastRiderUseCaseImpl) CancelActiveTicket(ctx context.Context, userID uuid.UUID) (*queries.TicketView, error) {
	now := uc.clock.Now()

	var cancelled *ticket.Ticket
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tickets := tx.Tickets()

		if lockErr := tickets.LockUser(ctx, userID); lockErr != nil {
			return errs.Mark(lockErr, ErrTicketStoreFailed)
		}

		t, findErr := tickets.FindActiveByUserForUpdate(ctx, userID, now)
		if findErr != nil {
			return errs.Mark(findErr, ErrTicketStoreFailed)
		}
		if t == nil {
			return ErrNoActiveTicket
		}

		if cancelErr := t.Cancel(now); cancelErr != nil {
			return ErrNoActiveTicket
		}
		if markErr := tickets.MarkCancelled(ctx, t.ID(), now); markErr != nil {
			return errs.Mark(markErr, ErrTicketStoreFailed)
		}
		cancelled = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	name := ""
	if snap, readErr := uc.uow.CommandReads().AttractionByID(ctx, cancelled.AttractionID()); readErr == nil {
		name = snap.Name
	}

	return queries.NewTicketView(cancelled, name, now), nil
}

func (uc *fastRiderUseCaseImpl) validateAttraction(ctx context.Context, attractionID uuid.UUID) (*attraction.Attraction, error) {
	snap, err := uc.uow.CommandReads().AttractionByID(ctx, attractionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAttractionNotFound
		}
		return nil, errs.Mark(err, ErrTicketStoreFailed)
	}

	attr, err := attraction.NewAttraction(
		snap.ID,
		snap.Name,
		snap.OpenMinute,
		snap.CloseMinute,
		snap.SlotMinutes,
		snap.TicketsPerDay,
		snap.SupportsFastRider,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrSlotConfiguration)
	}
	if !attr.SupportsFastRider() {
		return nil, ErrAttractionNotEligible
	}
	return attr, nil
}
