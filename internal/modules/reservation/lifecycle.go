package reservation

import (
	"context"

	"mesareserva/internal/domain"
)

// Status transitions form a one-way graph:
//
//	pending   -> confirmed | cancelled
//	confirmed -> cancelled | completed
//
// cancelled and completed are terminal. Repeating a transition on a
// terminal state is an explicit error, never a silent no-op.

// Cancel cancels the actor's reservation if at least one conflict window
// of notice remains before the booked time.
func (s *Service) Cancel(ctx context.Context, actor domain.Actor, id int64) (*domain.Reservation, error) {
	res, err := s.loadScoped(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	switch res.Status {
	case domain.ReservationCancelled:
		return nil, ErrAlreadyCancelled
	case domain.ReservationCompleted:
		return nil, ErrAlreadyCompleted
	}

	cutoff := res.ReservationDate.Add(-domain.ConflictWindow)
	now := s.now()
	if now.After(cutoff) {
		return nil, ErrCancellationTooLate
	}

	if err := s.reservations.UpdateStatus(ctx, id, domain.ReservationCancelled, now); err != nil {
		return nil, err
	}

	res.Status = domain.ReservationCancelled
	res.CancelledAt = &now
	return res, nil
}

// Confirm moves a pending reservation to confirmed. Admin operation; the
// caller's role gate admits only admins, ownership is checked here.
func (s *Service) Confirm(ctx context.Context, actor domain.Actor, id int64) (*domain.Reservation, error) {
	res, err := s.loadScoped(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if res.Status != domain.ReservationPending {
		return nil, transitionError(res.Status)
	}

	now := s.now()
	if err := s.reservations.UpdateStatus(ctx, id, domain.ReservationConfirmed, now); err != nil {
		return nil, err
	}

	res.Status = domain.ReservationConfirmed
	res.ConfirmedAt = &now
	return res, nil
}

// Complete moves a confirmed reservation to completed. Admin operation.
func (s *Service) Complete(ctx context.Context, actor domain.Actor, id int64) (*domain.Reservation, error) {
	res, err := s.loadScoped(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if res.Status != domain.ReservationConfirmed {
		return nil, transitionError(res.Status)
	}

	now := s.now()
	if err := s.reservations.UpdateStatus(ctx, id, domain.ReservationCompleted, now); err != nil {
		return nil, err
	}

	res.Status = domain.ReservationCompleted
	return res, nil
}

func transitionError(current domain.ReservationStatus) error {
	switch current {
	case domain.ReservationCancelled:
		return ErrAlreadyCancelled
	case domain.ReservationCompleted:
		return ErrAlreadyCompleted
	default:
		return ErrInvalidStatusTransition
	}
}
