package reservation

import "errors"

var (
	// NOT_FOUND class
	ErrRestaurantUnavailable = errors.New("restaurant not available")
	ErrTableUnavailable      = errors.New("table not available")
	ErrReservationNotFound   = errors.New("reservation not found")

	// booking rejection reasons, in check order
	ErrCapacityExceeded = errors.New("party size exceeds table capacity")
	ErrClosedAtTime     = errors.New("restaurant is closed at that time")
	ErrClosedOnDay      = errors.New("restaurant is closed on that day")
	ErrTableConflict    = errors.New("table already reserved within the conflict window")

	// lifecycle rejection reasons
	ErrAlreadyCancelled        = errors.New("reservation is already cancelled")
	ErrAlreadyCompleted        = errors.New("reservation is already completed")
	ErrCancellationTooLate     = errors.New("too late to cancel the reservation")
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation error")
)
