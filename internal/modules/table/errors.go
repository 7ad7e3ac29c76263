package table

import "errors"

var (
	ErrNotFound              = errors.New("table not found")
	ErrNoRestaurant          = errors.New("actor owns no restaurant")
	ErrDuplicateNumber       = errors.New("table number already in use")
	ErrHasActiveReservations = errors.New("table has upcoming reservations")
	ErrValidation            = errors.New("validation error")
)
