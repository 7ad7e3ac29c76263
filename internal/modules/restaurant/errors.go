package restaurant

import "errors"

var (
	ErrNotFound     = errors.New("restaurant not found")
	ErrNoRestaurant = errors.New("actor owns no restaurant")
	ErrAlreadyOwner = errors.New("actor already owns a restaurant")
	ErrNotEligible  = errors.New("only clients can purchase a restaurant")
	ErrValidation   = errors.New("validation error")
)
