package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidDecision = errors.New("decision must be approved or rejected")
	ErrAlreadyDecided  = errors.New("booking is already decided")
)
