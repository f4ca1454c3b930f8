package booking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrRoleNotAllowed    = errors.New("action not allowed for role")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrAlreadyRated      = errors.New("booking already rated")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrUnknownAction     = errors.New("unknown action")
)

// ActionError is a dispatcher rejection raised before any request is sent.
type ActionError struct {
	Action    Action
	BookingID int64
	Err       error
}

func (e *ActionError) Error() string {
	if e.BookingID == 0 {
		return fmt.Sprintf("cannot %s: %v", e.Action, e.Err)
	}
	return fmt.Sprintf("cannot %s booking %d: %v", e.Action, e.BookingID, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

func reject(action Action, id int64, err error) *ActionError {
	return &ActionError{Action: action, BookingID: id, Err: err}
}
