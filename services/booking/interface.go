package booking

import (
	"context"

	"nepwork/models"
)

// BookingAPI is the slice of the REST backend the board depends on.
type BookingAPI interface {
	MyBookings(ctx context.Context, sess *models.Session) ([]models.Booking, error)
	CreateBooking(ctx context.Context, sess *models.Session, input models.BookingRequestInput) (*models.Booking, error)
	SetBookingStatus(ctx context.Context, sess *models.Session, id int64, status models.BookingStatus) (*models.Booking, error)
	RateBooking(ctx context.Context, sess *models.Session, id int64, input models.RatingInput) (*models.Booking, error)
}

// ActivityRecorder receives an entry for every mutation the backend accepted.
type ActivityRecorder interface {
	Create(ctx context.Context, activity models.Activity) (string, error)
}
