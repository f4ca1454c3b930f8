package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"nepwork/models"

	"go.uber.org/zap"
)

// MyBookings lists the caller's bookings. Records that fail validation are
// dropped at this boundary so the view-model only ever sees typed bookings.
func (c *Client) MyBookings(ctx context.Context, sess *models.Session) ([]models.Booking, error) {
	var raw []json.RawMessage
	if err := c.getJSON(ctx, sess, "/bookings/mine/", &raw); err != nil {
		return nil, err
	}

	bookings := make([]models.Booking, 0, len(raw))
	for _, item := range raw {
		var b models.Booking
		if err := json.Unmarshal(item, &b); err != nil {
			c.logger.Warn("dropping malformed booking", zap.Error(err))
			continue
		}
		if b.CustomerID != 0 && b.CustomerID == b.ProviderID {
			c.logger.Warn("dropping booking whose customer is its provider", zap.Int64("booking_id", b.ID))
			continue
		}
		if b.Rating != nil && !models.ValidRating(*b.Rating) {
			c.logger.Warn("clearing out-of-range rating", zap.Int64("booking_id", b.ID), zap.Int("rating", *b.Rating))
			b.Rating = nil
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// CreateBooking requests a booking; the backend creates it as pending.
func (c *Client) CreateBooking(ctx context.Context, sess *models.Session, input models.BookingRequestInput) (*models.Booking, error) {
	var out models.Booking
	if err := c.sendJSON(ctx, sess, http.MethodPost, "/bookings/create/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetBookingStatus moves a booking to status.
func (c *Client) SetBookingStatus(ctx context.Context, sess *models.Session, id int64, status models.BookingStatus) (*models.Booking, error) {
	body := map[string]models.BookingStatus{"status": status}
	var out models.Booking
	if err := c.sendJSON(ctx, sess, http.MethodPatch, fmt.Sprintf("/bookings/%d/status/", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RateBooking attaches a rating and review to a completed booking.
func (c *Client) RateBooking(ctx context.Context, sess *models.Session, id int64, input models.RatingInput) (*models.Booking, error) {
	var out models.Booking
	if err := c.sendJSON(ctx, sess, http.MethodPatch, fmt.Sprintf("/bookings/%d/rate/", id), input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
