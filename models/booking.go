package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the lifecycle state of a booking as reported by the backend.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the four known booking states.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition can leave s.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s *BookingStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	status := BookingStatus(raw)
	if !status.Valid() {
		return fmt.Errorf("unknown booking status %q", raw)
	}
	*s = status
	return nil
}

const (
	MinRating = 1
	MaxRating = 5
)

// Booking mirrors the booking record served by /bookings/mine/. Rating is
// nil until the customer rates; Review only accompanies a rating.
type Booking struct {
	ID            int64            `json:"id"`
	ServiceID     int64            `json:"service"`
	ServiceTitle  string           `json:"service_title"`
	ProviderID    int64            `json:"provider_id"`
	CustomerID    int64            `json:"customer"`
	CustomerEmail string           `json:"customer_email"`
	Status        BookingStatus    `json:"status"`
	ScheduledFor  *time.Time       `json:"scheduled_for,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	BasePrice     *decimal.Decimal `json:"base_price,omitempty"`
	Rating        *int             `json:"rating"`
	Review        string           `json:"review,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// Rated reports whether the booking already carries a customer rating.
func (b Booking) Rated() bool {
	return b.Rating != nil
}

// ValidRating reports whether r is inside the accepted rating scale.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// BookingRequestInput is the payload for creating a booking.
type BookingRequestInput struct {
	ServiceID    int64      `json:"service" binding:"required"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

// RatingInput is the payload for rating a completed booking.
// Rating is range-checked by the board, not by binding.
type RatingInput struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}
