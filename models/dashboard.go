package models

import "github.com/shopspring/decimal"

// Counterpart is the other party of a booking as surfaced to the viewer.
type Counterpart struct {
	Role  Role   `json:"role"`
	ID    int64  `json:"id"`
	Email string `json:"email,omitempty"`
}

// BookingView is a booking shaped for the acting role.
type BookingView struct {
	ID           int64            `json:"id"`
	ServiceID    int64            `json:"serviceId"`
	ServiceTitle string           `json:"serviceTitle"`
	Status       BookingStatus    `json:"status"`
	ScheduledFor string           `json:"scheduledFor,omitempty"`
	Counterparts []Counterpart    `json:"counterparts"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Rating       *int             `json:"rating,omitempty"`
	Review       string           `json:"review,omitempty"`
	Actions      []string         `json:"actions"`
}

// BookingBuckets holds the three display buckets. Cancelled bookings are
// never surfaced.
type BookingBuckets struct {
	Pending   []BookingView `json:"pending"`
	Confirmed []BookingView `json:"confirmed"`
	Completed []BookingView `json:"completed"`
}

// Overview backs the summary cards on the dashboard.
type Overview struct {
	TotalServices  int      `json:"totalServices"`
	ActiveBookings int      `json:"activeBookings"`
	AverageRating  *float64 `json:"averageRating,omitempty"`
	RatedBookings  int      `json:"ratedBookings"`
}

// Dashboard is the role-scoped payload served to the UI.
type Dashboard struct {
	Role     Role           `json:"role"`
	Buckets  BookingBuckets `json:"buckets"`
	Overview Overview       `json:"overview"`
	Services []Service      `json:"services"`
	Activity []Activity     `json:"activity"`
	KYC      *KYCStatus     `json:"kyc,omitempty"`
	Error    string         `json:"error,omitempty"`
	Success  string         `json:"success,omitempty"`
}
