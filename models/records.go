// File: models/records.go
package models

import "time"

// Activity records a dashboard action that reached the backend successfully.
type Activity struct {
	ID        string        `bson:"id" json:"id"`
	Email     string        `bson:"email" json:"email"`
	Role      Role          `bson:"role" json:"role"`
	Action    string        `bson:"action" json:"action"`
	BookingID int64         `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	ServiceID int64         `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	Status    BookingStatus `bson:"status,omitempty" json:"status,omitempty"`
	Rating    *int          `bson:"rating,omitempty" json:"rating,omitempty"`
	Message   string        `bson:"message" json:"message"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}
