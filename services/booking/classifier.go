package booking

import (
	"time"

	"nepwork/models"
)

// Partition splits bookings by status, preserving input order within each
// bucket. Cancelled bookings land in none of them.
func Partition(bookings []models.Booking) (pending, confirmed, completed []models.Booking) {
	pending = []models.Booking{}
	confirmed = []models.Booking{}
	completed = []models.Booking{}
	for _, b := range bookings {
		switch b.Status {
		case models.StatusPending:
			pending = append(pending, b)
		case models.StatusConfirmed:
			confirmed = append(confirmed, b)
		case models.StatusCompleted:
			completed = append(completed, b)
		}
	}
	return pending, confirmed, completed
}

// Classify shapes the partitioned bookings for the acting role.
func Classify(role models.Role, bookings []models.Booking) models.BookingBuckets {
	pending, confirmed, completed := Partition(bookings)
	return models.BookingBuckets{
		Pending:   viewsFor(role, pending),
		Confirmed: viewsFor(role, confirmed),
		Completed: viewsFor(role, completed),
	}
}

func viewsFor(role models.Role, bookings []models.Booking) []models.BookingView {
	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, viewFor(role, b))
	}
	return views
}

func viewFor(role models.Role, b models.Booking) models.BookingView {
	v := models.BookingView{
		ID:           b.ID,
		ServiceID:    b.ServiceID,
		ServiceTitle: b.ServiceTitle,
		Status:       b.Status,
		Counterparts: counterparts(role, b),
		Price:        b.BasePrice,
		Actions:      actionNames(AvailableActions(role, b)),
	}
	if b.ScheduledFor != nil {
		v.ScheduledFor = b.ScheduledFor.Format(time.RFC3339)
	}
	// Ratings only mean something once the work is done.
	if b.Status == models.StatusCompleted {
		v.Rating = b.Rating
		v.Review = b.Review
	}
	return v
}

func counterparts(role models.Role, b models.Booking) []models.Counterpart {
	provider := models.Counterpart{Role: models.RoleProvider, ID: b.ProviderID}
	customer := models.Counterpart{Role: models.RoleCustomer, ID: b.CustomerID, Email: b.CustomerEmail}
	switch role {
	case models.RoleProvider:
		return []models.Counterpart{customer}
	case models.RoleAdmin:
		return []models.Counterpart{customer, provider}
	default:
		return []models.Counterpart{provider}
	}
}

func actionNames(actions []Action) []string {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}
	return names
}
