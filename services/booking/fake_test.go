package booking

import (
	"context"
	"sync"

	"nepwork/models"
)

// fakeAPI behaves like the REST backend for a single caller.
type fakeAPI struct {
	mu         sync.Mutex
	bookings   []models.Booking
	listErr    error
	mutateErr  error
	refreshErr error // becomes listErr once a mutation succeeds
	nextID     int64
	calls      map[string]int
}

func (f *fakeAPI) mutated() {
	if f.refreshErr != nil {
		f.listErr = f.refreshErr
	}
}

func newFakeAPI(bookings ...models.Booking) *fakeAPI {
	return &fakeAPI{bookings: bookings, nextID: 100, calls: map[string]int{}}
}

func (f *fakeAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) MyBookings(_ context.Context, _ *models.Session) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["list"]++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Booking, len(f.bookings))
	copy(out, f.bookings)
	return out, nil
}

func (f *fakeAPI) CreateBooking(_ context.Context, _ *models.Session, input models.BookingRequestInput) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["create"]++
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	f.nextID++
	b := models.Booking{ID: f.nextID, ServiceID: input.ServiceID, ProviderID: 2, CustomerID: 3, Status: models.StatusPending}
	f.bookings = append(f.bookings, b)
	f.mutated()
	return &b, nil
}

func (f *fakeAPI) SetBookingStatus(_ context.Context, _ *models.Session, id int64, status models.BookingStatus) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["status"]++
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			b := f.bookings[i]
			f.mutated()
			return &b, nil
		}
	}
	return nil, f.mutateErr
}

func (f *fakeAPI) RateBooking(_ context.Context, _ *models.Session, id int64, input models.RatingInput) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["rate"]++
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			r := input.Rating
			f.bookings[i].Rating = &r
			f.bookings[i].Review = input.Review
			b := f.bookings[i]
			f.mutated()
			return &b, nil
		}
	}
	return nil, f.mutateErr
}

func bk(id int64, status models.BookingStatus) models.Booking {
	return models.Booking{ID: id, ServiceID: 10, ServiceTitle: "Home Cleaning", ProviderID: 2, CustomerID: 3, CustomerEmail: "c@example.com", Status: status}
}
