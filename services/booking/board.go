package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"nepwork/models"
	"nepwork/services/backend"

	"go.uber.org/zap"
)

// Board is the booking view-model of one identity acting in one role. It
// owns the fetched booking list and the last user-visible messages.
type Board struct {
	api      BookingAPI
	session  *models.Session
	role     models.Role
	activity ActivityRecorder
	logger   *zap.Logger

	mu       sync.Mutex
	bookings []models.Booking
	errMsg   string
	okMsg    string
}

// BoardOption customizes a Board.
type BoardOption func(*Board)

// WithActivity records every accepted mutation to rec.
func WithActivity(rec ActivityRecorder) BoardOption {
	return func(b *Board) { b.activity = rec }
}

// WithLogger sets the logger for rejected and failed actions.
func WithLogger(logger *zap.Logger) BoardOption {
	return func(b *Board) { b.logger = logger }
}

// NewBoard creates an empty board for sess acting as role. Call Load before
// running actions.
func NewBoard(api BookingAPI, sess *models.Session, role models.Role, opts ...BoardOption) *Board {
	b := &Board{
		api:      api,
		session:  sess,
		role:     role,
		logger:   zap.NewNop(),
		bookings: []models.Booking{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Role is the role the board was resolved for.
func (b *Board) Role() models.Role {
	return b.role
}

// Load replaces the booking list with a fresh fetch. On failure the list
// becomes empty and the error message is set; the returned error is for
// logging only, the board is already in a consistent state.
func (b *Board) Load(ctx context.Context) error {
	bookings, err := b.api.MyBookings(ctx, b.session)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.bookings = []models.Booking{}
		b.errMsg = MessageFor(err, "failed to load bookings")
		return fmt.Errorf("load bookings: %w", err)
	}
	b.bookings = bookings
	return nil
}

// Bookings returns a copy of the current booking list.
func (b *Board) Bookings() []models.Booking {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Booking, len(b.bookings))
	copy(out, b.bookings)
	return out
}

// Buckets classifies the current list for the board's role.
func (b *Board) Buckets() models.BookingBuckets {
	return Classify(b.role, b.Bookings())
}

// Error is the last user-visible failure message, if any.
func (b *Board) Error() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.errMsg
}

// Success is the last user-visible confirmation message, if any.
func (b *Board) Success() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.okMsg
}

// Accept confirms a pending booking. Provider-only.
func (b *Board) Accept(ctx context.Context, id int64) error {
	return b.transition(ctx, ActionAccept, id)
}

// Decline cancels a pending booking on the provider's side.
func (b *Board) Decline(ctx context.Context, id int64) error {
	return b.transition(ctx, ActionDecline, id)
}

// Complete marks confirmed work as done. Provider-only.
func (b *Board) Complete(ctx context.Context, id int64) error {
	return b.transition(ctx, ActionComplete, id)
}

// Cancel withdraws the customer's own pending booking.
func (b *Board) Cancel(ctx context.Context, id int64) error {
	return b.transition(ctx, ActionCancel, id)
}

// Rate attaches the customer's single rating to a completed booking.
func (b *Board) Rate(ctx context.Context, id int64, rating int, review string) error {
	if !models.ValidRating(rating) {
		return b.rejected(reject(ActionRate, id, ErrInvalidRating))
	}
	if err := b.validate(ActionRate, id); err != nil {
		return err
	}
	input := models.RatingInput{Rating: rating, Review: review}
	return b.dispatch(ctx, ActionRate, id, func(ctx context.Context) error {
		_, err := b.api.RateBooking(ctx, b.session, id, input)
		return err
	}, func(a *models.Activity) {
		a.Status = models.StatusCompleted
		a.Rating = &rating
	})
}

// Request creates a new pending booking for a service. Customer-only.
func (b *Board) Request(ctx context.Context, input models.BookingRequestInput) error {
	if err := CheckRequest(b.role); err != nil {
		return b.rejected(reject(ActionRequest, 0, err))
	}
	return b.dispatch(ctx, ActionRequest, 0, func(ctx context.Context) error {
		_, err := b.api.CreateBooking(ctx, b.session, input)
		return err
	}, func(a *models.Activity) {
		a.ServiceID = input.ServiceID
		a.Status = models.StatusPending
	})
}

// Do runs a per-booking action by name.
func (b *Board) Do(ctx context.Context, action Action, id int64) error {
	switch action {
	case ActionAccept, ActionDecline, ActionComplete, ActionCancel:
		return b.transition(ctx, action, id)
	}
	return b.rejected(reject(action, id, ErrUnknownAction))
}

func (b *Board) transition(ctx context.Context, action Action, id int64) error {
	if err := b.validate(action, id); err != nil {
		return err
	}
	tr, _ := TransitionFor(action)
	return b.dispatch(ctx, action, id, func(ctx context.Context) error {
		_, err := b.api.SetBookingStatus(ctx, b.session, id, tr.To)
		return err
	}, func(a *models.Activity) {
		a.Status = tr.To
	})
}

// validate rejects an action against the loaded list before any request.
func (b *Board) validate(action Action, id int64) error {
	b.mu.Lock()
	current, ok := b.find(id)
	b.mu.Unlock()
	if !ok {
		return b.rejected(reject(action, id, ErrBookingNotFound))
	}
	if err := Check(action, b.role, current); err != nil {
		return b.rejected(reject(action, id, err))
	}
	return nil
}

func (b *Board) find(id int64) (models.Booking, bool) {
	for _, bk := range b.bookings {
		if bk.ID == id {
			return bk, true
		}
	}
	return models.Booking{}, false
}

func (b *Board) rejected(err *ActionError) error {
	b.mu.Lock()
	b.errMsg = err.Error()
	b.okMsg = ""
	b.mu.Unlock()
	b.logger.Info("booking action rejected",
		zap.String("action", string(err.Action)),
		zap.Int64("booking_id", err.BookingID),
		zap.String("role", string(b.role)),
		zap.Error(err.Err))
	return err
}

// dispatch sends the mutation and, once the backend accepts it, re-fetches
// the full list. A failed mutation leaves the list untouched.
func (b *Board) dispatch(ctx context.Context, action Action, id int64, mutate func(context.Context) error, describe func(*models.Activity)) error {
	if err := mutate(ctx); err != nil {
		b.mu.Lock()
		b.errMsg = MessageFor(err, failureMessages[action])
		b.okMsg = ""
		b.mu.Unlock()
		b.logger.Warn("booking action failed",
			zap.String("action", string(action)),
			zap.Int64("booking_id", id),
			zap.Error(err))
		return fmt.Errorf("%s booking %d: %w", action, id, err)
	}

	b.mu.Lock()
	b.errMsg = ""
	b.okMsg = successMessages[action]
	b.mu.Unlock()

	if err := b.Load(ctx); err != nil {
		b.logger.Warn("refresh after booking action failed", zap.String("action", string(action)), zap.Error(err))
	}
	b.record(ctx, action, id, describe)
	return nil
}

func (b *Board) record(ctx context.Context, action Action, id int64, describe func(*models.Activity)) {
	if b.activity == nil || b.session.Identity() == "" {
		return
	}
	a := models.Activity{
		Email:     b.session.Identity(),
		Role:      b.role,
		Action:    string(action),
		BookingID: id,
		Message:   successMessages[action],
	}
	if describe != nil {
		describe(&a)
	}
	if _, err := b.activity.Create(ctx, a); err != nil {
		b.logger.Warn("failed to record activity", zap.String("action", string(action)), zap.Error(err))
	}
}

var failureMessages = map[Action]string{
	ActionAccept:   "failed to accept booking",
	ActionDecline:  "failed to decline booking",
	ActionComplete: "failed to complete booking",
	ActionCancel:   "failed to cancel booking",
	ActionRate:     "failed to submit rating",
	ActionRequest:  "failed to request booking",
}

var successMessages = map[Action]string{
	ActionAccept:   "Booking accepted",
	ActionDecline:  "Booking declined",
	ActionComplete: "Booking marked as completed",
	ActionCancel:   "Booking cancelled",
	ActionRate:     "Thanks for your review!",
	ActionRequest:  "Booking requested",
}

// MessageFor prefers the backend's own detail over the generic fallback.
func MessageFor(err error, fallback string) string {
	if detail := backend.DetailOf(err); detail != "" {
		return detail
	}
	var actionErr *ActionError
	if errors.As(err, &actionErr) {
		return actionErr.Error()
	}
	return fallback
}
