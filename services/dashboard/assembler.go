package dashboard

import (
	"context"
	"strings"

	"nepwork/models"
	"nepwork/services/booking"
	"nepwork/services/catalog"

	"go.uber.org/zap"
)

// RecentActivityLimit caps the activity trail shown on the dashboard.
const RecentActivityLimit = 10

type RoleResolver interface {
	Resolve(ctx context.Context, sess *models.Session, urlRole string) models.Role
}

type ServiceLister interface {
	List(ctx context.Context, sess *models.Session, role models.Role, f catalog.Filter) ([]models.Service, error)
}

type KYCReader interface {
	Status(ctx context.Context, sess *models.Session) (*models.KYCStatus, error)
}

type ActivityReader interface {
	Recent(ctx context.Context, email string, limit int) ([]models.Activity, error)
}

// Deps wires an Assembler. KYC and Activity are optional.
type Deps struct {
	Resolver RoleResolver
	Bookings booking.BookingAPI
	Services ServiceLister
	KYC      KYCReader
	Activity ActivityReader
	Logger   *zap.Logger
}

// Assembler builds the role-scoped dashboard payload.
type Assembler struct {
	deps   Deps
	logger *zap.Logger
}

func NewAssembler(deps Deps) *Assembler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{deps: deps, logger: logger}
}

// Assemble resolves the role and gathers everything the dashboard shows.
// Partial failures end up in the payload's error message; a dashboard is
// always returned.
func (a *Assembler) Assemble(ctx context.Context, sess *models.Session, urlRole string) *models.Dashboard {
	role := a.deps.Resolver.Resolve(ctx, sess, urlRole)
	logger := a.logger.With(zap.String("email", sess.Identity()), zap.String("role", role.String()))

	board := booking.NewBoard(a.deps.Bookings, sess, role, booking.WithLogger(logger))
	if err := board.Load(ctx); err != nil {
		logger.Warn("dashboard bookings unavailable", zap.Error(err))
	}

	d := &models.Dashboard{
		Role:     role,
		Buckets:  board.Buckets(),
		Services: []models.Service{},
		Activity: []models.Activity{},
	}
	var problems []string
	if msg := board.Error(); msg != "" {
		problems = append(problems, msg)
	}

	services, err := a.deps.Services.List(ctx, sess, role, catalog.Filter{})
	if err != nil {
		logger.Warn("dashboard services unavailable", zap.Error(err))
		problems = append(problems, booking.MessageFor(err, "failed to load services"))
	} else {
		d.Services = services
	}
	d.Overview = Summarize(board.Bookings(), d.Services)

	if a.deps.Activity != nil && sess.Identity() != "" {
		recent, err := a.deps.Activity.Recent(ctx, sess.Identity(), RecentActivityLimit)
		if err != nil {
			// The trail is local bookkeeping; its absence is not shown to the user.
			logger.Warn("recent activity unavailable", zap.Error(err))
		} else if recent != nil {
			d.Activity = recent
		}
	}

	if role == models.RoleProvider && a.deps.KYC != nil {
		status, err := a.deps.KYC.Status(ctx, sess)
		if err != nil {
			logger.Warn("kyc status unavailable", zap.Error(err))
			problems = append(problems, booking.MessageFor(err, "failed to load verification status"))
		} else {
			d.KYC = status
		}
	}

	d.Error = strings.Join(problems, "; ")
	return d
}

// Summarize computes the overview cards. Active bookings are those still
// pending or confirmed; the average only counts rated completed bookings.
func Summarize(bookings []models.Booking, services []models.Service) models.Overview {
	o := models.Overview{TotalServices: len(services)}
	var sum int
	for _, b := range bookings {
		switch b.Status {
		case models.StatusPending, models.StatusConfirmed:
			o.ActiveBookings++
		case models.StatusCompleted:
			if b.Rated() {
				sum += *b.Rating
				o.RatedBookings++
			}
		}
	}
	if o.RatedBookings > 0 {
		avg := float64(sum) / float64(o.RatedBookings)
		o.AverageRating = &avg
	}
	return o
}
