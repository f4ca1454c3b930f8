package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"nepwork/models"
	"nepwork/services/kyc"
)

var (
	ErrProviderOnly = errors.New("only providers can create services")
	ErrKYCRequired  = errors.New("identity verification must be approved before publishing services")
	ErrInvalidPrice = errors.New("base price must be greater than zero")
)

// Sort orders understood by Filter.
const (
	SortRating    = "rating"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortReviews   = "reviews"
)

// AllCategories matches every category.
const AllCategories = "All"

// ServiceAPI is the slice of the backend the catalog needs.
type ServiceAPI interface {
	ListServices(ctx context.Context, sess *models.Session, category, query string) ([]models.Service, error)
	MyServices(ctx context.Context, sess *models.Session) ([]models.Service, error)
	ListCategories(ctx context.Context, sess *models.Session) ([]models.Category, error)
	CreateService(ctx context.Context, sess *models.Session, in models.ServiceInput) (*models.Service, error)
	ServiceDetail(ctx context.Context, sess *models.Session, id int64) (*models.Service, error)
}

// KYCReader reports the caller's verification state.
type KYCReader interface {
	Status(ctx context.Context, sess *models.Session) (*models.KYCStatus, error)
}

// Filter narrows and orders a service listing.
type Filter struct {
	Search   string `form:"q"`
	Category string `form:"category"`
	SortBy   string `form:"sort"`
}

type Catalog struct {
	api ServiceAPI
	kyc KYCReader
}

func New(api ServiceAPI, verification KYCReader) *Catalog {
	return &Catalog{api: api, kyc: verification}
}

// List returns the services visible to role. Providers see their own
// listings, everyone else the public catalog.
func (c *Catalog) List(ctx context.Context, sess *models.Session, role models.Role, f Filter) ([]models.Service, error) {
	var (
		services []models.Service
		err      error
	)
	if role == models.RoleProvider {
		services, err = c.api.MyServices(ctx, sess)
	} else {
		services, err = c.api.ListServices(ctx, sess, "", "")
	}
	if err != nil {
		return nil, err
	}
	return Apply(services, f), nil
}

func (c *Catalog) Categories(ctx context.Context, sess *models.Session) ([]models.Category, error) {
	return c.api.ListCategories(ctx, sess)
}

// Detail returns a single service with its recent reviews.
func (c *Catalog) Detail(ctx context.Context, sess *models.Session, id int64) (*models.Service, error) {
	return c.api.ServiceDetail(ctx, sess, id)
}

// Create publishes a new listing. Only providers whose verification has
// been approved may publish; the backend enforces the same rule.
func (c *Catalog) Create(ctx context.Context, sess *models.Session, role models.Role, in models.ServiceInput) (*models.Service, error) {
	if role != models.RoleProvider {
		return nil, ErrProviderOnly
	}
	if !in.BasePrice.IsPositive() {
		return nil, ErrInvalidPrice
	}
	status, err := c.kyc.Status(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("kyc status: %w", err)
	}
	if !kyc.CanPublish(status) {
		return nil, ErrKYCRequired
	}
	return c.api.CreateService(ctx, sess, in)
}

// Apply filters services by search text and category name, then sorts them.
// The input slice is not modified.
func Apply(services []models.Service, f Filter) []models.Service {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if !matchesSearch(s, search) || !matchesCategory(s, f.Category) {
			continue
		}
		out = append(out, s)
	}

	less := lessFor(f.SortBy)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func matchesSearch(s models.Service, search string) bool {
	if search == "" {
		return true
	}
	for _, field := range []string{s.Title, s.Description, s.ProviderName} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func matchesCategory(s models.Service, category string) bool {
	category = strings.TrimSpace(category)
	if category == "" || category == AllCategories {
		return true
	}
	return strings.EqualFold(s.CategoryName, category)
}

func lessFor(sortBy string) func(a, b models.Service) bool {
	switch sortBy {
	case SortPriceLow:
		return func(a, b models.Service) bool { return a.BasePrice.LessThan(b.BasePrice) }
	case SortPriceHigh:
		return func(a, b models.Service) bool { return a.BasePrice.GreaterThan(b.BasePrice) }
	case SortReviews:
		return func(a, b models.Service) bool { return a.TotalReviews > b.TotalReviews }
	default:
		return func(a, b models.Service) bool { return rating(a) > rating(b) }
	}
}

// rating treats an unrated service as zero.
func rating(s models.Service) float64 {
	if s.AverageRating == nil {
		return 0
	}
	return *s.AverageRating
}
