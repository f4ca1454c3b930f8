package catalog

import (
	"context"
	"errors"
	"testing"

	"nepwork/models"

	"github.com/shopspring/decimal"
)

func svc(id int64, title, category string, price string, rating float64, reviews int) models.Service {
	r := rating
	return models.Service{
		ID:            id,
		Title:         title,
		CategoryName:  category,
		ProviderName:  "Ram Thapa",
		BasePrice:     decimal.RequireFromString(price),
		AverageRating: &r,
		TotalReviews:  reviews,
	}
}

func ids(services []models.Service) []int64 {
	out := make([]int64, 0, len(services))
	for _, s := range services {
		out = append(out, s.ID)
	}
	return out
}

func equal(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var fixture = []models.Service{
	svc(1, "Pipe repair", "Plumbing", "1500", 4.5, 10),
	svc(2, "House cleaning", "Cleaning", "800.50", 4.9, 3),
	svc(3, "Drain unblocking", "Plumbing", "1200", 4.5, 25),
	{ID: 4, Title: "Wiring check", CategoryName: "Electrical", Description: "Full pipe-free inspection", BasePrice: decimal.NewFromInt(2000)},
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []int64
	}{
		{"default sort by rating is stable", Filter{}, []int64{2, 1, 3, 4}},
		{"price low", Filter{SortBy: SortPriceLow}, []int64{2, 3, 1, 4}},
		{"price high", Filter{SortBy: SortPriceHigh}, []int64{4, 1, 3, 2}},
		{"reviews", Filter{SortBy: SortReviews}, []int64{3, 1, 2, 4}},
		{"category", Filter{Category: "plumbing"}, []int64{1, 3}},
		{"all categories", Filter{Category: AllCategories, SortBy: SortPriceLow}, []int64{2, 3, 1, 4}},
		{"search title and description", Filter{Search: "PIPE"}, []int64{1, 4}},
		{"search provider", Filter{Search: "thapa"}, []int64{2, 1, 3}},
		{"no match", Filter{Search: "gardening"}, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(Apply(fixture, tt.filter)); !equal(got, tt.want) {
				t.Fatalf("Apply = %v, want %v", got, tt.want)
			}
		})
	}
	if fixture[0].ID != 1 || fixture[3].ID != 4 {
		t.Fatal("Apply reordered its input")
	}
}

type fakeServices struct {
	public, mine []models.Service
	err          error
	myCalls      int
	created      []models.ServiceInput
}

func (f *fakeServices) ListServices(context.Context, *models.Session, string, string) ([]models.Service, error) {
	return f.public, f.err
}

func (f *fakeServices) MyServices(context.Context, *models.Session) ([]models.Service, error) {
	f.myCalls++
	return f.mine, f.err
}

func (f *fakeServices) ListCategories(context.Context, *models.Session) ([]models.Category, error) {
	return []models.Category{{ID: 1, Name: "Plumbing"}}, f.err
}

func (f *fakeServices) CreateService(_ context.Context, _ *models.Session, in models.ServiceInput) (*models.Service, error) {
	f.created = append(f.created, in)
	return &models.Service{ID: 9, Title: in.Title, BasePrice: in.BasePrice, IsActive: true}, f.err
}

func (f *fakeServices) ServiceDetail(_ context.Context, _ *models.Session, id int64) (*models.Service, error) {
	for _, s := range f.public {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, errors.New("not found")
}

type fakeKYC struct {
	status *models.KYCStatus
	err    error
}

func (f fakeKYC) Status(context.Context, *models.Session) (*models.KYCStatus, error) {
	return f.status, f.err
}

func approved() fakeKYC {
	return fakeKYC{status: &models.KYCStatus{Status: models.KYCApproved}}
}

func TestCreateRequiresApprovedProvider(t *testing.T) {
	ctx := context.Background()
	sess := &models.Session{Email: "p@example.com"}
	in := models.ServiceInput{Title: "Pipe repair", BasePrice: decimal.NewFromInt(1500), PricingType: models.PricingFixed, CategoryID: 1}

	tests := []struct {
		name    string
		role    models.Role
		kyc     fakeKYC
		in      models.ServiceInput
		wantErr error
	}{
		{"customer", models.RoleCustomer, approved(), in, ErrProviderOnly},
		{"kyc pending", models.RoleProvider, fakeKYC{status: &models.KYCStatus{Status: models.KYCPending}}, in, ErrKYCRequired},
		{"kyc rejected", models.RoleProvider, fakeKYC{status: &models.KYCStatus{Status: models.KYCRejected}}, in, ErrKYCRequired},
		{"kyc never submitted", models.RoleProvider, fakeKYC{}, in, ErrKYCRequired},
		{"zero price", models.RoleProvider, approved(), models.ServiceInput{Title: "Free", PricingType: models.PricingFixed, CategoryID: 1}, ErrInvalidPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeServices{}
			_, err := New(api, tt.kyc).Create(ctx, sess, tt.role, tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create = %v, want %v", err, tt.wantErr)
			}
			if len(api.created) != 0 {
				t.Fatal("backend must not be called")
			}
		})
	}

	api := &fakeServices{}
	got, err := New(api, approved()).Create(ctx, sess, models.RoleProvider, in)
	if err != nil || got.ID != 9 || len(api.created) != 1 {
		t.Fatalf("Create = %+v, %v", got, err)
	}
}

func TestCreateSurfacesKYCFailure(t *testing.T) {
	api := &fakeServices{}
	_, err := New(api, fakeKYC{err: errors.New("down")}).Create(context.Background(), nil, models.RoleProvider,
		models.ServiceInput{Title: "x", BasePrice: decimal.NewFromInt(1), PricingType: models.PricingHourly, CategoryID: 1})
	if err == nil || errors.Is(err, ErrKYCRequired) || len(api.created) != 0 {
		t.Fatalf("Create = %v", err)
	}
}

func TestListByRole(t *testing.T) {
	api := &fakeServices{public: fixture, mine: fixture[:1]}
	c := New(api, approved())
	ctx := context.Background()

	mine, err := c.List(ctx, nil, models.RoleProvider, Filter{})
	if err != nil || !equal(ids(mine), []int64{1}) || api.myCalls != 1 {
		t.Fatalf("provider list = %v, %v", ids(mine), err)
	}
	public, err := c.List(ctx, nil, models.RoleCustomer, Filter{Category: "Cleaning"})
	if err != nil || !equal(ids(public), []int64{2}) {
		t.Fatalf("customer list = %v, %v", ids(public), err)
	}
}

func TestListSurfacesBackendError(t *testing.T) {
	c := New(&fakeServices{err: errors.New("down")}, approved())
	if _, err := c.List(context.Background(), nil, models.RoleCustomer, Filter{}); err == nil {
		t.Fatal("expected error")
	}
}
