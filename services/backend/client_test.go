package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	preferenceRepo "nepwork/database/repository/preference"
	"nepwork/models"

	"github.com/shopspring/decimal"
)

func newTestClient(t *testing.T, h http.HandlerFunc, opts Options) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	opts.BaseURL = srv.URL
	return NewClient(opts)
}

func TestMyBookingsValidatesAtBoundary(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bookings/mine/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"id": 1, "service": 10, "provider_id": 2, "customer": 3, "status": "pending", "rating": null},
			{"id": 2, "service": 10, "provider_id": 2, "customer": 3, "status": "archived"},
			{"id": 3, "service": 10, "provider_id": 4, "customer": 4, "status": "pending"},
			{"id": 4, "service": 10, "provider_id": 2, "customer": 3, "status": "completed", "rating": 9},
			{"id": 5, "service": 10, "provider_id": 2, "customer": 3, "status": "completed", "rating": 4, "base_price": "2500.00"}
		]`))
	}, Options{})

	got, err := c.MyBookings(context.Background(), &models.Session{Email: "c@example.com"})
	if err != nil {
		t.Fatalf("MyBookings: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 valid bookings, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 4 || got[2].ID != 5 {
		t.Fatalf("unexpected order: %d %d %d", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[1].Rating != nil {
		t.Fatalf("out-of-range rating should be cleared, got %d", *got[1].Rating)
	}
	if got[2].BasePrice == nil || got[2].BasePrice.String() != "2500" {
		t.Fatalf("expected base price 2500, got %v", got[2].BasePrice)
	}
}

func TestErrorDetailIsDecoded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Only completed bookings can be rated."}`))
	}, Options{})

	_, err := c.RateBooking(context.Background(), &models.Session{Email: "c@example.com"}, 7, models.RatingInput{Rating: 5})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Detail != "Only completed bookings can be rated." {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
	if apiErr.Path != "/bookings/7/rate/" {
		t.Fatalf("unexpected path %s", apiErr.Path)
	}
}

func TestUnauthorizedClearsPersistedToken(t *testing.T) {
	store := preferenceRepo.NewMemoryStore()
	ctx := context.Background()
	_ = store.SetToken(ctx, "p@example.com", "stale-token")

	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Token expired"}`))
	}, Options{Tokens: store, DevEmailAuth: true})

	_, err := c.MyBookings(ctx, &models.Session{Email: "p@example.com"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || !apiErr.Unauthorized() {
		t.Fatalf("expected 401 APIError, got %v", err)
	}
	if gotAuth != "Bearer stale-token" {
		t.Fatalf("expected persisted token to be sent, got %q", gotAuth)
	}
	if _, ok, _ := store.GetToken(ctx, "p@example.com"); ok {
		t.Fatal("stale token should be cleared after 401")
	}
}

func TestPersistedTokenNeedsDevEmailAuth(t *testing.T) {
	store := preferenceRepo.NewMemoryStore()
	ctx := context.Background()
	_ = store.SetToken(ctx, "p@example.com", "real-token")

	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
	}, Options{Tokens: store})

	// A session that only names an email must not borrow the owner's token.
	_, _ = c.MyBookings(ctx, &models.Session{Email: "p@example.com"})
	if gotAuth != "" {
		t.Fatalf("persisted token leaked: %q", gotAuth)
	}

	// A forged token rejected upstream leaves the stored one alone.
	_, _ = c.MyBookings(ctx, &models.Session{Email: "p@example.com", Token: "forged"})
	if tok, ok, _ := store.GetToken(ctx, "p@example.com"); !ok || tok != "real-token" {
		t.Fatalf("stored token = %q, %v", tok, ok)
	}
}

func TestDevEmailHeaderFallback(t *testing.T) {
	var gotEmail, gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotEmail = r.Header.Get("X-User-Email")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}, Options{DevEmailAuth: true})

	if _, err := c.MyServices(context.Background(), &models.Session{Email: "p@example.com"}); err != nil {
		t.Fatalf("MyServices: %v", err)
	}
	if gotEmail != "p@example.com" || gotAuth != "" {
		t.Fatalf("expected email header only, got email=%q auth=%q", gotEmail, gotAuth)
	}
}

func TestTransportFailureIsWrapped(t *testing.T) {
	c := NewClient(Options{BaseURL: "http://127.0.0.1:1"})
	_, err := c.MyBookings(context.Background(), &models.Session{Email: "c@example.com"})
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestListServicesQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("category") != "home" || r.URL.Query().Get("q") != "clean" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		w.Write([]byte(`[{"id": 1, "title": "Home Cleaning", "base_price": "2500.00", "pricing_type": "fixed"}]`))
	}, Options{})

	got, err := c.ListServices(context.Background(), nil, "home", "clean")
	if err != nil {
		t.Fatalf("ListServices: %v", err)
	}
	if len(got) != 1 || got[0].BasePrice.IntPart() != 2500 {
		t.Fatalf("unexpected services %+v", got)
	}
}

func TestCreateServicePostsListing(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/services/services/create/" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 12, "title": "Pipe repair", "base_price": "1500.00", "pricing_type": "fixed", "is_active": true}`))
	}, Options{})

	in := models.ServiceInput{Title: "Pipe repair", BasePrice: decimal.NewFromInt(1500), PricingType: models.PricingFixed, CategoryID: 3}
	svc, err := c.CreateService(context.Background(), &models.Session{Email: "p@example.com", Token: "t"}, in)
	if err != nil || svc.ID != 12 {
		t.Fatalf("CreateService = %+v, %v", svc, err)
	}
	if got["title"] != "Pipe repair" || got["category"] != float64(3) || got["pricing_type"] != "fixed" {
		t.Fatalf("body = %v", got)
	}
}

func TestServiceDetailPath(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/services/services/7/detail/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"id": 7, "title": "Deep clean", "base_price": "900", "total_reviews": 2}`))
	}, Options{})

	svc, err := c.ServiceDetail(context.Background(), nil, 7)
	if err != nil || svc.ID != 7 || svc.TotalReviews != 2 {
		t.Fatalf("ServiceDetail = %+v, %v", svc, err)
	}
}
