package session

import (
	"context"
	"errors"
	"testing"

	preferenceRepo "nepwork/database/repository/preference"
	"nepwork/models"
)

type fakeSyncer struct {
	err   error
	roles []models.Role
}

func (f *fakeSyncer) SyncAccount(_ context.Context, _ *models.Session, role models.Role) error {
	f.roles = append(f.roles, role)
	return f.err
}

func TestResolveOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		url    string
		stored models.Role
		claim  string
		want   models.Role
	}{
		{"url wins", "provider", models.RoleCustomer, "customer", models.RoleProvider},
		{"stored beats claim", "", models.RoleProvider, "customer", models.RoleProvider},
		{"claim when nothing stored", "", "", "provider", models.RoleProvider},
		{"client maps to customer", "client", models.RoleProvider, "", models.RoleCustomer},
		{"claim client maps to customer", "", "", "client", models.RoleCustomer},
		{"unknown url falls through", "superuser", models.RoleProvider, "", models.RoleProvider},
		{"default", "", "", "", models.RoleCustomer},
		{"case insensitive", " Provider ", "", "", models.RoleProvider},
		{"admin url without admin claim", "admin", "", "customer", models.RoleCustomer},
		{"admin url falls back to stored", "admin", models.RoleProvider, "", models.RoleProvider},
		{"stored admin without admin claim", "", models.RoleAdmin, "provider", models.RoleProvider},
		{"admin url with admin claim", "admin", models.RoleCustomer, "admin", models.RoleAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := preferenceRepo.NewMemoryStore()
			if tt.stored != "" {
				_ = store.SetRole(ctx, "u@example.com", tt.stored)
			}
			r := NewResolver(store, nil)
			sess := &models.Session{Email: "u@example.com", ClaimRole: tt.claim}

			if got := r.Resolve(ctx, sess, tt.url); got != tt.want {
				t.Fatalf("Resolve = %s, want %s", got, tt.want)
			}
			persisted, ok, _ := store.GetRole(ctx, "u@example.com")
			if !ok || persisted != tt.want {
				t.Fatalf("persisted %q ok=%v, want %s", persisted, ok, tt.want)
			}
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	ctx := context.Background()
	store := preferenceRepo.NewMemoryStore()
	_ = store.SetRole(ctx, "u@example.com", models.RoleCustomer)
	r := NewResolver(store, nil)
	sess := &models.Session{Email: "u@example.com", ClaimRole: "customer"}

	for i := 0; i < 3; i++ {
		if got := r.Resolve(ctx, sess, "provider"); got != models.RoleProvider {
			t.Fatalf("run %d: Resolve = %s", i, got)
		}
	}
}

func TestResolveAnonymousWithoutStore(t *testing.T) {
	r := NewResolver(nil, nil)
	if got := r.Resolve(context.Background(), nil, ""); got != models.RoleCustomer {
		t.Fatalf("Resolve = %s", got)
	}
}

func TestSwitchSyncsThenPersists(t *testing.T) {
	ctx := context.Background()
	store := preferenceRepo.NewMemoryStore()
	r := NewResolver(store, nil)
	syncer := &fakeSyncer{}
	sess := &models.Session{Email: "u@example.com"}

	role, err := r.Switch(ctx, sess, "provider", syncer)
	if err != nil || role != models.RoleProvider {
		t.Fatalf("Switch = %s, %v", role, err)
	}
	if len(syncer.roles) != 1 || syncer.roles[0] != models.RoleProvider {
		t.Fatalf("backend saw %v", syncer.roles)
	}
	if stored, _, _ := store.GetRole(ctx, "u@example.com"); stored != models.RoleProvider {
		t.Fatalf("stored %s", stored)
	}
}

func TestSwitchFailureKeepsPreference(t *testing.T) {
	ctx := context.Background()
	store := preferenceRepo.NewMemoryStore()
	_ = store.SetRole(ctx, "u@example.com", models.RoleCustomer)
	r := NewResolver(store, nil)

	_, err := r.Switch(ctx, &models.Session{Email: "u@example.com"}, "provider", &fakeSyncer{err: errors.New("boom")})
	if err == nil {
		t.Fatal("expected sync failure")
	}
	if stored, _, _ := store.GetRole(ctx, "u@example.com"); stored != models.RoleCustomer {
		t.Fatalf("preference changed to %s", stored)
	}
}

func TestSwitchGuards(t *testing.T) {
	ctx := context.Background()
	r := NewResolver(preferenceRepo.NewMemoryStore(), nil)

	if _, err := r.Switch(ctx, &models.Session{Email: "u@example.com"}, "owner", &fakeSyncer{}); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("unknown role = %v", err)
	}
	if _, err := r.Switch(ctx, &models.Session{}, "provider", &fakeSyncer{}); !errors.Is(err, ErrAnonymous) {
		t.Fatalf("anonymous = %v", err)
	}
	if _, err := r.Switch(ctx, &models.Session{Email: "u@example.com"}, "admin", &fakeSyncer{}); !errors.Is(err, ErrAdminClaimRequired) {
		t.Fatalf("admin without claim = %v", err)
	}
	if _, err := r.Switch(ctx, &models.Session{Email: "a@example.com", ClaimRole: "admin"}, "admin", &fakeSyncer{}); err != nil {
		t.Fatalf("admin with claim = %v", err)
	}
}

func TestRememberToken(t *testing.T) {
	ctx := context.Background()
	store := preferenceRepo.NewMemoryStore()
	r := NewResolver(store, nil)

	r.RememberToken(ctx, &models.Session{Email: "u@example.com", Token: "abc", Verified: true})
	if tok, ok, _ := store.GetToken(ctx, "u@example.com"); !ok || tok != "abc" {
		t.Fatalf("token = %q ok=%v", tok, ok)
	}

	r.RememberToken(ctx, &models.Session{Email: "u@example.com", Token: "forged"})
	if tok, _, _ := store.GetToken(ctx, "u@example.com"); tok != "abc" {
		t.Fatalf("unverified token replaced stored one: %q", tok)
	}
}

func TestResolveDoesNotPersistUnclaimedAdmin(t *testing.T) {
	ctx := context.Background()
	store := preferenceRepo.NewMemoryStore()
	r := NewResolver(store, nil)
	sess := &models.Session{Email: "u@example.com", ClaimRole: "customer"}

	if got := r.Resolve(ctx, sess, "admin"); got == models.RoleAdmin {
		t.Fatal("admin granted without admin claim")
	}
	if stored, _, _ := store.GetRole(ctx, "u@example.com"); stored == models.RoleAdmin {
		t.Fatal("admin persisted without admin claim")
	}
	// A later visit without the parameter stays non-admin too.
	if got := r.Resolve(ctx, sess, ""); got != models.RoleCustomer {
		t.Fatalf("Resolve = %s", got)
	}
}
