package booking

import (
	"testing"

	"nepwork/models"
)

func TestPartitionDropsCancelledAndKeepsOrder(t *testing.T) {
	input := []models.Booking{
		bk(1, models.StatusCompleted),
		bk(2, models.StatusPending),
		bk(3, models.StatusCancelled),
		bk(4, models.StatusPending),
		bk(5, models.StatusConfirmed),
		bk(6, models.StatusCompleted),
	}
	pending, confirmed, completed := Partition(input)

	assertIDs(t, "pending", pending, 2, 4)
	assertIDs(t, "confirmed", confirmed, 5)
	assertIDs(t, "completed", completed, 1, 6)

	seen := map[int64]int{}
	for _, bucket := range [][]models.Booking{pending, confirmed, completed} {
		for _, b := range bucket {
			seen[b.ID]++
		}
	}
	for _, b := range input {
		want := 1
		if b.Status == models.StatusCancelled {
			want = 0
		}
		if seen[b.ID] != want {
			t.Fatalf("booking %d (%s) appears %d times, want %d", b.ID, b.Status, seen[b.ID], want)
		}
	}
}

func TestPartitionEmptyInput(t *testing.T) {
	pending, confirmed, completed := Partition(nil)
	if pending == nil || confirmed == nil || completed == nil {
		t.Fatal("buckets should be empty, not nil")
	}
	if len(pending)+len(confirmed)+len(completed) != 0 {
		t.Fatal("expected empty buckets")
	}
}

func TestClassifyCounterpartsByRole(t *testing.T) {
	bookings := []models.Booking{bk(1, models.StatusPending)}

	tests := []struct {
		role  models.Role
		roles []models.Role
	}{
		{models.RoleCustomer, []models.Role{models.RoleProvider}},
		{models.RoleProvider, []models.Role{models.RoleCustomer}},
		{models.RoleAdmin, []models.Role{models.RoleCustomer, models.RoleProvider}},
	}
	for _, tt := range tests {
		got := Classify(tt.role, bookings).Pending[0].Counterparts
		if len(got) != len(tt.roles) {
			t.Fatalf("%s: expected %d counterparts, got %d", tt.role, len(tt.roles), len(got))
		}
		for i, r := range tt.roles {
			if got[i].Role != r {
				t.Fatalf("%s: counterpart %d is %s, want %s", tt.role, i, got[i].Role, r)
			}
		}
	}
}

func TestClassifySurfacesActionsAndRatings(t *testing.T) {
	rating := 4
	done := bk(2, models.StatusCompleted)
	done.Rating = &rating
	done.Review = "Tidy work"
	pending := bk(1, models.StatusPending)
	pending.Review = "stray text"

	provider := Classify(models.RoleProvider, []models.Booking{pending, done})
	if got := provider.Pending[0].Actions; len(got) != 2 || got[0] != "accept" || got[1] != "decline" {
		t.Fatalf("provider pending actions = %v", got)
	}
	if provider.Pending[0].Review != "" {
		t.Fatal("review must not be surfaced before completion")
	}
	if provider.Completed[0].Rating == nil || *provider.Completed[0].Rating != 4 {
		t.Fatal("provider should see the rating received")
	}

	customer := Classify(models.RoleCustomer, []models.Booking{pending, done})
	if got := customer.Pending[0].Actions; len(got) != 1 || got[0] != "cancel" {
		t.Fatalf("customer pending actions = %v", got)
	}
	if got := customer.Completed[0].Actions; len(got) != 0 {
		t.Fatalf("rated booking should offer no actions, got %v", got)
	}
}

func assertIDs(t *testing.T, name string, got []models.Booking, want ...int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d bookings, want %d", name, len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("%s[%d] = %d, want %d", name, i, got[i].ID, want[i])
		}
	}
}
