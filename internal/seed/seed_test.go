package seed

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/models"
	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/storage/sqlite"
)

func newTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestEnsureDefaultGroupsIdempotent(t *testing.T) {
	store := newTestStore(t)
	seeder := New(store)
	ctx := context.Background()

	if err := seeder.EnsureDefaultGroups(ctx, DefaultGroups); err != nil {
		t.Fatalf("First seed failed: %v", err)
	}
	if err := seeder.EnsureDefaultGroups(ctx, DefaultGroups); err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}

	groups, err := store.ListGroups(ctx)
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groups) != len(DefaultGroups) {
		t.Errorf("Expected %d groups after double seed, got %d", len(DefaultGroups), len(groups))
	}

	seen := make(map[string]bool)
	for _, g := range groups {
		if seen[g.Name] {
			t.Errorf("Duplicate group %q", g.Name)
		}
		seen[g.Name] = true
	}
}

func TestEnsureDefaultGroupsDeduplicatesInput(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := New(store).EnsureDefaultGroups(ctx, []string{"Trip", "Trip", "Savings"}); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	groups, err := store.ListGroups(ctx)
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(groups) != 2 {
		t.Errorf("Expected 2 groups for input with a repeated name, got %d", len(groups))
	}
}

func TestEnsureDefaultGroupsPreservesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	custom := &models.Group{Name: "Weekend Getaway"}
	if err := store.CreateGroup(ctx, custom); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	if err := New(store).EnsureDefaultGroups(ctx, DefaultGroups); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	got, err := store.GetGroupByName(ctx, "Weekend Getaway")
	if err != nil {
		t.Fatalf("GetGroupByName failed: %v", err)
	}
	if got == nil || got.ID != custom.ID {
		t.Errorf("Seeding must not touch groups outside the default set: got %+v", got)
	}
}

// flakyStore fails CreateGroup for one specific name, simulating the store
// becoming unavailable partway through the seed sequence.
type flakyStore struct {
	created []string
	failOn  string
}

func (f *flakyStore) GetGroupByName(_ context.Context, name string) (*models.Group, error) {
	for _, n := range f.created {
		if n == name {
			return &models.Group{ID: n, Name: n}, nil
		}
	}
	return nil, nil
}

func (f *flakyStore) CreateGroup(_ context.Context, group *models.Group) error {
	if group.Name == f.failOn {
		return errors.New("store unavailable")
	}
	f.created = append(f.created, group.Name)
	return nil
}

func TestEnsureDefaultGroupsStopsAtFirstFailure(t *testing.T) {
	store := &flakyStore{failOn: "Outing"}

	err := New(store).EnsureDefaultGroups(context.Background(), []string{"Trip", "Household", "Outing", "Savings"})
	if err == nil {
		t.Fatal("Expected error when the store fails")
	}

	// The prefix before the failure stays seeded; nothing after it runs.
	want := []string{"Trip", "Household"}
	if len(store.created) != len(want) {
		t.Fatalf("Expected %v seeded, got %v", want, store.created)
	}
	for i, name := range want {
		if store.created[i] != name {
			t.Errorf("Position %d: got %s, want %s", i, store.created[i], name)
		}
	}
}
