// Package seed idempotently creates the baseline records the application
// expects to exist after startup.
package seed

import (
	"context"
	"log/slog"

	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/models"
)

// DefaultGroups are the group names guaranteed to exist after startup.
var DefaultGroups = []string{
	"Trip",
	"Household",
	"Outing",
	"Children Fee",
	"Savings",
	"EMI",
	"Loan",
}

// GroupStorage defines the slice of the store the seeder needs.
// This allows the seeder to be independent of the storage implementation.
type GroupStorage interface {
	GetGroupByName(ctx context.Context, name string) (*models.Group, error)
	CreateGroup(ctx context.Context, group *models.Group) error
}

// Seeder ensures a fixed set of default groups exists without duplicating
// or touching groups already present.
type Seeder struct {
	store GroupStorage
}

// New creates a Seeder backed by the given storage.
func New(store GroupStorage) *Seeder {
	return &Seeder{store: store}
}

// EnsureDefaultGroups makes sure a group exists for each name, in order.
// Running it twice creates nothing new. The first storage failure aborts the
// remaining names and is returned; names seeded before the failure stay
// seeded (there is no rollback). Duplicate-insert races are defused by the
// store's uniqueness constraint, not by the lookup here.
func (s *Seeder) EnsureDefaultGroups(ctx context.Context, names []string) error {
	for _, name := range names {
		existing, err := s.store.GetGroupByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		if err := s.store.CreateGroup(ctx, &models.Group{Name: name}); err != nil {
			return err
		}
		slog.Info("Group added", "name", name)
	}

	slog.Info("Groups seeding complete")
	return nil
}
