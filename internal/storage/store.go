// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/models"
)

var (
	// ErrGroupNotFound is returned when a referenced group does not exist.
	ErrGroupNotFound = errors.New("group not found")

	// ErrExpenseNotFound is returned when an expense lookup misses.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrDuplicateEmail is returned when creating a user with an email
	// that is already registered.
	ErrDuplicateEmail = errors.New("email already exists")
)

// ExpenseFilter narrows an expense listing. The zero value matches everything.
type ExpenseFilter struct {
	// GroupID, when non-empty, restricts the listing to a single group.
	GroupID string
}

// Store defines the interface for expense tracker storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateGroup persists a new group. ID and CreatedAt are generated
	// when unset. Inserting a name that already exists is a benign no-op:
	// the group resolves to the existing document and no duplicate is
	// created. Uniqueness is enforced by the store, not by callers.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by ID.
	// Returns ErrGroupNotFound if no such group exists.
	GetGroup(ctx context.Context, id string) (*models.Group, error)

	// GetGroupByName retrieves a group by exact name.
	// Returns (nil, nil) when absent; used by the seeder.
	GetGroupByName(ctx context.Context, name string) (*models.Group, error)

	// ListGroups returns all groups sorted ascending by name.
	ListGroups(ctx context.Context) ([]models.Group, error)

	// CreateExpense persists a new expense. ID and CreatedAt are generated
	// when unset. The expense row and its participant rows are written in
	// a single transaction; there is no separate group-link write, the
	// owning group's expense list is derived on read via ExpenseFilter.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves a single expense by ID with its group and user
	// references populated. Returns ErrExpenseNotFound if absent.
	GetExpense(ctx context.Context, id string) (*models.Expense, error)

	// ListExpenses returns expenses matching the filter, sorted descending
	// by creation time, with group and user references populated.
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error)

	// CreateUser persists a new user. ID and CreatedAt are generated when
	// unset. Returns ErrDuplicateEmail if the email is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves a user by ID. Returns (nil, nil) when absent.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUsersByIDs retrieves multiple users, keyed by ID.
	// Users that don't exist are omitted from the result.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// ListUsers returns all users sorted ascending by name.
	ListUsers(ctx context.Context) ([]models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
