package models

import "github.com/shopspring/decimal"

// Expense records a single payment filed under a group.
// Expenses are write-once: created via the create operation, read via the
// list operations, never updated or deleted.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Name describes what was paid for (e.g., "Lunch").
	Name string

	// Amount is the amount paid. Stored as an exact decimal to avoid
	// binary floating point drift on money.
	Amount decimal.Decimal

	// GroupID references the owning group. Required; the group must exist
	// when the expense is created.
	GroupID string

	// PaidByID optionally references the user who paid.
	PaidByID string

	// ParticipantIDs references the users sharing the expense, in the
	// order they were submitted. May be empty.
	ParticipantIDs []string

	// CreatedAt is the Unix timestamp in milliseconds when the expense
	// was recorded. Listings sort on it, newest first.
	CreatedAt int64

	// Group, PaidBy and Participants are populated on reads from the
	// referenced documents. They are never stored; the stored state is
	// the ID fields above. Referenced users that do not exist are
	// omitted rather than failing the read.
	Group        *GroupRef
	PaidBy       *UserRef
	Participants []UserRef
}
