package models

// Group is a named bucket that expenses are filed under.
// Groups are created by the startup seeder and are never updated or deleted.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Trip", "Household").
	// Unique across all groups, case-sensitive.
	Name string

	// CreatedAt is the Unix timestamp in milliseconds when the group was created.
	CreatedAt int64
}

// GroupRef is the subset of group fields surfaced when an expense is
// populated for a response.
type GroupRef struct {
	ID   string
	Name string
}
