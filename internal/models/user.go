package models

// User represents a person who can pay for or share an expense.
// There are no credentials: users are plain directory entries referenced
// by expenses, not accounts.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Name is the display name of the user.
	Name string

	// Email is the user's email address (unique).
	Email string

	// CreatedAt is the Unix timestamp in milliseconds when the user was created.
	CreatedAt int64
}

// UserRef is the subset of user fields exposed when a payer or participant
// is joined into an expense listing.
type UserRef struct {
	ID    string
	Name  string
	Email string
}
