package models

// User represents a single record in the user directory.
// It is the only entity the service manages.
type User struct {
	// ID is the unique identifier of the user. It is assigned by the
	// store on creation (max existing ID + 1) and is immutable afterwards.
	ID int64 `json:"id"`

	// Name is the display name of the user. Required to be non-empty
	// on create and update.
	Name string `json:"name"`

	// Email is the user's e-mail address. It must contain an "@" and be
	// unique among all users under case-insensitive comparison.
	Email string `json:"email"`
}
