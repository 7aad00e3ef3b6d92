// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — plain values with no behaviour
// of their own. The repository layer assigns identifiers, the service layer
// fills in timestamps, and handlers turn them into JSON.
package model

// User represents a site account.
//
// Users are stored but not exposed over HTTP. Username uniqueness is NOT
// enforced: two users may share a username, and lookups by username return
// the first one created.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewUser is the input to a user create operation. It is a User without an ID,
// so callers can't smuggle in their own identifier.
type NewUser struct {
	Username string
	Password string
}
