package model

import "time"

// ContactMessage is a message submitted through the site's contact form.
// It is written once and never modified.
type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewContactMessage is the input to a contact message create operation.
// CreatedAt is set by the server at submission time, never by the client.
type NewContactMessage struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
