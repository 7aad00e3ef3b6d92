package sqlite

import (
	"context"
	"fmt"

	"github.com/sakif/filmstudio/internal/model"
)

// CreateContactMessage inserts a contact form submission.
// created_at is stored in UTC; the returned record keeps the caller's value.
func (db *DB) CreateContactMessage(ctx context.Context, in model.NewContactMessage) (*model.ContactMessage, error) {
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, subject, message, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		in.Name, in.Email, in.Subject, in.Message, in.CreatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: inserting contact message from %s: %w", in.Email, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading new contact message id: %w", err)
	}

	return &model.ContactMessage{
		ID:        int(id),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: in.CreatedAt,
	}, nil
}
