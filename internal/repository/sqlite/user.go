package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sakif/filmstudio/internal/model"
)

// GetUser retrieves a user by id. Returns nil, nil if no row matches.
func (db *DB) GetUser(ctx context.Context, id int) (*model.User, error) {
	var u model.User
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlite: getting user %d: %w", id, err)
	}
	return &u, nil
}

// GetUserByUsername returns the lowest-id (earliest created) match.
// No UNIQUE constraint exists on username, so ORDER BY id is what makes the
// answer deterministic when duplicates exist.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE username = ? ORDER BY id LIMIT 1`,
		username,
	).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlite: getting user by username %q: %w", username, err)
	}
	return &u, nil
}

func (db *DB) CreateUser(ctx context.Context, in model.NewUser) (*model.User, error) {
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (username, password) VALUES (?, ?)`,
		in.Username, in.Password,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: inserting user %q: %w", in.Username, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading new user id: %w", err)
	}

	return &model.User{
		ID:       int(id),
		Username: in.Username,
		Password: in.Password,
	}, nil
}
