package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sakif/filmstudio/internal/model"
)

const projectColumns = `id, title, type, description, thumbnail_url, video_url`

// GetAllProjects returns every project ordered by id (= creation order).
//
// ROWS MUST BE CLOSED:
// An unclosed *sql.Rows holds on to its connection. With a single-connection
// pool that would deadlock the very next query, so the defer is not optional.
func (db *DB) GetAllProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Type, &p.Description, &p.ThumbnailURL, &p.VideoURL); err != nil {
			return nil, fmt.Errorf("sqlite: scanning project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating projects: %w", err)
	}

	return projects, nil
}

// GetProject retrieves a project by id. Returns nil, nil if no row matches.
func (db *DB) GetProject(ctx context.Context, id int) (*model.Project, error) {
	var p model.Project
	err := db.conn.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id,
	).Scan(&p.ID, &p.Title, &p.Type, &p.Description, &p.ThumbnailURL, &p.VideoURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlite: getting project %d: %w", id, err)
	}
	return &p, nil
}

func (db *DB) CreateProject(ctx context.Context, in model.NewProject) (*model.Project, error) {
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO projects (title, type, description, thumbnail_url, video_url)
		 VALUES (?, ?, ?, ?, ?)`,
		in.Title, in.Type, in.Description, in.ThumbnailURL, in.VideoURL,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: inserting project %q: %w", in.Title, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("sqlite: reading new project id: %w", err)
	}

	return &model.Project{
		ID:           int(id),
		Title:        in.Title,
		Type:         in.Type,
		Description:  in.Description,
		ThumbnailURL: in.ThumbnailURL,
		VideoURL:     in.VideoURL,
	}, nil
}
