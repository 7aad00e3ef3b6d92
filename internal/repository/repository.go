// Package repository declares the storage contracts of the site.
//
// Three independent collections live behind these interfaces: users, projects
// and contact messages. Each collection hands out its own integer ids, starting
// at 1 and growing by exactly 1 per successful create. A project with id 1 and
// a user with id 1 are unrelated records.
//
// NOT FOUND IS NOT AN ERROR:
// Lookups return (nil, nil) when nothing matches. The error return is reserved
// for real storage failures (a broken sqlite connection, a cancelled context).
//
// Two implementations exist:
//   - memory: maps guarded by a mutex (the default)
//   - sqlite: modernc.org/sqlite, usually on a volatile ":memory:" database
package repository

import (
	"context"

	"github.com/sakif/filmstudio/internal/model"
)

type UserRepository interface {
	GetUser(ctx context.Context, id int) (*model.User, error)
	// GetUserByUsername returns the earliest-created user with the given username.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user model.NewUser) (*model.User, error)
}

type ProjectRepository interface {
	// GetAllProjects returns every project in creation order. The slice is
	// never nil, so it always encodes as a JSON array.
	GetAllProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id int) (*model.Project, error)
	CreateProject(ctx context.Context, project model.NewProject) (*model.Project, error)
}

type ContactRepository interface {
	CreateContactMessage(ctx context.Context, msg model.NewContactMessage) (*model.ContactMessage, error)
}

// Store is the full storage service: all three collections plus lifecycle.
type Store interface {
	UserRepository
	ProjectRepository
	ContactRepository
	Close() error
}
