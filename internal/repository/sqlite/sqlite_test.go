package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/filmstudio/internal/model"
	"github.com/sakif/filmstudio/internal/repository"
	"github.com/sakif/filmstudio/internal/repository/storetest"
)

// newTestDB returns a fresh in-memory database. Each call gets its own
// database because each *sql.DB opens its own ":memory:" connection.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestStoreContract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) repository.Store {
		return newTestDB(t)
	})
}

func TestNew_ReopenFileDoesNotReseed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studio.db")

	db, err := New(path)
	require.NoError(t, err)
	_, err = db.CreateProject(context.Background(), model.NewProject{Title: "Kept"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	projects, err := reopened.GetAllProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 4, "seeds must not be inserted twice")
	assert.Equal(t, "Kept", projects[3].Title)

	next, err := reopened.CreateProject(context.Background(), model.NewProject{Title: "After reopen"})
	require.NoError(t, err)
	assert.Equal(t, 5, next.ID)
}

func TestCreateContactMessage_PersistsRow(t *testing.T) {
	db := newTestDB(t)
	createdAt := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	m, err := db.CreateContactMessage(context.Background(), model.NewContactMessage{
		Name:      "Jo",
		Email:     "jo@x.com",
		Subject:   "Hi",
		Message:   "Hello there!!",
		CreatedAt: createdAt,
	})
	require.NoError(t, err)

	var (
		name, email, subject, message string
		stored                        time.Time
	)
	err = db.conn.QueryRow(
		`SELECT name, email, subject, message, created_at FROM contact_messages WHERE id = ?`, m.ID,
	).Scan(&name, &email, &subject, &message, &stored)
	require.NoError(t, err)

	assert.Equal(t, "Jo", name)
	assert.Equal(t, "jo@x.com", email)
	assert.Equal(t, "Hi", subject)
	assert.Equal(t, "Hello there!!", message)
	assert.True(t, createdAt.Equal(stored), "created_at = %v, want %v", stored, createdAt)
}

func TestQueriesFailAfterClose(t *testing.T) {
	db, err := New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = db.GetAllProjects(context.Background())
	assert.Error(t, err)

	_, err = db.CreateContactMessage(context.Background(), model.NewContactMessage{CreatedAt: time.Now()})
	assert.Error(t, err)
}

func TestCancelledContext(t *testing.T) {
	db := newTestDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := db.GetAllProjects(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
