// Package storetest holds the behaviour every repository.Store must share.
//
// Each backend's _test.go calls Run with a constructor for a fresh store, so
// the memory and sqlite implementations are held to exactly the same contract.
package storetest

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/filmstudio/internal/model"
	"github.com/sakif/filmstudio/internal/repository"
)

// Factory returns a freshly constructed (and therefore freshly seeded) store.
type Factory func(t *testing.T) repository.Store

// Run executes the shared contract against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("seeds three projects in order", func(t *testing.T) {
		testSeeds(t, newStore(t))
	})
	t.Run("project lookup", func(t *testing.T) {
		testGetProject(t, newStore(t))
	})
	t.Run("project ids continue after seeds", func(t *testing.T) {
		testCreateProject(t, newStore(t))
	})
	t.Run("users", func(t *testing.T) {
		testUsers(t, newStore(t))
	})
	t.Run("duplicate usernames", func(t *testing.T) {
		testDuplicateUsernames(t, newStore(t))
	})
	t.Run("contact messages", func(t *testing.T) {
		testContactMessages(t, newStore(t))
	})
	t.Run("collections are independent", func(t *testing.T) {
		testIndependentCounters(t, newStore(t))
	})
	t.Run("concurrent creates never share an id", func(t *testing.T) {
		testConcurrentCreates(t, newStore(t))
	})
	t.Run("returned records are copies", func(t *testing.T) {
		testReturnedCopies(t, newStore(t))
	})
}

func testSeeds(t *testing.T, s repository.Store) {
	projects, err := s.GetAllProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 3)

	wantTitles := []string{"Gold Standard", "Shadows & Light", "Retro Revival"}
	for i, p := range projects {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, wantTitles[i], p.Title)
		assert.Equal(t, repository.SeedProjects[i].VideoURL, p.VideoURL)
	}
}

func testGetProject(t *testing.T, s repository.Store) {
	ctx := context.Background()

	p, err := s.GetProject(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Shadows & Light", p.Title)
	assert.Equal(t, "Short Film", p.Type)

	for _, id := range []int{0, -1, 4, 1000} {
		p, err := s.GetProject(ctx, id)
		assert.NoError(t, err, "GetProject(%d)", id)
		assert.Nil(t, p, "GetProject(%d) should be absent", id)
	}
}

func testCreateProject(t *testing.T, s repository.Store) {
	ctx := context.Background()

	first, err := s.CreateProject(ctx, model.NewProject{Title: "Night Shift", Type: "Music Video"})
	require.NoError(t, err)
	second, err := s.CreateProject(ctx, model.NewProject{Title: "Tidewater", Type: "Documentary"})
	require.NoError(t, err)

	assert.Equal(t, 4, first.ID)
	assert.Equal(t, 5, second.ID)

	projects, err := s.GetAllProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 5)
	assert.Equal(t, "Night Shift", projects[3].Title)
	assert.Equal(t, "Tidewater", projects[4].Title)
}

func testUsers(t *testing.T, s repository.Store) {
	ctx := context.Background()

	u, err := s.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, u, "fresh store has no users")

	jo, err := s.CreateUser(ctx, model.NewUser{Username: "jo", Password: "hunter2"})
	require.NoError(t, err)
	assert.Equal(t, 1, jo.ID)

	sam, err := s.CreateUser(ctx, model.NewUser{Username: "sam", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, 2, sam.ID)

	got, err := s.GetUser(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "sam", got.Username)
	assert.Equal(t, "pw", got.Password)

	byName, err := s.GetUserByUsername(ctx, "jo")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, 1, byName.ID)

	missing, err := s.GetUserByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testDuplicateUsernames(t *testing.T, s repository.Store) {
	ctx := context.Background()

	first, err := s.CreateUser(ctx, model.NewUser{Username: "dup", Password: "a"})
	require.NoError(t, err)
	second, err := s.CreateUser(ctx, model.NewUser{Username: "dup", Password: "b"})
	require.NoError(t, err, "duplicate usernames are allowed")
	assert.NotEqual(t, first.ID, second.ID)

	got, err := s.GetUserByUsername(ctx, "dup")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID, "lookup returns the earliest user")
	assert.Equal(t, "a", got.Password)
}

func testContactMessages(t *testing.T, s repository.Store) {
	ctx := context.Background()
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	for want := 1; want <= 3; want++ {
		m, err := s.CreateContactMessage(ctx, model.NewContactMessage{
			Name:      "Jo",
			Email:     "jo@x.com",
			Subject:   "Hi",
			Message:   "Hello there!!",
			CreatedAt: now,
		})
		require.NoError(t, err)
		assert.Equal(t, want, m.ID, "contact ids start at 1 regardless of seeded projects")
		assert.Equal(t, "jo@x.com", m.Email)
		assert.True(t, now.Equal(m.CreatedAt))
	}
}

func testIndependentCounters(t *testing.T, s repository.Store) {
	ctx := context.Background()

	p, err := s.CreateProject(ctx, model.NewProject{Title: "Fourth"})
	require.NoError(t, err)
	u, err := s.CreateUser(ctx, model.NewUser{Username: "first"})
	require.NoError(t, err)
	m, err := s.CreateContactMessage(ctx, model.NewContactMessage{Name: "x", CreatedAt: time.Now()})
	require.NoError(t, err)
	p2, err := s.CreateProject(ctx, model.NewProject{Title: "Fifth"})
	require.NoError(t, err)

	assert.Equal(t, 4, p.ID)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, 1, m.ID)
	assert.Equal(t, 5, p2.ID, "creating users and messages must not advance the project counter")

	gotP, err := s.GetProject(ctx, 1)
	require.NoError(t, err)
	gotU, err := s.GetUser(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, gotP)
	require.NotNil(t, gotU)
	assert.Equal(t, "Gold Standard", gotP.Title)
	assert.Equal(t, "first", gotU.Username)
}

func testConcurrentCreates(t *testing.T, s repository.Store) {
	const n = 50
	ctx := context.Background()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids []int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := s.CreateContactMessage(ctx, model.NewContactMessage{Name: "n", CreatedAt: time.Now()})
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			ids = append(ids, m.ID)
			mu.Unlock()
		}()
	}
	wg.Wait()

	sort.Ints(ids)
	require.Len(t, ids, n)
	for i, id := range ids {
		assert.Equal(t, i+1, id)
	}
}

func testReturnedCopies(t *testing.T, s repository.Store) {
	ctx := context.Background()

	projects, err := s.GetAllProjects(ctx)
	require.NoError(t, err)
	projects[0].Title = "mutated"

	p, err := s.GetProject(ctx, 1)
	require.NoError(t, err)
	p.Title = "mutated again"

	again, err := s.GetProject(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Gold Standard", again.Title)
}
