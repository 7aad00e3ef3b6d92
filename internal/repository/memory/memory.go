// Package memory implements the repository interfaces with plain Go maps.
//
// Everything lives in process memory and disappears on restart. That is the
// intended lifecycle: a fresh process starts with no users, no contact messages
// and the three seed projects.
//
// WHY A MUTEX?
// net/http serves every request on its own goroutine, so two contact form
// submissions can hit CreateContactMessage at the same moment. Without a lock
// both could read the same counter value and hand out the same id. One
// RWMutex guards all three collections; contention on a marketing site is low
// enough that per-collection locks would buy nothing.
package memory

import (
	"context"
	"sync"

	"github.com/sakif/filmstudio/internal/model"
	"github.com/sakif/filmstudio/internal/repository"
)

var _ repository.Store = (*Store)(nil)

// Store holds the three collections and their id counters.
// Each counter is the id the NEXT create will receive.
type Store struct {
	mu sync.RWMutex

	users         map[int]model.User
	projects      map[int]model.Project
	contacts      map[int]model.ContactMessage
	nextUserID    int
	nextProjectID int
	nextContactID int
}

// New creates an empty store and seeds the showcase projects.
// The seeds are in place before New returns, so no caller can ever observe
// (or race with) a partially seeded collection.
func New() *Store {
	s := newEmpty()
	if err := repository.Seed(context.Background(), s); err != nil {
		// CreateProject on this store has no failure path.
		panic(err)
	}
	return s
}

func newEmpty() *Store {
	return &Store{
		users:         make(map[int]model.User),
		projects:      make(map[int]model.Project),
		contacts:      make(map[int]model.ContactMessage),
		nextUserID:    1,
		nextProjectID: 1,
		nextContactID: 1,
	}
}

// Close is a no-op; it exists so Store satisfies repository.Store.
func (s *Store) Close() error { return nil }

func (s *Store) GetUser(_ context.Context, id int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetUserByUsername scans users in id order, which is creation order because
// ids are never reused.
func (s *Store) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id := 1; id < s.nextUserID; id++ {
		if u, ok := s.users[id]; ok && u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateUser(_ context.Context, in model.NewUser) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := model.User{
		ID:       s.nextUserID,
		Username: in.Username,
		Password: in.Password,
	}
	s.users[u.ID] = u
	s.nextUserID++
	return &u, nil
}

func (s *Store) GetAllProjects(_ context.Context) ([]model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]model.Project, 0, len(s.projects))
	for id := 1; id < s.nextProjectID; id++ {
		if p, ok := s.projects[id]; ok {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (s *Store) GetProject(_ context.Context, id int) (*model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *Store) CreateProject(_ context.Context, in model.NewProject) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Project{
		ID:           s.nextProjectID,
		Title:        in.Title,
		Type:         in.Type,
		Description:  in.Description,
		ThumbnailURL: in.ThumbnailURL,
		VideoURL:     in.VideoURL,
	}
	s.projects[p.ID] = p
	s.nextProjectID++
	return &p, nil
}

func (s *Store) CreateContactMessage(_ context.Context, in model.NewContactMessage) (*model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := model.ContactMessage{
		ID:        s.nextContactID,
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: in.CreatedAt,
	}
	s.contacts[m.ID] = m
	s.nextContactID++
	return &m, nil
}
