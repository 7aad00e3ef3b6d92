package handler_test

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/sakif/filmstudio/internal/model"
)

// brokenStore fails every call, to drive handlers down their 500 paths.
type brokenStore struct{}

var errBroken = errors.New("sqlite: database is locked at /var/lib/studio.db")

func (brokenStore) CreateContactMessage(context.Context, model.NewContactMessage) (*model.ContactMessage, error) {
	return nil, errBroken
}

func (brokenStore) GetAllProjects(context.Context) ([]model.Project, error) {
	return nil, errBroken
}

func (brokenStore) GetProject(context.Context, int) (*model.Project, error) {
	return nil, errBroken
}

func (brokenStore) CreateProject(context.Context, model.NewProject) (*model.Project, error) {
	return nil, errBroken
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// envelope mirrors handler.Response with a concrete data shape for decoding.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *struct {
		ID int `json:"id"`
	} `json:"data"`
}
