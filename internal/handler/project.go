package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/filmstudio/internal/apperror"
	"github.com/sakif/filmstudio/internal/service"
)

const (
	MsgProjectsFailed = "Failed to fetch projects. Please try again later."
	MsgProjectFailed  = "Failed to fetch project. Please try again later."
)

// ProjectHandler serves the showcase.
type ProjectHandler struct {
	projects *service.ProjectService
	logger   *slog.Logger
}

func NewProjectHandler(projects *service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, logger: logger}
}

// HandleList returns every project as a bare JSON array.
//
// HTTP: GET /api/projects
//
//	[
//	  {"id":1,"title":"Gold Standard","type":"Luxury Advertisement",...},
//	  ...
//	]
func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		h.logger.Error("error fetching projects", slog.String("error", err.Error()))
		writeError(w, err, MsgProjectsFailed)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// HandleGet returns one project, for deep links into the video modal.
//
// HTTP: GET /api/projects/{id}
func (h *ProjectHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, apperror.ValidationFailed("id", "Invalid project id"), MsgProjectFailed)
		return
	}

	project, err := h.projects.Get(r.Context(), id)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) {
			h.logger.Error("error fetching project", slog.Int("id", id), slog.String("error", err.Error()))
		}
		writeError(w, err, MsgProjectFailed)
		return
	}

	writeJSON(w, http.StatusOK, project)
}
