// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → validates, enforces rules, orchestrates
//	Repository (Data layer)  → reads/writes the collections
//
// Services accept plain Go values and return domain errors from apperror.
// They never see an *http.Request and never pick a status code.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/sakif/filmstudio/internal/apperror"
	"github.com/sakif/filmstudio/internal/model"
	"github.com/sakif/filmstudio/internal/repository"
)

// Client-facing validation messages. The front-end shows them verbatim.
const (
	MsgFieldsRequired = "All fields are required"
	MsgInvalidEmail   = "Invalid email format"
)

// emailPattern is a syntactic check only: something, "@", something, ".",
// something, with no whitespace or extra "@" anywhere. No DNS lookups.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactInput is a contact form submission as received from the client.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Validate runs the presence check, then the email format check.
//
// Presence means non-empty. Values are NOT trimmed: a subject of "   " counts
// as present, exactly like the front-end's own required-field check.
func (in ContactInput) Validate() error {
	switch "" {
	case in.Name:
		return apperror.ValidationFailed("name", MsgFieldsRequired)
	case in.Email:
		return apperror.ValidationFailed("email", MsgFieldsRequired)
	case in.Subject:
		return apperror.ValidationFailed("subject", MsgFieldsRequired)
	case in.Message:
		return apperror.ValidationFailed("message", MsgFieldsRequired)
	}

	if !emailPattern.MatchString(in.Email) {
		return apperror.ValidationFailed("email", MsgInvalidEmail)
	}
	return nil
}

// ContactService accepts contact form submissions.
type ContactService struct {
	repo   repository.ContactRepository
	logger *slog.Logger
	now    func() time.Time // swapped in tests for a fixed clock
}

func NewContactService(repo repository.ContactRepository, logger *slog.Logger) *ContactService {
	return &ContactService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Submit validates the input and stores it as a new contact message.
//
// Validation failures return before the repository is touched, so a rejected
// submission never consumes a contact message id. CreatedAt always comes from
// the server clock.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*model.ContactMessage, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	msg, err := s.repo.CreateContactMessage(ctx, model.NewContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: s.now(),
	})
	if err != nil {
		s.logger.Error("failed to store contact message",
			slog.String("email", in.Email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating contact message: %w", err)
	}

	s.logger.Info("contact message received",
		slog.Int("id", msg.ID),
		slog.String("subject", msg.Subject),
	)

	return msg, nil
}
