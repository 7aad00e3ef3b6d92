package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/filmstudio/internal/apperror"
	"github.com/sakif/filmstudio/internal/model"
	"github.com/sakif/filmstudio/internal/repository/memory"
)

// fakeContactRepo records what it was asked to store. Setting err simulates
// a storage failure.
type fakeContactRepo struct {
	calls []model.NewContactMessage
	err   error
}

func (f *fakeContactRepo) CreateContactMessage(_ context.Context, in model.NewContactMessage) (*model.ContactMessage, error) {
	f.calls = append(f.calls, in)
	if f.err != nil {
		return nil, f.err
	}
	return &model.ContactMessage{
		ID:        len(f.calls),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: in.CreatedAt,
	}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validInput() ContactInput {
	return ContactInput{Name: "Jo", Email: "jo@x.com", Subject: "Hi", Message: "Hello there!!"}
}

func TestContactInput_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(in *ContactInput)
		wantMsg   string
		wantField string
	}{
		{name: "valid", mutate: func(in *ContactInput) {}},
		{name: "missing name", mutate: func(in *ContactInput) { in.Name = "" }, wantMsg: MsgFieldsRequired, wantField: "name"},
		{name: "missing email", mutate: func(in *ContactInput) { in.Email = "" }, wantMsg: MsgFieldsRequired, wantField: "email"},
		{name: "missing subject", mutate: func(in *ContactInput) { in.Subject = "" }, wantMsg: MsgFieldsRequired, wantField: "subject"},
		{name: "missing message", mutate: func(in *ContactInput) { in.Message = "" }, wantMsg: MsgFieldsRequired, wantField: "message"},
		{name: "whitespace counts as present", mutate: func(in *ContactInput) { in.Subject = "   " }},
		{
			name:   "presence is checked before format",
			mutate: func(in *ContactInput) {
				in.Email = "not-an-email"
				in.Message = ""
			},
			wantMsg:   MsgFieldsRequired,
			wantField: "message",
		},
		{name: "no at sign", mutate: func(in *ContactInput) { in.Email = "not-an-email" }, wantMsg: MsgInvalidEmail, wantField: "email"},
		{name: "no dot after at", mutate: func(in *ContactInput) { in.Email = "jo@localhost" }, wantMsg: MsgInvalidEmail, wantField: "email"},
		{name: "dot only before at", mutate: func(in *ContactInput) { in.Email = "j.o@host" }, wantMsg: MsgInvalidEmail, wantField: "email"},
		{name: "two at signs", mutate: func(in *ContactInput) { in.Email = "jo@@x.com" }, wantMsg: MsgInvalidEmail, wantField: "email"},
		{name: "space inside", mutate: func(in *ContactInput) { in.Email = "jo @x.com" }, wantMsg: MsgInvalidEmail, wantField: "email"},
		{name: "trailing dot", mutate: func(in *ContactInput) { in.Email = "jo@x." }, wantMsg: MsgInvalidEmail, wantField: "email"},
		{name: "subdomain", mutate: func(in *ContactInput) { in.Email = "jo@mail.x.co.uk" }},
		{name: "plus tag", mutate: func(in *ContactInput) { in.Email = "jo+films@x.com" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := in.Validate()
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, apperror.ErrValidation)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantMsg, appErr.Message)
			assert.Equal(t, tt.wantField, appErr.Field)
		})
	}
}

func TestSubmit_StoresWithServerTimestamp(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, discardLogger())
	fixed := time.Date(2026, 10, 18, 15, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	msg, err := svc.Submit(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, 1, msg.ID)
	assert.Equal(t, fixed, msg.CreatedAt)
	require.Len(t, repo.calls, 1)
	assert.Equal(t, model.NewContactMessage{
		Name:      "Jo",
		Email:     "jo@x.com",
		Subject:   "Hi",
		Message:   "Hello there!!",
		CreatedAt: fixed,
	}, repo.calls[0])
}

func TestSubmit_ValidationNeverReachesRepository(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := NewContactService(repo, discardLogger())

	_, err := svc.Submit(context.Background(), ContactInput{Email: "jo@x.com"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	_, err = svc.Submit(context.Background(), ContactInput{Name: "Jo", Email: "nope", Subject: "s", Message: "m"})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	assert.Empty(t, repo.calls)
}

func TestSubmit_RepositoryErrorIsWrapped(t *testing.T) {
	storageErr := errors.New("disk on fire")
	svc := NewContactService(&fakeContactRepo{err: storageErr}, discardLogger())

	_, err := svc.Submit(context.Background(), validInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, apperror.ErrValidation)
}

func TestSubmit_RejectedSubmissionDoesNotAdvanceCounter(t *testing.T) {
	svc := NewContactService(memory.New(), discardLogger())
	ctx := context.Background()

	first, err := svc.Submit(ctx, validInput())
	require.NoError(t, err)

	bad := validInput()
	bad.Name = ""
	_, err = svc.Submit(ctx, bad)
	require.Error(t, err)

	second, err := svc.Submit(ctx, validInput())
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}
