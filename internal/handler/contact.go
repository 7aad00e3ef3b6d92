package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/sakif/filmstudio/internal/apperror"
	"github.com/sakif/filmstudio/internal/service"
)

const (
	MsgContactReceived = "Message received successfully. We will get back to you soon."
	MsgContactFailed   = "An unexpected error occurred. Please try again later."
	MsgInvalidBody     = "Invalid request body"

	// maxContactBody caps the request body. A contact form never needs more.
	maxContactBody = 64 << 10
)

// ContactRequest is the wire shape of a contact form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactCreated is the data payload of a successful submission.
type ContactCreated struct {
	ID int `json:"id"`
}

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	contacts *service.ContactService
	logger   *slog.Logger
}

func NewContactHandler(contacts *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, logger: logger}
}

// HandleSubmit validates and stores a contact message.
//
// HTTP: POST /api/contact
// REQUEST BODY (JSON):  {"name":"Jo","email":"jo@x.com","subject":"Hi","message":"Hello"}
// REQUEST BODY (form):  name=Jo&email=jo%40x.com&subject=Hi&message=Hello
//
// RESPONSES:
//
//	200 {"success":true,"message":"Message received successfully. ...","data":{"id":1}}
//	400 {"success":false,"message":"All fields are required"}
//	400 {"success":false,"message":"Invalid email format"}
//	400 {"success":false,"message":"Invalid request body"}
//	500 {"success":false,"message":"An unexpected error occurred. Please try again later."}
func (h *ContactHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)

	req, err := decodeContactRequest(r)
	if err != nil {
		h.logger.Warn("invalid contact request body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, Response{Message: MsgInvalidBody})
		return
	}

	msg, err := h.contacts.Submit(r.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		if !errors.Is(err, apperror.ErrValidation) {
			h.logger.Error("contact form error", slog.String("error", err.Error()))
		}
		writeError(w, err, MsgContactFailed)
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Message: MsgContactReceived,
		Data:    ContactCreated{ID: msg.ID},
	})
}

// decodeContactRequest reads a JSON or urlencoded body.
//
// An empty JSON body decodes to an empty request rather than an error, so the
// client gets the ordinary "All fields are required" answer.
func decodeContactRequest(r *http.Request) (ContactRequest, error) {
	var req ContactRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return req, err
		}
		req.Name = r.PostForm.Get("name")
		req.Email = r.PostForm.Get("email")
		req.Subject = r.PostForm.Get("subject")
		req.Message = r.PostForm.Get("message")
		return req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}
