package usecase

import (
	"context"
	"log/slog"
	"net/http"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/email"

	"github.com/go-playground/validator/v10"
)

// Caller-facing contact messages. This is the endpoint's whole error
// vocabulary; raw provider or internal error text never crosses the boundary.
const (
	MsgSent              = "Message sent successfully!"
	MsgAllFieldsRequired = "All fields are required"
	MsgInvalidEmail      = "Invalid email address"
	MsgNotConfigured     = "Email service not configured. Please check server logs."
	MsgSendFailed        = "Failed to send email. Please try again later."
	// MsgUnexpected covers everything the steps above did not anticipate:
	// malformed request bodies, template faults, panics.
	MsgUnexpected = "Failed to send message. Please try again later."
)

type contactUsecase struct {
	cfg      email.Config
	sender   email.Sender
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase. The sender is only
// consulted when cfg is configured.
func NewContactUsecase(cfg email.Config, sender email.Sender, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		cfg:      cfg,
		sender:   sender,
		validate: validate,
	}
}

// SendContactMessage validates the contact request and relays it by email.
// Check order matters: presence before shape, so an empty email reports
// "All fields are required" rather than "Invalid email address".
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (string, error) {
	if req.Name == "" || req.Email == "" || req.Message == "" {
		return "", apperror.BadRequest(MsgAllFieldsRequired)
	}

	if err := uc.validate.Var(req.Email, "email_shape"); err != nil {
		return "", apperror.BadRequest(MsgInvalidEmail)
	}

	if !uc.cfg.Configured() {
		// Submission content is discarded; log it for the operator so the
		// message is not silently lost while the key is missing.
		slog.Warn("contact submission dropped: email service not configured",
			"name", req.Name, "email", req.Email)
		return "", apperror.New(http.StatusInternalServerError, MsgNotConfigured, nil)
	}

	msg, err := email.NewContactMessage(uc.cfg, email.ContactData{
		SenderName:  req.Name,
		SenderEmail: req.Email,
		Message:     req.Message,
	})
	if err != nil {
		// Unexpected; surfaces as the generic failure at the boundary.
		return "", err
	}

	id, err := uc.sender.Send(ctx, msg)
	if err != nil {
		slog.Error("contact email delivery failed", "error", err)
		return "", apperror.New(http.StatusInternalServerError, MsgSendFailed, err)
	}

	slog.Info("contact email sent", "delivery_id", id)
	return id, nil
}
