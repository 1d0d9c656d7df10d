package domain

import "context"

// ContactRequest represents a contact form submission. Validation is done in
// the usecase rather than with binding tags so that every failure maps to the
// exact caller-facing message and status code.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates, sanitizes and relays a contact form
	// submission, returning the provider's delivery id on success.
	SendContactMessage(ctx context.Context, req *ContactRequest) (string, error)
}
