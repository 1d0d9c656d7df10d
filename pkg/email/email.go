// Package email models transactional email delivery for the contact form.
// The handler depends only on the Sender interface; tests inject a stub that
// records calls without hitting the network.
package email

import "context"

// Config holds the delivery configuration resolved at startup. The zero
// value represents the unconfigured state; Configured makes the distinction
// explicit instead of scattering credential nil-checks.
type Config struct {
	APIKey    string // Resend API key; empty means delivery is disabled
	FromName  string // sender display name, e.g. "Portfolio Contact"
	FromEmail string // sender address, must be verified with the provider
	Recipient string // where contact submissions are delivered
}

// Configured reports whether the provider credential is present.
func (c Config) Configured() bool {
	return c.APIKey != ""
}

// From formats the sender identity in RFC 5322 address form.
func (c Config) From() string {
	if c.FromName == "" {
		return c.FromEmail
	}
	return c.FromName + " <" + c.FromEmail + ">"
}

// Message is a fully-prepared email ready for sending.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a prepared message and returns the provider's delivery id.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}
