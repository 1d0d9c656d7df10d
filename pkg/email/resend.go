package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
)

// resendSender implements Sender using the Resend API.
type resendSender struct {
	client *resend.Client
}

// NewResendSender returns a Sender that delivers email via Resend.
func NewResendSender(apiKey string) Sender {
	return &resendSender{
		client: resend.NewClient(apiKey),
	}
}

// Send implements Sender.
func (s *resendSender) Send(ctx context.Context, msg *Message) (string, error) {
	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("resend: failed to send email: %w", err)
	}

	return sent.Id, nil
}
