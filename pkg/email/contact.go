package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"go-portfolio-backend/pkg/sanitize"
)

// ContactData holds the raw submitted fields for a contact form email.
type ContactData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

// contactEmailTemplate is the HTML body for contact form emails. The
// user-supplied fields are escaped by sanitize.HTML before execution and
// carried as template.HTML so they are not escaped a second time here.
const contactEmailTemplate = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <style>
      body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; border-radius: 8px 8px 0 0; text-align: center; }
      .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px; }
      .field { margin-bottom: 20px; }
      .field-label { font-weight: 600; color: #667eea; margin-bottom: 5px; display: block; }
      .field-value { color: #555; padding: 10px; background: white; border-radius: 4px; border-left: 3px solid #667eea; }
      .message-box { white-space: pre-wrap; word-wrap: break-word; }
    </style>
  </head>
  <body>
    <div class="header">
      <h1>New Portfolio Contact</h1>
    </div>
    <div class="content">
      <div class="field">
        <span class="field-label">Name:</span>
        <div class="field-value">{{.SenderName}}</div>
      </div>
      <div class="field">
        <span class="field-label">Email:</span>
        <div class="field-value">
          <a href="mailto:{{.MailTo}}">{{.SenderEmail}}</a>
        </div>
      </div>
      <div class="field">
        <span class="field-label">Message:</span>
        <div class="field-value message-box">{{.Message}}</div>
      </div>
    </div>
  </body>
</html>`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

type contactTemplateData struct {
	SenderName  template.HTML
	SenderEmail template.HTML
	MailTo      string
	Message     template.HTML
}

// NewContactMessage builds the delivery-ready message for one contact form
// submission. The HTML body carries sanitized field values with message
// newlines converted to line breaks; the plain-text body carries the raw
// values since it has no markup-injection risk. Reply-To is the submitter's
// address so the recipient can answer directly from the mail client.
func NewContactMessage(cfg Config, data ContactData) (*Message, error) {
	htmlMessage := strings.ReplaceAll(sanitize.HTML(data.Message), "\n", "<br>")

	var body bytes.Buffer
	err := contactTmpl.Execute(&body, contactTemplateData{
		SenderName:  template.HTML(sanitize.HTML(data.SenderName)),
		SenderEmail: template.HTML(sanitize.HTML(data.SenderEmail)),
		MailTo:      data.SenderEmail,
		Message:     template.HTML(htmlMessage),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	text := fmt.Sprintf(
		"New Portfolio Contact Form Submission\n\nName: %s\nEmail: %s\n\nMessage:\n%s",
		data.SenderName, data.SenderEmail, data.Message,
	)

	return &Message{
		From:    cfg.From(),
		To:      []string{cfg.Recipient},
		ReplyTo: data.SenderEmail,
		Subject: fmt.Sprintf("Portfolio Contact: %s", sanitize.HTML(data.SenderName)),
		HTML:    body.String(),
		Text:    text,
	}, nil
}
