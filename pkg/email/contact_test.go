package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		APIKey:    "re_test_key",
		FromName:  "Portfolio Contact",
		FromEmail: "onboarding@resend.dev",
		Recipient: "owner@example.com",
	}
}

func TestConfigConfigured(t *testing.T) {
	assert.True(t, testConfig().Configured())
	assert.False(t, Config{Recipient: "owner@example.com"}.Configured())
}

func TestConfigFrom(t *testing.T) {
	assert.Equal(t, "Portfolio Contact <onboarding@resend.dev>", testConfig().From())
	assert.Equal(t, "onboarding@resend.dev", Config{FromEmail: "onboarding@resend.dev"}.From())
}

func TestNewContactMessage(t *testing.T) {
	t.Run("Should build envelope from config and submitter", func(t *testing.T) {
		msg, err := NewContactMessage(testConfig(), ContactData{
			SenderName:  "Ada",
			SenderEmail: "ada@example.com",
			Message:     "Hello",
		})
		require.NoError(t, err)

		assert.Equal(t, "Portfolio Contact <onboarding@resend.dev>", msg.From)
		assert.Equal(t, []string{"owner@example.com"}, msg.To)
		assert.Equal(t, "ada@example.com", msg.ReplyTo)
		assert.Equal(t, "Portfolio Contact: Ada", msg.Subject)
		assert.Contains(t, msg.HTML, "Ada")
		assert.Contains(t, msg.HTML, `<a href="mailto:ada@example.com">ada@example.com</a>`)
		assert.Contains(t, msg.Text, "Name: Ada")
		assert.Contains(t, msg.Text, "Message:\nHello")
	})

	t.Run("Should escape markup in HTML body exactly once", func(t *testing.T) {
		msg, err := NewContactMessage(testConfig(), ContactData{
			SenderName:  `<b>"Ada"</b>`,
			SenderEmail: "ada@example.com",
			Message:     "<script>alert('x')</script>",
		})
		require.NoError(t, err)

		assert.Contains(t, msg.HTML, "&lt;b&gt;&quot;Ada&quot;&lt;/b&gt;")
		assert.Contains(t, msg.HTML, "&lt;script&gt;alert(&#039;x&#039;)&lt;/script&gt;")
		assert.NotContains(t, msg.HTML, "&amp;lt;")
		assert.Equal(t, `Portfolio Contact: &lt;b&gt;&quot;Ada&quot;&lt;/b&gt;`, msg.Subject)

		// Plain-text body keeps the raw values.
		assert.Contains(t, msg.Text, `Name: <b>"Ada"</b>`)
		assert.Contains(t, msg.Text, "<script>alert('x')</script>")
	})

	t.Run("Should convert message newlines to line breaks in HTML only", func(t *testing.T) {
		msg, err := NewContactMessage(testConfig(), ContactData{
			SenderName:  "Ada",
			SenderEmail: "ada@example.com",
			Message:     "line one\nline two",
		})
		require.NoError(t, err)

		assert.Contains(t, msg.HTML, "line one<br>line two")
		assert.Contains(t, msg.Text, "line one\nline two")
	})
}
