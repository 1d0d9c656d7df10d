package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-portfolio-backend/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedServer(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func testFields() client.Fields {
	return client.Fields{Name: "Ada", Email: "ada@example.com", Message: "Hello"}
}

func TestFormSuccess(t *testing.T) {
	srv := fixedServer(http.StatusOK, `{"message":"Message sent successfully!"}`)
	defer srv.Close()

	form := client.New(srv.URL, client.WithSuccessDisplay(40*time.Millisecond))
	form.SetFields(testFields())

	require.NoError(t, form.Submit(context.Background()))

	// Fields cleared, success banner showing.
	assert.Equal(t, client.StateSucceeded, form.State())
	assert.Equal(t, client.Fields{}, form.Fields())
	assert.Empty(t, form.ErrorMessage())

	// Banner hides on its own after the display window.
	require.Eventually(t, func() bool {
		return form.State() == client.StateIdle
	}, time.Second, 5*time.Millisecond)
}

func TestFormServerError(t *testing.T) {
	srv := fixedServer(http.StatusBadRequest, `{"error":"All fields are required"}`)
	defer srv.Close()

	form := client.New(srv.URL)
	form.SetFields(client.Fields{Email: "ada@example.com", Message: "Hello"})

	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, client.StateFailed, form.State())
	assert.Equal(t, "All fields are required", form.ErrorMessage())
	// Inputs are preserved so the visitor can correct and retry.
	assert.Equal(t, "Hello", form.Fields().Message)

	form.Dismiss()
	assert.Equal(t, client.StateIdle, form.State())
	assert.Empty(t, form.ErrorMessage())
}

func TestFormUnparseableErrorBody(t *testing.T) {
	srv := fixedServer(http.StatusInternalServerError, `<html>bad gateway</html>`)
	defer srv.Close()

	form := client.New(srv.URL)
	form.SetFields(testFields())

	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, client.StateFailed, form.State())
	assert.Equal(t, client.FallbackError, form.ErrorMessage())
}

func TestFormNetworkFailure(t *testing.T) {
	srv := fixedServer(http.StatusOK, `{}`)
	srv.Close() // connection refused from here on

	form := client.New(srv.URL)
	form.SetFields(testFields())

	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, client.StateFailed, form.State())
	assert.Equal(t, client.FallbackError, form.ErrorMessage())
}

func TestFormSubmitLock(t *testing.T) {
	t.Run("Should refuse a second submit while in flight", func(t *testing.T) {
		release := make(chan struct{})
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			<-release
			w.Write([]byte(`{"message":"Message sent successfully!"}`))
		}))
		defer srv.Close()
		defer close(release)

		form := client.New(srv.URL, client.WithSuccessDisplay(time.Hour))
		form.SetFields(testFields())

		done := make(chan error, 1)
		go func() { done <- form.Submit(context.Background()) }()

		require.Eventually(t, func() bool {
			return form.State() == client.StateSubmitting
		}, time.Second, time.Millisecond)

		assert.ErrorIs(t, form.Submit(context.Background()), client.ErrSubmitLocked)
	})

	t.Run("Should refuse submit while success banner is showing", func(t *testing.T) {
		srv := fixedServer(http.StatusOK, `{"message":"Message sent successfully!"}`)
		defer srv.Close()

		form := client.New(srv.URL, client.WithSuccessDisplay(time.Hour))
		form.SetFields(testFields())
		require.NoError(t, form.Submit(context.Background()))
		require.Equal(t, client.StateSucceeded, form.State())

		assert.ErrorIs(t, form.Submit(context.Background()), client.ErrSubmitLocked)
	})

	t.Run("Should allow immediate resubmission after failure", func(t *testing.T) {
		srv := fixedServer(http.StatusBadRequest, `{"error":"Invalid email address"}`)
		defer srv.Close()

		form := client.New(srv.URL)
		form.SetFields(testFields())
		require.NoError(t, form.Submit(context.Background()))
		require.Equal(t, client.StateFailed, form.State())

		// No Dismiss needed between attempts.
		assert.NoError(t, form.Submit(context.Background()))
	})
}
