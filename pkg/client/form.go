// Package client implements the submitting side of the contact form as an
// explicit state machine: Idle → Submitting → (Succeeded | Failed) → Idle.
// A single state value makes illegal combinations, such as submitting and
// succeeded at once, unrepresentable.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FallbackError is surfaced when the request fails at transport level or the
// server's response carries no usable message.
const FallbackError = "Failed to send message. Please try again."

// DefaultSuccessDisplay is how long the success banner shows before the form
// returns to idle on its own.
const DefaultSuccessDisplay = 8 * time.Second

// ErrSubmitLocked is returned by Submit while a request is in flight or the
// success banner is showing. A failed form may be resubmitted immediately.
var ErrSubmitLocked = errors.New("client: submission in flight or success banner showing")

// Fields holds the three contact form inputs.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type Option func(*Form)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *Form) { f.http = hc }
}

// WithSuccessDisplay overrides the success banner duration.
func WithSuccessDisplay(d time.Duration) Option {
	return func(f *Form) { f.successDisplay = d }
}

// Form is the contact form state machine. All methods are safe for
// concurrent use.
type Form struct {
	endpoint       string
	http           *http.Client
	successDisplay time.Duration

	mu     sync.Mutex
	state  State
	fields Fields
	errMsg string
	timer  *time.Timer
}

// New creates an idle form posting to endpoint.
func New(endpoint string, opts ...Option) *Form {
	f := &Form{
		endpoint:       endpoint,
		http:           &http.Client{Timeout: 30 * time.Second},
		successDisplay: DefaultSuccessDisplay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Fields returns the current input values. Cleared after a successful
// submission; preserved across failures so the visitor can correct and retry.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) SetFields(fields Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

// ErrorMessage returns the banner text for the Failed state, or "".
func (f *Form) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Submit sends the current fields to the endpoint: exactly one network call,
// no retries. The form does not re-validate the fields before sending; the
// server is the validation authority and its message is surfaced verbatim.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == StateSubmitting || f.state == StateSucceeded {
		f.mu.Unlock()
		return ErrSubmitLocked
	}
	f.stopTimerLocked()
	f.state = StateSubmitting
	f.errMsg = ""
	fields := f.fields
	f.mu.Unlock()

	serverMsg, ok, err := f.post(ctx, fields)

	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case err != nil:
		f.state = StateFailed
		f.errMsg = FallbackError
	case ok:
		f.fields = Fields{}
		f.state = StateSucceeded
		f.timer = time.AfterFunc(f.successDisplay, f.autoDismiss)
	default:
		f.state = StateFailed
		if serverMsg != "" {
			f.errMsg = serverMsg
		} else {
			f.errMsg = FallbackError
		}
	}
	return nil
}

// Dismiss clears a success or failure banner back to idle. No effect in
// other states.
func (f *Form) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSucceeded || f.state == StateFailed {
		f.stopTimerLocked()
		f.state = StateIdle
		f.errMsg = ""
	}
}

func (f *Form) autoDismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSucceeded {
		f.state = StateIdle
	}
	f.timer = nil
}

func (f *Form) stopTimerLocked() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// post performs the HTTP exchange. ok reports a success status; serverMsg is
// the error string from a non-success body, "" when unparseable.
func (f *Form) post(ctx context.Context, fields Fields) (serverMsg string, ok bool, err error) {
	payload, err := json.Marshal(fields)
	if err != nil {
		return "", false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return "", true, nil
	}

	var body struct {
		Error string `json:"error"`
	}
	// A body that does not decode is fine; the caller falls back to the
	// generic message.
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return body.Error, false, nil
}
