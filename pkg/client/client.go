package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// Transport-level failures, reported distinctly from server rejections.
var (
	ErrTimedOut       = errors.New("request timed out")
	ErrNetwork        = errors.New("network error")
	ErrSubmitInFlight = errors.New("a submission is already in flight")
)

// FieldIssue is one field-level problem reported by the server.
type FieldIssue struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ServerError is a non-2xx response from the portal backend.
type ServerError struct {
	StatusCode int
	Message    string
	Issues     []FieldIssue
}

func (e *ServerError) Error() string {
	if len(e.Issues) == 0 {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.Field + ": " + issue.Message
	}
	return fmt.Sprintf("server returned %d: %s (%s)", e.StatusCode, e.Message, strings.Join(parts, "; "))
}

// Client talks to the portal backend. The base URL comes from
// configuration; the bearer token is attached to every request.
type Client struct {
	http *resty.Client
}

// New creates a Client. A non-positive timeout falls back to 10s so a
// submission can never hang indefinitely.
func New(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetAuthToken(token).
			SetTimeout(timeout),
	}
}

// post performs the single network call for one submission attempt.
func (c *Client) post(ctx context.Context, p Payload) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := p.build(w); err != nil {
		return fmt.Errorf("failed to build payload: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to build payload: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", w.FormDataContentType()).
		SetBody(body.Bytes()).
		Post(p.endpoint())
	if err != nil {
		return classifyTransport(err)
	}

	if resp.IsError() {
		serverErr := &ServerError{StatusCode: resp.StatusCode(), Message: "submission rejected"}
		var envelope struct {
			Message string       `json:"message"`
			Errors  []FieldIssue `json:"errors"`
		}
		if jsonErr := json.Unmarshal(resp.Body(), &envelope); jsonErr == nil && envelope.Message != "" {
			serverErr.Message = envelope.Message
			serverErr.Issues = envelope.Errors
		}
		return serverErr
	}
	return nil
}

func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimedOut, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimedOut, err)
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

// State is the submission flow's position.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSubmitting:
		return "Submitting"
	case StateSuccess:
		return "Success"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Submission drives one filled form through
// Idle -> Submitting -> Success|Failed. Exactly one network call per
// Submit; no retry; all validation is server-authoritative. A second
// Submit while one is in flight is rejected outright rather than
// relying on the caller not to double-fire.
type Submission struct {
	mu      sync.Mutex
	state   State
	client  *Client
	payload Payload
	lastErr error
}

// NewSubmission binds a payload to a client, starting at Idle.
func NewSubmission(client *Client, payload Payload) *Submission {
	return &Submission{client: client, payload: payload}
}

// Submit sends the current payload. On success the payload resets to
// its initial defaults and selected files are cleared; on failure all
// entered data is preserved so the user can correct and resubmit.
func (s *Submission) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateSubmitting {
		s.mu.Unlock()
		return ErrSubmitInFlight
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	err := s.client.post(ctx, s.payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		s.lastErr = err
		return err
	}
	s.state = StateSuccess
	s.lastErr = nil
	s.payload.reset()
	return nil
}

// State reports the current flow state.
func (s *Submission) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err reports the failure of the last attempt, if any.
func (s *Submission) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
