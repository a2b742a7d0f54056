// Package formclient is a headless controller for the contact form. It
// owns the draft submission, runs debounced live validation against the
// same rule set the server enforces, and performs at most one
// submission at a time. UIs (web, TUI, tests) drive it through SetField
// and Submit and render from its state.
package formclient

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/domain"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/validation"
)

// State is the controller's lifecycle position for the current attempt.
type State int

const (
	// StateIdle is the initial state: no edits, no attempt in flight.
	StateIdle State = iota
	// StateEditing means the draft changed since the last validation pass.
	StateEditing
	// StateSubmitting means a request is in flight; controls are locked.
	StateSubmitting
	// StateSuccess means the last attempt succeeded and the draft was cleared.
	StateSuccess
	// StateError means the last attempt failed; the draft is retained.
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	// ErrInFlight rejects a Submit while another submission is pending.
	ErrInFlight = errors.New("formclient: submission already in flight")
	// ErrInvalid rejects a Submit that fails local validation. No
	// request is made; field errors are populated instead.
	ErrInvalid = errors.New("formclient: form is not valid")
	// ErrSubmitFailed reports a failed round trip (network error or a
	// failure response). The draft is retained.
	ErrSubmitFailed = errors.New("formclient: submission failed")
)

const defaultDebounce = 500 * time.Millisecond

// SubmitFunc performs the actual round trip to the submission endpoint.
type SubmitFunc func(ctx context.Context, req domain.ContactRequest) (*domain.ContactResponse, error)

// Controller is safe for concurrent use; the debounce timer fires on
// its own goroutine.
type Controller struct {
	mu       sync.Mutex
	rules    validation.RuleSet
	submit   SubmitFunc
	debounce time.Duration
	timer    *time.Timer

	state  State
	values map[string]string
	errors map[string]string
	result *domain.ContactResponse
}

type Option func(*Controller)

// WithDebounce overrides the 500 ms live-validation window.
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) { c.debounce = d }
}

// New builds a controller around the given rules and submit function.
// Rules and submitter are passed in explicitly so the controller is
// testable without a UI tree or a running server.
func New(rules validation.RuleSet, submit SubmitFunc, opts ...Option) *Controller {
	c := &Controller{
		rules:    rules,
		submit:   submit,
		debounce: defaultDebounce,
		state:    StateIdle,
		values:   emptyDraft(),
		errors:   map[string]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func emptyDraft() map[string]string {
	return map[string]string{"name": "", "email": "", "subject": "", "message": ""}
}

// SetField records an edit and schedules a debounced validation pass.
// Each edit cancels the previous pending pass. Edits are ignored while
// a submission is in flight (the form is locked), and an edit after a
// terminal state starts a fresh editing session.
func (c *Controller) SetField(name, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return
	}

	c.values[name] = value
	c.state = StateEditing

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, c.validatePending)
}

// validatePending is the debounce callback: it re-validates the whole
// draft unless the controller moved on (e.g. into Submitting).
func (c *Controller) validatePending() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateEditing {
		return
	}
	result := validation.ValidateForm(c.values, c.rules)
	c.errors = result.Errors
}

// Submit validates the draft and, when valid, performs exactly one
// round trip. An invalid draft is rejected locally with errors
// populated and no request made. On success the draft is cleared; on
// any failure (validation response, delivery failure, network error)
// the draft is retained so the user's text is not lost.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return ErrInFlight
	}
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	result := validation.ValidateForm(c.values, c.rules)
	if !result.Valid {
		c.errors = result.Errors
		c.state = StateEditing
		c.mu.Unlock()
		return ErrInvalid
	}

	c.errors = map[string]string{}
	c.state = StateSubmitting
	req := domain.ContactRequest{
		Name:    c.values["name"],
		Email:   c.values["email"],
		Subject: c.values["subject"],
		Message: c.values["message"],
	}
	c.mu.Unlock()

	resp, err := c.submit(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.result = resp

	// A transport error and a failure response are the same outcome for
	// the user; without a response there is nothing to distinguish.
	if err != nil || resp == nil || !resp.Success {
		c.state = StateError
		if err != nil {
			return errors.Join(ErrSubmitFailed, err)
		}
		return ErrSubmitFailed
	}

	c.state = StateSuccess
	c.values = emptyDraft()
	return nil
}

// State reports the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Values returns a copy of the current draft.
func (c *Controller) Values() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// Errors returns a copy of the current field errors.
func (c *Controller) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// Result returns the last submission response, if any.
func (c *Controller) Result() *domain.ContactResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}
