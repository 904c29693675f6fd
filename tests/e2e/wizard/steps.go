// file: tests/e2e/wizard/steps.go
//
// Explicit state machine for the onboarding wizard. The UI encodes the
// current step as the last URL path segment; this package owns the step
// order and per-step handlers so tests never hand-roll switch statements
// over path strings.
package wizard

import (
	"context"
	"fmt"
	"strings"
)

// Step is a named wizard step. The zero value is not a valid step.
type Step string

const (
	StepTitle        Step = "title"
	StepDescription  Step = "description"
	StepContact      Step = "contact"
	StepAcademicYear Step = "academic-year"
	StepReview       Step = "review"
)

// Order is the forward traversal order of the wizard.
var Order = []Step{StepTitle, StepDescription, StepContact, StepAcademicYear, StepReview}

var indexOf = func() map[Step]int {
	m := make(map[Step]int, len(Order))
	for i, s := range Order {
		m[s] = i
	}
	return m
}()

// IsValid reports whether s is a known wizard step.
func (s Step) IsValid() bool {
	_, ok := indexOf[s]
	return ok
}

// CurrentFromPath extracts the step from a wizard URL path, e.g.
// "/onboarding/wizard/title" → StepTitle. Trailing slashes and query-free
// paths only; the caller strips the query string.
func CurrentFromPath(path string) (Step, error) {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "", fmt.Errorf("empty wizard path")
	}
	segments := strings.Split(trimmed, "/")
	step := Step(segments[len(segments)-1])
	if !step.IsValid() {
		return "", fmt.Errorf("path %q does not end in a wizard step", path)
	}
	return step, nil
}

// Handler fills and validates one wizard step. Fill performs the UI
// actions for the step; Validate checks the step's on-page state before
// advancing. Either may be nil when a step needs no action.
type Handler struct {
	Fill     func(ctx context.Context) error
	Validate func(ctx context.Context) error
}

// Machine tracks the wizard's current step and the registered handlers.
// It models transitions only; navigation is the caller's job, and the
// caller re-syncs the machine from the URL after every navigation.
type Machine struct {
	current  Step
	handlers map[Step]Handler
}

// NewMachine starts a machine at the first step.
func NewMachine() *Machine {
	return &Machine{
		current:  Order[0],
		handlers: make(map[Step]Handler, len(Order)),
	}
}

// Register installs the handler for one step, replacing any previous one.
func (m *Machine) Register(step Step, h Handler) error {
	if !step.IsValid() {
		return fmt.Errorf("unknown wizard step %q", step)
	}
	m.handlers[step] = h
	return nil
}

// Current returns the step the machine believes the UI is on.
func (m *Machine) Current() Step { return m.current }

// SyncFromPath aligns the machine with the step encoded in the URL path.
func (m *Machine) SyncFromPath(path string) error {
	step, err := CurrentFromPath(path)
	if err != nil {
		return err
	}
	m.current = step
	return nil
}

// Next advances to the following step. Advancing past the last step is
// an error; the review step submits, it doesn't transition.
func (m *Machine) Next() (Step, error) {
	i := indexOf[m.current]
	if i == len(Order)-1 {
		return "", fmt.Errorf("step %q is the last step", m.current)
	}
	m.current = Order[i+1]
	return m.current, nil
}

// Prev steps back. Backing out of the first step is an error.
func (m *Machine) Prev() (Step, error) {
	i := indexOf[m.current]
	if i == 0 {
		return "", fmt.Errorf("step %q is the first step", m.current)
	}
	m.current = Order[i-1]
	return m.current, nil
}

// RunCurrent executes the registered handler for the current step:
// Fill first, then Validate. Steps without a handler are a no-op.
func (m *Machine) RunCurrent(ctx context.Context) error {
	h, ok := m.handlers[m.current]
	if !ok {
		return nil
	}
	if h.Fill != nil {
		if err := h.Fill(ctx); err != nil {
			return fmt.Errorf("fill step %q: %w", m.current, err)
		}
	}
	if h.Validate != nil {
		if err := h.Validate(ctx); err != nil {
			return fmt.Errorf("validate step %q: %w", m.current, err)
		}
	}
	return nil
}
