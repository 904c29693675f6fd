//go:build e2e

// file: tests/e2e/pages/wizard.go
package pages

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"

	"schoolku_backend/tests/e2e/wizard"
)

// OnboardingWizard wraps the multi-step school setup wizard. It owns the
// locators; step order and transition tracking live in the wizard state
// machine, which the page re-syncs from the URL after every navigation.
type OnboardingWizard struct {
	base    string
	machine *wizard.Machine
}

func NewOnboardingWizard(base string) *OnboardingWizard {
	return &OnboardingWizard{base: base, machine: wizard.NewMachine()}
}

// Current is the step the wizard was last observed on.
func (w *OnboardingWizard) Current() wizard.Step { return w.machine.Current() }

// Open navigates to the first wizard step and waits for the heading.
func (w *OnboardingWizard) Open(ctx context.Context) error {
	url := fmt.Sprintf("%s/onboarding/wizard/%s", w.base, wizard.StepTitle)
	if err := chromedp.Run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("open wizard: %w", err)
	}
	if !WaitVisible(ctx, longWait, `[data-testid="wizard-heading"]`, `h1`) {
		RecoverStaleSession(ctx)
		if !WaitVisible(ctx, longWait, `[data-testid="wizard-heading"]`, `h1`) {
			return fmt.Errorf("wizard heading never appeared")
		}
	}
	return w.sync(ctx)
}

// FillTitle types the school name into the title step's name field.
func (w *OnboardingWizard) FillTitle(ctx context.Context, schoolName string) error {
	if w.machine.Current() != wizard.StepTitle {
		return fmt.Errorf("on step %q, not %q", w.machine.Current(), wizard.StepTitle)
	}
	return Fill(ctx, `[data-testid="school-name-input"]`, schoolName)
}

// FillDescription types the school description.
func (w *OnboardingWizard) FillDescription(ctx context.Context, desc string) error {
	if w.machine.Current() != wizard.StepDescription {
		return fmt.Errorf("on step %q, not %q", w.machine.Current(), wizard.StepDescription)
	}
	return Fill(ctx, `[data-testid="school-description-input"]`, desc)
}

// Next clicks the forward control and re-syncs the machine from the URL.
func (w *OnboardingWizard) Next(ctx context.Context) error {
	if !ClickFirst(ctx, shortWait, `[data-testid="wizard-next"]`, `button.next`) {
		return fmt.Errorf("next button not found on step %q", w.machine.Current())
	}
	expected, err := w.machine.Next()
	if err != nil {
		return err
	}
	if !w.waitForStep(ctx, expected) {
		return fmt.Errorf("wizard did not reach step %q", expected)
	}
	return w.sync(ctx)
}

// Back clicks the back control and re-syncs.
func (w *OnboardingWizard) Back(ctx context.Context) error {
	if !ClickFirst(ctx, shortWait, `[data-testid="wizard-back"]`, `button.back`) {
		return fmt.Errorf("back button not found on step %q", w.machine.Current())
	}
	expected, err := w.machine.Prev()
	if err != nil {
		return err
	}
	if !w.waitForStep(ctx, expected) {
		return fmt.Errorf("wizard did not return to step %q", expected)
	}
	return w.sync(ctx)
}

// waitForStep polls the URL until it encodes the expected step. One
// stale-session recovery attempt is allowed mid-wait.
func (w *OnboardingWizard) waitForStep(ctx context.Context, expected wizard.Step) bool {
	for attempt := 0; attempt < 2; attempt++ {
		if WaitVisible(ctx, longWait, fmt.Sprintf(`[data-step="%s"]`, expected), `[data-testid="wizard-heading"]`) {
			path, err := CurrentPath(ctx)
			if err != nil {
				return false
			}
			if step, err := wizard.CurrentFromPath(path); err == nil && step == expected {
				return true
			}
		}
		if !RecoverStaleSession(ctx) {
			break
		}
	}
	return false
}

func (w *OnboardingWizard) sync(ctx context.Context) error {
	path, err := CurrentPath(ctx)
	if err != nil {
		return err
	}
	return w.machine.SyncFromPath(path)
}
