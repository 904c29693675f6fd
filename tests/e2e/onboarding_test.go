//go:build e2e

// file: tests/e2e/onboarding_test.go
package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/chromedp/chromedp"

	"schoolku_backend/tests/e2e/pages"
	"schoolku_backend/tests/e2e/wizard"
)

// browserCtx spins up one headless page per test.
func browserCtx(t *testing.T) context.Context {
	t.Helper()
	if pages.BaseURL() == "" {
		t.Skip("E2E_BASE_URL not set, skipping browser test")
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(),
		chromedp.DefaultExecAllocatorOptions[:]...)
	t.Cleanup(cancelAlloc)
	ctx, cancel := chromedp.NewContext(allocCtx)
	t.Cleanup(cancel)
	ctx, cancelTimeout := context.WithTimeout(ctx, 2*time.Minute)
	t.Cleanup(cancelTimeout)
	return ctx
}

func TestOnboardingTitleStepAdvancesToDescription(t *testing.T) {
	ctx := browserCtx(t)
	w := pages.NewOnboardingWizard(pages.BaseURL())

	if err := w.Open(ctx); err != nil {
		t.Fatalf("open wizard: %v", err)
	}
	if w.Current() != wizard.StepTitle {
		t.Fatalf("wizard opened on step %q, want %q", w.Current(), wizard.StepTitle)
	}

	if err := w.FillTitle(ctx, "Greenfield Demo School"); err != nil {
		t.Fatalf("fill title: %v", err)
	}
	if err := w.Next(ctx); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if w.Current() != wizard.StepDescription {
		t.Fatalf("after Next, step = %q, want %q", w.Current(), wizard.StepDescription)
	}
}

func TestOnboardingBackReturnsToTitle(t *testing.T) {
	ctx := browserCtx(t)
	w := pages.NewOnboardingWizard(pages.BaseURL())

	if err := w.Open(ctx); err != nil {
		t.Fatalf("open wizard: %v", err)
	}
	if err := w.FillTitle(ctx, "Greenfield Demo School"); err != nil {
		t.Fatalf("fill title: %v", err)
	}
	if err := w.Next(ctx); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := w.Back(ctx); err != nil {
		t.Fatalf("back: %v", err)
	}
	if w.Current() != wizard.StepTitle {
		t.Fatalf("after Back, step = %q, want %q", w.Current(), wizard.StepTitle)
	}
}

func TestAdmissionsApplicationRoundTrip(t *testing.T) {
	ctx := browserCtx(t)
	portal := pages.NewAdmissionsPortal(pages.BaseURL())

	if err := portal.OpenApply(ctx, "grade-7-intake"); err != nil {
		t.Fatalf("open form: %v", err)
	}
	number, err := portal.SubmitApplication(ctx, pages.ApplicationForm{
		ApplicantName: "Amna Hassan",
		GuardianPhone: "+249 91 234 5678",
		DateOfBirth:   "2013-03-15",
	})
	if err != nil {
		t.Fatalf("submit application: %v", err)
	}
	if number == "" {
		t.Fatal("confirmation showed an empty application number")
	}
	if !portal.HasApplication(ctx, number) {
		t.Fatalf("application %s not visible in the staff list", number)
	}
}
