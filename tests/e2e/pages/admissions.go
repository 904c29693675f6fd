//go:build e2e

// file: tests/e2e/pages/admissions.go
package pages

import (
	"context"
	"fmt"
	"strings"

	"github.com/chromedp/chromedp"
)

// AdmissionsPortal wraps the public application form and the staff-side
// application list.
type AdmissionsPortal struct {
	base string
}

func NewAdmissionsPortal(base string) *AdmissionsPortal {
	return &AdmissionsPortal{base: base}
}

// ApplicationForm is what the portal's apply page asks for.
type ApplicationForm struct {
	ApplicantName string
	GuardianPhone string
	DateOfBirth   string // yyyy-mm-dd, typed into a date input
}

// OpenApply navigates to the application form of one campaign.
func (a *AdmissionsPortal) OpenApply(ctx context.Context, campaignSlug string) error {
	url := fmt.Sprintf("%s/admissions/%s/apply", a.base, campaignSlug)
	if err := chromedp.Run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("open admissions form: %w", err)
	}
	if !WaitVisible(ctx, longWait, `[data-testid="application-form"]`, `form.application`) {
		return fmt.Errorf("application form never appeared")
	}
	return nil
}

// SubmitApplication fills and submits the form, returning the application
// number shown on the confirmation screen.
func (a *AdmissionsPortal) SubmitApplication(ctx context.Context, form ApplicationForm) (string, error) {
	if err := Fill(ctx, `[data-testid="applicant-name-input"]`, form.ApplicantName); err != nil {
		return "", fmt.Errorf("fill applicant name: %w", err)
	}
	if err := Fill(ctx, `[data-testid="guardian-phone-input"]`, form.GuardianPhone); err != nil {
		return "", fmt.Errorf("fill guardian phone: %w", err)
	}
	if err := Fill(ctx, `[data-testid="date-of-birth-input"]`, form.DateOfBirth); err != nil {
		return "", fmt.Errorf("fill date of birth: %w", err)
	}
	if !ClickFirst(ctx, shortWait, `[data-testid="application-submit"]`, `button[type="submit"]`) {
		return "", fmt.Errorf("submit button not found")
	}
	if !WaitVisible(ctx, longWait, `[data-testid="application-number"]`) {
		RecoverStaleSession(ctx)
		if !WaitVisible(ctx, longWait, `[data-testid="application-number"]`) {
			return "", fmt.Errorf("confirmation never appeared")
		}
	}
	var number string
	if err := chromedp.Run(ctx,
		chromedp.Text(`[data-testid="application-number"]`, &number, chromedp.ByQuery),
	); err != nil {
		return "", fmt.Errorf("read application number: %w", err)
	}
	return strings.TrimSpace(number), nil
}

// HasApplication reports whether the staff list shows an application
// number. A missing row within the wait window is false, not an error.
func (a *AdmissionsPortal) HasApplication(ctx context.Context, applicationNo string) bool {
	url := fmt.Sprintf("%s/admin/admissions/applications", a.base)
	if err := chromedp.Run(ctx, chromedp.Navigate(url)); err != nil {
		return false
	}
	return WaitVisible(ctx, longWait,
		fmt.Sprintf(`[data-application-no="%s"]`, applicationNo),
		fmt.Sprintf(`td[data-testid="application-no-%s"]`, applicationNo),
	)
}
