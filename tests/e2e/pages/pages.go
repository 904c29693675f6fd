//go:build e2e

// file: tests/e2e/pages/pages.go
//
// Shared plumbing for the browser page objects. Waits are tolerant:
// "element not found within the wait window" comes back as false, not an
// error, so the test body decides what is fatal.
package pages

import (
	"context"
	"errors"
	"net/url"
	"os"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	// shortWait covers in-page reactions (validation messages, spinners).
	shortWait = 5 * time.Second
	// longWait covers navigations and server round-trips.
	longWait = 20 * time.Second
)

// BaseURL reads the target deployment from the environment. Tests skip
// when it is unset.
func BaseURL() string {
	return os.Getenv("E2E_BASE_URL")
}

// WaitVisible waits for any one of the selectors to appear, trying them
// in order. The first selector is the canonical locator; the rest are
// fallbacks for markup variants across deployments.
func WaitVisible(ctx context.Context, timeout time.Duration, selectors ...string) bool {
	for _, sel := range selectors {
		waitCtx, cancel := context.WithTimeout(ctx, timeout)
		err := chromedp.Run(waitCtx, chromedp.WaitVisible(sel, chromedp.ByQuery))
		cancel()
		if err == nil {
			return true
		}
		if !errors.Is(err, context.DeadlineExceeded) {
			return false
		}
	}
	return false
}

// ClickFirst clicks the first selector that is visible within the wait
// window. Returns false when none matched.
func ClickFirst(ctx context.Context, timeout time.Duration, selectors ...string) bool {
	for _, sel := range selectors {
		if !WaitVisible(ctx, timeout, sel) {
			continue
		}
		if err := chromedp.Run(ctx, chromedp.Click(sel, chromedp.ByQuery)); err != nil {
			continue
		}
		return true
	}
	return false
}

// Fill clears a field and types a value into it.
func Fill(ctx context.Context, selector, value string) error {
	return chromedp.Run(ctx,
		chromedp.WaitVisible(selector, chromedp.ByQuery),
		chromedp.Clear(selector, chromedp.ByQuery),
		chromedp.SendKeys(selector, value, chromedp.ByQuery),
	)
}

// CurrentPath returns the path component of the page URL.
func CurrentPath(ctx context.Context) (string, error) {
	var loc string
	if err := chromedp.Run(ctx, chromedp.Location(&loc)); err != nil {
		return "", err
	}
	u, err := url.Parse(loc)
	if err != nil {
		return "", err
	}
	return u.Path, nil
}

// RecoverStaleSession handles the app's "session expired" error boundary.
// First choice is its Retry button; failing that, a full reload. Returns
// false when the error boundary wasn't showing (nothing to recover).
func RecoverStaleSession(ctx context.Context) bool {
	if !WaitVisible(ctx, shortWait, `[data-testid="session-error"]`, `div.error-boundary`) {
		return false
	}
	if ClickFirst(ctx, shortWait, `[data-testid="session-error-retry"]`, `button.retry`) {
		return true
	}
	return chromedp.Run(ctx, chromedp.Reload()) == nil
}
