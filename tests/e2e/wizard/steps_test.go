// file: tests/e2e/wizard/steps_test.go
package wizard

import (
	"context"
	"errors"
	"testing"
)

func TestCurrentFromPath(t *testing.T) {
	cases := []struct {
		path    string
		want    Step
		wantErr bool
	}{
		{path: "/onboarding/wizard/title", want: StepTitle},
		{path: "/onboarding/wizard/description", want: StepDescription},
		{path: "/onboarding/wizard/academic-year/", want: StepAcademicYear},
		{path: "review", want: StepReview},
		{path: "/onboarding/wizard/unknown", wantErr: true},
		{path: "/", wantErr: true},
		{path: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := CurrentFromPath(tc.path)
		if tc.wantErr {
			if err == nil {
				t.Errorf("CurrentFromPath(%q) = %q, want error", tc.path, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("CurrentFromPath(%q) error: %v", tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("CurrentFromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestNextWalksTheWholeWizard(t *testing.T) {
	m := NewMachine()
	if m.Current() != StepTitle {
		t.Fatalf("new machine starts at %q, want %q", m.Current(), StepTitle)
	}
	for i := 1; i < len(Order); i++ {
		got, err := m.Next()
		if err != nil {
			t.Fatalf("Next() from %q: %v", Order[i-1], err)
		}
		if got != Order[i] {
			t.Fatalf("Next() = %q, want %q", got, Order[i])
		}
	}
	if _, err := m.Next(); err == nil {
		t.Fatal("Next() past the last step must fail")
	}
}

func TestTitleAdvancesToDescription(t *testing.T) {
	m := NewMachine()
	if err := m.SyncFromPath("/onboarding/wizard/title"); err != nil {
		t.Fatalf("SyncFromPath: %v", err)
	}
	next, err := m.Next()
	if err != nil {
		t.Fatalf("Next(): %v", err)
	}
	if next != StepDescription {
		t.Fatalf("after title, Next() = %q, want %q", next, StepDescription)
	}
}

func TestPrevAtFirstStepFails(t *testing.T) {
	m := NewMachine()
	if _, err := m.Prev(); err == nil {
		t.Fatal("Prev() at the first step must fail")
	}
	if _, err := m.Next(); err != nil {
		t.Fatalf("Next(): %v", err)
	}
	got, err := m.Prev()
	if err != nil {
		t.Fatalf("Prev(): %v", err)
	}
	if got != StepTitle {
		t.Fatalf("Prev() = %q, want %q", got, StepTitle)
	}
}

func TestRunCurrentUsesRegisteredHandler(t *testing.T) {
	m := NewMachine()
	var filled, validated bool
	err := m.Register(StepTitle, Handler{
		Fill:     func(context.Context) error { filled = true; return nil },
		Validate: func(context.Context) error { validated = true; return nil },
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := m.RunCurrent(context.Background()); err != nil {
		t.Fatalf("RunCurrent: %v", err)
	}
	if !filled || !validated {
		t.Fatalf("handler not fully executed: filled=%v validated=%v", filled, validated)
	}
}

func TestRunCurrentPropagatesFillError(t *testing.T) {
	m := NewMachine()
	boom := errors.New("boom")
	_ = m.Register(StepTitle, Handler{
		Fill: func(context.Context) error { return boom },
	})
	err := m.RunCurrent(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("RunCurrent error = %v, want wrapped %v", err, boom)
	}
}

func TestRunCurrentWithoutHandlerIsNoop(t *testing.T) {
	m := NewMachine()
	if err := m.RunCurrent(context.Background()); err != nil {
		t.Fatalf("RunCurrent with no handler: %v", err)
	}
}

func TestRegisterRejectsUnknownStep(t *testing.T) {
	m := NewMachine()
	if err := m.Register(Step("bogus"), Handler{}); err == nil {
		t.Fatal("Register must reject unknown steps")
	}
}
