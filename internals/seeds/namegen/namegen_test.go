package namegen

import (
	"strings"
	"testing"
)

func TestDeterministicForSameSeed(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 50; i++ {
		gender := a.Gender()
		if got := b.Gender(); got != gender {
			t.Fatalf("iteration %d: gender diverged (%q vs %q)", i, gender, got)
		}
		if na, nb := a.FullName(gender), b.FullName(gender); na != nb {
			t.Fatalf("iteration %d: name diverged (%q vs %q)", i, na, nb)
		}
		if pa, pb := a.Phone(), b.Phone(); pa != pb {
			t.Fatalf("iteration %d: phone diverged (%q vs %q)", i, pa, pb)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 20; i++ {
		if a.FullName("male") == b.FullName("male") {
			same++
		}
	}
	if same == 20 {
		t.Error("different seeds produced identical name streams")
	}
}

func TestFirstNameRespectsGender(t *testing.T) {
	g := New(7)
	for i := 0; i < 30; i++ {
		name := g.FirstName("female")
		found := false
		for _, f := range femaleFirstNames {
			if name == f {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("FirstName(female) = %q not in the female pool", name)
		}
	}
}

func TestPhoneFormat(t *testing.T) {
	g := New(9)
	p := g.Phone()
	if !strings.HasPrefix(p, "+249 9") {
		t.Errorf("Phone() = %q, want +249 9… prefix", p)
	}
}
