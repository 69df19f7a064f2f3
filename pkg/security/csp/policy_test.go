package csp_test

import (
	"strings"
	"testing"

	"nbu-dashboard/pkg/security/csp"
)

func TestBuildEmptyPolicy(t *testing.T) {
	if got := csp.NewCSPBuilder().Build(); got != "" {
		t.Errorf("Build() = %q, want empty", got)
	}
}

func TestBuildDeterministicOrder(t *testing.T) {
	b := csp.NewCSPBuilder().
		StyleSrc("'self'").
		DefaultSrc("'self'").
		ImgSrc("'self'")

	want := "default-src 'self'; img-src 'self'; style-src 'self'"
	for i := 0; i < 10; i++ {
		if got := b.Build(); got != want {
			t.Fatalf("Build() = %q, want %q", got, want)
		}
	}
}

func TestDashboardPolicy(t *testing.T) {
	policy := csp.DashboardPolicy().Build()

	want := "default-src 'self'; frame-ancestors 'none'; img-src 'self' data:; script-src 'none'; style-src 'self' 'unsafe-inline'"
	if policy != want {
		t.Errorf("DashboardPolicy() =\n%q, want\n%q", policy, want)
	}

	// The page carries inline styles and an inline SVG, but no scripts.
	if !strings.Contains(policy, "script-src 'none'") {
		t.Error("scripts are not blocked")
	}
	if !strings.Contains(policy, "'unsafe-inline'") {
		t.Error("inline styles are not allowed")
	}
}
