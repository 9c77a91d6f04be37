package common

import "testing"

func TestGetVersion(t *testing.T) {
	// Default should be "dev"
	v := GetVersion()
	if v != "dev" {
		t.Errorf("expected default version dev, got %s", v)
	}
}

func TestGetFullVersion(t *testing.T) {
	fv := GetFullVersion()
	expected := "dev (build: unknown, commit: unknown)"
	if fv != expected {
		t.Errorf("expected full version %q, got %q", expected, fv)
	}
}
