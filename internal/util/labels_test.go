package util

import "testing"

func TestSanitizeLabel(t *testing.T) {
	got := SanitizeLabel("Silva et al.\x002020\t")
	if got != "Silva et al.2020" {
		t.Fatalf("unexpected sanitized label: %q", got)
	}
}

func TestDisplayLabelTruncates(t *testing.T) {
	got := DisplayLabel("A very long reference title that keeps going", 12)
	if got != "A very long..." {
		t.Fatalf("unexpected truncated label: %q", got)
	}
	if DisplayLabel("short", 12) != "short" {
		t.Fatalf("short labels must pass through untouched")
	}
}
