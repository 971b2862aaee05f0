package logconfig

import (
	"testing"
)

func TestNew(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		for _, format := range []string{"json", "text"} {
			if _, err := New(level, format); err != nil {
				t.Errorf("New(%q, %q) returned error: %v", level, format, err)
			}
		}
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("verbose", "json"); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestNewInvalidFormat(t *testing.T) {
	if _, err := New("info", "xml"); err == nil {
		t.Error("expected error for invalid format")
	}
}
