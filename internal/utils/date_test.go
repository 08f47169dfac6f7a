package utils

import (
	"strings"
	"testing"
	"time"
)

func TestToday(t *testing.T) {
	got := Today()
	want := time.Now().Format("2006-01-02")
	if got != want {
		t.Errorf("Today() = %q, want %q", got, want)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2025-07-01"); err != nil {
		t.Errorf("expected valid date, got %v", err)
	}

	for _, bad := range []string{"07/01/2025", "2025-7-1", "yesterday", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestDateOrToday(t *testing.T) {
	got, err := DateOrToday("")
	if err != nil {
		t.Fatalf("empty date must not error: %v", err)
	}
	if got != Today() {
		t.Errorf("expected today for empty input, got %q", got)
	}

	got, err = DateOrToday("2025-07-01")
	if err != nil || got != "2025-07-01" {
		t.Errorf("expected passthrough, got %q / %v", got, err)
	}

	if _, err := DateOrToday("bogus"); err == nil {
		t.Error("expected an invalid date to be rejected")
	}
}

func TestExpandHome(t *testing.T) {
	got := ExpandHome("~/.config/vitalog/vitalog.json")
	if strings.HasPrefix(got, "~") {
		t.Errorf("expected the tilde expanded, got %q", got)
	}
	if !strings.HasSuffix(got, "/.config/vitalog/vitalog.json") {
		t.Errorf("expected the suffix preserved, got %q", got)
	}

	if got := ExpandHome("/absolute/path"); got != "/absolute/path" {
		t.Errorf("absolute paths must pass through, got %q", got)
	}
}
