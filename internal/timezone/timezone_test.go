package timezone

import (
	"testing"
	"time"
)

func TestIsValid(t *testing.T) {
	valid := []string{"America/Santiago", "America/Sao_Paulo", "UTC", "Europe/Madrid"}
	for _, tz := range valid {
		if !IsValid(tz) {
			t.Errorf("IsValid(%q) = false, want true", tz)
		}
	}

	invalid := []string{"", "Mars/Olympus", "America/NotACity", "GMT-3h"}
	for _, tz := range invalid {
		if IsValid(tz) {
			t.Errorf("IsValid(%q) = true, want false", tz)
		}
	}
}

func TestLocationFallsBackToDefault(t *testing.T) {
	loc := Location("Mars/Olympus")
	if loc.String() != DefaultTimezone {
		t.Errorf("fallback location = %s, want %s", loc, DefaultTimezone)
	}

	loc = Location("America/Sao_Paulo")
	if loc.String() != "America/Sao_Paulo" {
		t.Errorf("location = %s, want America/Sao_Paulo", loc)
	}
}

func TestNowIn(t *testing.T) {
	got := NowIn("UTC")
	if got.Location().String() != "UTC" {
		t.Errorf("NowIn(UTC) location = %s", got.Location())
	}
	if d := time.Since(got); d < 0 || d > time.Minute {
		t.Errorf("NowIn(UTC) drift = %v", d)
	}
}
