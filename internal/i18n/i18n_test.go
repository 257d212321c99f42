package i18n

import "testing"

func TestNormalize(t *testing.T) {
	if Normalize("fr") != French {
		t.Error("fr should stay fr")
	}
	if Normalize("de") != English {
		t.Error("unknown locales fall back to English")
	}
	if Normalize("") != English {
		t.Error("empty locale falls back to English")
	}
}

func TestPick(t *testing.T) {
	values := map[string]string{English: "Other", French: "Autre"}

	if got := Pick(values, French); got != "Autre" {
		t.Errorf("expected Autre, got %q", got)
	}
	if got := Pick(values, "de"); got != "Other" {
		t.Errorf("expected English fallback, got %q", got)
	}
	if got := Pick(map[string]string{English: "Only"}, French); got != "Only" {
		t.Errorf("expected fallback for missing French, got %q", got)
	}
}
