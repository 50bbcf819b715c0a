package i18n

import (
	"strings"
	"testing"
)

func TestT_KnownMessage(t *testing.T) {
	Init("en")
	got := T("results.none")
	if got == "results.none" {
		t.Fatalf("expected translated message, got the raw ID")
	}
}

func TestT_UnknownMessage_FallsBackToID(t *testing.T) {
	Init("en")
	if got := T("nope.not_a_message"); got != "nope.not_a_message" {
		t.Fatalf("expected raw ID fallback, got %q", got)
	}
}

func TestT_Interpolation(t *testing.T) {
	Init("en")
	got := T("run.day_header", 7, "Bridge Repair")
	if !strings.Contains(got, "07") || !strings.Contains(got, "Bridge Repair") {
		t.Fatalf("interpolation failed: %q", got)
	}
}

func TestSetLang_Switches(t *testing.T) {
	Init("en")
	en := T("results.none")
	SetLang("es")
	es := T("results.none")
	if en == es {
		t.Fatalf("expected different text for en and es, both %q", en)
	}
	SetLang("en")
}

func TestGetAvailableLocales(t *testing.T) {
	langs := GetAvailableLocales()
	if len(langs) < 2 {
		t.Fatalf("expected at least en and es, got %v", langs)
	}
	found := map[string]bool{}
	for _, l := range langs {
		found[l] = true
	}
	if !found["en"] || !found["es"] {
		t.Fatalf("expected en and es in %v", langs)
	}
}
