package locale_test

import (
	"testing"

	"github.com/sbmapp/sbm-advisor-go/internal/locale"
)

func TestForCountry(t *testing.T) {
	cases := []struct {
		country  string
		currency string
		language string
	}{
		{"United States", "USD", "en"},
		{"India", "INR", "hi"},
		{"United Kingdom", "GBP", "en"},
		{"Spain", "EUR", "es"},
		{"France", "EUR", "fr"},
		{"Atlantis", "USD", "en"},
		{"", "USD", "en"},
	}

	for _, tc := range cases {
		r := locale.ForCountry(tc.country)
		if r.Currency != tc.currency || r.Language != tc.language {
			t.Errorf("ForCountry(%q) = %+v, want %s/%s", tc.country, r, tc.currency, tc.language)
		}
	}
}

func TestStrings_FallbackAndCoverage(t *testing.T) {
	en := locale.Strings("en")
	if en["advisor"] != "AI Concierge" {
		t.Errorf("en advisor = %q", en["advisor"])
	}

	// Unknown tags fall back to English.
	if got := locale.Strings("de")["advisor"]; got != "AI Concierge" {
		t.Errorf("fallback advisor = %q", got)
	}

	// Every supported table carries the same key set as English.
	for _, lang := range []string{"hi", "es", "fr"} {
		tbl := locale.Strings(lang)
		if len(tbl) != len(en) {
			t.Errorf("%s table has %d keys, want %d", lang, len(tbl), len(en))
		}
		for k := range en {
			if tbl[k] == "" {
				t.Errorf("%s table missing key %q", lang, k)
			}
		}
	}
}

func TestSupported(t *testing.T) {
	for _, lang := range []string{"en", "hi", "es", "fr"} {
		if !locale.Supported(lang) {
			t.Errorf("expected %s to be supported", lang)
		}
	}
	if locale.Supported("de") {
		t.Error("de must not be supported")
	}
}
