package session_test

import (
	"errors"
	"testing"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
	"github.com/sbmapp/sbm-advisor-go/internal/session"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool      { return &b }

func TestNew_SeedsDemoState(t *testing.T) {
	s := session.New()

	p := s.Profile()
	if p.Name != "Alex Sterling" {
		t.Errorf("seed name = %q", p.Name)
	}
	if p.Income != 75000 {
		t.Errorf("seed income = %v", p.Income)
	}
	if p.Currency != "USD" || p.Language != "en" {
		t.Errorf("seed locale = %s/%s", p.Currency, p.Language)
	}
	if s.Ledger.Len() != 3 {
		t.Errorf("seed ledger has %d records", s.Ledger.Len())
	}
	if len(s.Goals.List()) != 3 {
		t.Errorf("seed registry has %d goals", len(s.Goals.List()))
	}
}

func TestUpdateProfile_FieldByField(t *testing.T) {
	s := session.New()

	p, err := s.UpdateProfile(domain.ProfileUpdate{
		Name:   strPtr("Jordan Vale"),
		Income: f64Ptr(90000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Jordan Vale" || p.Income != 90000 {
		t.Errorf("update not applied: %+v", p)
	}
	// Untouched fields survive.
	if p.Country != "United States" || p.Currency != "USD" {
		t.Errorf("unset fields changed: %s/%s", p.Country, p.Currency)
	}
}

func TestUpdateProfile_CountryDerivesLocale(t *testing.T) {
	s := session.New()

	p, err := s.UpdateProfile(domain.ProfileUpdate{Country: strPtr("India")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Currency != "INR" || p.Language != "hi" {
		t.Errorf("India must derive INR/hi, got %s/%s", p.Currency, p.Language)
	}

	// Unknown country falls back to the baseline.
	p, err = s.UpdateProfile(domain.ProfileUpdate{Country: strPtr("Atlantis")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Currency != "USD" || p.Language != "en" {
		t.Errorf("fallback = %s/%s, want USD/en", p.Currency, p.Language)
	}
}

func TestUpdateProfile_ExplicitLanguageWins(t *testing.T) {
	s := session.New()

	p, err := s.UpdateProfile(domain.ProfileUpdate{
		Country:  strPtr("India"),
		Language: strPtr("en"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Currency != "INR" {
		t.Errorf("currency = %s, want INR", p.Currency)
	}
	if p.Language != "en" {
		t.Errorf("explicit language must win, got %s", p.Language)
	}
}

func TestUpdateProfile_Validation(t *testing.T) {
	s := session.New()

	_, err := s.UpdateProfile(domain.ProfileUpdate{Income: f64Ptr(-1)})
	var verr *domain.ErrValidation
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for negative income, got %v", err)
	}

	_, err = s.UpdateProfile(domain.ProfileUpdate{Language: strPtr("de")})
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for unsupported language, got %v", err)
	}

	// Failed update leaves the profile intact.
	if got := s.Profile().Income; got != 75000 {
		t.Errorf("income mutated by failed update: %v", got)
	}
}

func TestUpdateProfile_DarkMode(t *testing.T) {
	s := session.New()

	p, err := s.UpdateProfile(domain.ProfileUpdate{DarkMode: boolPtr(false)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.DarkMode {
		t.Error("dark mode must be off")
	}
}

func TestProfile_ReturnsCopy(t *testing.T) {
	s := session.New()

	p := s.Profile()
	if len(p.Preferences) == 0 {
		t.Fatal("seed profile has preferences")
	}
	p.Preferences[0] = "mutated"

	if s.Profile().Preferences[0] == "mutated" {
		t.Error("Profile must return an isolated copy")
	}
}
