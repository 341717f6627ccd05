// Package session holds the demo dashboard's single session: the user
// profile, the transaction ledger and the savings-goal registry. The
// server owns exactly one Session; there is no persistence and no
// multi-tenancy.
package session

import (
	"sync"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
	"github.com/sbmapp/sbm-advisor-go/internal/goals"
	"github.com/sbmapp/sbm-advisor-go/internal/ledger"
	"github.com/sbmapp/sbm-advisor-go/internal/locale"
)

// Session is the container for all per-user state.
type Session struct {
	mu      sync.RWMutex
	profile domain.UserProfile

	Ledger *ledger.Ledger
	Goals  *goals.Registry
}

// New creates a session seeded with the demo profile, ledger history and
// savings goals.
func New() *Session {
	return &Session{
		profile: *domain.DefaultProfile(),
		Ledger:  ledger.New(domain.DemoTransactions()),
		Goals:   goals.NewRegistry(domain.DemoGoals()),
	}
}

// Profile returns a copy of the current profile.
func (s *Session) Profile() domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.profile
	p.Preferences = append([]string(nil), s.profile.Preferences...)
	return p
}

// UpdateProfile applies the set fields of the update. Changing the
// country re-derives currency and language from the regional defaults;
// an explicit language in the same update wins over the derived one.
func (s *Session) UpdateProfile(u domain.ProfileUpdate) (domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.Income != nil && *u.Income < 0 {
		return domain.UserProfile{}, &domain.ErrValidation{Field: "income", Message: "must not be negative"}
	}
	if u.Language != nil && !locale.Supported(*u.Language) {
		return domain.UserProfile{}, &domain.ErrValidation{Field: "language", Message: "unsupported language"}
	}

	if u.Name != nil {
		s.profile.Name = *u.Name
	}
	if u.Gender != nil {
		s.profile.Gender = *u.Gender
	}
	if u.Income != nil {
		s.profile.Income = *u.Income
	}
	if u.IncomeType != nil {
		s.profile.IncomeType = *u.IncomeType
	}
	if u.Preferences != nil {
		s.profile.Preferences = append([]string(nil), (*u.Preferences)...)
	}
	if u.Country != nil {
		s.profile.Country = *u.Country
		r := locale.ForCountry(*u.Country)
		s.profile.Currency = r.Currency
		s.profile.Language = r.Language
	}
	if u.Language != nil {
		s.profile.Language = *u.Language
	}
	if u.DarkMode != nil {
		s.profile.DarkMode = *u.DarkMode
	}
	if u.StabilityIndex != nil {
		s.profile.StabilityIndex = *u.StabilityIndex
	}

	p := s.profile
	p.Preferences = append([]string(nil), s.profile.Preferences...)
	return p, nil
}

// Income returns the profile's monthly income, the denominator for the
// ledger's risk classification.
func (s *Session) Income() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Income
}

// Currency returns the profile's active currency code.
func (s *Session) Currency() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Currency
}
