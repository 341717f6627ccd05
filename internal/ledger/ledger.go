// Package ledger owns the session's in-memory transaction sequence and the
// risk gate in front of it. The ledger is the single writer: nothing else
// mutates the sequence.
package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
	"github.com/sbmapp/sbm-advisor-go/internal/risk"

	"github.com/google/uuid"
)

// Filter selects a ledger view.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterIncome  Filter = "income"
	FilterExpense Filter = "expense"
)

// ParseFilter maps a query value to a Filter. An empty value means all;
// anything else unrecognized is a validation error.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(s) {
	case "", "all":
		return FilterAll, nil
	case "income":
		return FilterIncome, nil
	case "expense":
		return FilterExpense, nil
	default:
		return "", &domain.ErrValidation{Field: "type", Message: "must be all, income or expense"}
	}
}

// Ledger is the ordered, newest-first collection of transaction records.
// It is safe for concurrent use; the session is logically single-user but
// HTTP handlers run concurrently.
type Ledger struct {
	mu      sync.RWMutex
	records []domain.TransactionRecord
	now     func() time.Time
}

// New creates a ledger seeded with the given records (newest-first).
func New(seed []domain.TransactionRecord) *Ledger {
	l := &Ledger{now: time.Now}
	l.records = append(l.records, seed...)
	return l
}

// SetClock overrides the ledger clock, for tests.
func (l *Ledger) SetClock(now func() time.Time) {
	l.now = now
}

// Append runs the candidate through the risk classifier and, if the gate
// clears, prepends a new record with a fresh identifier and the current
// date. A flagged candidate without the override acknowledgment returns
// ErrRiskBlocked and leaves the ledger untouched. The returned assessment
// is non-nil whenever a risk was found, including overridden appends.
func (l *Ledger) Append(c domain.TransactionCandidate, income float64) (*domain.TransactionRecord, *domain.RiskAssessment, error) {
	if !domain.ValidKind(c.Kind) {
		return nil, nil, &domain.ErrValidation{Field: "kind", Message: "must be income, expense or transfer"}
	}
	if strings.TrimSpace(c.Category) == "" {
		return nil, nil, &domain.ErrValidation{Field: "category", Message: "category is required"}
	}
	if c.Amount < 0 {
		return nil, nil, &domain.ErrValidation{Field: "amount", Message: "amount must be non-negative"}
	}

	assessment := risk.Classify(c.Kind, c.Category, c.Amount, income)
	if assessment != nil && !c.Override {
		return nil, assessment, &domain.ErrRiskBlocked{Assessment: assessment}
	}

	rec := domain.TransactionRecord{
		ID:              uuid.New().String(),
		Kind:            c.Kind,
		Category:        c.Category,
		Amount:          c.Amount,
		Date:            l.now(),
		Description:     c.Description,
		ImpactsSavingID: c.ImpactsSavingID,
	}

	l.mu.Lock()
	l.records = append([]domain.TransactionRecord{rec}, l.records...)
	l.mu.Unlock()

	return &rec, assessment, nil
}

// List returns a copy of the ledger view for the filter, newest-first.
// limit <= 0 means no limit.
func (l *Ledger) List(f Filter, limit int) []domain.TransactionRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.TransactionRecord, 0, len(l.records))
	for _, r := range l.records {
		switch f {
		case FilterIncome:
			if r.Kind != domain.KindIncome {
				continue
			}
		case FilterExpense:
			if r.Kind != domain.KindExpense {
				continue
			}
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Summary aggregates income and expense totals for the balance card.
// Transfers count toward neither side.
func (l *Ledger) Summary() domain.LedgerSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var s domain.LedgerSummary
	for _, r := range l.records {
		switch r.Kind {
		case domain.KindIncome:
			s.TotalIncome += r.Amount
		case domain.KindExpense:
			s.TotalExpenses += r.Amount
		}
	}
	s.NetBalance = s.TotalIncome - s.TotalExpenses
	s.Count = len(l.records)
	return s
}
