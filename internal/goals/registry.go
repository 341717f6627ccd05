// Package goals owns the savings-goal registry: creation, reminder flags,
// lockedness, progress and the advisory withdrawal simulation that feeds
// the AI concierge.
package goals

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
	"github.com/sbmapp/sbm-advisor-go/internal/finmath"

	"github.com/google/uuid"
)

// DefaultWithdrawalFraction is the share of the current balance used when
// a simulation request does not specify one.
const DefaultWithdrawalFraction = 0.5

// IsLocked reports whether a purpose marks its goals as protected funds.
// School fees and the emergency reserve are sacred; everything else is
// discretionary.
func IsLocked(p domain.GoalPurpose) bool {
	return p == domain.PurposeSchoolFee || p == domain.PurposeEmergency
}

// Registry is the in-memory savings-goal collection. Goals are never
// deleted; currentAmount is never mutated by any registry operation.
type Registry struct {
	mu    sync.RWMutex
	goals []domain.SavingGoal
}

// NewRegistry creates a registry seeded with the given goals.
func NewRegistry(seed []domain.SavingGoal) *Registry {
	r := &Registry{}
	for _, g := range seed {
		g.Locked = IsLocked(g.Purpose)
		r.goals = append(r.goals, g)
	}
	return r
}

// Create validates and adds a new goal with a zero starting balance and
// reminders active.
func (r *Registry) Create(req domain.CreateGoalRequest) (*domain.SavingGoal, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &domain.ErrValidation{Field: "name", Message: "name is required"}
	}
	if req.TargetAmount <= 0 {
		return nil, &domain.ErrValidation{Field: "target_amount", Message: "must be positive"}
	}
	if !domain.ValidPurpose(req.Purpose) {
		return nil, &domain.ErrValidation{Field: "purpose", Message: "unknown goal purpose"}
	}

	g := domain.SavingGoal{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Purpose:        req.Purpose,
		TargetAmount:   req.TargetAmount,
		CurrentAmount:  0,
		Deadline:       req.Deadline,
		ReminderActive: true,
		Locked:         IsLocked(req.Purpose),
	}

	r.mu.Lock()
	r.goals = append(r.goals, g)
	r.mu.Unlock()

	return &g, nil
}

// List returns a copy of all goals in creation order.
func (r *Registry) List() []domain.SavingGoal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.SavingGoal, len(r.goals))
	copy(out, r.goals)
	return out
}

// Get returns the goal with the given id.
func (r *Registry) Get(id string) (*domain.SavingGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.goals {
		if r.goals[i].ID == id {
			g := r.goals[i]
			return &g, nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "saving goal", ID: id}
}

// ToggleReminder flips the reminder flag and returns the updated goal.
func (r *Registry) ToggleReminder(id string) (*domain.SavingGoal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.goals {
		if r.goals[i].ID == id {
			r.goals[i].ReminderActive = !r.goals[i].ReminderActive
			g := r.goals[i]
			return &g, nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "saving goal", ID: id}
}

// Progress computes the goal's funding ratio. The ratio is not clamped:
// over-funded goals report above 1.0. A non-positive target is degenerate
// and reports 0.
func Progress(g domain.SavingGoal) domain.GoalProgress {
	if g.TargetAmount <= 0 {
		return domain.GoalProgress{GoalID: g.ID, Degenerate: true}
	}
	ratio := g.CurrentAmount / g.TargetAmount
	return domain.GoalProgress{GoalID: g.ID, Ratio: ratio, Percent: ratio * 100}
}

// SimulateWithdrawal builds the advisory prompt for a hypothetical draw of
// fraction x currentAmount against the goal. It never mutates the goal;
// the actual risk analysis happens downstream in the advisor.
// A zero fraction falls back to the default half-balance simulation.
func (r *Registry) SimulateWithdrawal(id string, fraction float64, currencyCode string) (*domain.WithdrawalSimulation, error) {
	g, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if fraction < 0 || fraction > 1 {
		return nil, &domain.ErrValidation{Field: "fraction", Message: "must be between 0 and 1"}
	}
	if fraction == 0 {
		fraction = DefaultWithdrawalFraction
	}

	amount := g.CurrentAmount * fraction
	prompt := fmt.Sprintf(
		"I am considering withdrawing %s from my %s (%s) savings goal. Analyze the risk and provide an impact report.",
		finmath.FormatCurrency(amount, currencyCode), g.Name, g.Purpose,
	)

	return &domain.WithdrawalSimulation{
		GoalID:   g.ID,
		GoalName: g.Name,
		Purpose:  g.Purpose,
		Fraction: fraction,
		Amount:   amount,
		Locked:   g.Locked,
		Prompt:   prompt,
	}, nil
}

// Reminders derives the alert list for reminder-active goals: the funding
// shortfall against the deadline. Locked goals are high stakes.
func (r *Registry) Reminders(currencyCode string) []domain.GoalReminder {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.GoalReminder, 0, len(r.goals))
	for _, g := range r.goals {
		if !g.ReminderActive {
			continue
		}
		shortfall := g.TargetAmount - g.CurrentAmount
		if shortfall < 0 {
			shortfall = 0
		}
		msg := fmt.Sprintf("%s needs %s more by %s to stay on track.",
			g.Name, finmath.FormatCurrency(shortfall, currencyCode), g.Deadline)
		if shortfall == 0 {
			msg = fmt.Sprintf("%s is fully funded. Consider raising the target or redirecting contributions.", g.Name)
		}
		out = append(out, domain.GoalReminder{
			GoalID:     g.ID,
			GoalName:   g.Name,
			Message:    msg,
			Shortfall:  shortfall,
			Deadline:   g.Deadline,
			HighStakes: g.Locked,
		})
	}
	return out
}
