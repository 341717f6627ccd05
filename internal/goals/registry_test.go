package goals_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
	"github.com/sbmapp/sbm-advisor-go/internal/goals"
)

func seedGoals() []domain.SavingGoal {
	return []domain.SavingGoal{
		{ID: "s1", Name: "Academic Tuition", Purpose: domain.PurposeSchoolFee, TargetAmount: 15000, CurrentAmount: 12400, Deadline: "2025-08-01", ReminderActive: true},
		{ID: "s2", Name: "Emergency Safety Net", Purpose: domain.PurposeEmergency, TargetAmount: 20000, CurrentAmount: 4500, Deadline: "2026-01-01", ReminderActive: true},
		{ID: "s3", Name: "Wealth Portfolio", Purpose: domain.PurposeInvestment, TargetAmount: 50000, CurrentAmount: 12000, Deadline: "2027-12-31", ReminderActive: false},
	}
}

func TestIsLocked(t *testing.T) {
	cases := []struct {
		purpose domain.GoalPurpose
		want    bool
	}{
		{domain.PurposeSchoolFee, true},
		{domain.PurposeEmergency, true},
		{domain.PurposeHousehold, false},
		{domain.PurposeInvestment, false},
		{domain.PurposeTravel, false},
	}
	for _, tc := range cases {
		if got := goals.IsLocked(tc.purpose); got != tc.want {
			t.Errorf("IsLocked(%q) = %v, want %v", tc.purpose, got, tc.want)
		}
	}
}

func TestNewRegistry_DerivesLocked(t *testing.T) {
	r := goals.NewRegistry(seedGoals())

	list := r.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 goals, got %d", len(list))
	}
	for _, g := range list {
		want := goals.IsLocked(g.Purpose)
		if g.Locked != want {
			t.Errorf("goal %s: Locked = %v, want %v", g.ID, g.Locked, want)
		}
	}
}

func TestCreate(t *testing.T) {
	r := goals.NewRegistry(nil)

	g, err := r.Create(domain.CreateGoalRequest{
		Name:         "House Downpayment",
		Purpose:      domain.PurposeHousehold,
		TargetAmount: 30000,
		Deadline:     "2028-06-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.ID == "" {
		t.Error("expected a generated id")
	}
	if g.CurrentAmount != 0 {
		t.Errorf("new goal must start at zero, got %v", g.CurrentAmount)
	}
	if !g.ReminderActive {
		t.Error("new goals start with reminders active")
	}
	if g.Locked {
		t.Error("household goal must not be locked")
	}

	locked, err := r.Create(domain.CreateGoalRequest{
		Name:         "Spring Semester",
		Purpose:      domain.PurposeSchoolFee,
		TargetAmount: 5000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !locked.Locked {
		t.Error("school fee goal must be locked")
	}

	if len(r.List()) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(r.List()))
	}
}

func TestCreate_Validation(t *testing.T) {
	r := goals.NewRegistry(nil)

	cases := []struct {
		name string
		req  domain.CreateGoalRequest
	}{
		{"empty name", domain.CreateGoalRequest{Purpose: domain.PurposeTravel, TargetAmount: 100}},
		{"blank name", domain.CreateGoalRequest{Name: "   ", Purpose: domain.PurposeTravel, TargetAmount: 100}},
		{"zero target", domain.CreateGoalRequest{Name: "Trip", Purpose: domain.PurposeTravel}},
		{"negative target", domain.CreateGoalRequest{Name: "Trip", Purpose: domain.PurposeTravel, TargetAmount: -5}},
		{"bad purpose", domain.CreateGoalRequest{Name: "Trip", Purpose: "Yacht", TargetAmount: 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Create(tc.req)
			var verr *domain.ErrValidation
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
	if len(r.List()) != 0 {
		t.Errorf("rejected requests must not add goals, got %d", len(r.List()))
	}
}

func TestToggleReminder(t *testing.T) {
	r := goals.NewRegistry(seedGoals())

	g, err := r.ToggleReminder("s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.ReminderActive {
		t.Error("s1 started active, toggle must deactivate")
	}

	g, err = r.ToggleReminder("s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.ReminderActive {
		t.Error("second toggle must reactivate")
	}

	_, err = r.ToggleReminder("missing")
	var nf *domain.ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestProgress(t *testing.T) {
	cases := []struct {
		name       string
		goal       domain.SavingGoal
		wantRatio  float64
		degenerate bool
	}{
		{"partial", domain.SavingGoal{ID: "a", TargetAmount: 200, CurrentAmount: 50}, 0.25, false},
		{"overfunded unclamped", domain.SavingGoal{ID: "b", TargetAmount: 100, CurrentAmount: 150}, 1.5, false},
		{"zero target degenerate", domain.SavingGoal{ID: "c", TargetAmount: 0, CurrentAmount: 50}, 0, true},
		{"negative target degenerate", domain.SavingGoal{ID: "d", TargetAmount: -10}, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := goals.Progress(tc.goal)
			if p.Ratio != tc.wantRatio {
				t.Errorf("Ratio = %v, want %v", p.Ratio, tc.wantRatio)
			}
			if p.Percent != tc.wantRatio*100 {
				t.Errorf("Percent = %v, want %v", p.Percent, tc.wantRatio*100)
			}
			if p.Degenerate != tc.degenerate {
				t.Errorf("Degenerate = %v, want %v", p.Degenerate, tc.degenerate)
			}
		})
	}
}

func TestSimulateWithdrawal_DefaultFraction(t *testing.T) {
	r := goals.NewRegistry(seedGoals())

	sim, err := r.SimulateWithdrawal("s1", 0, "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sim.Fraction != goals.DefaultWithdrawalFraction {
		t.Errorf("Fraction = %v, want %v", sim.Fraction, goals.DefaultWithdrawalFraction)
	}
	if sim.Amount != 6200 {
		t.Errorf("Amount = %v, want 6200", sim.Amount)
	}
	if !sim.Locked {
		t.Error("school fee simulation must be flagged locked")
	}
	if !strings.Contains(sim.Prompt, "$6,200.00") {
		t.Errorf("prompt missing formatted amount: %q", sim.Prompt)
	}
	if !strings.Contains(sim.Prompt, "Academic Tuition (School Fee)") {
		t.Errorf("prompt missing goal context: %q", sim.Prompt)
	}
	if !strings.Contains(sim.Prompt, "Analyze the risk and provide an impact report.") {
		t.Errorf("prompt missing analysis instruction: %q", sim.Prompt)
	}
}

func TestSimulateWithdrawal_NeverMutates(t *testing.T) {
	r := goals.NewRegistry(seedGoals())

	if _, err := r.SimulateWithdrawal("s2", 0.8, "USD"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g, err := r.Get("s2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.CurrentAmount != 4500 {
		t.Errorf("simulation mutated balance: %v", g.CurrentAmount)
	}
}

func TestSimulateWithdrawal_Errors(t *testing.T) {
	r := goals.NewRegistry(seedGoals())

	_, err := r.SimulateWithdrawal("nope", 0.5, "USD")
	var nf *domain.ErrNotFound
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	_, err = r.SimulateWithdrawal("s1", 1.5, "USD")
	var verr *domain.ErrValidation
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = r.SimulateWithdrawal("s1", -0.25, "USD")
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for negative fraction, got %v", err)
	}
}

func TestReminders(t *testing.T) {
	r := goals.NewRegistry(seedGoals())

	rem := r.Reminders("USD")
	if len(rem) != 2 {
		t.Fatalf("expected 2 reminders (s3 inactive), got %d", len(rem))
	}
	byID := map[string]domain.GoalReminder{}
	for _, x := range rem {
		byID[x.GoalID] = x
	}

	s1 := byID["s1"]
	if s1.Shortfall != 2600 {
		t.Errorf("s1 shortfall = %v, want 2600", s1.Shortfall)
	}
	if !s1.HighStakes {
		t.Error("s1 is locked, reminder must be high stakes")
	}
	if !strings.Contains(s1.Message, "$2,600.00") {
		t.Errorf("s1 message missing formatted shortfall: %q", s1.Message)
	}

	s2 := byID["s2"]
	if s2.Shortfall != 15500 {
		t.Errorf("s2 shortfall = %v, want 15500", s2.Shortfall)
	}
}

func TestReminders_FullyFunded(t *testing.T) {
	r := goals.NewRegistry([]domain.SavingGoal{
		{ID: "f1", Name: "Done Deal", Purpose: domain.PurposeTravel, TargetAmount: 100, CurrentAmount: 180, Deadline: "2026-01-01", ReminderActive: true},
	})

	rem := r.Reminders("USD")
	if len(rem) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(rem))
	}
	if rem[0].Shortfall != 0 {
		t.Errorf("shortfall = %v, want 0", rem[0].Shortfall)
	}
	if !strings.Contains(rem[0].Message, "fully funded") {
		t.Errorf("unexpected message: %q", rem[0].Message)
	}
}
