// Package domain defines the core business entities for the SBM Advisor.
// These models are independent of external services and represent the
// canonical data structures used throughout the backend.
package domain

import "time"

// ============================================================
// Transactions
// ============================================================

// TransactionKind is the direction of a ledger entry.
type TransactionKind string

const (
	KindIncome   TransactionKind = "income"
	KindExpense  TransactionKind = "expense"
	KindTransfer TransactionKind = "transfer"
)

// ValidKind reports whether k is one of the three supported kinds.
func ValidKind(k TransactionKind) bool {
	switch k {
	case KindIncome, KindExpense, KindTransfer:
		return true
	}
	return false
}

// TransactionRecord is a single immutable entry in the session ledger.
// Records are created only after the risk gate clears; they are never
// edited or deleted.
type TransactionRecord struct {
	ID              string          `json:"id"`
	Kind            TransactionKind `json:"kind"`
	Category        string          `json:"category"`
	Amount          float64         `json:"amount"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description,omitempty"`
	ImpactsSavingID string          `json:"impacts_saving_id,omitempty"`
}

// TransactionCandidate is the submitted form data before the risk gate.
type TransactionCandidate struct {
	Kind            TransactionKind `json:"kind"`
	Category        string          `json:"category"`
	Amount          float64         `json:"amount"`
	Description     string          `json:"description,omitempty"`
	ImpactsSavingID string          `json:"impacts_saving_id,omitempty"`
	Override        bool            `json:"override,omitempty"`
}

// LedgerSummary aggregates the ledger for the dashboard balance card.
type LedgerSummary struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetBalance    float64 `json:"net_balance"`
	Count         int     `json:"count"`
}

// ============================================================
// Risk classification
// ============================================================

// RiskSeverity grades a flagged transaction.
type RiskSeverity string

const (
	SeverityMedium RiskSeverity = "medium"
	SeverityHigh   RiskSeverity = "high"
)

// RiskAssessment is the classifier's verdict on a flagged candidate.
// A nil assessment means no risk was found.
type RiskAssessment struct {
	Severity RiskSeverity `json:"severity"`
	Rule     string       `json:"rule"`
	Message  string       `json:"message"`
}

// ============================================================
// Savings goals
// ============================================================

// GoalPurpose categorizes a savings goal and determines lockedness.
type GoalPurpose string

const (
	PurposeSchoolFee  GoalPurpose = "School Fee"
	PurposeHousehold  GoalPurpose = "Household"
	PurposeEmergency  GoalPurpose = "Emergency"
	PurposeInvestment GoalPurpose = "Investment"
	PurposeTravel     GoalPurpose = "Travel"
)

// ValidPurpose reports whether p is a known goal purpose.
func ValidPurpose(p GoalPurpose) bool {
	switch p {
	case PurposeSchoolFee, PurposeHousehold, PurposeEmergency, PurposeInvestment, PurposeTravel:
		return true
	}
	return false
}

// SavingGoal is a protected or unprotected wealth node.
type SavingGoal struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Purpose        GoalPurpose `json:"purpose"`
	TargetAmount   float64     `json:"target_amount"`
	CurrentAmount  float64     `json:"current_amount"`
	Deadline       string      `json:"deadline"` // YYYY-MM-DD
	ReminderActive bool        `json:"reminder_active"`
	RecoveryMode   bool        `json:"recovery_mode,omitempty"`
	Locked         bool        `json:"locked"`
}

// GoalProgress is the registry's progress computation for a goal.
// Ratio is not clamped so over-funded goals stay visible; Degenerate is
// set when targetAmount is not positive and Ratio is forced to 0.
type GoalProgress struct {
	GoalID     string  `json:"goal_id"`
	Ratio      float64 `json:"ratio"`
	Percent    float64 `json:"percent"`
	Degenerate bool    `json:"degenerate,omitempty"`
}

// GoalWithProgress pairs a goal with its computed progress for listings.
type GoalWithProgress struct {
	SavingGoal
	Progress GoalProgress `json:"progress"`
}

// CreateGoalRequest is the body for POST /v1/goals.
type CreateGoalRequest struct {
	Name         string      `json:"name"`
	Purpose      GoalPurpose `json:"purpose"`
	TargetAmount float64     `json:"target_amount"`
	Deadline     string      `json:"deadline,omitempty"`
}

// WithdrawalSimulation describes a hypothetical draw against a goal.
// It is advisory only: building one never debits the goal.
type WithdrawalSimulation struct {
	GoalID   string      `json:"goal_id"`
	GoalName string      `json:"goal_name"`
	Purpose  GoalPurpose `json:"purpose"`
	Fraction float64     `json:"fraction"`
	Amount   float64     `json:"amount"`
	Locked   bool        `json:"locked"`
	Prompt   string      `json:"prompt"`
}

// WithdrawalReport is the simulation outcome plus the advisor's impact
// report.
type WithdrawalReport struct {
	Simulation WithdrawalSimulation `json:"simulation"`
	Advice     string               `json:"advice"`
	Fallback   bool                 `json:"fallback,omitempty"`
}

// GoalReminder is a derived alert for a reminder-active goal.
type GoalReminder struct {
	GoalID     string  `json:"goal_id"`
	GoalName   string  `json:"goal_name"`
	Message    string  `json:"message"`
	Shortfall  float64 `json:"shortfall"`
	Deadline   string  `json:"deadline"`
	HighStakes bool    `json:"high_stakes"`
}

// ============================================================
// User profile
// ============================================================

// UserProfile is the session user's settings and stated financials.
// Currency and language track Country through the locale mapping.
type UserProfile struct {
	Name           string   `json:"name"`
	Gender         string   `json:"gender"`
	Income         float64  `json:"income"`
	IncomeType     string   `json:"income_type"`
	Preferences    []string `json:"preferences"`
	Country        string   `json:"country"`
	Language       string   `json:"language"`
	Currency       string   `json:"currency"`
	DarkMode       bool     `json:"dark_mode"`
	StabilityIndex int      `json:"stability_index"`
}

// ProfileUpdate carries field-by-field settings changes. Pointer fields
// distinguish "unset" from zero values.
type ProfileUpdate struct {
	Name           *string   `json:"name,omitempty"`
	Gender         *string   `json:"gender,omitempty"`
	Income         *float64  `json:"income,omitempty"`
	IncomeType     *string   `json:"income_type,omitempty"`
	Preferences    *[]string `json:"preferences,omitempty"`
	Country        *string   `json:"country,omitempty"`
	Language       *string   `json:"language,omitempty"`
	DarkMode       *bool     `json:"dark_mode,omitempty"`
	StabilityIndex *int      `json:"stability_index,omitempty"`
}

// ============================================================
// EMI forecaster
// ============================================================

// EMIRequest is the body for POST /v1/emi.
type EMIRequest struct {
	Principal     float64 `json:"principal"`
	AnnualRatePct float64 `json:"annual_rate_pct"`
	TermMonths    int     `json:"term_months"`
}

// EMIResult is the forecaster's amortization figures.
type EMIResult struct {
	MonthlyPayment  float64 `json:"monthly_payment"`
	TotalPayable    float64 `json:"total_payable"`
	InterestPayable float64 `json:"interest_payable"`
}

// ============================================================
// Scouting data (tickets / groceries / side income)
// ============================================================

// TicketOption is one transport mode in the travel comparison.
type TicketOption struct {
	Mode     string  `json:"mode"`
	Price    float64 `json:"price"`
	Provider string  `json:"provider"`
	Best     bool    `json:"best"`
}

// GroceryItem compares one staple across retailers.
type GroceryItem struct {
	Item   string             `json:"item"`
	Prices map[string]float64 `json:"prices"`
}

// SideIncomeIdea is one earning channel suggestion.
type SideIncomeIdea struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Platforms   []string `json:"platforms"`
	Description string   `json:"description"`
	Advice      string   `json:"advice"`
}

// LoanAccount is one liability on the portfolio screen. MonthlyImpact is
// the credit-score contribution per on-track repayment cycle.
type LoanAccount struct {
	ID              string  `json:"id"`
	Lender          string  `json:"lender"`
	Type            string  `json:"type"`
	Principal       float64 `json:"principal"`
	InterestRatePct float64 `json:"interest_rate_pct"`
	Paid            float64 `json:"paid"`
	MonthlyImpact   int     `json:"monthly_impact"`
	Status          string  `json:"status"`
	Warning         string  `json:"warning,omitempty"`
}

// ============================================================
// Health & operational API responses
// ============================================================

// HealthStatus is returned by GET /healthz.
type HealthStatus struct {
	Status   string          `json:"status"` // healthy, degraded, unhealthy
	Services []ServiceHealth `json:"services"`
}

// ServiceHealth represents the health of an individual collaborator.
type ServiceHealth struct {
	Name        string `json:"name"`
	Status      string `json:"status"`
	LatencyMs   int64  `json:"latencyMs"`
	LastChecked string `json:"lastChecked"`
}
