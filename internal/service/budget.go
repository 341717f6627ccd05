package service

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
	"github.com/sbmapp/sbm-advisor-go/internal/finmath"
	"github.com/sbmapp/sbm-advisor-go/internal/goals"
	"github.com/sbmapp/sbm-advisor-go/internal/infra/observability"
	"github.com/sbmapp/sbm-advisor-go/internal/ledger"
	"github.com/sbmapp/sbm-advisor-go/internal/session"
)

// Budget is the core dashboard service: ledger operations guarded by the
// risk classifier, savings goals, EMI forecasting and profile settings.
type Budget struct {
	sess    *session.Session
	advisor *Advisor
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewBudget creates the budget service.
func NewBudget(sess *session.Session, advisor *Advisor, metrics *observability.Metrics, logger *zap.Logger) *Budget {
	return &Budget{
		sess:    sess,
		advisor: advisor,
		metrics: metrics,
		logger:  logger,
	}
}

// Profile returns the session profile.
func (b *Budget) Profile(ctx context.Context) domain.UserProfile {
	_, span := tracer.Start(ctx, "Budget.Profile")
	defer span.End()

	return b.sess.Profile()
}

// UpdateProfile applies a settings change.
func (b *Budget) UpdateProfile(ctx context.Context, u domain.ProfileUpdate) (domain.UserProfile, error) {
	_, span := tracer.Start(ctx, "Budget.UpdateProfile")
	defer span.End()

	p, err := b.sess.UpdateProfile(u)
	if err != nil {
		return domain.UserProfile{}, err
	}
	if u.Country != nil {
		b.logger.Info("regional settings derived",
			zap.String("country", p.Country),
			zap.String("currency", p.Currency),
			zap.String("language", p.Language),
		)
	}
	return p, nil
}

// SubmitTransaction runs the candidate through the risk gate and appends
// it to the ledger. A blocked candidate returns ErrRiskBlocked carrying
// the assessment; an overridden risky candidate is appended and the
// assessment returned alongside.
func (b *Budget) SubmitTransaction(ctx context.Context, c domain.TransactionCandidate) (*domain.TransactionRecord, *domain.RiskAssessment, error) {
	_, span := tracer.Start(ctx, "Budget.SubmitTransaction")
	defer span.End()
	span.SetAttributes(
		attribute.String("transaction.kind", string(c.Kind)),
		attribute.Float64("transaction.amount", c.Amount),
	)

	rec, assessment, err := b.sess.Ledger.Append(c, b.sess.Income())
	if err != nil {
		var blocked *domain.ErrRiskBlocked
		if errors.As(err, &blocked) {
			b.metrics.IncrRiskBlock(blocked.Assessment.Rule)
			b.logger.Info("transaction blocked by risk gate",
				zap.String("rule", blocked.Assessment.Rule),
				zap.String("severity", string(blocked.Assessment.Severity)),
				zap.Float64("amount", c.Amount),
			)
		}
		return nil, nil, err
	}

	b.metrics.IncrLedgerEvent(string(rec.Kind))
	if assessment != nil {
		b.logger.Info("risky transaction overridden",
			zap.String("rule", assessment.Rule),
			zap.String("id", rec.ID),
		)
	}
	return rec, assessment, nil
}

// Transactions lists ledger records newest first.
func (b *Budget) Transactions(ctx context.Context, filter string, limit int) ([]domain.TransactionRecord, error) {
	_, span := tracer.Start(ctx, "Budget.Transactions")
	defer span.End()

	f, err := ledger.ParseFilter(filter)
	if err != nil {
		return nil, err
	}
	return b.sess.Ledger.List(f, limit), nil
}

// Summary returns the income/expense/net totals.
func (b *Budget) Summary(ctx context.Context) domain.LedgerSummary {
	_, span := tracer.Start(ctx, "Budget.Summary")
	defer span.End()

	return b.sess.Ledger.Summary()
}

// Goals lists all savings goals with their progress.
func (b *Budget) Goals(ctx context.Context) []domain.GoalWithProgress {
	_, span := tracer.Start(ctx, "Budget.Goals")
	defer span.End()

	list := b.sess.Goals.List()
	out := make([]domain.GoalWithProgress, 0, len(list))
	for _, g := range list {
		out = append(out, domain.GoalWithProgress{
			SavingGoal: g,
			Progress:   goals.Progress(g),
		})
	}
	return out
}

// CreateGoal adds a new savings goal.
func (b *Budget) CreateGoal(ctx context.Context, req domain.CreateGoalRequest) (*domain.SavingGoal, error) {
	_, span := tracer.Start(ctx, "Budget.CreateGoal")
	defer span.End()

	g, err := b.sess.Goals.Create(req)
	if err != nil {
		return nil, err
	}
	b.logger.Info("savings goal created",
		zap.String("id", g.ID),
		zap.String("purpose", string(g.Purpose)),
		zap.Bool("locked", g.Locked),
	)
	return g, nil
}

// ToggleGoalReminder flips a goal's reminder flag.
func (b *Budget) ToggleGoalReminder(ctx context.Context, id string) (*domain.SavingGoal, error) {
	_, span := tracer.Start(ctx, "Budget.ToggleGoalReminder")
	defer span.End()

	return b.sess.Goals.ToggleReminder(id)
}

// SimulateWithdrawal builds the hypothetical-draw prompt for a goal and
// forwards it to the advisor. The goal balance is never touched; the
// result pairs the simulation with the advisor's impact report.
func (b *Budget) SimulateWithdrawal(ctx context.Context, goalID string, fraction float64) (*domain.WithdrawalReport, error) {
	ctx, span := tracer.Start(ctx, "Budget.SimulateWithdrawal")
	defer span.End()
	span.SetAttributes(attribute.String("goal.id", goalID))

	sim, err := b.sess.Goals.SimulateWithdrawal(goalID, fraction, b.sess.Currency())
	if err != nil {
		return nil, err
	}

	start := time.Now()
	advice, err := b.advisor.GetAdvice(ctx, sim.Prompt)
	if err != nil {
		return nil, err
	}
	b.metrics.RecordRequestDuration("simulate_withdrawal", time.Since(start))

	return &domain.WithdrawalReport{
		Simulation: *sim,
		Advice:     advice.Response.Advice,
		Fallback:   advice.Response.Fallback,
	}, nil
}

// Reminders derives alerts for reminder-active goals.
func (b *Budget) Reminders(ctx context.Context) []domain.GoalReminder {
	_, span := tracer.Start(ctx, "Budget.Reminders")
	defer span.End()

	return b.sess.Goals.Reminders(b.sess.Currency())
}

// ForecastEMI computes the loan forecast.
func (b *Budget) ForecastEMI(ctx context.Context, req domain.EMIRequest) (*domain.EMIResult, error) {
	_, span := tracer.Start(ctx, "Budget.ForecastEMI")
	defer span.End()

	return finmath.Forecast(req)
}

// Scout datasets back the comparison screens. Static demo data.

func (b *Budget) TicketOptions(ctx context.Context) []domain.TicketOption {
	return domain.TicketComparisons()
}

func (b *Budget) GroceryItems(ctx context.Context) []domain.GroceryItem {
	return domain.GroceryComparisons()
}

func (b *Budget) SideIncomeIdeas(ctx context.Context) []domain.SideIncomeIdea {
	return domain.SideIncomeIdeas()
}

func (b *Budget) LoanAccounts(ctx context.Context) []domain.LoanAccount {
	return domain.LoanAccounts()
}

func (b *Budget) UPIHandles(ctx context.Context) []string {
	return domain.UPIHandles()
}
