package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
	"github.com/sbmapp/sbm-advisor-go/internal/service"
)

// ============================================================
// Profile / settings
// ============================================================

func getProfileHandler(budget *service.Budget, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/profile")
		defer span.End()

		writeJSON(w, http.StatusOK, budget.Profile(ctx))
	}
}

func updateProfileHandler(budget *service.Budget, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/profile")
		defer span.End()

		var req domain.ProfileUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		profile, err := budget.UpdateProfile(ctx, req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// ============================================================
// Ledger
// ============================================================

func listTransactionsHandler(budget *service.Budget, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/transactions")
		defer span.End()

		filter := r.URL.Query().Get("type")
		limit := parseLimit(r)

		transactions, err := budget.Transactions(ctx, filter, limit)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"transactions": transactions})
	}
}

func submitTransactionHandler(budget *service.Budget, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/transactions")
		defer span.End()

		var req domain.TransactionCandidate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		span.SetAttributes(attribute.String("transaction.kind", string(req.Kind)))

		rec, assessment, err := budget.SubmitTransaction(ctx, req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		resp := map[string]any{"transaction": rec}
		if assessment != nil {
			resp["assessment"] = assessment
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

func summaryHandler(budget *service.Budget, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/transactions/summary")
		defer span.End()

		writeJSON(w, http.StatusOK, budget.Summary(ctx))
	}
}

// ============================================================
// Savings goals
// ============================================================

func listGoalsHandler(budget *service.Budget, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/goals")
		defer span.End()

		writeJSON(w, http.StatusOK, map[string]any{"goals": budget.Goals(ctx)})
	}
}

func createGoalHandler(budget *service.Budget, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/goals")
		defer span.End()

		var req domain.CreateGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		goal, err := budget.CreateGoal(ctx, req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, goal)
	}
}

func toggleReminderHandler(budget *service.Budget, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/goals/{goalId}/reminder")
		defer span.End()

		goalID := chi.URLParam(r, "goalId")
		span.SetAttributes(attribute.String("goal.id", goalID))

		goal, err := budget.ToggleGoalReminder(ctx, goalID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, goal)
	}
}

func simulateWithdrawalHandler(budget *service.Budget, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/goals/{goalId}/simulate-withdrawal")
		defer span.End()

		goalID := chi.URLParam(r, "goalId")
		span.SetAttributes(attribute.String("goal.id", goalID))

		// Body is optional; an empty body means the default half-balance
		// simulation.
		var req struct {
			Fraction float64 `json:"fraction,omitempty"`
		}
		if r.Body != nil {
			// Ignore EOF on an empty body.
			_ = json.NewDecoder(r.Body).Decode(&req)
		}

		report, err := budget.SimulateWithdrawal(ctx, goalID, req.Fraction)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func listRemindersHandler(budget *service.Budget, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/reminders")
		defer span.End()

		writeJSON(w, http.StatusOK, map[string]any{"reminders": budget.Reminders(ctx)})
	}
}

// ============================================================
// Loan forecaster
// ============================================================

func emiHandler(budget *service.Budget, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/emi")
		defer span.End()

		var req domain.EMIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result, err := budget.ForecastEMI(ctx, req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// ============================================================
// Scout datasets
// ============================================================

func scoutTicketsHandler(budget *service.Budget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"tickets": budget.TicketOptions(r.Context())})
	}
}

func scoutGroceriesHandler(budget *service.Budget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"groceries": budget.GroceryItems(r.Context())})
	}
}

func scoutSideIncomeHandler(budget *service.Budget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ideas": budget.SideIncomeIdeas(r.Context())})
	}
}

func listLoansHandler(budget *service.Budget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"loans": budget.LoanAccounts(r.Context())})
	}
}

func listUPIHandlesHandler(budget *service.Budget) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"handles": budget.UPIHandles(r.Context())})
	}
}
