// Package finmath holds the pure financial math used by the forecaster
// screens: EMI amortization and currency display formatting.
package finmath

import (
	"math"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
)

// ComputeMonthlyPayment returns the level monthly installment for a loan.
//
// payment = P * r * (1+r)^n / ((1+r)^n - 1), with r the monthly rate.
//
// A zero rate makes the closed form 0/0; 0% is treated as straight-line
// repayment (principal / term).
func ComputeMonthlyPayment(principal, annualRatePct float64, termMonths int) (float64, error) {
	if principal < 0 {
		return 0, &domain.ErrValidation{Field: "principal", Message: "must be non-negative"}
	}
	if annualRatePct < 0 {
		return 0, &domain.ErrValidation{Field: "annual_rate_pct", Message: "must be non-negative"}
	}
	if termMonths <= 0 {
		return 0, &domain.ErrValidation{Field: "term_months", Message: "must be positive"}
	}

	if annualRatePct == 0 {
		return principal / float64(termMonths), nil
	}

	r := annualRatePct / 12 / 100
	growth := math.Pow(1+r, float64(termMonths))
	return principal * r * growth / (growth - 1), nil
}

// Forecast computes the full EMI result for the forecaster endpoint.
func Forecast(req domain.EMIRequest) (*domain.EMIResult, error) {
	payment, err := ComputeMonthlyPayment(req.Principal, req.AnnualRatePct, req.TermMonths)
	if err != nil {
		return nil, err
	}
	total := payment * float64(req.TermMonths)
	return &domain.EMIResult{
		MonthlyPayment:  payment,
		TotalPayable:    total,
		InterestPayable: total - req.Principal,
	}, nil
}
