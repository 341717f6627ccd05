// Package risk implements the transaction risk classifier: an ordered
// keyword rule table plus an income-relative amount threshold. The rules
// mirror the product's protection policy for academic, liability and
// medical reserves.
package risk

import (
	"strings"

	"github.com/sbmapp/sbm-advisor-go/internal/domain"
)

// LiquidityDrainShare is the share of income above which a single expense
// is flagged as a liquidity drain.
const LiquidityDrainShare = 0.15

// KeywordRule flags categories containing any of its keywords,
// case-insensitively, regardless of transaction kind. Income entries
// matching a protected keyword are flagged too.
type KeywordRule struct {
	Name     string
	Keywords []string
	Severity domain.RiskSeverity
	Message  string
}

// Rules is the ordered rule table, first match wins. The amount threshold
// is evaluated before the table, so an oversized expense in a protected
// category reports as a liquidity drain, not a reserve breach.
var Rules = []KeywordRule{
	{
		Name:     "academic_reserve",
		Keywords: []string{"fee", "college", "school"},
		Severity: domain.SeverityHigh,
		Message:  "Critical Warning: You are using Academic Reserves. This misuse will cause a projected tuition shortage. Recovery plan required.",
	},
	{
		Name:     "liability_reallocation",
		Keywords: []string{"emi", "loan", "mortgage"},
		Severity: domain.SeverityHigh,
		Message:  "Liability Alert: Attempting to reallocate EMI funds. This increases the risk of credit score degradation and penalty fees.",
	},
	{
		Name:     "medical_safety_net",
		Keywords: []string{"med", "health", "hosp"},
		Severity: domain.SeverityHigh,
		Message:  "Safety Net Breach: Withdrawing from Medical Reserves. This reduces your emergency resilience index below recommended levels.",
	},
}

const liquidityDrainMessage = "High Liquidity Drain: This expense exceeds 15% of your income. Neural forecast shows potential savings instability for the next 3 months."

// Classify evaluates a candidate against the rule set. It returns nil when
// no rule matches. Pure and deterministic: identical inputs always yield
// identical assessments.
func Classify(kind domain.TransactionKind, category string, amount, income float64) *domain.RiskAssessment {
	if kind == domain.KindExpense && amount > LiquidityDrainShare*income {
		return &domain.RiskAssessment{
			Severity: domain.SeverityMedium,
			Rule:     "liquidity_drain",
			Message:  liquidityDrainMessage,
		}
	}

	cat := strings.ToLower(category)
	for _, rule := range Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(cat, kw) {
				return &domain.RiskAssessment{
					Severity: rule.Severity,
					Rule:     rule.Name,
					Message:  rule.Message,
				}
			}
		}
	}
	return nil
}
