package finmath

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Display locale per currency. INR uses Indian digit grouping (1,00,000).
var currencyLocales = map[string]language.Tag{
	"USD": language.AmericanEnglish,
	"INR": language.MustParse("en-IN"),
	"EUR": language.MustParse("en-IE"),
	"GBP": language.BritishEnglish,
}

// FormatCurrency renders an amount for display: currency symbol plus the
// locale's 2-decimal grouped number. Unknown or non-ISO codes fall back to
// "CODE 123.45" rather than failing the render.
func FormatCurrency(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %.2f", code, amount)
	}

	tag, ok := currencyLocales[unit.String()]
	if !ok {
		tag = language.AmericanEnglish
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v%v",
		currency.Symbol(unit),
		number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)),
	)
}
