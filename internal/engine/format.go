package engine

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for salary formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatSalary formats a salary as "$X,XXX", adding cents only when the value
// is not a whole number ("$X,XXX.XX").
func FormatSalary(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "-"
	}
	if amount == math.Trunc(amount) {
		if math.Abs(amount) < math.MaxInt64 {
			return printer.Sprintf("$%d", int64(amount))
		}
		return printer.Sprintf("$%.0f", amount)
	}
	return printer.Sprintf("$%.2f", amount)
}

// PageIndicator renders "Page P of N" for a result.
func PageIndicator(r Result) string {
	return printer.Sprintf("Page %d of %d", r.Meta.CurrentPage, r.Meta.PageCount())
}
