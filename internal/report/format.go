package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Dutch)

// FormatAmount renders an amount in Dutch euro notation, e.g. "€ 1.234,50".
func FormatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("€ %.2f", f)
}
