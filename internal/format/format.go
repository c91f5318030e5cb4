package format

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Korean)

// Amount renders a monetary amount with thousands grouping and exactly two
// fraction digits, e.g. "1,234.56".
func Amount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprint(number.Decimal(f,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// KRW renders a won amount with thousands grouping and no padded fraction,
// e.g. "130,000". Fractional won survive up to two digits.
func KRW(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(2)))
}

// Rate renders an exchange rate with four fixed fraction digits and no
// grouping, e.g. "1300.0000".
func Rate(r float64) string {
	return printer.Sprint(number.Decimal(r,
		number.MinFractionDigits(4), number.MaxFractionDigits(4),
		number.NoSeparator()))
}

// Date renders a timestamp the way the history screen shows it,
// e.g. "2025. 01. 02. 15:04".
func Date(t time.Time) string {
	return t.Format("2006. 01. 02. 15:04")
}
