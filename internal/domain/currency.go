package domain

// Currency is an ISO 4217 code from the closed set the backend trades.
type Currency string

const (
	KRW Currency = "KRW"
	USD Currency = "USD"
	EUR Currency = "EUR"
	JPY Currency = "JPY"
)

func (c Currency) IsKRW() bool { return c == KRW }

// CurrencyPair is a from/to pair of an exchange. From and To must differ.
type CurrencyPair struct {
	From Currency
	To   Currency
}

// Foreign returns the non-KRW side of the pair. Every pair the backend
// trades has KRW on exactly one side.
func (p CurrencyPair) Foreign() Currency {
	if p.From.IsKRW() {
		return p.To
	}
	return p.From
}
