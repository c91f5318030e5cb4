package exchange

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"exchweb/internal/adapters"
	"exchweb/internal/domain"
	"exchweb/internal/format"
	"exchweb/internal/notify"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Mode of the form: buying foreign currency with won, or selling it back.
type Mode string

const (
	ModeBuy  Mode = "buy"
	ModeSell Mode = "sell"
)

const (
	msgQuotePending     = "견적을 불러오는 중입니다. 잠시만 기다려주세요."
	msgAmountRequired   = "환전 금액을 입력해주세요."
	msgRatesUnavailable = "환율 정보를 불러오는 중입니다. 잠시 후 다시 시도해주세요."
	msgRateNotFound     = "환율 정보를 찾을 수 없습니다."
	msgExchangeDone     = "환전이 완료되었습니다."
)

var (
	ErrInvalidMode         = errors.New("invalid form mode")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

type Notifier interface {
	Push(message string, severity notify.Severity) uuid.UUID
}

type WalletInvalidator interface {
	Invalidate()
}

// Form is the quote/exchange controller. Amount edits restart a debounce
// timer; when it fires with a valid positive amount a quote request is
// issued, tagged with a monotonically increasing sequence number. Only the
// response of the most recently issued request may touch the state —
// superseded responses are dropped, not transport-cancelled.
type Form struct {
	quotes    adapters.QuoteClient
	tokens    adapters.TokenSource
	exec      *Executor
	wallet    WalletInvalidator
	notifier  Notifier
	supported func() []domain.Currency
	debounce  time.Duration

	mu       sync.Mutex
	mode     Mode
	currency domain.Currency
	amount   string
	quote    *domain.Quote
	errMsg   string

	seq            uint64
	timer          *time.Timer
	quoteInFlight  bool
	submitInFlight bool
}

func NewForm(quotes adapters.QuoteClient, tokens adapters.TokenSource, exec *Executor, wallet WalletInvalidator, notifier Notifier, supported func() []domain.Currency, debounce time.Duration) *Form {
	return &Form{
		quotes:    quotes,
		tokens:    tokens,
		exec:      exec,
		wallet:    wallet,
		notifier:  notifier,
		supported: supported,
		debounce:  debounce,
		mode:      ModeBuy,
		currency:  domain.USD,
	}
}

// pairLocked derives the exchange direction: buy is KRW into the selected
// currency, sell is the selected currency back into KRW.
func (f *Form) pairLocked() domain.CurrencyPair {
	if f.mode == ModeBuy {
		return domain.CurrencyPair{From: domain.KRW, To: f.currency}
	}
	return domain.CurrencyPair{From: f.currency, To: domain.KRW}
}

func (f *Form) SetMode(m Mode) error {
	if m != ModeBuy && m != ModeSell {
		return ErrInvalidMode
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if m == f.mode {
		return nil
	}
	f.mode = m
	f.quote = nil
	f.errMsg = ""
	f.rescheduleLocked()
	return nil
}

func (f *Form) SetCurrency(c domain.Currency) error {
	if c.IsKRW() || !slices.Contains(f.supported(), c) {
		return ErrUnsupportedCurrency
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if c == f.currency {
		return nil
	}
	f.currency = c
	f.quote = nil
	f.errMsg = ""
	f.rescheduleLocked()
	return nil
}

func (f *Form) SetAmount(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.amount = strings.TrimSpace(s)
	f.quote = nil
	if _, ok := parseAmount(f.amount); !ok {
		f.errMsg = ""
	}
	f.rescheduleLocked()
}

// rescheduleLocked cancels any pending quote request and, if the current
// amount is a valid positive number, schedules a new one after the debounce
// window. Advancing seq orphans whatever is already in flight.
func (f *Form) rescheduleLocked() {
	f.seq++
	f.quoteInFlight = false
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}

	amt, ok := parseAmount(f.amount)
	if !ok {
		f.quote = nil
		return
	}

	pair := f.pairLocked()
	f.timer = time.AfterFunc(f.debounce, func() { f.issueQuote(pair, amt) })
}

func (f *Form) issueQuote(pair domain.CurrencyPair, amount decimal.Decimal) {
	f.mu.Lock()
	// The state may have moved between the timer firing and this lock;
	// in that case a newer timer owns the next request.
	cur, ok := parseAmount(f.amount)
	if !ok || f.pairLocked() != pair || !cur.Equal(amount) {
		f.mu.Unlock()
		return
	}
	f.seq++
	seq := f.seq
	f.quoteInFlight = true
	f.mu.Unlock()

	token, hasToken := f.tokens.Token()
	if !hasToken {
		f.applyQuoteResult(seq, domain.Quote{}, domain.ErrUnauthorized)
		return
	}

	quote, err := f.quotes.Quote(context.Background(), token, pair, amount)
	f.applyQuoteResult(seq, quote, err)
}

func (f *Form) applyQuoteResult(seq uint64, quote domain.Quote, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.seq {
		return // superseded by a newer request
	}
	f.quoteInFlight = false

	if err != nil {
		f.quote = nil
		f.errMsg = domain.UserMessage(err)
		f.notifier.Push(f.errMsg, notify.SeverityError)
		return
	}
	f.quote = &quote
	f.errMsg = ""
}

// Submit executes the exchange on explicit user confirmation. Local
// validation failures never reach the network. A non-nil error is returned
// only for an expired session, so the web layer can clear it and redirect;
// every other failure is reflected in the returned state and notified.
func (f *Form) Submit(ctx context.Context) (State, error) {
	f.mu.Lock()
	if f.submitInFlight {
		st := f.stateLocked()
		f.mu.Unlock()
		return st, nil
	}
	if f.quote == nil {
		f.errMsg = msgQuotePending
		st := f.stateLocked()
		f.mu.Unlock()
		return st, nil
	}
	amt, ok := parseAmount(f.amount)
	if !ok {
		f.errMsg = msgAmountRequired
		st := f.stateLocked()
		f.mu.Unlock()
		return st, nil
	}
	pair := f.pairLocked()
	f.submitInFlight = true
	f.mu.Unlock()

	err := f.exec.Execute(ctx, pair, amt)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitInFlight = false

	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return f.stateLocked(), err
		}
		f.errMsg = submitMessage(err)
		f.notifier.Push(f.errMsg, notify.SeverityError)
		// quote stays so the user can retry without re-entering data
		return f.stateLocked(), nil
	}

	f.seq++ // orphan any in-flight quote response
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.amount = ""
	f.quote = nil
	f.errMsg = ""
	f.quoteInFlight = false
	f.wallet.Invalidate()
	f.notifier.Push(msgExchangeDone, notify.SeveritySuccess)
	return f.stateLocked(), nil
}

func submitMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrRateUnavailable):
		return msgRateNotFound
	case errors.Is(err, ErrFreshRates):
		return msgRatesUnavailable
	}
	return domain.UserMessage(err)
}

// Reset drops all form state, e.g. on logout.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.mode = ModeBuy
	f.currency = domain.USD
	f.amount = ""
	f.quote = nil
	f.errMsg = ""
	f.quoteInFlight = false
	f.submitInFlight = false
}

type QuoteView struct {
	Summary     string  `json:"summary"`
	RateLine    string  `json:"rateLine"`
	KRWAmount   string  `json:"krwAmount"`
	AppliedRate float64 `json:"appliedRate"`
}

type State struct {
	Mode          Mode              `json:"mode"`
	Currency      domain.Currency   `json:"currency"`
	FromCurrency  domain.Currency   `json:"fromCurrency"`
	ToCurrency    domain.Currency   `json:"toCurrency"`
	Amount        string            `json:"amount"`
	Currencies    []domain.Currency `json:"currencies"`
	Quote         *QuoteView        `json:"quote,omitempty"`
	Error         string            `json:"error,omitempty"`
	QuotePending  bool              `json:"quotePending"`
	SubmitPending bool              `json:"submitPending"`
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stateLocked()
}

func (f *Form) stateLocked() State {
	pair := f.pairLocked()
	return State{
		Mode:          f.mode,
		Currency:      f.currency,
		FromCurrency:  pair.From,
		ToCurrency:    pair.To,
		Amount:        f.amount,
		Currencies:    f.supported(),
		Quote:         f.quoteViewLocked(),
		Error:         f.errMsg,
		QuotePending:  f.quoteInFlight,
		SubmitPending: f.submitInFlight,
	}
}

func (f *Form) quoteViewLocked() *QuoteView {
	if f.quote == nil {
		return nil
	}
	won := format.KRW(f.quote.KRWAmount)
	summary := won + " 원이 필요해요"
	if f.mode == ModeSell {
		summary = won + " 원을 받을 수 있어요"
	}
	return &QuoteView{
		Summary:     summary,
		RateLine:    fmt.Sprintf("1 %s = %s 원", f.currency, format.Rate(f.quote.AppliedRate)),
		KRWAmount:   won,
		AppliedRate: f.quote.AppliedRate,
	}
}

func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	return d, true
}
