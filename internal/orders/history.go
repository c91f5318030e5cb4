package orders

import (
	"context"
	"errors"

	"exchweb/internal/adapters"
	"exchweb/internal/domain"
	"exchweb/internal/format"

	"github.com/sirupsen/logrus"
)

// Status of the history view. The four states are mutually exclusive;
// loading only exists before Load has returned.
type Status string

const (
	StatusLoading Status = "loading"
	StatusEmpty   Status = "empty"
	StatusError   Status = "error"
	StatusOK      Status = "ok"
)

// EmptyMessage is what the history screen shows for StatusEmpty.
const EmptyMessage = "거래 내역이 없습니다."

type Item struct {
	OrderID      int64           `json:"orderId"`
	FromCurrency domain.Currency `json:"fromCurrency"`
	FromAmount   string          `json:"fromAmount"`
	ToCurrency   domain.Currency `json:"toCurrency"`
	ToAmount     string          `json:"toAmount"`
	Rate         string          `json:"rate"`
	OrderedAt    string          `json:"orderedAt"`
}

type View struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
	Orders []Item `json:"orders"`
}

type Service struct {
	client adapters.OrderClient
}

func NewService(client adapters.OrderClient) *Service {
	return &Service{client: client}
}

// Load fetches the order history, always bypassing snapshots so the list
// reflects the very latest completed order. Unauthorized errors are returned
// to the caller for session expiry handling; any other failure becomes the
// view's error state.
func (s *Service) Load(ctx context.Context, token string) (View, error) {
	list, err := s.client.Orders(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return View{}, err
		}
		logrus.WithError(err).WithFields(logrus.Fields{"view": "history"}).Error("Order history fetch failed")
		return View{Status: StatusError, Error: domain.UserMessage(err), Orders: []Item{}}, nil
	}

	if len(list) == 0 {
		return View{Status: StatusEmpty, Orders: []Item{}}, nil
	}

	items := make([]Item, 0, len(list))
	for _, o := range list {
		items = append(items, Item{
			OrderID:      o.OrderID,
			FromCurrency: o.FromCurrency,
			FromAmount:   format.Amount(o.FromAmount),
			ToCurrency:   o.ToCurrency,
			ToAmount:     format.Amount(o.ToAmount),
			Rate:         format.Rate(o.AppliedRate),
			OrderedAt:    format.Date(o.OrderedAt),
		})
	}
	return View{Status: StatusOK, Orders: items}, nil
}
