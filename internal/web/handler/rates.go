package handler

import (
	"fmt"
	"net/http"
	"time"

	"exchweb/internal/domain"
	"exchweb/internal/format"
	"exchweb/internal/rates"
)

type RateItem struct {
	RateID     string          `json:"rateId"`
	Currency   domain.Currency `json:"currency"`
	Rate       float64         `json:"rate"`
	RateText   string          `json:"rateText"`
	ChangePct  float64         `json:"changePct"`
	ChangeText string          `json:"changeText"`
	Timestamp  time.Time       `json:"timestamp"`
}

type RatesResponse struct {
	Status    string     `json:"status"`
	Rates     []RateItem `json:"rates"`
	Error     string     `json:"error,omitempty"`
	FetchedAt time.Time  `json:"fetchedAt,omitempty"`
}

// ExchangeRates serves the rate board snapshot. Before the first successful
// poll the board is loading; after that it always carries the last fetched
// rates, with the error of a failed refresh alongside instead of replacing
// them.
//
//	@Summary	Current exchange rate board
//	@Tags		rates
//	@Produce	json
//	@Success	200	{object}	RatesResponse
//	@Router		/api/exchange-rates [get]
func (h *Handler) ExchangeRates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ratesResponseOf(h.rates.Snapshot()))
}

func ratesResponseOf(snap rates.Snapshot, ok bool) RatesResponse {
	if !ok || len(snap.Rates) == 0 {
		return RatesResponse{Status: "loading", Rates: []RateItem{}, Error: snap.LastErr}
	}
	items := make([]RateItem, 0, len(snap.Rates))
	for _, rt := range snap.Rates {
		items = append(items, RateItem{
			RateID:     rt.RateID,
			Currency:   rt.Currency,
			Rate:       rt.Rate,
			RateText:   format.Rate(rt.Rate),
			ChangePct:  rt.ChangePct,
			ChangeText: fmt.Sprintf("%+.2f%%", rt.ChangePct),
			Timestamp:  rt.Timestamp,
		})
	}
	return RatesResponse{Status: "ok", Rates: items, Error: snap.LastErr, FetchedAt: snap.FetchedAt}
}
