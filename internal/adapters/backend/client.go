package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"exchweb/internal/domain"

	"github.com/shopspring/decimal"
)

// Client issues requests against the remote exchange backend and normalizes
// its response envelope into typed results or errors. It never retries;
// retry, where it exists, is a caller decision.
type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{http: httpClient, baseURL: strings.TrimSuffix(baseURL, "/")}
}

// envelope is the backend's uniform response wrapper. A code other than
// domain.CodeOK marks a failure regardless of the transport status.
type envelope struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any, token string) (T, error) {
	var zero T

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("failed to encode request body for %s: %w", path, err)
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return zero, fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return zero, fmt.Errorf("failed to execute request for %s: %w", path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err = json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return zero, fmt.Errorf("failed to decode response for %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || env.Code != domain.CodeOK {
		apiErr := &domain.APIError{Code: env.Code, Message: env.Message}
		if apiErr.Code == "" || apiErr.Code == domain.CodeOK {
			apiErr.Code = fmt.Sprintf("HTTP_%d", resp.StatusCode)
		}
		if len(env.Data) > 0 {
			_ = json.Unmarshal(env.Data, &apiErr.Data)
		}
		return zero, apiErr
	}

	var out T
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err = json.Unmarshal(env.Data, &out); err != nil {
			return zero, fmt.Errorf("failed to decode payload for %s: %w", path, err)
		}
	}
	return out, nil
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login exchanges an email for a bearer token. It is the only call issued
// without an Authorization header.
func (c *Client) Login(ctx context.Context, email string) (string, error) {
	res, err := call[loginResponse](ctx, c, http.MethodPost, "/auth/login", nil, map[string]string{"email": email}, "")
	if err != nil {
		return "", err
	}
	return res.AccessToken, nil
}

func (c *Client) LatestRates(ctx context.Context, token string) ([]domain.ExchangeRate, error) {
	return call[[]domain.ExchangeRate](ctx, c, http.MethodGet, "/exchange-rates/latest", nil, nil, token)
}

type quoteResponse struct {
	KRWAmount   decimal.Decimal `json:"krwAmount"`
	AppliedRate float64         `json:"appliedRate"`
}

func (c *Client) Quote(ctx context.Context, token string, pair domain.CurrencyPair, amount decimal.Decimal) (domain.Quote, error) {
	q := url.Values{}
	q.Set("fromCurrency", string(pair.From))
	q.Set("toCurrency", string(pair.To))
	q.Set("amount", amount.String())

	res, err := call[quoteResponse](ctx, c, http.MethodGet, "/orders/quote", q, nil, token)
	if err != nil {
		return domain.Quote{}, err
	}
	return domain.Quote{
		FromCurrency: pair.From,
		ToCurrency:   pair.To,
		ForexAmount:  amount,
		KRWAmount:    res.KRWAmount,
		AppliedRate:  res.AppliedRate,
	}, nil
}

type orderRequest struct {
	RateID       string          `json:"rateId"`
	FromCurrency domain.Currency `json:"fromCurrency"`
	ToCurrency   domain.Currency `json:"toCurrency"`
	Amount       decimal.Decimal `json:"amount"`
}

// SubmitOrder executes an exchange bound to a specific rate snapshot. The
// backend rejects superseded rate identifiers with domain.CodeRateExpired.
func (c *Client) SubmitOrder(ctx context.Context, token string, rateID string, pair domain.CurrencyPair, amount decimal.Decimal) error {
	_, err := call[struct{}](ctx, c, http.MethodPost, "/orders", nil, orderRequest{
		RateID:       rateID,
		FromCurrency: pair.From,
		ToCurrency:   pair.To,
		Amount:       amount,
	}, token)
	return err
}

func (c *Client) Orders(ctx context.Context, token string) ([]domain.ExchangeOrder, error) {
	return call[[]domain.ExchangeOrder](ctx, c, http.MethodGet, "/orders", nil, nil, token)
}

func (c *Client) Wallet(ctx context.Context, token string) (domain.Wallet, error) {
	return call[domain.Wallet](ctx, c, http.MethodGet, "/wallets", nil, nil, token)
}
