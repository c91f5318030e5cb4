package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"exchweb/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestClient_Login_Success_NoBearerHeader(t *testing.T) {
	var gotAuth, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		buf := make([]byte, 256)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"OK","message":"","data":{"accessToken":"tok-123"}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	token, err := c.Login(context.Background(), "user@example.com")
	require.NoError(t, err)
	require.Equal(t, "tok-123", token)
	require.Equal(t, "/auth/login", gotPath)
	require.Empty(t, gotAuth)
	require.JSONEq(t, `{"email":"user@example.com"}`, gotBody)
}

func TestClient_LatestRates_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"OK","data":[
			{"rateId":"r-1","currency":"USD","rate":1300,"changePct":0.4,"timestamp":"2025-01-02T15:04:05Z"},
			{"rateId":"r-2","currency":"JPY","rate":9.12,"changePct":-0.1,"timestamp":"2025-01-02T15:04:05Z"}
		]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	rates, err := c.LatestRates(context.Background(), "tok-123")
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.Len(t, rates, 2)
	require.Equal(t, "r-1", rates[0].RateID)
	require.Equal(t, domain.USD, rates[0].Currency)
	require.InDelta(t, 1300.0, rates[0].Rate, 1e-9)
	require.True(t, rates[0].Timestamp.Equal(time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)))
}

func TestClient_Quote_BuildsQueryAndResult(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"OK","data":{"krwAmount":130000,"appliedRate":1300}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)
	pair := domain.CurrencyPair{From: domain.KRW, To: domain.USD}

	quote, err := c.Quote(context.Background(), "tok", pair, decimal.NewFromInt(100))
	require.NoError(t, err)
	require.Contains(t, gotQuery, "fromCurrency=KRW")
	require.Contains(t, gotQuery, "toCurrency=USD")
	require.Contains(t, gotQuery, "amount=100")
	require.Equal(t, domain.KRW, quote.FromCurrency)
	require.Equal(t, domain.USD, quote.ToCurrency)
	require.True(t, quote.KRWAmount.Equal(decimal.NewFromInt(130000)))
	require.InDelta(t, 1300.0, quote.AppliedRate, 1e-9)
}

func TestClient_NonOKCode_ReturnsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"EXCHANGE_RATE_EXPIRED","message":"rate snapshot superseded"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	err := c.SubmitOrder(context.Background(), "tok", "r-0",
		domain.CurrencyPair{From: domain.KRW, To: domain.USD}, decimal.NewFromInt(100))
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrStaleRate)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, domain.CodeRateExpired, apiErr.Code)
	require.Equal(t, "rate snapshot superseded", apiErr.Message)
}

func TestClient_NonOKCodeOn200_IsStillAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"UNAUTHORIZED","message":"token expired"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	_, err := c.Wallet(context.Background(), "stale-token")
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_NonJSONFailure_WrapsDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	_, err := c.Orders(context.Background(), "tok")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode response for /orders")

	var apiErr *domain.APIError
	require.False(t, errors.As(err, &apiErr))
}

func TestClient_ErrorWithoutCode_FallsBackToHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"upstream unavailable"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	_, err := c.Wallet(context.Background(), "tok")
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "HTTP_502", apiErr.Code)
	require.Equal(t, "upstream unavailable", apiErr.Message)
}

func TestClient_Wallet_DecodesBalances(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"OK","data":{
			"totalAmount":"1500000.50",
			"balances":[{"currency":"KRW","amount":"1370000.50"},{"currency":"USD","amount":"100"}]
		}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	wallet, err := c.Wallet(context.Background(), "tok")
	require.NoError(t, err)
	require.True(t, wallet.TotalAmount.Equal(decimal.RequireFromString("1500000.50")))
	require.Len(t, wallet.Balances, 2)
	require.True(t, wallet.Balance(domain.USD).Equal(decimal.NewFromInt(100)))
	require.True(t, wallet.Balance(domain.EUR).IsZero())
}
