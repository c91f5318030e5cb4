package domain

import (
	"errors"
	"fmt"
)

// Machine-readable codes of the backend response envelope. Any code other
// than CodeOK marks the response as failed regardless of transport status.
const (
	CodeOK                  = "OK"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeBadRequest          = "BAD_REQUEST"
	CodeValidation          = "VALIDATION_ERROR"
	CodeInsufficientBalance = "WALLET_INSUFFICIENT_BALANCE"
	CodeRateExpired         = "EXCHANGE_RATE_EXPIRED"
)

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrStaleRate           = errors.New("exchange rate identifier expired")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrRateUnavailable     = errors.New("no rate available for currency")
)

// APIError carries the error envelope of a failed backend call.
type APIError struct {
	Code    string
	Message string
	Data    map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %s: %s", e.Code, e.Message)
}

// Unwrap maps well-known envelope codes to sentinel errors so callers can
// branch with errors.Is without inspecting codes themselves.
func (e *APIError) Unwrap() error {
	switch e.Code {
	case CodeUnauthorized:
		return ErrUnauthorized
	case CodeRateExpired:
		return ErrStaleRate
	case CodeInsufficientBalance:
		return ErrInsufficientBalance
	}
	return nil
}

const MsgTemporaryError = "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요."

// UserMessage returns the Korean message shown to the user for this error.
func (e *APIError) UserMessage() string {
	switch e.Code {
	case CodeUnauthorized:
		return "인증이 필요합니다. 다시 로그인해주세요."
	case CodeInsufficientBalance:
		return "지갑의 잔액이 부족합니다."
	case CodeValidation:
		if e.Message != "" {
			return e.Message
		}
		return "입력한 정보를 확인해주세요."
	case CodeBadRequest:
		if e.Message != "" {
			return e.Message
		}
		return "잘못된 요청입니다."
	}
	if e.Message != "" {
		return e.Message
	}
	return MsgTemporaryError
}

// UserMessage resolves any error to a user-facing Korean message.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return MsgTemporaryError
}
