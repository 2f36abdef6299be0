package openweather

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Op names a gateway operation
type Op string

const (
	OpCurrent      Op = "current"
	OpCity         Op = "city"
	OpForecast     Op = "forecast"
	OpAirPollution Op = "air_pollution"
	OpUV           Op = "uv"
)

// Fallback is the message reported when the upstream gives none
func (o Op) Fallback() string {
	switch o {
	case OpCurrent:
		return "weather information unavailable"
	case OpCity:
		return "city not found"
	case OpForecast:
		return "forecast unavailable"
	case OpAirPollution:
		return "air pollution data unavailable"
	case OpUV:
		return "uv index unavailable"
	default:
		return "weather service unavailable"
	}
}

// APIError is returned by every failed gateway call.
// Message is the upstream "message" field, or the operation's fallback.
type APIError struct {
	Op         Op
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Detail includes the operation and the underlying cause, for logs
func (e *APIError) Detail() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
}

var errMissingCoordinates = errors.New("response has no coordinates")

// ErrNotSent marks failures that happened before a request reached the upstream
var ErrNotSent = errors.New("request not sent")

func newAPIError(op Op, status int, upstream string, cause error) *APIError {
	msg := strings.TrimSpace(upstream)
	if msg == "" {
		msg = op.Fallback()
	}
	return &APIError{Op: op, StatusCode: status, Message: msg, Err: cause}
}

// upstreamMessage extracts the "message" field of an error body
func upstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

// IsLocalError reports whether err says nothing about upstream health:
// the request was never sent or the caller canceled it.
func IsLocalError(err error) bool {
	return errors.Is(err, ErrNotSent) || errors.Is(err, context.Canceled)
}

// IsClientError reports whether err is a 4xx answer other than 429
func IsClientError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 && apiErr.StatusCode != 429
}
