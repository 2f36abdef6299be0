package dashboard

import (
	"errors"
)

// Kind classifies a failed load
type Kind int

const (
	PermissionDenied Kind = iota + 1
	LocationUnavailable
	DataFetchFailed
)

func (k Kind) String() string {
	switch k {
	case PermissionDenied:
		return "permission_denied"
	case LocationUnavailable:
		return "location_unavailable"
	case DataFetchFailed:
		return "data_fetch_failed"
	default:
		return "unknown"
	}
}

var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrDataFetchFailed     = errors.New("data fetch failed")
)

// Error is the single terminal failure of a load. The cause is kept for
// logs; the UI shows Message.
type Error struct {
	Kind    Kind
	Trigger Trigger
	Err     error
}

func newError(kind Kind, trigger Trigger, err error) *Error {
	return &Error{Kind: kind, Trigger: trigger, Err: err}
}

// Message is the one line shown in place of the dashboard
func (e *Error) Message() string {
	switch e.Kind {
	case PermissionDenied:
		return "Location permission denied"
	case LocationUnavailable:
		if e.Err != nil {
			return "Location unavailable: " + e.Err.Error()
		}
		return "Location unavailable"
	default:
		if e.Trigger == TriggerCity {
			return "City information unavailable"
		}
		return "Weather data unavailable"
	}
}

func (e *Error) Error() string {
	if e.Err == nil || e.Kind == LocationUnavailable {
		return e.Message()
	}
	return e.Message() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels
func (e *Error) Is(target error) bool {
	switch target {
	case ErrPermissionDenied:
		return e.Kind == PermissionDenied
	case ErrLocationUnavailable:
		return e.Kind == LocationUnavailable
	case ErrDataFetchFailed:
		return e.Kind == DataFetchFailed
	}
	return false
}
