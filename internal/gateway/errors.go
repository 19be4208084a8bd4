package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Kind classifies every failure a gateway call can return.
type Kind uint8

const (
	// KindServer is any non-2xx status not covered below, or a malformed 2xx body.
	KindServer Kind = iota
	// KindValidation is a missing required field caught before the request was sent.
	KindValidation
	// KindUnauthorized is a 401 or 403 from the backend.
	KindUnauthorized
	// KindNotFound is a 404 from the backend.
	KindNotFound
	// KindNetwork means no response was received.
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindNetwork:
		return "network"
	default:
		return "server"
	}
}

// Sentinels for errors.Is. Each matches the *Error values of the same Kind.
var (
	ErrServer       = errors.New("server error")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrNetwork      = errors.New("network error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindUnauthorized:
		return ErrUnauthorized
	case KindNotFound:
		return ErrNotFound
	case KindNetwork:
		return ErrNetwork
	default:
		return ErrServer
	}
}

// Error is the single error type returned by gateway calls, for HTTP and transport failures alike.
type Error struct {
	Kind Kind
	// Op is "<METHOD> <route>", e.g. "PUT /api/admin/contacts/{id}".
	Op string
	// Status is the HTTP status code, 0 when no response arrived.
	Status int
	// Message is human readable: the backend's detail or a per-operation fallback.
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of e's Kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf reports the Kind of err when it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind, true
	}
	return 0, false
}

func statusKind(code int) Kind {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindServer
	}
}

const maxErrorBody = 64 << 10

// responseError builds the *Error for a non-2xx response, preferring the backend's detail.
func responseError(op, fallback string, resp *http.Response) *Error {
	msg := fallback
	if detail := readDetail(io.LimitReader(resp.Body, maxErrorBody)); detail != "" {
		msg = detail
	}
	return &Error{
		Kind:    statusKind(resp.StatusCode),
		Op:      op,
		Status:  resp.StatusCode,
		Message: msg,
	}
}

// readDetail extracts "detail" from a FastAPI-style error body. Request validation
// failures carry a list of {loc, msg} objects instead of a string.
func readDetail(r io.Reader) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err != nil {
		return ""
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if len(it.Loc) > 0 {
			parts = append(parts, fmt.Sprintf("%v: %s", it.Loc[len(it.Loc)-1], it.Msg))
		} else {
			parts = append(parts, it.Msg)
		}
	}
	return strings.Join(parts, "; ")
}
