package supabase

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
)

// ErrorKind is the closed taxonomy call sites branch on. Provider error
// codes are folded into a kind exactly once, here; nothing above this
// package matches on raw provider strings.
type ErrorKind int

const (
	// KindUnknown covers any failure without a more specific kind
	KindUnknown ErrorKind = iota
	// KindNotFound means the requested row does not exist
	KindNotFound
	// KindConflict means a unique-constraint violation (already exists / already joined)
	KindConflict
	// KindUnavailable means the table, RPC endpoint or service is not provisioned
	KindUnavailable
	// KindUnauthorized means missing, invalid or expired credentials
	KindUnauthorized
)

// String returns the kind name for logs
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Provider error codes with dedicated handling.
const (
	codeRowNotFound     = "PGRST116" // single-row request matched no rows
	codeRPCMissing      = "PGRST202" // RPC endpoint not provisioned
	codeRelationMissing = "42P01"    // table does not exist
	codeUniqueViolation = "23505"    // unique constraint violated
)

// Error is the normalized form of any non-2xx provider response or
// transport failure. Code carries the provider's machine-readable code
// when present, otherwise the numeric HTTP status.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
	Details interface{}
	Status  int
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("supabase: %s (code=%s, status=%d)", e.Message, e.Code, e.Status)
}

// errorPayload is the provider's error body shape. Auth endpoints use
// error_description instead of message.
type errorPayload struct {
	Code             string      `json:"code"`
	Message          string      `json:"message"`
	Details          interface{} `json:"details"`
	ErrorDescription string      `json:"error_description"`
}

// normalizeError folds a non-2xx response into an *Error. An undecodable
// body degrades to the HTTP status text.
func normalizeError(status int, body []byte) *Error {
	var payload errorPayload
	if err := sonic.Unmarshal(body, &payload); err != nil {
		payload = errorPayload{Message: http.StatusText(status)}
	}

	message := payload.Message
	if message == "" {
		message = payload.ErrorDescription
	}
	if message == "" {
		message = "request failed"
	}

	code := payload.Code
	if code == "" {
		code = strconv.Itoa(status)
	}

	return &Error{
		Kind:    kindFor(payload.Code, status),
		Code:    code,
		Message: message,
		Details: payload.Details,
		Status:  status,
	}
}

// kindFor maps a provider code (preferred) or HTTP status to a kind
func kindFor(code string, status int) ErrorKind {
	switch code {
	case codeRowNotFound:
		return KindNotFound
	case codeUniqueViolation:
		return KindConflict
	case codeRelationMissing, codeRPCMissing:
		return KindUnavailable
	}

	switch status {
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthorized
	case http.StatusServiceUnavailable:
		return KindUnavailable
	default:
		return KindUnknown
	}
}

// KindOf extracts the kind from an error, KindUnknown for foreign errors
func KindOf(err error) ErrorKind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}
