package smsactivate

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind groups error codes for caller dispatch.
type Kind string

const (
	KindAuthentication  Kind = "AUTHENTICATION"
	KindExhaustedSupply Kind = "EXHAUSTED_SUPPLY"
	KindNotFound        Kind = "NOT_FOUND"
	KindEarlyCancel     Kind = "EARLY_CANCEL"
	KindPriceTooLow     Kind = "PRICE_TOO_LOW"
	KindBanned          Kind = "BANNED"
	KindProtocol        Kind = "PROTOCOL"
	KindParse           Kind = "PARSE"
	KindTransport       Kind = "TRANSPORT"
)

var (
	ErrAuthentication  = errors.New(string(KindAuthentication))
	ErrExhaustedSupply = errors.New(string(KindExhaustedSupply))
	ErrNotFound        = errors.New(string(KindNotFound))
	ErrEarlyCancel     = errors.New(string(KindEarlyCancel))
	ErrPriceTooLow     = errors.New(string(KindPriceTooLow))
	ErrBanned          = errors.New(string(KindBanned))
	ErrProtocol        = errors.New(string(KindProtocol))
	ErrParse           = errors.New(string(KindParse))
	ErrTransport       = errors.New(string(KindTransport))
)

var kindErrors = map[Kind]error{
	KindAuthentication:  ErrAuthentication,
	KindExhaustedSupply: ErrExhaustedSupply,
	KindNotFound:        ErrNotFound,
	KindEarlyCancel:     ErrEarlyCancel,
	KindPriceTooLow:     ErrPriceTooLow,
	KindBanned:          ErrBanned,
	KindProtocol:        ErrProtocol,
	KindParse:           ErrParse,
	KindTransport:       ErrTransport,
}

// Error is the single error type produced by the protocol layer. Kind selects
// which of the payload fields are meaningful.
type Error struct {
	Kind      Kind
	Code      Code
	Message   string
	Operation Operation
	// Raw is the response body exactly as the transport returned it.
	Raw string

	// BannedUntil is set for KindBanned.
	BannedUntil string
	// MinPrice is set for KindPriceTooLow.
	MinPrice float64

	// StatusCode and Cause are set for KindTransport, and Cause for JSON decode failures.
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("smsactivate: %s: %s: %s", e.Operation, e.Code, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes the kind sentinel and, when present, the underlying cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel, ok := kindErrors[e.Kind]; ok {
		errs = append(errs, sentinel)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// Retryable reports whether repeating the same call may succeed. The client never retries.
func (e *Error) Retryable() bool {
	return e.Kind == KindTransport || e.Kind == KindExhaustedSupply
}

// KindOf returns the Kind of err, or "" when err did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func newCodeError(op Operation, code Code, raw string) *Error {
	return &Error{
		Kind:      code.Kind(),
		Code:      code,
		Message:   code.Message(),
		Operation: op,
		Raw:       raw,
	}
}

func newBannedError(op Operation, until, raw string) *Error {
	e := newCodeError(op, CodeBanned, raw)
	e.BannedUntil = until
	e.Message = "account is banned until " + until
	return e
}

func newWrongMaxPriceError(op Operation, minPrice float64, raw string) *Error {
	e := newCodeError(op, CodeWrongMaxPrice, raw)
	e.MinPrice = minPrice
	e.Message = "max price is below the minimum of " + strconv.FormatFloat(minPrice, 'f', -1, 64)
	return e
}

func newParseError(op Operation, raw string, cause error) *Error {
	e := newCodeError(op, CodeParseError, raw)
	e.Cause = cause
	return e
}

func newTransportError(op Operation, statusCode int, raw string, cause error) *Error {
	e := newCodeError(op, CodeTransport, raw)
	e.StatusCode = statusCode
	e.Cause = cause
	return e
}
