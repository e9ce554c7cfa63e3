package smsactivate

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Operation is the value of the action query parameter for one remote call.
type Operation string

const (
	OpGetBalance               Operation = "getBalance"
	OpGetBalanceAndCashBack    Operation = "getBalanceAndCashBack"
	OpGetNumber                Operation = "getNumber"
	OpGetNumberV2              Operation = "getNumberV2"
	OpGetStatus                Operation = "getStatus"
	OpGetStatusV2              Operation = "getStatusV2"
	OpSetStatus                Operation = "setStatus"
	OpGetCountries             Operation = "getCountries"
	OpGetServicesList          Operation = "getServicesList"
	OpGetOperators             Operation = "getOperators"
	OpGetPrices                Operation = "getPrices"
	OpGetActiveActivations     Operation = "getActiveActivations"
	OpGetHistory               Operation = "getHistory"
	OpGetTopCountriesByService Operation = "getTopCountriesByService"
)

const (
	prefixBanned        = string(CodeBanned) + ":"
	prefixWrongMaxPrice = string(CodeWrongMaxPrice) + ":"

	unknownBanExpiry = "unknown"
)

// Body is a raw response: text, or a JSON document the transport returned.
type Body struct {
	Text       string
	Structured json.RawMessage
}

// NewBody treats raw as structured when it is a JSON object or array, and as text otherwise.
func NewBody(raw []byte) Body {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') && json.Valid(trimmed) {
		return Body{Structured: json.RawMessage(trimmed)}
	}
	return Body{Text: string(raw)}
}

func (b Body) IsStructured() bool {
	return b.Structured != nil
}

// String returns the body as received, for diagnostics.
func (b Body) String() string {
	if b.IsStructured() {
		return string(b.Structured)
	}
	return b.Text
}

// Classify reports whether body is a known error response for op. A nil result
// means the body should be handed to the operation's decoder unchanged.
func Classify(op Operation, body Body) error {
	if body.IsStructured() {
		return nil
	}
	text := body.Text

	if strings.HasPrefix(text, prefixBanned) {
		return newBannedError(op, field(text, 1, unknownBanExpiry), text)
	}

	if strings.HasPrefix(text, prefixWrongMaxPrice) {
		minPrice, err := parseDecimal(field(text, 1, ""))
		if err != nil {
			minPrice = 0
		}
		return newWrongMaxPriceError(op, minPrice, text)
	}

	for _, code := range plainCodes {
		if matchesCode(text, code) {
			return newCodeError(op, code, text)
		}
	}

	return nil
}

// matchesCode accepts text equal to code, or code followed by trailing detail
// that does not continue the token (so NO_ACTIVATIONS is not NO_ACTIVATION).
func matchesCode(text string, code Code) bool {
	c := string(code)
	if !strings.HasPrefix(text, c) {
		return false
	}
	if len(text) == len(c) {
		return true
	}
	return !isTokenChar(text[len(c)])
}

func isTokenChar(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// field returns the i-th colon-separated field of text, or fallback when it is missing or empty.
func field(text string, i int, fallback string) string {
	parts := strings.Split(text, ":")
	if i >= len(parts) || parts[i] == "" {
		return fallback
	}
	return parts[i]
}
