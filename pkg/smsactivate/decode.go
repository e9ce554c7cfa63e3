package smsactivate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var decimalPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

const (
	prefixAccessBalance = "ACCESS_BALANCE:"
	prefixAccessNumber  = "ACCESS_NUMBER:"
	prefixStatusOK      = string(StatusOK) + ":"
	prefixStatusRetry   = string(StatusWaitRetry) + ":"
)

// parseDecimal accepts plain decimals only. ParseFloat alone would also take
// NaN, Inf, signs and hex floats.
func parseDecimal(s string) (float64, error) {
	if !decimalPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid decimal %q", s)
	}
	return strconv.ParseFloat(s, 64)
}

// DecodeBalance parses ACCESS_BALANCE:<decimal>.
func DecodeBalance(op Operation, body Body) (float64, error) {
	text, ok := textOf(body)
	if !ok || !strings.HasPrefix(text, prefixAccessBalance) {
		return 0, newParseError(op, body.String(), nil)
	}

	balance, err := parseDecimal(text[len(prefixAccessBalance):])
	if err != nil {
		return 0, newParseError(op, text, err)
	}

	return balance, nil
}

// DecodeNumber parses ACCESS_NUMBER:<digits>:<phone>. The phone is everything
// after the second colon, taken verbatim.
func DecodeNumber(op Operation, body Body) (Number, error) {
	text, ok := textOf(body)
	if !ok || !strings.HasPrefix(text, prefixAccessNumber) {
		return Number{}, newParseError(op, body.String(), nil)
	}

	id, phone, found := strings.Cut(text[len(prefixAccessNumber):], ":")
	if !found || !isDigits(id) || phone == "" {
		return Number{}, newParseError(op, text, nil)
	}

	activationID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return Number{}, newParseError(op, text, err)
	}

	return Number{ActivationID: activationID, PhoneNumber: phone}, nil
}

// DecodeStatus recognizes exactly the five getStatus shapes.
func DecodeStatus(op Operation, body Body) (Status, error) {
	text, ok := textOf(body)
	if !ok {
		return Status{}, newParseError(op, body.String(), nil)
	}

	switch {
	case strings.HasPrefix(text, prefixStatusOK):
		return statusWithCode(op, StatusOK, text, prefixStatusOK)
	case strings.HasPrefix(text, prefixStatusRetry):
		return statusWithCode(op, StatusWaitRetry, text, prefixStatusRetry)
	case text == string(StatusWaitCode):
		return Status{Status: StatusWaitCode}, nil
	case text == string(StatusWaitResend):
		return Status{Status: StatusWaitResend}, nil
	case text == string(StatusCancel):
		return Status{Status: StatusCancel}, nil
	}

	return Status{}, newParseError(op, text, nil)
}

func statusWithCode(op Operation, status ActivationStatus, text, prefix string) (Status, error) {
	code := text[len(prefix):]
	if code == "" {
		return Status{}, newParseError(op, text, nil)
	}
	return Status{Status: status, Code: &code}, nil
}

// DecodeSetStatus accepts the four ACCESS_* acknowledgements of setStatus.
func DecodeSetStatus(op Operation, body Body) (SetStatusResult, error) {
	text, ok := textOf(body)
	if !ok {
		return "", newParseError(op, body.String(), nil)
	}

	switch result := SetStatusResult(text); result {
	case AccessReady, AccessRetryGet, AccessActivation, AccessCancel:
		return result, nil
	}

	return "", newParseError(op, text, nil)
}

// DecodeJSON passes a structured body through encoding/json into T without further checks.
func DecodeJSON[T any](op Operation, body Body) (T, error) {
	var out T
	if !body.IsStructured() {
		return out, newParseError(op, body.Text, nil)
	}

	if err := json.Unmarshal(body.Structured, &out); err != nil {
		return out, newParseError(op, string(body.Structured), err)
	}

	return out, nil
}

func textOf(body Body) (string, bool) {
	if body.IsStructured() {
		return "", false
	}
	return body.Text, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
