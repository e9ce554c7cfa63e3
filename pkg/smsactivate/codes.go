package smsactivate

// Code is a protocol-level failure identifier as it appears on the wire.
type Code string

const (
	CodeBadKey            Code = "BAD_KEY"
	CodeNoKey             Code = "NO_KEY"
	CodeBadAction         Code = "BAD_ACTION"
	CodeBadService        Code = "BAD_SERVICE"
	CodeBadStatus         Code = "BAD_STATUS"
	CodeNoNumbers         Code = "NO_NUMBERS"
	CodeNoBalance         Code = "NO_BALANCE"
	CodeNoActivation      Code = "NO_ACTIVATION"
	CodeErrorSQL          Code = "ERROR_SQL"
	CodeWrongActivationID Code = "WRONG_ACTIVATION_ID"
	CodeWrongService      Code = "WRONG_SERVICE"
	CodeEarlyCancelDenied Code = "EARLY_CANCEL_DENIED"
	CodeChannelsLimit     Code = "CHANNELS_LIMIT"
	CodeAccountInactive   Code = "ACCOUNT_INACTIVE"

	CodeParseError Code = "PARSE_ERROR"

	// Parameterized families, sent as PREFIX:payload.
	CodeBanned        Code = "BANNED"
	CodeWrongMaxPrice Code = "WRONG_MAX_PRICE"

	// CodeTransport never appears on the wire; it tags failures below the protocol.
	CodeTransport Code = "TRANSPORT_ERROR"
)

// plainCodes is scanned in order by Classify. No entry is a prefix of another
// entry followed by a token character, so order only matters for readability.
var plainCodes = []Code{
	CodeBadKey,
	CodeNoKey,
	CodeBadAction,
	CodeBadService,
	CodeBadStatus,
	CodeNoNumbers,
	CodeNoBalance,
	CodeNoActivation,
	CodeErrorSQL,
	CodeWrongActivationID,
	CodeWrongService,
	CodeEarlyCancelDenied,
	CodeChannelsLimit,
	CodeAccountInactive,
}

var codeKinds = map[Code]Kind{
	CodeBadKey:            KindAuthentication,
	CodeNoKey:             KindAuthentication,
	CodeNoNumbers:         KindExhaustedSupply,
	CodeNoActivation:      KindNotFound,
	CodeEarlyCancelDenied: KindEarlyCancel,
	CodeBanned:            KindBanned,
	CodeWrongMaxPrice:     KindPriceTooLow,
	CodeParseError:        KindParse,
	CodeTransport:         KindTransport,
}

var codeMessages = map[Code]string{
	CodeBadKey:            "invalid API key",
	CodeNoKey:             "API key is missing",
	CodeBadAction:         "unknown action",
	CodeBadService:        "invalid service name",
	CodeBadStatus:         "invalid activation status",
	CodeNoNumbers:         "no numbers available",
	CodeNoBalance:         "insufficient balance",
	CodeNoActivation:      "activation not found",
	CodeErrorSQL:          "provider database error",
	CodeWrongActivationID: "invalid activation id",
	CodeWrongService:      "wrong service for this activation",
	CodeEarlyCancelDenied: "activation cannot be cancelled yet",
	CodeChannelsLimit:     "account channel limit reached",
	CodeAccountInactive:   "account is inactive",
	CodeParseError:        "unexpected response format",
	CodeBanned:            "account is banned",
	CodeWrongMaxPrice:     "max price is below the current minimum price",
	CodeTransport:         "transport failure",
}

// Kind returns the error kind a code belongs to. Unlisted codes are generic protocol errors.
func (c Code) Kind() Kind {
	if kind, ok := codeKinds[c]; ok {
		return kind
	}
	return KindProtocol
}

// Message returns the human-readable text for c, or c itself when none is known.
func (c Code) Message() string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	return string(c)
}

// PlainCodes returns the fixed codes matched by equality or prefix, in scan order.
func PlainCodes() []Code {
	out := make([]Code, len(plainCodes))
	copy(out, plainCodes)
	return out
}
