package constants

import "github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"

const MessageErrorFormat = "The '%s' field is invalid"

const (
	BalanceRetrieved = "balance retrieved successfully"
	NumberCreated    = "number created successfully"
	StatusUpdated    = "activation status updated successfully"
)

const (
	ErrCodeInvalidRequestBody  = "INVALID_REQUEST_BODY"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeInvalidActivationID = "INVALID_ACTIVATION_ID"
	ErrCodeInvalidAction       = "INVALID_ACTION"
	ErrCodeProviderUnavailable = "PROVIDER_UNAVAILABLE"
	ErrCodeRequestFailed       = "REQUEST_FAILED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

const (
	ErrMsgInvalidRequestBody  = "failed to parse request body"
	ErrMsgValidationFailed    = "request validation failed"
	ErrMsgInvalidActivationID = "activation id must be a positive integer"
	ErrMsgInvalidAction       = "action must be one of ready, retry, complete, cancel"
	ErrMsgProviderUnavailable = "activation provider is unavailable"
	ErrMsgRequestFailed       = "request could not be processed"
	ErrMsgInternalError       = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeInvalidRequestBody:  ErrMsgInvalidRequestBody,
	ErrCodeValidationFailed:    ErrMsgValidationFailed,
	ErrCodeInvalidActivationID: ErrMsgInvalidActivationID,
	ErrCodeInvalidAction:       ErrMsgInvalidAction,
	ErrCodeProviderUnavailable: ErrMsgProviderUnavailable,
	ErrCodeRequestFailed:       ErrMsgRequestFailed,
	ErrCodeInternalError:       ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeInvalidActivationID, ErrCodeInvalidAction:
		return 400
	case ErrCodeValidationFailed:
		return 422
	case ErrCodeProviderUnavailable:
		return 502
	default:
		return 500
	}
}

var kindStatus = map[smsactivate.Kind]int{
	smsactivate.KindAuthentication:  502,
	smsactivate.KindExhaustedSupply: 409,
	smsactivate.KindNotFound:        404,
	smsactivate.KindEarlyCancel:     409,
	smsactivate.KindPriceTooLow:     422,
	smsactivate.KindBanned:          403,
	smsactivate.KindProtocol:        400,
	smsactivate.KindParse:           502,
	smsactivate.KindTransport:       502,
}

// GetKindHTTPStatus maps a provider error kind to the status returned by the API.
// Authentication failures are the gateway's own credentials, hence 502.
func GetKindHTTPStatus(kind smsactivate.Kind) int {
	if status, exists := kindStatus[kind]; exists {
		return status
	}
	return 500
}
