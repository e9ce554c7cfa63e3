package v1

import "github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

type StatusResponse struct {
	ActivationID int64                        `json:"activation_id"`
	Status       smsactivate.ActivationStatus `json:"status"`
	Code         *string                      `json:"code,omitempty"`
}

type SetStatusResponse struct {
	ActivationID int64                       `json:"activation_id"`
	Result       smsactivate.SetStatusResult `json:"result"`
}
