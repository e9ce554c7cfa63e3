package smsactivate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Number is a phone number allocated by getNumber.
type Number struct {
	ActivationID int64  `json:"activation_id"`
	PhoneNumber  string `json:"phone_number"`
}

type ActivationStatus string

const (
	StatusOK         ActivationStatus = "STATUS_OK"
	StatusWaitRetry  ActivationStatus = "STATUS_WAIT_RETRY"
	StatusWaitCode   ActivationStatus = "STATUS_WAIT_CODE"
	StatusWaitResend ActivationStatus = "STATUS_WAIT_RESEND"
	StatusCancel     ActivationStatus = "STATUS_CANCEL"
)

// Status is the getStatus result. Code is non-nil only for StatusOK and StatusWaitRetry.
type Status struct {
	Status ActivationStatus `json:"status"`
	Code   *string          `json:"code,omitempty"`
}

// HasCode reports whether the status carries an SMS code.
func (s Status) HasCode() bool {
	return s.Code != nil
}

// Action is the status value sent by setStatus.
type Action int

const (
	ActionReady             Action = 1
	ActionRequestAnotherSMS Action = 3
	ActionComplete          Action = 6
	ActionCancel            Action = 8
)

var actionNames = map[string]Action{
	"ready":    ActionReady,
	"retry":    ActionRequestAnotherSMS,
	"complete": ActionComplete,
	"cancel":   ActionCancel,
}

// ParseAction maps a name (ready, retry, complete, cancel) to an Action.
func ParseAction(name string) (Action, error) {
	if action, ok := actionNames[strings.ToLower(name)]; ok {
		return action, nil
	}
	return 0, fmt.Errorf("unknown activation action %q", name)
}

type SetStatusResult string

const (
	AccessReady      SetStatusResult = "ACCESS_READY"
	AccessRetryGet   SetStatusResult = "ACCESS_RETRY_GET"
	AccessActivation SetStatusResult = "ACCESS_ACTIVATION"
	AccessCancel     SetStatusResult = "ACCESS_CANCEL"
)

// NumberV2 is the getNumberV2 document.
type NumberV2 struct {
	ActivationID       int64       `json:"activationId"`
	PhoneNumber        string      `json:"phoneNumber"`
	ActivationCost     json.Number `json:"activationCost"`
	CountryCode        json.Number `json:"countryCode"`
	CanGetAnotherSMS   bool        `json:"canGetAnotherSms"`
	ActivationTime     string      `json:"activationTime"`
	ActivationOperator string      `json:"activationOperator"`
}

// StatusV2 is the getStatusV2 document. SMS and Call are nil until received.
type StatusV2 struct {
	VerificationType int        `json:"verificationType"`
	SMS              *SMSStatus `json:"sms"`
	Call             *Call      `json:"call"`
}

type SMSStatus struct {
	DateTime string `json:"dateTime"`
	Code     string `json:"code"`
	Text     string `json:"text"`
}

type Call struct {
	From         string `json:"from"`
	Text         string `json:"text"`
	Code         string `json:"code"`
	DateTime     string `json:"dateTime"`
	URL          string `json:"url"`
	ParsingCount int    `json:"parsingCount"`
}

// Country is one entry of getCountries, keyed by country id.
type Country struct {
	ID           int    `json:"id"`
	Rus          string `json:"rus"`
	Eng          string `json:"eng"`
	Chn          string `json:"chn"`
	Visible      int    `json:"visible"`
	Retry        int    `json:"retry"`
	Rent         int    `json:"rent"`
	MultiService int    `json:"multiService"`
}

type Service struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type ServicesList struct {
	Status   string    `json:"status"`
	Services []Service `json:"services"`
}

// Operators maps country id to operator names.
type Operators struct {
	Status           string              `json:"status"`
	CountryOperators map[string][]string `json:"countryOperators"`
}

type Price struct {
	Cost  json.Number `json:"cost"`
	Count int         `json:"count"`
}

// Prices maps country id, then service code, to a price.
type Prices map[string]map[string]Price

type Activation struct {
	ActivationID     json.Number `json:"activationId"`
	ServiceCode      string      `json:"serviceCode"`
	PhoneNumber      string      `json:"phoneNumber"`
	ActivationCost   json.Number `json:"activationCost"`
	ActivationStatus string      `json:"activationStatus"`
	SMSCode          any         `json:"smsCode"`
	SMSText          any         `json:"smsText"`
	ActivationTime   string      `json:"activationTime"`
	Discount         json.Number `json:"discount"`
	Repeated         json.Number `json:"repeated"`
	CountryCode      json.Number `json:"countryCode"`
	CountryName      string      `json:"countryName"`
	CanGetAnotherSMS json.Number `json:"canGetAnotherSms"`
}

type ActiveActivations struct {
	Status            string       `json:"status"`
	ActiveActivations []Activation `json:"activeActivations"`
}

type HistoryEntry struct {
	ID       json.Number     `json:"id"`
	Date     string          `json:"date"`
	Phone    string          `json:"phone"`
	SMS      json.RawMessage `json:"sms"`
	Cost     json.Number     `json:"cost"`
	Status   string          `json:"status"`
	Currency json.Number     `json:"currency"`
}

type TopCountry struct {
	Country     int         `json:"country"`
	Count       int         `json:"count"`
	Price       json.Number `json:"price"`
	RetailPrice json.Number `json:"retail_price"`
}
