package contract

type Response struct {
	Successful bool   `json:"successful"`
	Code       string `json:"code"`
	Message    string `json:"message,omitempty"`
	Result     any    `json:"result,omitempty"`
}

// ResponseError is rendered for provider failures. MinPrice and BannedUntil are
// only set for the matching error kinds.
type ResponseError struct {
	Successful  bool     `json:"successful"`
	Code        string   `json:"code"`
	Kind        string   `json:"kind,omitempty"`
	Message     string   `json:"message"`
	MinPrice    *float64 `json:"min_price,omitempty"`
	BannedUntil string   `json:"banned_until,omitempty"`
}
