package smsactivate

import "time"

const (
	DefaultBaseURL = "https://api.sms-activate.ae/stubs/handler_api.php"
	DefaultTimeout = 30 * time.Second
)

type Config struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
	// Ref is the optional referral id attached to number requests.
	Ref string `mapstructure:"ref"`
}
