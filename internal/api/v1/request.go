package v1

type NumberRequest struct {
	Service   string   `json:"service" validate:"required,service"`
	Country   string   `json:"country" validate:"omitempty,country"`
	Operators []string `json:"operators" validate:"omitempty,dive,alphanum"`
	MaxPrice  float64  `json:"max_price" validate:"gte=0"`
	Forward   bool     `json:"forward"`
	V2        bool     `json:"v2"`
}

type SetStatusRequest struct {
	Action string `json:"action" validate:"required,oneof=ready retry complete cancel"`
}

type PricesRequest struct {
	Service string `query:"service" validate:"omitempty,service"`
	Country string `query:"country" validate:"omitempty,country"`
}
