package smsactivate

import (
	"net/url"
	"strconv"
	"strings"
)

// NumberRequest holds getNumber parameters. Zero values are not sent.
type NumberRequest struct {
	Service        string
	Country        string
	Operator       []string
	MaxPrice       float64
	Forward        bool
	PhoneExcept    []string
	ActivationType int
	Language       string
	UserID         string
}

func (r NumberRequest) values(ref string) url.Values {
	params := url.Values{}
	params.Set("service", r.Service)
	setIfNotEmpty(params, "country", r.Country)
	setIfNotEmpty(params, "operator", strings.Join(r.Operator, ","))
	if r.MaxPrice > 0 {
		params.Set("maxPrice", strconv.FormatFloat(r.MaxPrice, 'f', -1, 64))
	}
	if r.Forward {
		params.Set("forward", "1")
	}
	setIfNotEmpty(params, "phoneException", strings.Join(r.PhoneExcept, ","))
	if r.ActivationType > 0 {
		params.Set("activationType", strconv.Itoa(r.ActivationType))
	}
	setIfNotEmpty(params, "language", r.Language)
	setIfNotEmpty(params, "userId", r.UserID)
	setIfNotEmpty(params, "ref", ref)
	return params
}

type ServicesRequest struct {
	Country string
	Lang    string
}

func (r ServicesRequest) values() url.Values {
	params := url.Values{}
	setIfNotEmpty(params, "country", r.Country)
	setIfNotEmpty(params, "lang", r.Lang)
	return params
}

type PricesRequest struct {
	Service string
	Country string
}

func (r PricesRequest) values() url.Values {
	params := url.Values{}
	setIfNotEmpty(params, "service", r.Service)
	setIfNotEmpty(params, "country", r.Country)
	return params
}

// HistoryRequest bounds are unix timestamps; zero values are omitted.
type HistoryRequest struct {
	Start  int64
	End    int64
	Offset int
	Limit  int
}

func (r HistoryRequest) values() url.Values {
	params := url.Values{}
	if r.Start > 0 {
		params.Set("start", strconv.FormatInt(r.Start, 10))
	}
	if r.End > 0 {
		params.Set("end", strconv.FormatInt(r.End, 10))
	}
	if r.Offset > 0 {
		params.Set("offset", strconv.Itoa(r.Offset))
	}
	if r.Limit > 0 {
		params.Set("limit", strconv.Itoa(r.Limit))
	}
	return params
}

type TopCountriesRequest struct {
	Service   string
	FreePrice bool
}

func (r TopCountriesRequest) values() url.Values {
	params := url.Values{}
	setIfNotEmpty(params, "service", r.Service)
	if r.FreePrice {
		params.Set("freePrice", "true")
	}
	return params
}

func setIfNotEmpty(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}
