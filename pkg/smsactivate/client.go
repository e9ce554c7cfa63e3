package smsactivate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Behyna/sms-services/smsactivate/pkg/httpclient"
)

type Client interface {
	GetBalance(ctx context.Context) (float64, error)
	GetBalanceAndCashBack(ctx context.Context) (float64, error)
	GetNumber(ctx context.Context, request NumberRequest) (Number, error)
	GetNumberV2(ctx context.Context, request NumberRequest) (NumberV2, error)
	GetStatus(ctx context.Context, activationID int64) (Status, error)
	GetStatusV2(ctx context.Context, activationID int64) (StatusV2, error)
	SetStatus(ctx context.Context, activationID int64, action Action) (SetStatusResult, error)
	GetCountries(ctx context.Context) (map[string]Country, error)
	GetServicesList(ctx context.Context, request ServicesRequest) (ServicesList, error)
	GetOperators(ctx context.Context, country string) (Operators, error)
	GetPrices(ctx context.Context, request PricesRequest) (Prices, error)
	GetActiveActivations(ctx context.Context) (ActiveActivations, error)
	GetHistory(ctx context.Context, request HistoryRequest) ([]HistoryEntry, error)
	GetTopCountriesByService(ctx context.Context, request TopCountriesRequest) (map[string]TopCountry, error)
}

type client struct {
	client httpclient.HTTPClient
	config Config
}

func NewClient(cfg Config, hc httpclient.HTTPClient) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &client{config: cfg, client: hc}
}

// send performs one GET for op and classifies the body. The returned body is
// exactly what the transport produced.
func (c *client) send(ctx context.Context, op Operation, params url.Values) (Body, error) {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	query.Set("api_key", c.config.APIKey)
	query.Set("action", string(op))

	resp, err := c.client.Get(ctx, c.config.BaseURL, query, nil)
	if err != nil {
		return Body{}, newTransportError(op, 0, "", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return Body{}, newTransportError(op, resp.StatusCode, string(resp.Body),
			fmt.Errorf("unexpected HTTP status %d", resp.StatusCode))
	}

	body := NewBody(resp.Body)
	if err := Classify(op, body); err != nil {
		return Body{}, err
	}

	return body, nil
}

func (c *client) GetBalance(ctx context.Context) (float64, error) {
	body, err := c.send(ctx, OpGetBalance, nil)
	if err != nil {
		return 0, err
	}
	return DecodeBalance(OpGetBalance, body)
}

func (c *client) GetBalanceAndCashBack(ctx context.Context) (float64, error) {
	body, err := c.send(ctx, OpGetBalanceAndCashBack, nil)
	if err != nil {
		return 0, err
	}
	return DecodeBalance(OpGetBalanceAndCashBack, body)
}

func (c *client) GetNumber(ctx context.Context, request NumberRequest) (Number, error) {
	body, err := c.send(ctx, OpGetNumber, request.values(c.config.Ref))
	if err != nil {
		return Number{}, err
	}
	return DecodeNumber(OpGetNumber, body)
}

func (c *client) GetNumberV2(ctx context.Context, request NumberRequest) (NumberV2, error) {
	body, err := c.send(ctx, OpGetNumberV2, request.values(c.config.Ref))
	if err != nil {
		return NumberV2{}, err
	}
	return DecodeJSON[NumberV2](OpGetNumberV2, body)
}

func (c *client) GetStatus(ctx context.Context, activationID int64) (Status, error) {
	body, err := c.send(ctx, OpGetStatus, activationValues(activationID))
	if err != nil {
		return Status{}, err
	}
	return DecodeStatus(OpGetStatus, body)
}

func (c *client) GetStatusV2(ctx context.Context, activationID int64) (StatusV2, error) {
	body, err := c.send(ctx, OpGetStatusV2, activationValues(activationID))
	if err != nil {
		return StatusV2{}, err
	}
	return DecodeJSON[StatusV2](OpGetStatusV2, body)
}

func (c *client) SetStatus(ctx context.Context, activationID int64, action Action) (SetStatusResult, error) {
	params := activationValues(activationID)
	params.Set("status", strconv.Itoa(int(action)))

	body, err := c.send(ctx, OpSetStatus, params)
	if err != nil {
		return "", err
	}
	return DecodeSetStatus(OpSetStatus, body)
}

func (c *client) GetCountries(ctx context.Context) (map[string]Country, error) {
	body, err := c.send(ctx, OpGetCountries, nil)
	if err != nil {
		return nil, err
	}
	return DecodeJSON[map[string]Country](OpGetCountries, body)
}

func (c *client) GetServicesList(ctx context.Context, request ServicesRequest) (ServicesList, error) {
	body, err := c.send(ctx, OpGetServicesList, request.values())
	if err != nil {
		return ServicesList{}, err
	}
	return DecodeJSON[ServicesList](OpGetServicesList, body)
}

func (c *client) GetOperators(ctx context.Context, country string) (Operators, error) {
	params := url.Values{}
	setIfNotEmpty(params, "country", country)

	body, err := c.send(ctx, OpGetOperators, params)
	if err != nil {
		return Operators{}, err
	}
	return DecodeJSON[Operators](OpGetOperators, body)
}

func (c *client) GetPrices(ctx context.Context, request PricesRequest) (Prices, error) {
	body, err := c.send(ctx, OpGetPrices, request.values())
	if err != nil {
		return nil, err
	}
	return DecodeJSON[Prices](OpGetPrices, body)
}

func (c *client) GetActiveActivations(ctx context.Context) (ActiveActivations, error) {
	body, err := c.send(ctx, OpGetActiveActivations, nil)
	if err != nil {
		return ActiveActivations{}, err
	}
	return DecodeJSON[ActiveActivations](OpGetActiveActivations, body)
}

func (c *client) GetHistory(ctx context.Context, request HistoryRequest) ([]HistoryEntry, error) {
	body, err := c.send(ctx, OpGetHistory, request.values())
	if err != nil {
		return nil, err
	}
	return DecodeJSON[[]HistoryEntry](OpGetHistory, body)
}

func (c *client) GetTopCountriesByService(ctx context.Context, request TopCountriesRequest) (map[string]TopCountry, error) {
	body, err := c.send(ctx, OpGetTopCountriesByService, request.values())
	if err != nil {
		return nil, err
	}
	return DecodeJSON[map[string]TopCountry](OpGetTopCountriesByService, body)
}

func activationValues(activationID int64) url.Values {
	params := url.Values{}
	params.Set("id", strconv.FormatInt(activationID, 10))
	return params
}
