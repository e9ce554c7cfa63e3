package smsactivate_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Behyna/sms-services/smsactivate/pkg/httpclient"
	"github.com/Behyna/sms-services/smsactivate/pkg/mocks"
	"github.com/Behyna/sms-services/smsactivate/pkg/smsactivate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://api.sms.test/stubs/handler_api.php"

func testConfig() smsactivate.Config {
	return smsactivate.Config{
		BaseURL: testBaseURL,
		APIKey:  "key-123",
		Timeout: 30 * time.Second,
	}
}

func matchQuery(action string, expected map[string]string) interface{} {
	return mock.MatchedBy(func(q url.Values) bool {
		if q.Get("action") != action || q.Get("api_key") != "key-123" {
			return false
		}
		for key, value := range expected {
			if q.Get(key) != value {
				return false
			}
		}
		return true
	})
}

func okResponse(body string) *httpclient.Response {
	return &httpclient.Response{StatusCode: http.StatusOK, Body: []byte(body)}
}

func TestClient_GetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("successful balance", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := smsactivate.NewClient(testConfig(), mockClient)

		mockClient.On("Get", ctx, testBaseURL, matchQuery("getBalance", nil), mock.Anything).
			Return(okResponse("ACCESS_BALANCE:150.5"), nil)

		balance, err := c.GetBalance(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 150.5, balance)
		mockClient.AssertExpectations(t)
	})

	t.Run("bad key", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := smsactivate.NewClient(testConfig(), mockClient)

		mockClient.On("Get", ctx, testBaseURL, matchQuery("getBalance", nil), mock.Anything).
			Return(okResponse("BAD_KEY"), nil)

		balance, err := c.GetBalance(ctx)

		assert.ErrorIs(t, err, smsactivate.ErrAuthentication)
		assert.Zero(t, balance)
		mockClient.AssertExpectations(t)
	})

	t.Run("timeout error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := smsactivate.NewClient(testConfig(), mockClient)

		mockClient.On("Get", ctx, testBaseURL, matchQuery("getBalance", nil), mock.Anything).
			Return((*httpclient.Response)(nil), context.DeadlineExceeded)

		_, err := c.GetBalance(ctx)

		assert.ErrorIs(t, err, smsactivate.ErrTransport)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, smsactivate.KindTransport, smsactivate.KindOf(err))
		mockClient.AssertExpectations(t)
	})

	t.Run("server error status", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := smsactivate.NewClient(testConfig(), mockClient)

		mockClient.On("Get", ctx, testBaseURL, matchQuery("getBalance", nil), mock.Anything).
			Return(&httpclient.Response{StatusCode: http.StatusBadGateway, Body: []byte("BAD_KEY")}, nil)

		_, err := c.GetBalance(ctx)

		var apiErr *smsactivate.Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, smsactivate.KindTransport, apiErr.Kind)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, "BAD_KEY", apiErr.Raw)
		assert.NotErrorIs(t, err, smsactivate.ErrAuthentication)
		mockClient.AssertExpectations(t)
	})
}

func TestClient_GetNumber(t *testing.T) {
	ctx := context.Background()
	request := smsactivate.NumberRequest{
		Service:  "tg",
		Country:  "0",
		Operator: []string{"mts", "beeline"},
		MaxPrice: 12.5,
	}
	expectedQuery := map[string]string{
		"service":  "tg",
		"country":  "0",
		"operator": "mts,beeline",
		"maxPrice": "12.5",
	}

	t.Run("successful allocation", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := smsactivate.NewClient(testConfig(), mockClient)

		mockClient.On("Get", ctx, testBaseURL, matchQuery("getNumber", expectedQuery), mock.Anything).
			Return(okResponse("ACCESS_NUMBER:123456:79001234567"), nil)

		number, err := c.GetNumber(ctx, request)

		assert.NoError(t, err)
		assert.Equal(t, smsactivate.Number{ActivationID: 123456, PhoneNumber: "79001234567"}, number)
		mockClient.AssertExpectations(t)
	})

	t.Run("no numbers", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := smsactivate.NewClient(testConfig(), mockClient)

		mockClient.On("Get", ctx, testBaseURL, matchQuery("getNumber", expectedQuery), mock.Anything).
			Return(okResponse("NO_NUMBERS"), nil)

		_, err := c.GetNumber(ctx, request)

		assert.ErrorIs(t, err, smsactivate.ErrExhaustedSupply)
		mockClient.AssertExpectations(t)
	})

	t.Run("price too low", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := smsactivate.NewClient(testConfig(), mockClient)

		mockClient.On("Get", ctx, testBaseURL, matchQuery("getNumber", expectedQuery), mock.Anything).
			Return(okResponse("WRONG_MAX_PRICE:15.75"), nil)

		_, err := c.GetNumber(ctx, request)

		var apiErr *smsactivate.Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, smsactivate.KindPriceTooLow, apiErr.Kind)
		assert.Equal(t, 15.75, apiErr.MinPrice)
		mockClient.AssertExpectations(t)
	})

	t.Run("referral id is attached", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		cfg := testConfig()
		cfg.Ref = "ref-1"
		c := smsactivate.NewClient(cfg, mockClient)

		mockClient.On("Get", ctx, testBaseURL, matchQuery("getNumber", map[string]string{"ref": "ref-1"}), mock.Anything).
			Return(okResponse("ACCESS_NUMBER:1:7900"), nil)

		_, err := c.GetNumber(ctx, smsactivate.NumberRequest{Service: "tg"})

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})
}

func TestClient_StatusOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("get status", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := smsactivate.NewClient(testConfig(), mockClient)

		mockClient.On("Get", ctx, testBaseURL, matchQuery("getStatus", map[string]string{"id": "42"}), mock.Anything).
			Return(okResponse("STATUS_OK:4815"), nil)

		status, err := c.GetStatus(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, smsactivate.StatusOK, status.Status)
		assert.Equal(t, "4815", *status.Code)
		mockClient.AssertExpectations(t)
	})

	t.Run("get status unknown activation", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := smsactivate.NewClient(testConfig(), mockClient)

		mockClient.On("Get", ctx, testBaseURL, matchQuery("getStatus", map[string]string{"id": "42"}), mock.Anything).
			Return(okResponse("NO_ACTIVATION"), nil)

		_, err := c.GetStatus(ctx, 42)

		assert.ErrorIs(t, err, smsactivate.ErrNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("get status v2 text error", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := smsactivate.NewClient(testConfig(), mockClient)

		mockClient.On("Get", ctx, testBaseURL, matchQuery("getStatusV2", map[string]string{"id": "42"}), mock.Anything).
			Return(okResponse("WRONG_ACTIVATION_ID"), nil)

		_, err := c.GetStatusV2(ctx, 42)

		var apiErr *smsactivate.Error
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, smsactivate.CodeWrongActivationID, apiErr.Code)
		mockClient.AssertExpectations(t)
	})

	t.Run("set status cancel", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := smsactivate.NewClient(testConfig(), mockClient)

		mockClient.On("Get", ctx, testBaseURL, matchQuery("setStatus", map[string]string{"id": "42", "status": "8"}), mock.Anything).
			Return(okResponse("ACCESS_CANCEL"), nil)

		result, err := c.SetStatus(ctx, 42, smsactivate.ActionCancel)

		assert.NoError(t, err)
		assert.Equal(t, smsactivate.AccessCancel, result)
		mockClient.AssertExpectations(t)
	})

	t.Run("set status early cancel", func(t *testing.T) {
		mockClient := &mocks.HTTPClient{}
		c := smsactivate.NewClient(testConfig(), mockClient)

		mockClient.On("Get", ctx, testBaseURL, matchQuery("setStatus", map[string]string{"status": "8"}), mock.Anything).
			Return(okResponse("EARLY_CANCEL_DENIED"), nil)

		_, err := c.SetStatus(ctx, 42, smsactivate.ActionCancel)

		assert.ErrorIs(t, err, smsactivate.ErrEarlyCancel)
		mockClient.AssertExpectations(t)
	})
}

// fakeService answers a few actions the way the remote service does.
func fakeService(t *testing.T) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("api_key") != "key-123" {
			w.Write([]byte("BAD_KEY"))
			return
		}

		switch q.Get("action") {
		case "getCountries":
			w.Write([]byte(`{"0":{"id":0,"rus":"Россия","eng":"Russia","chn":"俄罗斯","visible":1,"retry":1,"rent":1,"multiService":1}}`))
		case "getNumberV2":
			w.Write([]byte(`{"activationId":1,"phoneNumber":"79000000000","activationCost":12.5,"countryCode":"0",` +
				`"canGetAnotherSms":true,"activationTime":"2024-01-01 10:00:00","activationOperator":"any"}`))
		case "getHistory":
			w.Write([]byte(`[{"id":"10","date":"2024-01-01 10:00:00","phone":"79000000000","sms":null,"cost":"12.5","status":"6","currency":643}]`))
		case "getTopCountriesByService":
			w.Write([]byte(`{"0":{"country":2,"count":43575,"price":15,"retail_price":30}}`))
		case "getOperators":
			w.Write([]byte(`{"status":"success","countryOperators":{"0":["mts","beeline"]}}`))
		case "getServicesList":
			w.Write([]byte(`{"status":"success","services":[{"code":"tg","name":"Telegram"}]}`))
		case "getActiveActivations":
			w.Write([]byte(`{"status":"success","activeActivations":[{"activationId":"7","serviceCode":"tg","phoneNumber":"7900"}]}`))
		case "getBalanceAndCashBack":
			w.Write([]byte("ACCESS_BALANCE:99.9"))
		case "getPrices":
			w.Write([]byte("BANNED:2030-01-01"))
		default:
			w.Write([]byte("BAD_ACTION"))
		}
	}))
}

func TestClient_AgainstFakeService(t *testing.T) {
	server := fakeService(t)
	defer server.Close()

	cfg := testConfig()
	cfg.BaseURL = server.URL
	c := smsactivate.NewClient(cfg, httpclient.NewHTTPClient(5*time.Second))
	ctx := context.Background()

	countries, err := c.GetCountries(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Russia", countries["0"].Eng)

	number, err := c.GetNumberV2(ctx, smsactivate.NumberRequest{Service: "tg"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), number.ActivationID)
	assert.Equal(t, "12.5", number.ActivationCost.String())

	history, err := c.GetHistory(ctx, smsactivate.HistoryRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "79000000000", history[0].Phone)

	top, err := c.GetTopCountriesByService(ctx, smsactivate.TopCountriesRequest{Service: "tg"})
	require.NoError(t, err)
	assert.Equal(t, 43575, top["0"].Count)

	operators, err := c.GetOperators(ctx, "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"mts", "beeline"}, operators.CountryOperators["0"])

	services, err := c.GetServicesList(ctx, smsactivate.ServicesRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Telegram", services.Services[0].Name)

	active, err := c.GetActiveActivations(ctx)
	require.NoError(t, err)
	assert.Equal(t, "7", active.ActiveActivations[0].ActivationID.String())

	balance, err := c.GetBalanceAndCashBack(ctx)
	require.NoError(t, err)
	assert.Equal(t, 99.9, balance)

	_, err = c.GetPrices(ctx, smsactivate.PricesRequest{Service: "tg"})
	var apiErr *smsactivate.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "2030-01-01", apiErr.BannedUntil)

	_, err = c.GetStatus(ctx, 1)
	assert.Equal(t, smsactivate.CodeBadAction, err.(*smsactivate.Error).Code)
}

func TestClient_WrongKeyAgainstFakeService(t *testing.T) {
	server := fakeService(t)
	defer server.Close()

	cfg := testConfig()
	cfg.BaseURL = server.URL
	cfg.APIKey = "wrong"
	c := smsactivate.NewClient(cfg, httpclient.NewHTTPClient(5*time.Second))

	_, err := c.GetCountries(context.Background())

	assert.ErrorIs(t, err, smsactivate.ErrAuthentication)
}

func TestParseAction(t *testing.T) {
	action, err := smsactivate.ParseAction("Cancel")
	require.NoError(t, err)
	assert.Equal(t, smsactivate.ActionCancel, action)

	_, err = smsactivate.ParseAction("explode")
	assert.Error(t, err)
}
