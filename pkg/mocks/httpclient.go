package mocks

import (
	"context"
	"net/url"

	"github.com/Behyna/sms-services/smsactivate/pkg/httpclient"
	"github.com/stretchr/testify/mock"
)

type HTTPClient struct {
	mock.Mock
}

func (_m *HTTPClient) Get(ctx context.Context, rawURL string, query url.Values, headers map[string]string) (*httpclient.Response, error) {
	ret := _m.Called(ctx, rawURL, query, headers)
	return ret.Get(0).(*httpclient.Response), ret.Error(1)
}
