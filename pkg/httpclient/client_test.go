package httpclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Behyna/sms-services/smsactivate/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockServer() *httptest.Server {
	handler := http.NewServeMux()
	handler.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Method", r.Method)
		w.Header().Set("X-Auth", r.Header.Get("X-Auth"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(r.URL.RawQuery))
	})
	handler.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("late"))
	})
	handler.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	})
	return httptest.NewServer(handler)
}

func TestHttpClient_Get(t *testing.T) {
	server := setupMockServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(5 * time.Second)

	query := url.Values{}
	query.Set("action", "getBalance")
	query.Set("api_key", "secret")

	resp, err := client.Get(context.Background(), server.URL+"/echo", query, map[string]string{"X-Auth": "yes"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.MethodGet, resp.Header.Get("X-Method"))
	assert.Equal(t, "yes", resp.Header.Get("X-Auth"))

	got, err := url.ParseQuery(string(resp.Body))
	require.NoError(t, err)
	assert.Equal(t, "getBalance", got.Get("action"))
	assert.Equal(t, "secret", got.Get("api_key"))
}

func TestHttpClient_GetMergesExistingQuery(t *testing.T) {
	server := setupMockServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(5 * time.Second)

	resp, err := client.Get(context.Background(), server.URL+"/echo?ref=abc", url.Values{"action": {"getStatus"}}, nil)
	require.NoError(t, err)

	got, err := url.ParseQuery(string(resp.Body))
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Get("ref"))
	assert.Equal(t, "getStatus", got.Get("action"))
}

func TestHttpClient_GetNonSuccessStatus(t *testing.T) {
	server := setupMockServer()
	defer server.Close()

	client := httpclient.NewHTTPClient(5 * time.Second)

	resp, err := client.Get(context.Background(), server.URL+"/broken", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "upstream down", string(resp.Body))
}

func TestHttpClient_GetContextDeadline(t *testing.T) {
	server := setupMockServer()
	defer server.Close()

	client := httpclient.NewHTTPClientWith(server.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	resp, err := client.Get(ctx, server.URL+"/slow", nil, nil)
	assert.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, resp)
}

func TestHttpClient_GetInvalidURL(t *testing.T) {
	client := httpclient.NewHTTPClient(time.Second)

	resp, err := client.Get(context.Background(), "://bad", nil, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build URL")
	assert.Nil(t, resp)
}
