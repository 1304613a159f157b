package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookSender_Send(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sender := NewWebhookSender(srv.URL, nil)
	err := sender.Send(context.Background(), "sms:+155500", "Your access code is 123456")
	require.NoError(t, err)

	assert.Equal(t, "sms:+155500", got.Channel)
	assert.Equal(t, "Your access code is 123456", got.Message)
}

func TestWebhookSender_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sender := NewWebhookSender(srv.URL, nil)
	err := sender.Send(context.Background(), "sms:+155500", "msg")
	assert.ErrorContains(t, err, "unexpected status 502")
}

func TestWebhookSender_Unreachable(t *testing.T) {
	sender := NewWebhookSender("http://127.0.0.1:1/send", nil)
	err := sender.Send(context.Background(), "sms:+155500", "msg")
	assert.Error(t, err)
}
