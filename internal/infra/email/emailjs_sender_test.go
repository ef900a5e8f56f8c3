package email

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm/config"
	"crm/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSender(endpoint string) service.EmailSender {
	return NewEmailJSSender(&config.Config{Email: &config.EmailConfig{Endpoint: endpoint}},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testRequest() *service.EmailRequest {
	return &service.EmailRequest{
		ServiceID:  "service_1",
		TemplateID: "template_1",
		PublicKey:  "public_1",
		TemplateParams: map[string]string{
			"to_name":  "Hala",
			"to_email": "hala@example.com",
			"subject":  "[Complaint escalated] CMPT-1",
		},
	}
}

func TestEmailJSSender_Send(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	require.NoError(t, newTestSender(server.URL).Send(context.Background(), testRequest()))

	assert.Equal(t, "service_1", received["service_id"])
	assert.Equal(t, "template_1", received["template_id"])
	assert.Equal(t, "public_1", received["user_id"])
	params, ok := received["template_params"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hala@example.com", params["to_email"])
}

func TestEmailJSSender_Send_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The Public Key is invalid"))
	}))
	defer server.Close()

	err := newTestSender(server.URL).Send(context.Background(), testRequest())
	require.Error(t, err)
	assert.Equal(t, "email service returned 400: The Public Key is invalid", err.Error())
}

func TestEmailJSSender_Send_Incomplete(t *testing.T) {
	sender := newTestSender("http://127.0.0.1:0")

	assert.Error(t, sender.Send(context.Background(), nil))
	assert.Error(t, sender.Send(context.Background(), &service.EmailRequest{ServiceID: "service_1"}))
}

func TestNewEmailJSSender_Defaults(t *testing.T) {
	sender, ok := NewEmailJSSender(&config.Config{}, slog.Default()).(*emailJSSender)
	require.True(t, ok)
	assert.Equal(t, defaultEndpoint, sender.endpoint)
	assert.Equal(t, defaultTimeout, sender.httpClient.Timeout)
}
