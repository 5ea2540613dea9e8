package email

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingTransport struct {
	calls int
}

func (t *failingTransport) Send(ctx context.Context, msg *Message) error {
	t.calls++
	return errors.New("connection refused")
}

func testRendered() *Rendered {
	return &Rendered{
		To:      "sarah@email.com",
		ToName:  "Sarah Johnson",
		Subject: "🎉 Booking Confirmed - Kigali Serena Hotel",
		HTML:    "<p>approved</p>",
		Text:    "approved",
	}
}

func TestDispatchSuccess(t *testing.T) {
	d := NewDispatcher(LogTransport{})
	assert.True(t, d.Dispatch(context.Background(), testRendered()))
}

func TestDispatchFailureIsNonFatal(t *testing.T) {
	transport := &failingTransport{}
	d := NewDispatcher(transport)

	ok := d.Dispatch(context.Background(), testRendered())

	assert.False(t, ok)
	// Best-effort means exactly one attempt, no retries
	assert.Equal(t, 1, transport.calls)
}

func TestResendClientSend(t *testing.T) {
	var got ResendRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewResendClient(ResendConfig{
		APIKey:    "re_test_key",
		Endpoint:  server.URL,
		FromEmail: "noreply@weddingvenueskigali.rw",
		FromName:  "Wedding Venues Kigali",
	})

	err := client.Send(context.Background(), &Message{
		To:      "sarah@email.com",
		Subject: "🎉 Booking Confirmed - Kigali Serena Hotel",
		HTML:    "<p>approved</p>",
		Text:    "approved",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_test_key", authHeader)
	assert.Equal(t, "Wedding Venues Kigali <noreply@weddingvenueskigali.rw>", got.From)
	assert.Equal(t, []string{"sarah@email.com"}, got.To)
	assert.Equal(t, "🎉 Booking Confirmed - Kigali Serena Hotel", got.Subject)
	assert.Equal(t, "<p>approved</p>", got.HTML)
}

func TestResendClientSendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewResendClient(ResendConfig{
		APIKey:    "re_test_key",
		Endpoint:  server.URL,
		FromEmail: "noreply@weddingvenueskigali.rw",
	})

	err := client.Send(context.Background(), &Message{To: "sarah@email.com", Subject: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestResendClientDefaultEndpoint(t *testing.T) {
	client := NewResendClient(ResendConfig{APIKey: "re_test_key"})
	assert.Equal(t, "https://api.resend.com/emails", client.config.Endpoint)
}
