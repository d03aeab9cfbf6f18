package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestyMailer_SendReturnsMessageID(t *testing.T) {
	var gotAuth, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"id": "msg_42"})
	}))
	defer server.Close()

	mailer := NewRestyMailer(server.URL, "secret-key", "Tracker <insights@tracker.local>")

	messageID, err := mailer.Send(context.Background(), "me@example.com", "Weekly insights", "<p>hello</p>")

	require.NoError(t, err)
	assert.Equal(t, "msg_42", messageID)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Contains(t, gotBody, `"me@example.com"`)
	assert.Contains(t, gotBody, "Weekly insights")
	assert.Contains(t, gotBody, "insights@tracker.local")
}

func TestRestyMailer_SendSurfacesProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid from address"})
	}))
	defer server.Close()

	mailer := NewRestyMailer(server.URL, "secret-key", "bad-from")

	_, err := mailer.Send(context.Background(), "me@example.com", "Weekly insights", "<p>hello</p>")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "Invalid from address")
}

func TestRestyMailer_SendSurfacesRawBodyWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	mailer := NewRestyMailer(server.URL, "secret-key", "from")

	_, err := mailer.Send(context.Background(), "me@example.com", "subject", "body")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream exploded")
}
