package messaging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"khojo/config"
	"khojo/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMessenger(t *testing.T, handler http.HandlerFunc) (service.Messenger, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	messenger, err := NewMetaMessenger(&config.MetaConfig{
		AccessToken:   "token",
		PhoneNumberID: "12345",
		APIBaseURL:    srv.URL,
	}, srv.Client(), newDiscardLogger())
	require.NoError(t, err)

	return messenger, srv
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMetaSendText(t *testing.T) {
	var got map[string]any
	var auth, path string

	messenger, _ := newTestMessenger(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"messages":[{"id":"wamid.out1"}]}`))
	})

	err := messenger.SendText(context.Background(), "919876543210", "hello vendor")
	require.NoError(t, err)

	assert.Equal(t, "Bearer token", auth)
	assert.Equal(t, "/v21.0/12345/messages", path)
	assert.Equal(t, "whatsapp", got["messaging_product"])
	assert.Equal(t, "+919876543210", got["to"])
	assert.Equal(t, "text", got["type"])
}

func TestMetaSendTemplate(t *testing.T) {
	var got map[string]any

	messenger, _ := newTestMessenger(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	})

	components := []service.TemplateComponent{{
		Type:       "body",
		Parameters: []service.TemplateParameter{{Type: "text", Text: "Raju"}},
	}}
	err := messenger.SendTemplate(context.Background(), "9876543210", "photo_upload_invitation", "en", components)
	require.NoError(t, err)

	assert.Equal(t, "template", got["type"])
	assert.Equal(t, "+919876543210", got["to"])
	tmpl, ok := got["template"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "photo_upload_invitation", tmpl["name"])
}

func TestMetaSendTextAPIError(t *testing.T) {
	messenger, _ := newTestMessenger(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad token"}}`))
	})

	err := messenger.SendText(context.Background(), "919876543210", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestMetaSendTextRejectsShortNumber(t *testing.T) {
	messenger, _ := newTestMessenger(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for invalid recipient")
	})

	err := messenger.SendText(context.Background(), "12345", "hello")
	assert.Error(t, err)
}

func TestNewMetaMessengerRequiresCredentials(t *testing.T) {
	_, err := NewMetaMessenger(&config.MetaConfig{PhoneNumberID: "1"}, nil, newDiscardLogger())
	assert.Error(t, err)

	_, err = NewMetaMessenger(&config.MetaConfig{AccessToken: "t"}, nil, newDiscardLogger())
	assert.Error(t, err)
}
