package qa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompletionServer(t *testing.T, status int, body string) (*httptest.Server, *map[string]any) {
	t.Helper()
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestNewOpenAICompleterBlankKey(t *testing.T) {
	assert.Nil(t, NewOpenAICompleter("  ", "", ""))
}

func TestOpenAICompleterSuccess(t *testing.T) {
	srv, req := newCompletionServer(t, http.StatusOK,
		`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Ответ"},"finish_reason":"stop"}]}`)

	c := NewOpenAICompleter("sk-test", srv.URL+"/v1/", "")
	text, err := c.Complete(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "Ответ", text)

	assert.Equal(t, "gpt-4o-mini", (*req)["model"])
	assert.InDelta(t, 0.2, (*req)["temperature"], 1e-6)
	msgs, ok := (*req)["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "user", msgs[1].(map[string]any)["content"])
}

func TestOpenAICompleterNoCompletion(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"api error", http.StatusUnauthorized, `{"error":{"message":"bad key","type":"invalid_request_error"}}`},
		{"non-json error", http.StatusBadGateway, `<html>bad gateway</html>`},
		{"no choices", http.StatusOK, `{"id":"c1","choices":[]}`},
		{"empty content", http.StatusOK, `{"choices":[{"message":{"role":"assistant","content":""}}]}`},
		{"malformed", http.StatusOK, `{"choices":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newCompletionServer(t, tt.status, tt.body)
			c := NewOpenAICompleter("sk-test", srv.URL+"/v1", "")
			_, err := c.Complete(context.Background(), "sys", "user")
			assert.ErrorIs(t, err, ErrNoCompletion)
		})
	}
}

func TestOpenAICompleterTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewOpenAICompleter("sk-test", url+"/v1", "")
	_, err := c.Complete(context.Background(), "sys", "user")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoCompletion)
}
