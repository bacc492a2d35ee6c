package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitoapteka.kz/app/internal/modules/admin"
	"fitoapteka.kz/app/internal/ratelimit"
	"fitoapteka.kz/app/internal/shared/apperr"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func init() { gin.SetMode(gin.TestMode) }

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(discard), Recovery(discard))
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestErrorHandler(t *testing.T) {
	r := newEngine()
	r.GET("/invalid", func(c *gin.Context) {
		Fail(c, apperr.InvalidErr("file_too_large", map[string]string{"maxMB": "10"}))
	})
	r.GET("/boom", func(c *gin.Context) { Fail(c, errors.New("secret detail")) })
	r.GET("/panic", func(c *gin.Context) { panic("oops") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/invalid", nil)
	req.Header.Set(HeaderRequestID, "rid-1")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "file_too_large", body["error"])
	assert.Equal(t, "rid-1", body["request_id"])
	assert.Equal(t, map[string]any{"maxMB": "10"}, body["fields"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", decode(t, w)["error"])
	assert.NotContains(t, w.Body.String(), "secret detail")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequestID(t *testing.T) {
	r := newEngine()
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "bad id\n")
	r.ServeHTTP(w, req)
	assert.Len(t, w.Body.String(), 36, "invalid incoming id replaced by uuid")
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))
}

func adminEngine(tokens *admin.Tokens) *gin.Engine {
	r := newEngine()
	r.Use(Auth(tokens))
	r.POST("/upload", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestRequireAdmin(t *testing.T) {
	tokens := admin.NewTokens("s3cret")
	r := adminEngine(tokens)

	adminTok, _, err := tokens.Issue("admin", admin.RoleAdmin, time.Hour)
	require.NoError(t, err)
	userTok, _, err := tokens.Issue("u1", "customer", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		setup  func(*http.Request)
		status int
		code   string
	}{
		{"anonymous", func(*http.Request) {}, http.StatusUnauthorized, "authentication_required"},
		{"garbage token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized, "authentication_required"},
		{"non admin", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+userTok) }, http.StatusForbidden, "forbidden"},
		{"admin header", func(r *http.Request) { r.Header.Set("Authorization", "bearer "+adminTok) }, http.StatusNoContent, ""},
		{"admin cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: AdminCookieName, Value: adminTok}) }, http.StatusNoContent, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(""))
			tt.setup(req)
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.code != "" {
				body := decode(t, w)
				assert.Equal(t, tt.code, body["error"])
				assert.NotEmpty(t, body["request_id"])
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	r := newEngine()
	r.POST("/ask", RateLimit(ratelimit.New(2, time.Minute), "ask"), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(ip string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/ask", nil)
		req.RemoteAddr = ip + ":5555"
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)
	w := send("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, "too_many_requests", decode(t, w)["error"])

	assert.Equal(t, http.StatusOK, send("10.0.0.2").Code)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("BEARER  abc "))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("Bear"))
}
