package middleware_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cargo-dispatch/internal/dispatch-service/adapters/driver/myhttp/middleware"
	"cargo-dispatch/internal/dispatch-service/core/service"
	"cargo-dispatch/internal/mylogger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGate(t *testing.T) (*middleware.AuthMiddleware, *service.TokenService) {
	t.Helper()

	mylog, err := mylogger.New("test", mylogger.LevelError)
	require.NoError(t, err)

	tokens, err := service.NewTokenService("test-secret", "HS256")
	require.NoError(t, err)

	return middleware.NewAuthMiddleware(tokens, mylog), tokens
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	gate, tokens := newGate(t)

	tok, err := tokens.Issue(42, "driver0042", time.Hour)
	require.NoError(t, err)

	var gotBody []byte
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFrom(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "driver0042", claims.Login)

		// The gate consumed the body; it must be readable again here.
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})

	body := `{"access_token":"` + tok + `","order_id":7}`
	req := httptest.NewRequest(http.MethodPost, "/order/take", strings.NewReader(body))
	rec := httptest.NewRecorder()

	gate.Wrap(inner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, body, string(gotBody))
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	t.Parallel()

	gate, tokens := newGate(t)

	expired, err := tokens.Issue(1, "driver1", -time.Minute)
	require.NoError(t, err)

	foreignTokens, err := service.NewTokenService("other-secret", "HS256")
	require.NoError(t, err)
	foreign, err := foreignTokens.Issue(1, "driver1", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"empty body", "", http.StatusForbidden},
		{"unparseable body", "{not json", http.StatusForbidden},
		{"no token field", `{"order_id":1}`, http.StatusForbidden},
		{"empty token", `{"access_token":""}`, http.StatusForbidden},
		{"expired token", `{"access_token":"` + expired + `"}`, http.StatusForbidden},
		{"garbage token", `{"access_token":"not.a.jwt"}`, http.StatusBadRequest},
		{"wrong signature", `{"access_token":"` + foreign + `"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not be reached")
			})

			req := httptest.NewRequest(http.MethodPost, "/order/take", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			gate.Wrap(inner).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestAuthMiddleware_AllowList(t *testing.T) {
	t.Parallel()

	gate, _ := newGate(t)

	reached := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/order/docs", nil)
	rec := httptest.NewRecorder()

	gate.Wrap(inner).ServeHTTP(rec, req)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}
