package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cargo-dispatch/internal/dispatch-service/core/domain/models"
	"cargo-dispatch/internal/dispatch-service/core/myerrors"
	"cargo-dispatch/internal/dispatch-service/core/service"
	"cargo-dispatch/internal/mylogger"
)

type claimsKey struct{}

// WithClaims attaches validated token claims to the context.
func WithClaims(ctx context.Context, claims models.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

func ClaimsFrom(ctx context.Context) (models.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(models.TokenClaims)
	return claims, ok
}

// allowList are introspection paths that skip the gate entirely.
var allowList = map[string]struct{}{
	"/order/docs":         {},
	"/order/openapi.json": {},
	"/healthz":            {},
}

// AuthMiddleware guards order routes. The access token travels in the JSON
// request body (field access_token) rather than a header; that placement is
// part of the wire contract and is kept. The consumed body is restored so
// handlers can decode it again.
type AuthMiddleware struct {
	tokens *service.TokenService
	mylog  mylogger.Logger
}

func NewAuthMiddleware(tokens *service.TokenService, mylog mylogger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		mylog:  mylog,
	}
}

func (am *AuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := allowList[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		mylog := am.mylog.Action("AuthGate")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			mylog.Warn("Failed to read request body")
			jsonError(w, http.StatusForbidden, myerrors.ErrNoToken)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		var req struct {
			AccessToken string `json:"access_token"`
		}
		// An unparseable body is the same as a missing token, it must
		// never crash the gate.
		if err := json.Unmarshal(body, &req); err != nil || req.AccessToken == "" {
			mylog.Warn("Request without access token")
			jsonError(w, http.StatusForbidden, myerrors.ErrNoToken)
			return
		}

		claims, err := am.tokens.Validate(req.AccessToken)
		if err != nil {
			if errors.Is(err, myerrors.ErrTokenExpired) {
				mylog.Warn("Request with expired access token")
				jsonError(w, http.StatusForbidden, err)
				return
			}
			mylog.Warn("Request with malformed access token")
			jsonError(w, http.StatusBadRequest, myerrors.ErrTokenMalformed)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func jsonError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
		"code":  code,
	})
}
