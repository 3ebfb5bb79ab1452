package service

import (
	"errors"
	"fmt"
	"time"

	"cargo-dispatch/internal/dispatch-service/core/domain/models"
	"cargo-dispatch/internal/dispatch-service/core/myerrors"

	"github.com/golang-jwt/jwt"
)

const (
	// Registration hands out a long-lived token, login a short one.
	// The asymmetry is inherited behavior, kept on purpose.
	RegisterTokenTTL = 5 * time.Hour
	LoginTokenTTL    = 30 * time.Minute
)

// TokenService issues and validates signed access tokens. Secret and
// algorithm come from configuration once at startup; there is no refresh
// and no revocation, a token is valid iff its signature checks out and it
// has not expired.
type TokenService struct {
	secret []byte
	method jwt.SigningMethod
}

func NewTokenService(secret, algorithm string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("empty jwt secret")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown jwt algorithm: %s", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("jwt algorithm %s is not an HMAC method", algorithm)
	}
	return &TokenService{
		secret: []byte(secret),
		method: method,
	}, nil
}

func (ts *TokenService) Issue(userID int64, login string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(ts.method, jwt.MapClaims{
		"user_id":    userID,
		"user_login": login,
		"exp":        time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(ts.secret)
}

// Validate checks signature, algorithm and expiry. Expired tokens come back
// as myerrors.ErrTokenExpired, everything else wrong with the token as
// myerrors.ErrTokenMalformed.
func (ts *TokenService) Validate(tokenString string) (models.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != ts.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return models.TokenClaims{}, myerrors.ErrTokenExpired
		}
		return models.TokenClaims{}, myerrors.ErrTokenMalformed
	}
	if !token.Valid {
		return models.TokenClaims{}, myerrors.ErrTokenMalformed
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.TokenClaims{}, myerrors.ErrTokenMalformed
	}

	userID, ok := mapClaims["user_id"].(float64)
	if !ok {
		return models.TokenClaims{}, myerrors.ErrTokenMalformed
	}
	login, ok := mapClaims["user_login"].(string)
	if !ok {
		return models.TokenClaims{}, myerrors.ErrTokenMalformed
	}

	return models.TokenClaims{
		UserID: int64(userID),
		Login:  login,
	}, nil
}
