package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims are the claims of an auth-server access token the
// client cares about.
type AccessTokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// ParseAccessTokenClaims reads the claims of tokenString without verifying
// its signature. The client never holds the signing secret; the token is
// only inspected to learn who is signed in and when to refresh.
func ParseAccessTokenClaims(tokenString string) (AccessTokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return AccessTokenClaims{}, fmt.Errorf("parse access token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return AccessTokenClaims{}, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return AccessTokenClaims{}, err
	}
	if sub == "" {
		return AccessTokenClaims{}, errors.New("empty subject error")
	}

	out := AccessTokenClaims{Subject: sub}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}

	return out, nil
}

// ParseBearerToken extracts the token of an "Authorization: Bearer x"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
