package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookie carries the signed session token.
const SessionCookie = "session"

const sessionTTL = 24 * time.Hour

// Sessions issues and validates the admin session tokens stored in the
// browser cookie. There is a single shared admin identity, so the token
// only asserts "authenticated" plus an expiry.
type Sessions struct {
	secret []byte
}

func NewSessions(secret string) *Sessions {
	return &Sessions{secret: []byte(secret)}
}

func (s *Sessions) Issue() (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("session secret not set")
	}

	claims := jwt.MapClaims{
		"authenticated": true,
		"jti":           uuid.New().String(),
		"exp":           time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Sessions) Validate(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid session")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("invalid session claims")
	}
	if authenticated, _ := claims["authenticated"].(bool); !authenticated {
		return errors.New("session not authenticated")
	}
	return nil
}
