package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPassword = errors.New("invalid password")

// Service checks the single shared admin password and hands out session
// tokens. The plaintext from the environment is hashed once at startup
// and never kept around.
type Service struct {
	hash     []byte
	sessions *Sessions
}

func NewService(password string, sessions *Sessions) (*Service, error) {
	if password == "" {
		return nil, errors.New("admin password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Service{hash: hash, sessions: sessions}, nil
}

// Login verifies the password and returns a fresh session token.
func (s *Service) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}
	return s.sessions.Issue()
}
