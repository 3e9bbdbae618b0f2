package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"expense-ledger/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

// authService guards the single-user ledger with one shared password. A
// successful login mints a short-lived session token signed with the same
// secret; protected endpoints accept either the token or the raw password.
type authService struct {
	secret        []byte
	secretHash    []byte
	tokenDuration time.Duration
	tokenIssuer   string
	logger        *slog.Logger
}

// NewAuthService hashes the shared secret up front so login checks never
// touch the plaintext comparison path.
func NewAuthService(cfg *config.AuthConfig, bcryptCost int, logger *slog.Logger) (AuthServiceInterface, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SharedSecret), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash shared secret: %w", err)
	}

	return &authService{
		secret:        []byte(cfg.SharedSecret),
		secretHash:    hash,
		tokenDuration: cfg.TokenDuration,
		tokenIssuer:   cfg.TokenIssuer,
		logger:        logger,
	}, nil
}

// Login verifies the shared password and returns a signed session token
func (s *authService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.secretHash, []byte(password)); err != nil {
		s.logger.Warn("login rejected", "reason", "password mismatch")
		return "", ErrInvalidPassword
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	s.logger.Info("login accepted", "token_ttl", s.tokenDuration.String())
	return signed, nil
}

// ValidateToken accepts a signed session token or the raw shared password
func (s *authService) ValidateToken(token string) error {
	if subtle.ConstantTimeCompare([]byte(token), s.secret) == 1 {
		return nil
	}

	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}
	return nil
}
