package services

import (
	"log/slog"
	"testing"
	"time"

	"expense-ledger/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceTestSuite struct {
	suite.Suite
	authService AuthServiceInterface
}

func (s *AuthServiceTestSuite) SetupTest() {
	cfg := &config.AuthConfig{
		SharedSecret:  "hunter2-but-longer",
		TokenDuration: time.Hour,
		TokenIssuer:   "expense-ledger",
	}
	service, err := NewAuthService(cfg, bcrypt.MinCost, slog.Default())
	s.Require().NoError(err)
	s.authService = service
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) TestLogin_CorrectPassword() {
	token, err := s.authService.Login("hunter2-but-longer")

	s.NoError(err)
	s.NotEmpty(token)
}

func (s *AuthServiceTestSuite) TestLogin_WrongPassword() {
	token, err := s.authService.Login("wrong")

	s.ErrorIs(err, ErrInvalidPassword)
	s.Empty(token)
}

func (s *AuthServiceTestSuite) TestLogin_TokenCarriesExpiry() {
	token, err := s.authService.Login("hunter2-but-longer")
	s.Require().NoError(err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("hunter2-but-longer"), nil
	})
	s.Require().NoError(err)

	s.Equal("expense-ledger", claims.Issuer)
	s.WithinDuration(time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func (s *AuthServiceTestSuite) TestValidateToken_AcceptsIssuedToken() {
	token, err := s.authService.Login("hunter2-but-longer")
	s.Require().NoError(err)

	s.NoError(s.authService.ValidateToken(token))
}

func (s *AuthServiceTestSuite) TestValidateToken_AcceptsRawSecret() {
	s.NoError(s.authService.ValidateToken("hunter2-but-longer"))
}

func (s *AuthServiceTestSuite) TestValidateToken_RejectsGarbage() {
	s.ErrorIs(s.authService.ValidateToken("not-a-token"), ErrInvalidToken)
}

func (s *AuthServiceTestSuite) TestValidateToken_RejectsExpiredToken() {
	cfg := &config.AuthConfig{
		SharedSecret:  "hunter2-but-longer",
		TokenDuration: -time.Hour,
		TokenIssuer:   "expense-ledger",
	}
	expired, err := NewAuthService(cfg, bcrypt.MinCost, slog.Default())
	s.Require().NoError(err)

	token, err := expired.Login("hunter2-but-longer")
	s.Require().NoError(err)

	s.ErrorIs(s.authService.ValidateToken(token), ErrInvalidToken)
}

func (s *AuthServiceTestSuite) TestValidateToken_RejectsForeignSignature() {
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := other.SignedString([]byte("a-different-secret"))
	s.Require().NoError(err)

	s.ErrorIs(s.authService.ValidateToken(signed), ErrInvalidToken)
}
