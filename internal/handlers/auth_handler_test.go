package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expense-ledger/internal/dto"
	"expense-ledger/internal/services"
	"expense-ledger/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService, slog.Default())
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerTestSuite) postLogin(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(s.handler.Login(c))
	return rec
}

func (s *AuthHandlerTestSuite) TestLogin_Success() {
	s.authService.EXPECT().Login("the-password").Return("signed-token", nil)

	rec := s.postLogin(`{"password":"the-password"}`)

	s.Equal(http.StatusOK, rec.Code)

	var response dto.LoginResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.True(response.Success)
	s.Equal("signed-token", response.Token)
	s.Empty(response.Error)
}

func (s *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	s.authService.EXPECT().Login("nope").Return("", services.ErrInvalidPassword)

	rec := s.postLogin(`{"password":"nope"}`)

	s.Equal(http.StatusUnauthorized, rec.Code)

	var response dto.LoginResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.False(response.Success)
	s.Equal("Invalid password", response.Error)
	s.Empty(response.Token)
}

func (s *AuthHandlerTestSuite) TestLogin_MissingPassword() {
	rec := s.postLogin(`{}`)

	s.Equal(http.StatusBadRequest, rec.Code)

	var response dto.LoginResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.False(response.Success)
	s.Equal("Password is required", response.Error)
}

func (s *AuthHandlerTestSuite) TestLogin_MalformedBody() {
	rec := s.postLogin(`{"password":`)

	s.Equal(http.StatusBadRequest, rec.Code)
}
