package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"expense-ledger/internal/dto"
	"expense-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves the login endpoint. Its wire format predates the
// standardized error envelope and is kept as-is: clients check the success
// flag, not HTTP codes.
type AuthHandler struct {
	authService services.AuthServiceInterface
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthServiceInterface, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login exchanges the shared password for a session token
// POST /api/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.LoginResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}
	if req.Password == "" {
		return c.JSON(http.StatusBadRequest, dto.LoginResponse{
			Success: false,
			Error:   "Password is required",
		})
	}

	token, err := h.authService.Login(req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPassword) {
			h.logger.Warn("failed login attempt", "ip", getClientIP(c))
			return c.JSON(http.StatusUnauthorized, dto.LoginResponse{
				Success: false,
				Error:   "Invalid password",
			})
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Token:   token,
	})
}
