package services

import (
	"context"
	"errors"
	"log/slog"

	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/dto"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/middleware"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/utils"
	"github.com/Oligens/scarwrite.haiti-sub001/pkg/config"
)

// ErrInvalidCredentials is returned when the operator credential check fails.
var ErrInvalidCredentials = errors.New("invalid username or password")

// authService verifies the single operator credential configured for the
// business and issues session tokens. There is no user table; ScarWrite is a
// single-operator application.
type authService struct {
	cfg *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if username != s.cfg.AdminUsername || !utils.CheckPasswordHash(password, s.cfg.AdminPasswordHash) {
		logger.Warn("Login failed", slog.String("username", username))
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateJWT(username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		return nil, err
	}

	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
