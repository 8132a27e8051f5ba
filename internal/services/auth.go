package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"employee-form/internal/dto"
	"employee-form/internal/entities"
	"employee-form/internal/repositories"
	"employee-form/pkg/config"
	apperrors "employee-form/pkg/errors"
	"employee-form/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, d dto.LoginDTO) (*entities.Session, error)
	Authenticate(ctx context.Context, sid string) (*entities.Session, error)
	Logout(ctx context.Context, sid string) error
	ValidateCSRF(session *entities.Session, token string) error
}

type AuthService struct {
	sessionRepo repositories.SessionRepositoryInterface
	siteCfg     *config.SiteConfig
	logger      *zap.Logger
	now         func() time.Time
}

func NewAuthService(sessionRepo repositories.SessionRepositoryInterface, siteCfg *config.SiteConfig, logger *zap.Logger) AuthServiceInterface {
	if siteCfg.PasswordHash == "" {
		logger.Warn("SITE_PASSWORD_HASH не задан: вход на сайт невозможен")
	}
	return &AuthService{
		sessionRepo: sessionRepo,
		siteCfg:     siteCfg,
		logger:      logger,
		now:         time.Now,
	}
}

// Login проверяет учётные данные и открывает сессию с собственным CSRF-токеном.
func (s *AuthService) Login(ctx context.Context, d dto.LoginDTO) (*entities.Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(d.Usr)), []byte(s.siteCfg.User)) == 1
	if !userOK || s.siteCfg.PasswordHash == "" || utils.ComparePasswords(s.siteCfg.PasswordHash, d.Pwd) != nil {
		s.logger.Warn("Неудачная попытка входа", zap.String("usr", d.Usr))
		return nil, apperrors.NewHttpError(http.StatusUnauthorized, "Invalid login credentials", apperrors.ErrInvalidCredentials, nil)
	}

	session := &entities.Session{
		SID:       newToken(),
		User:      s.siteCfg.User,
		FullName:  s.siteCfg.FullName,
		CSRFToken: newToken(),
		ExpiresAt: s.now().Add(s.siteCfg.SessionTTL),
	}
	if err := s.sessionRepo.Save(ctx, session, s.siteCfg.SessionTTL); err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "Не удалось открыть сессию", err, nil)
	}

	s.logger.Info("Пользователь вошёл", zap.String("user", session.User))
	return session, nil
}

// Authenticate находит живую сессию по sid. Пустой или просроченный sid - гость.
func (s *AuthService) Authenticate(ctx context.Context, sid string) (*entities.Session, error) {
	if sid == "" || sid == "Guest" {
		return nil, apperrors.ErrUnauthorized
	}

	session, err := s.sessionRepo.FindBySID(ctx, sid)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionExpired) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if session.Expired(s.now()) {
		return nil, apperrors.ErrUnauthorized
	}
	return session, nil
}

func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return s.sessionRepo.Delete(ctx, sid)
}

// ValidateCSRF сравнивает заголовок X-Frappe-CSRF-Token с токеном сессии.
func (s *AuthService) ValidateCSRF(session *entities.Session, token string) error {
	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(session.CSRFToken)) != 1 {
		return apperrors.NewHttpError(http.StatusBadRequest, "Invalid Request", apperrors.ErrCSRFToken,
			map[string]interface{}{"user": session.User})
	}
	return nil
}

func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
