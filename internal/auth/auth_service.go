package auth

import (
	"context"
	"errors"

	autherrors "hradmin/internal/auth/errors"
	"hradmin/internal/token"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
}

type service struct {
	repo   Repository
	issuer *token.Issuer
	logger *zap.Logger
}

func NewService(repo Repository, issuer *token.Issuer, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, issuer: issuer, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	// 1. Cari credential berdasarkan email.
	// Email tidak dikenal dan password salah sengaja dibedakan responnya,
	// mengikuti perilaku API lama.
	login, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Debug("login unknown email", zap.String("email", email))
			return LoginResult{}, autherrors.ErrUserNotFound
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return LoginResult{}, err
	}

	// 2. Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(login.Password), []byte(password)); err != nil {
		s.logger.Debug("login password mismatch", zap.Uint("login_id", login.ID))
		return LoginResult{}, autherrors.ErrInvalidCredentials
	}

	// 3. Proyeksi profil employee untuk response (read-only join)
	profile, err := s.repo.EmployeeProfile(ctx, login.ID)
	if err != nil {
		s.logger.Error("login employee profile failed", zap.Error(err))
		return LoginResult{}, err
	}

	// 4. Issue token dengan subject id = id credential
	signed, err := s.issuer.Issue(login.ID)
	if err != nil {
		s.logger.Error("login token issue failed", zap.Error(err))
		return LoginResult{}, err
	}

	s.logger.Info("login success", zap.Uint("login_id", login.ID))

	return LoginResult{
		User: UserResponse{
			ID:       login.ID,
			Email:    login.Email,
			Employee: profile,
		},
		Token: signed,
	}, nil
}
