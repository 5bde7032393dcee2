package auth_test

import (
	"context"
	"errors"
	"testing"

	"hradmin/internal/auth"
	autherrors "hradmin/internal/auth/errors"
	authMock "hradmin/internal/auth/mock"
	"hradmin/internal/token"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*authMock.MockRepository, *token.Issuer, auth.Service) {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	issuer := token.NewIssuer("test-secret", token.DefaultTTL)
	svc := auth.NewService(repo, issuer)
	return repo, issuer, svc
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success - token subject matches login id", func(t *testing.T) {
		repo, issuer, svc := setupService(t)

		repo.EXPECT().
			FindByEmail(gomock.Any(), "a@x.com").
			Return(&auth.EmployeeLogin{
				ID:       7,
				Email:    "a@x.com",
				Password: hashPassword(t, "secret123"),
			}, nil)
		repo.EXPECT().
			EmployeeProfile(gomock.Any(), uint(7)).
			Return(&auth.EmployeeProfile{
				IDEmployee:     11,
				Fullname:       "Budi Santoso",
				NameDepartment: "Engineering",
				NameDivision:   "Backend",
			}, nil)

		result, err := svc.Login(ctx, "a@x.com", "secret123")

		assert.NoError(t, err)
		assert.Equal(t, uint(7), result.User.ID)
		assert.Equal(t, "a@x.com", result.User.Email)
		assert.NotNil(t, result.User.Employee)
		assert.Equal(t, "Engineering", result.User.Employee.NameDepartment)

		subject, err := issuer.Verify(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, uint(7), subject)
	})

	t.Run("success - login without employee row", func(t *testing.T) {
		repo, _, svc := setupService(t)

		repo.EXPECT().
			FindByEmail(gomock.Any(), "a@x.com").
			Return(&auth.EmployeeLogin{
				ID:       7,
				Email:    "a@x.com",
				Password: hashPassword(t, "secret123"),
			}, nil)
		repo.EXPECT().
			EmployeeProfile(gomock.Any(), uint(7)).
			Return(nil, nil)

		result, err := svc.Login(ctx, "a@x.com", "secret123")

		assert.NoError(t, err)
		assert.Nil(t, result.User.Employee)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo, _, svc := setupService(t)

		repo.EXPECT().
			FindByEmail(gomock.Any(), "nobody@x.com").
			Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(ctx, "nobody@x.com", "secret123")

		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo, _, svc := setupService(t)

		repo.EXPECT().
			FindByEmail(gomock.Any(), "a@x.com").
			Return(&auth.EmployeeLogin{
				ID:       7,
				Email:    "a@x.com",
				Password: hashPassword(t, "secret123"),
			}, nil)

		_, err := svc.Login(ctx, "a@x.com", "wrong-password")

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("repository error", func(t *testing.T) {
		repo, _, svc := setupService(t)

		repo.EXPECT().
			FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		_, err := svc.Login(ctx, "a@x.com", "secret123")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}
