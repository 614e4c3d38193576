package impl

import (
	"context"
	"testing"

	"propmart/config"
	"propmart/internal/domain/entity"
	domainerrors "propmart/internal/domain/errors"
	"propmart/internal/domain/repository"
	"propmart/internal/infra/auth"
	"propmart/internal/infra/memory"
	"propmart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo repository.UserRepository
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userRepo := memory.NewUserRepository()
	service := NewAuthService(userRepo, auth.NewBcryptHasher(cfg), tokens)

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	session, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Password: "s3cret-pass",
		Role:     entity.RoleBroker,
		Agency:   "Verma Estates",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.NotEmpty(t, session.User.ID)
	assert.Equal(t, entity.RoleBroker, session.User.Role)
	assert.Equal(t, entity.UserActive, session.User.Status)
}

func TestAuthService_Register_DefaultsToUserRole(t *testing.T) {
	fx := createTestAuthService(t)

	session, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Name:     "Rohan Iyer",
		Email:    "rohan@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, session.User.Role)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := usecase.RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "s3cret-pass"}
	_, err := fx.service.Register(ctx, input)
	require.NoError(t, err)

	_, err = fx.service.Register(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	session, err := fx.service.Login(ctx, "asha@example.com", "s3cret-pass")

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "asha@example.com", session.User.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = fx.service.Login(ctx, "asha@example.com", "wrong")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), "nobody@example.com", "whatever")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	session, err := fx.service.Register(ctx, usecase.RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	suspended := session.User
	suspended.Status = entity.UserInactive
	require.NoError(t, fx.userRepo.Update(ctx, suspended))

	_, err = fx.service.Login(ctx, "asha@example.com", "s3cret-pass")

	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
}
