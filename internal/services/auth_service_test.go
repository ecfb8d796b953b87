package services

import (
	"context"
	"testing"

	"github.com/codeAKstan/NexaVault-sub000/internal/config"
	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture() (*AuthService, *MockUserRepository, *MockAdminRepository) {
	userRepo := new(MockUserRepository)
	adminRepo := new(MockAdminRepository)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600}}
	service := NewAuthService(userRepo, adminRepo, cfg)
	return service, userRepo, adminRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestRegisterNewUser(t *testing.T) {
	service, userRepo, _ := newAuthFixture()

	userRepo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, mongo.ErrNoDocuments)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "new@example.com" &&
			u.KYCStatus == models.KYCUnverified &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) == nil
	})).Return(nil)

	user, err := service.Register(context.Background(), &models.RegisterRequest{
		FullName: "New User",
		Email:    "new@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Empty(t, user.Password)

	userRepo.AssertExpectations(t)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service, userRepo, _ := newAuthFixture()

	existing := &models.User{ID: primitive.NewObjectID(), Email: "taken@example.com"}
	userRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(existing, nil)

	_, err := service.Register(context.Background(), &models.RegisterRequest{
		FullName: "Someone",
		Email:    "taken@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginUser(t *testing.T) {
	service, userRepo, _ := newAuthFixture()

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "user@example.com",
		Password: hashPassword(t, "secret123"),
	}
	userRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(user, nil)

	token, loggedIn, err := service.LoginUser(context.Background(), &models.LoginRequest{
		Email:    "user@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, loggedIn.Password)
}

func TestLoginUserWrongPassword(t *testing.T) {
	service, userRepo, _ := newAuthFixture()

	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "user@example.com",
		Password: hashPassword(t, "secret123"),
	}
	userRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(user, nil)

	_, _, err := service.LoginUser(context.Background(), &models.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserUnknownEmail(t *testing.T) {
	service, userRepo, _ := newAuthFixture()

	userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, mongo.ErrNoDocuments)

	_, _, err := service.LoginUser(context.Background(), &models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserSuspended(t *testing.T) {
	service, userRepo, _ := newAuthFixture()

	user := &models.User{
		ID:        primitive.NewObjectID(),
		Email:     "user@example.com",
		Password:  hashPassword(t, "secret123"),
		Suspended: true,
	}
	userRepo.On("FindByEmail", mock.Anything, "user@example.com").Return(user, nil)

	_, _, err := service.LoginUser(context.Background(), &models.LoginRequest{
		Email:    "user@example.com",
		Password: "secret123",
	})
	assert.Error(t, err)
}

func TestLoginAdminIssuesAdminPrincipal(t *testing.T) {
	service, _, adminRepo := newAuthFixture()

	admin := &models.Admin{
		ID:       primitive.NewObjectID(),
		Email:    "admin@example.com",
		Password: hashPassword(t, "admin-secret"),
	}
	adminRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(admin, nil)

	token, _, err := service.LoginAdmin(context.Background(), &models.LoginRequest{
		Email:    "admin@example.com",
		Password: "admin-secret",
	})
	require.NoError(t, err)

	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600}}
	claims, err := utils.ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, utils.PrincipalAdmin, claims["principal"])
}
