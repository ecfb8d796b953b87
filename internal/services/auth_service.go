package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/codeAKstan/NexaVault-sub000/internal/config"
	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/repositories"
	"github.com/codeAKstan/NexaVault-sub000/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// ErrInvalidCredentials is returned for any login failure so the response
// never reveals whether the email exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailTaken is returned when registering an email that already exists.
var ErrEmailTaken = errors.New("an account with this email already exists")

// AuthService handles registration and login for both principal types
type AuthService struct {
	userRepo  repositories.UserRepository
	adminRepo repositories.AdminRepository
	cfg       *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, adminRepo repositories.AdminRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Register creates a new user account with a hashed password
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName:  req.FullName,
		Email:     req.Email,
		Password:  string(hashed),
		KYCStatus: models.KYCUnverified,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User registered", "userId", user.ID, "email", user.Email)
	user.Password = ""
	return user, nil
}

// LoginUser verifies user credentials and returns a signed token
func (s *AuthService) LoginUser(ctx context.Context, req *models.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if user.Suspended {
		return "", nil, errors.New("account is suspended")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, utils.PrincipalUser, s.cfg)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user.Password = ""
	return token, user, nil
}

// LoginAdmin verifies admin credentials and returns a signed token
func (s *AuthService) LoginAdmin(ctx context.Context, req *models.LoginRequest) (string, *models.Admin, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email, utils.PrincipalAdmin, s.cfg)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	admin.Password = ""
	return token, admin, nil
}
