package services

import (
	"context"
	"fmt"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// UserService handles user-related business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// GetAllUsers retrieves all users with pagination
func (s *UserService) GetAllUsers(ctx context.Context, page, limit int) ([]*models.User, error) {
	users, err := s.userRepo.FindAll(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		user.Password = ""
	}
	return users, nil
}

// UpdateProfile updates a user's editable profile fields
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// SubmitKYC records a submitted identity document and marks the user pending review
func (s *UserService) SubmitKYC(ctx context.Context, id primitive.ObjectID, documentURL string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	user.KYCDocument = documentURL
	user.KYCStatus = models.KYCPending
	return s.userRepo.Update(ctx, user)
}

// ReviewKYC sets the outcome of a KYC review
func (s *UserService) ReviewKYC(ctx context.Context, id primitive.ObjectID, approved bool) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if approved {
		user.KYCStatus = models.KYCVerified
	} else {
		user.KYCStatus = models.KYCRejected
	}
	return s.userRepo.Update(ctx, user)
}

// SetSuspended toggles a user's suspended flag
func (s *UserService) SetSuspended(ctx context.Context, id primitive.ObjectID, suspended bool) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	user.Suspended = suspended
	return s.userRepo.Update(ctx, user)
}

// AdjustField applies an admin balance adjustment. The adjustable attribute
// is resolved through an explicit switch over a closed enum, never through a
// dynamic field lookup.
func (s *UserService) AdjustField(ctx context.Context, id primitive.ObjectID, field models.AdjustableField, amount float64) error {
	switch field {
	case models.FieldBalance:
		if err := s.userRepo.IncrementBalance(ctx, id, amount); err != nil {
			return err
		}
	case models.FieldEarnings:
		if err := s.userRepo.IncrementEarnings(ctx, id, amount); err != nil {
			return err
		}
	default:
		return fmt.Errorf("field %q is not adjustable", field)
	}

	slog.Info("Admin balance adjustment applied", "userId", id, "field", field, "amount", amount)
	return nil
}

// GetUserCount gets the total number of users
func (s *UserService) GetUserCount(ctx context.Context) (int64, error) {
	return s.userRepo.Count(ctx)
}
