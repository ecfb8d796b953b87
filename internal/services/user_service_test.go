package services

import (
	"context"
	"testing"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAdjustFieldBalance(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo)

	userID := primitive.NewObjectID()
	userRepo.On("IncrementBalance", mock.Anything, userID, 250.0).Return(nil)

	require.NoError(t, service.AdjustField(context.Background(), userID, models.FieldBalance, 250))

	userRepo.AssertExpectations(t)
	userRepo.AssertNotCalled(t, "IncrementEarnings", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustFieldEarnings(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo)

	userID := primitive.NewObjectID()
	userRepo.On("IncrementEarnings", mock.Anything, userID, -40.0).Return(nil)

	require.NoError(t, service.AdjustField(context.Background(), userID, models.FieldEarnings, -40))

	userRepo.AssertExpectations(t)
}

func TestAdjustFieldRejectsUnknownField(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo)

	err := service.AdjustField(context.Background(), primitive.NewObjectID(), models.AdjustableField("password"), 100)
	assert.Error(t, err)

	userRepo.AssertNotCalled(t, "IncrementBalance", mock.Anything, mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "IncrementEarnings", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetUserByIDStripsPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo)

	userID := primitive.NewObjectID()
	userRepo.On("FindByID", mock.Anything, userID).Return(&models.User{
		ID:       userID,
		Email:    "user@example.com",
		Password: "$2a$10$hash",
	}, nil)

	user, err := service.GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, user.Password)
}

func TestSubmitKYCMarksPending(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo)

	userID := primitive.NewObjectID()
	userRepo.On("FindByID", mock.Anything, userID).Return(&models.User{ID: userID}, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.KYCStatus == models.KYCPending && u.KYCDocument == "https://img.example/id.png"
	})).Return(nil)

	require.NoError(t, service.SubmitKYC(context.Background(), userID, "https://img.example/id.png"))
	userRepo.AssertExpectations(t)
}

func TestReviewKYC(t *testing.T) {
	tests := []struct {
		name     string
		approved bool
		want     models.KYCStatus
	}{
		{"approved", true, models.KYCVerified},
		{"rejected", false, models.KYCRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			service := NewUserService(userRepo)

			userID := primitive.NewObjectID()
			userRepo.On("FindByID", mock.Anything, userID).Return(&models.User{ID: userID, KYCStatus: models.KYCPending}, nil)
			userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
				return u.KYCStatus == tt.want
			})).Return(nil)

			require.NoError(t, service.ReviewKYC(context.Background(), userID, tt.approved))
			userRepo.AssertExpectations(t)
		})
	}
}

func TestSetSuspended(t *testing.T) {
	userRepo := new(MockUserRepository)
	service := NewUserService(userRepo)

	userID := primitive.NewObjectID()
	userRepo.On("FindByID", mock.Anything, userID).Return(&models.User{ID: userID}, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Suspended
	})).Return(nil)

	require.NoError(t, service.SetSuspended(context.Background(), userID, true))
	userRepo.AssertExpectations(t)
}
