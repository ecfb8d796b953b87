package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// KYCStatus is the verification state of a user's identity documents. The
// documents themselves live in external object storage, referenced by URL.
type KYCStatus string

const (
	KYCUnverified KYCStatus = "unverified"
	KYCPending    KYCStatus = "pending"
	KYCVerified   KYCStatus = "verified"
	KYCRejected   KYCStatus = "rejected"
)

// User represents a platform user. Earnings is mutated only additively by
// the accrual engine; Balance is touched by deposit/withdraw/purchase flows.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FullName    string             `bson:"fullName" json:"fullName"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	Balance     float64            `bson:"balance" json:"balance"`
	Earnings    float64            `bson:"earnings" json:"earnings"`
	KYCStatus   KYCStatus          `bson:"kycStatus" json:"kycStatus"`
	KYCDocument string             `bson:"kycDocument,omitempty" json:"kycDocument,omitempty"`
	Suspended   bool               `bson:"suspended" json:"suspended"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// AdjustableField is the closed set of user attributes an admin may adjust.
// Adjustments are resolved through an explicit switch, never through a
// dynamic property lookup.
type AdjustableField string

const (
	FieldBalance  AdjustableField = "balance"
	FieldEarnings AdjustableField = "earnings"
)

// AdjustBalanceRequest defines the structure for admin balance adjustments
type AdjustBalanceRequest struct {
	Field  AdjustableField `json:"field" binding:"required"`
	Amount float64         `json:"amount" binding:"required"`
}

// UpdateProfileRequest defines the structure for profile update requests
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
}
