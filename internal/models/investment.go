package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvestmentStatus is the lifecycle state of an investment. Once an
// investment leaves active there is no transition back.
type InvestmentStatus string

const (
	InvestmentActive    InvestmentStatus = "active"
	InvestmentCompleted InvestmentStatus = "completed"
	InvestmentCancelled InvestmentStatus = "cancelled"
)

// Investment is one purchase of a plan by a user. The principal (Amount) and
// EndDate are fixed at creation; the accrual engine advances NextPayout and
// accumulates TotalEarnings until the investment completes.
type Investment struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	PlanID   primitive.ObjectID `bson:"planId" json:"planId"`
	PlanName string             `bson:"planName" json:"planName"` // denormalized for audit tagging
	Amount   float64            `bson:"amount" json:"amount"`
	ROI      string             `bson:"roi,omitempty" json:"roi,omitempty"` // display only
	Status   InvestmentStatus   `bson:"status" json:"status"`
	StartDate time.Time         `bson:"startDate" json:"startDate"`
	EndDate   time.Time         `bson:"endDate" json:"endDate"`
	// NextPayout is the next due accrual. Nil means due now (first payout).
	NextPayout    *time.Time `bson:"nextPayout,omitempty" json:"nextPayout,omitempty"`
	TotalEarnings float64    `bson:"totalEarnings" json:"totalEarnings"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// PurchaseRequest defines the structure for investment purchase requests
type PurchaseRequest struct {
	PlanID string  `json:"planId" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
