package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TopUpInterval is the cadence at which profit is credited to an investment.
type TopUpInterval string

const (
	IntervalHourly  TopUpInterval = "Hourly"
	IntervalDaily   TopUpInterval = "Daily"
	IntervalWeekly  TopUpInterval = "Weekly"
	IntervalMonthly TopUpInterval = "Monthly"
	IntervalYearly  TopUpInterval = "Yearly"
)

// TopUpType says whether TopUpAmount is a percentage of the principal or a
// flat currency amount.
type TopUpType string

const (
	TopUpPercentage TopUpType = "Percentage"
	TopUpFixed      TopUpType = "Fixed"
)

// Plan is an admin-authored investment plan template. Plans are never
// mutated by the accrual engine.
type Plan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	Price         float64            `bson:"price" json:"price"`
	MinPrice      float64            `bson:"minPrice" json:"minPrice"`
	MaxPrice      float64            `bson:"maxPrice" json:"maxPrice"`
	MinReturn     float64            `bson:"minReturn" json:"minReturn"`
	MaxReturn     float64            `bson:"maxReturn" json:"maxReturn"`
	TopUpInterval TopUpInterval      `bson:"topUpInterval" json:"topUpInterval"`
	TopUpType     TopUpType          `bson:"topUpType" json:"topUpType"`
	TopUpAmount   float64            `bson:"topUpAmount" json:"topUpAmount"`
	// Duration is a free-text magnitude+unit string such as "7 Days",
	// resolved into a concrete end date at purchase time.
	Duration  string    `bson:"duration" json:"duration"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PlanRequest defines the structure for plan create/update requests
type PlanRequest struct {
	Name          string        `json:"name" binding:"required"`
	Price         float64       `json:"price"`
	MinPrice      float64       `json:"minPrice" binding:"min=0"`
	MaxPrice      float64       `json:"maxPrice" binding:"min=0"`
	MinReturn     float64       `json:"minReturn"`
	MaxReturn     float64       `json:"maxReturn"`
	TopUpInterval TopUpInterval `json:"topUpInterval" binding:"required"`
	TopUpType     TopUpType     `json:"topUpType" binding:"required"`
	TopUpAmount   float64       `json:"topUpAmount" binding:"required"`
	Duration      string        `json:"duration" binding:"required"`
}
