package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentMethod is an admin-configured deposit/withdrawal channel shown to
// users on the deposit page.
type PaymentMethod struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Network   string             `bson:"network,omitempty" json:"network,omitempty"`
	Address   string             `bson:"address" json:"address"`
	Enabled   bool               `bson:"enabled" json:"enabled"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PaymentMethodRequest defines the structure for payment method create/update requests
type PaymentMethodRequest struct {
	Name    string `json:"name" binding:"required"`
	Network string `json:"network"`
	Address string `json:"address" binding:"required"`
	Enabled *bool  `json:"enabled"`
}
