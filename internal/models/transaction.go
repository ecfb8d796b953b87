package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionType distinguishes credits to a user from debits.
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

// TransactionStatus is the approval state of a transaction. Accrual payouts
// are written approved; deposit and withdrawal requests start pending.
type TransactionStatus string

const (
	TransactionPending  TransactionStatus = "pending"
	TransactionApproved TransactionStatus = "approved"
	TransactionDeclined TransactionStatus = "declined"
)

// TransactionMethod names the channel a transaction moved through: a
// configured payment method, or "ROI: <plan>" for accrual payouts.
type TransactionMethod struct {
	Name string `bson:"name" json:"name"`
}

// Transaction is one append-only audit record. The engine and the approval
// flows only ever insert or flip the status of these records; amounts are
// never rewritten.
type Transaction struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Type          TransactionType    `bson:"type" json:"type"`
	Amount        float64            `bson:"amount" json:"amount"`
	Status        TransactionStatus  `bson:"status" json:"status"`
	PaymentMethod TransactionMethod  `bson:"paymentMethod" json:"paymentMethod"`
	Reference     string             `bson:"reference,omitempty" json:"reference,omitempty"`
	// ProofURL points at an externally stored proof-of-payment image.
	ProofURL  string    `bson:"proofUrl,omitempty" json:"proofUrl,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DepositRequest defines the structure for deposit requests
type DepositRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Method   string  `json:"method" binding:"required"`
	ProofURL string  `json:"proofUrl"`
}

// WithdrawRequest defines the structure for withdrawal requests
type WithdrawRequest struct {
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Method  string  `json:"method" binding:"required"`
	Address string  `json:"address"`
}
