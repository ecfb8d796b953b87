package mongodb

import (
	"testing"

	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/stretchr/testify/assert"
)

// Profile updates run concurrently with the accrual sweep's $inc credits. The
// update document must therefore carry only profile fields; a balance or
// earnings key would let a stale read overwrite an already-credited payout.
func TestProfileFieldsExcludeMonetaryFields(t *testing.T) {
	user := &models.User{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Password:    "$2a$10$hash",
		Balance:     1000,
		Earnings:    20,
		KYCStatus:   models.KYCPending,
		KYCDocument: "https://img.example/id.png",
		Suspended:   false,
	}

	fields := profileFields(user)

	assert.NotContains(t, fields, "balance")
	assert.NotContains(t, fields, "earnings")
	assert.NotContains(t, fields, "email")
	assert.NotContains(t, fields, "password")

	assert.Equal(t, "Jane Doe", fields["fullName"])
	assert.Equal(t, models.KYCPending, fields["kycStatus"])
	assert.Equal(t, "https://img.example/id.png", fields["kycDocument"])
	assert.Equal(t, false, fields["suspended"])
}
