package entity

import (
	"time"

	"github.com/google/uuid"
)

// OTP is the ephemeral credential-proof record. At most one live row per
// email: a new request replaces any prior row. Only the bcrypt hash of the
// code is stored, never the plaintext.
type OTP struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	CodeHash  string    `db:"code_hash"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}
