package repository

import (
	"context"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// OTPRepository owns the expiry contract: expired rows are invisible to
// FindByEmail and are cleaned up lazily on the next write. No active sweep.
type OTPRepository interface {
	Replace(ctx context.Context, otp *entity.OTP) error
	FindByEmail(ctx context.Context, email string) (*entity.OTP, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

// Replace atomically supersedes any prior code for the email. The upsert
// relies on the unique index on otps(email), so two concurrent requests
// cannot leave two live rows.
func (r *otpRepository) Replace(ctx context.Context, otp *entity.OTP) error {
	// Lazy cleanup of expired rows, cheap on a table this small
	if _, err := r.db.Exec(ctx, `DELETE FROM otps WHERE expires_at <= NOW()`); err != nil {
		r.log.Warn("Failed to prune expired OTPs", zap.Error(err))
	}

	query := `
		INSERT INTO otps (id, email, code_hash, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE
		SET id = EXCLUDED.id,
		    code_hash = EXCLUDED.code_hash,
		    created_at = EXCLUDED.created_at,
		    expires_at = EXCLUDED.expires_at
	`

	_, err := r.db.Exec(ctx, query,
		otp.ID,
		otp.Email,
		otp.CodeHash,
		otp.CreatedAt,
		otp.ExpiresAt,
	)

	if err != nil {
		r.log.Error("Failed to replace OTP",
			zap.Error(err),
			zap.String("email", otp.Email),
		)
		return fmt.Errorf("replace OTP for %s: %w", otp.Email, err)
	}

	return nil
}

// FindByEmail returns the live OTP row for the email, or nil when none
// exists or the row has expired. Callers cannot tell those cases apart.
func (r *otpRepository) FindByEmail(ctx context.Context, email string) (*entity.OTP, error) {
	query := `
		SELECT id, email, code_hash, created_at, expires_at
		FROM otps
		WHERE email = $1
		  AND expires_at > NOW()
	`

	var otp entity.OTP
	err := r.db.QueryRow(ctx, query, email).Scan(
		&otp.ID,
		&otp.Email,
		&otp.CodeHash,
		&otp.CreatedAt,
		&otp.ExpiresAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find OTP",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find OTP for %s: %w", email, err)
	}

	return &otp, nil
}

// DeleteByEmail consumes the OTP row. Deleting an absent row is not an error.
func (r *otpRepository) DeleteByEmail(ctx context.Context, email string) error {
	query := `DELETE FROM otps WHERE email = $1`

	_, err := r.db.Exec(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to delete OTP",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("delete OTP for %s: %w", email, err)
	}

	return nil
}
