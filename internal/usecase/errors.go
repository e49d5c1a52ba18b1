package usecase

import "errors"

// Sentinel errors, one per user-visible failure kind. Handlers map these to
// status codes with errors.Is so a failure can never be mistaken for data.
var (
	// ErrEmailTaken: registration conflict, no update-on-conflict semantics.
	ErrEmailTaken = errors.New("user already exists")

	// ErrUserNotFound: no identity record for the email.
	ErrUserNotFound = errors.New("user not found")

	// ErrOTPNotFound: no live code on file. Covers never-requested, expired
	// and already-consumed; callers cannot tell these apart.
	ErrOTPNotFound = errors.New("OTP expired or invalid")

	// ErrOTPMismatch: a live code exists but the supplied one does not match.
	// The outstanding code is not consumed.
	ErrOTPMismatch = errors.New("invalid OTP")

	// ErrDeliveryFailed: the notification sender reported a failure. Distinct
	// from store failures; the OTP row may still exist.
	ErrDeliveryFailed = errors.New("failed to send OTP email")
)
