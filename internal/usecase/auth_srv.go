package usecase

import (
	"context"
	"fmt"
	"time"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"
	"food-ordering/pkg/mailer"
	"food-ordering/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService turns an email address into a verified session, gated by a
// time-limited one-time code delivered out of band.
//
// Per-email lifecycle: no code -> code issued (SendOTP) -> consumed
// (VerifyOTP), expired (store TTL) or superseded (SendOTP again). Consumed
// and expired are indistinguishable from never-requested.
type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	SendOTP(ctx context.Context, req *request.SendOTPRequest) error
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.VerifyOTPResponse, error)
}

type authService struct {
	repo   *repository.Repository
	mail   mailer.Sender
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	mail mailer.Sender,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log,
	}
}

// Register creates a new user. Fails with ErrEmailTaken when the email is
// already registered. The password is hashed and stored but otherwise
// unused: the actual login method is OTP-based.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) error {
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return nil
}

// Login only confirms the account exists and returns its display name. It
// performs no password check and issues no code: real authentication goes
// through SendOTP/VerifyOTP. Kept as-is from the earlier password-based
// design.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &response.LoginResponse{
		Message: "Use OTP to login",
		Name:    user.Name,
	}, nil
}

// SendOTP issues a fresh 6-digit code for a registered email, superseding
// any outstanding code, and mails it. The plaintext code lives only in the
// mail body; the store keeps a bcrypt hash. The OTP row is written before
// the send and is not rolled back when delivery fails.
func (s *authService) SendOTP(ctx context.Context, req *request.SendOTPRequest) error {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for OTP", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	code := utils.GenerateOTP(s.config.OTP.Length)

	codeHash, err := utils.HashPassword(code)
	if err != nil {
		s.log.Error("Failed to hash OTP code", zap.Error(err))
		return fmt.Errorf("hash OTP code: %w", err)
	}

	now := time.Now()
	ttl := time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute
	otp := &entity.OTP{
		ID:        uuid.New(),
		Email:     user.Email,
		CodeHash:  codeHash,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	if err := s.repo.OTP.Replace(ctx, otp); err != nil {
		s.log.Error("Failed to store OTP", zap.Error(err), zap.String("email", user.Email))
		return fmt.Errorf("store OTP: %w", err)
	}

	subject := "Your OTP for Foodie"
	body := fmt.Sprintf("Your OTP is: %s. It will expire in %d minutes.", code, s.config.OTP.ExpiryMinutes)

	if err := s.mail.Send(ctx, user.Email, subject, body); err != nil {
		s.log.Error("OTP delivery failed", zap.Error(err), zap.String("email", user.Email))
		return ErrDeliveryFailed
	}

	s.log.Info("OTP issued",
		zap.String("email", user.Email),
		zap.Time("expires_at", otp.ExpiresAt))

	return nil
}

// VerifyOTP checks the supplied code against the live record for the email.
// On success the record is consumed (single use) and a session token valid
// for the configured expiry is minted, bound by value to the user's id and
// email at this moment.
func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.VerifyOTPResponse, error) {
	otp, err := s.repo.OTP.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to look up OTP", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find OTP: %w", err)
	}
	if otp == nil {
		return nil, ErrOTPNotFound
	}

	if !utils.CheckPasswordHash(req.OTP, otp.CodeHash) {
		s.log.Warn("OTP mismatch", zap.String("email", req.Email))
		return nil, ErrOTPMismatch
	}

	// Defensive: the user could vanish between issuance and verification
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for verification", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Consume before minting so the code can never verify twice
	if err := s.repo.OTP.DeleteByEmail(ctx, req.Email); err != nil {
		s.log.Error("Failed to consume OTP", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("consume OTP: %w", err)
	}

	ttl := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	token, err := utils.GenerateToken(s.config.JWT.Secret, user.ID, user.Email, ttl)
	if err != nil {
		s.log.Error("Failed to mint session token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("mint session token: %w", err)
	}

	s.log.Info("OTP verified",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &response.VerifyOTPResponse{
		Message: "OTP verified successfully",
		Token:   token,
		User: response.UserSummary{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}
