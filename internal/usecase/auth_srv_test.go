package usecase

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"food-ordering/internal/data/entity"
	"food-ordering/internal/data/repository"
	"food-ordering/internal/dto/request"
	"food-ordering/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ==================== FAKES ====================

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := *user
	f.users[user.Email] = &u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

// fakeOTPRepo mimics the store's expiry contract: rows past their
// expires_at are invisible to reads. The clock is injectable so tests can
// move time forward.
type fakeOTPRepo struct {
	mu      sync.Mutex
	records map[string]*entity.OTP
	now     func() time.Time
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{
		records: make(map[string]*entity.OTP),
		now:     time.Now,
	}
}

func (f *fakeOTPRepo) Replace(ctx context.Context, otp *entity.OTP) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := *otp
	f.records[otp.Email] = &o
	return nil
}

func (f *fakeOTPRepo) FindByEmail(ctx context.Context, email string) (*entity.OTP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.records[email]
	if !ok || !o.ExpiresAt.After(f.now()) {
		return nil, nil
	}
	out := *o
	return &out, nil
}

func (f *fakeOTPRepo) DeleteByEmail(ctx context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.records, email)
	return nil
}

type fakeSender struct {
	mu    sync.Mutex
	sent  []sentMail
	fail  bool
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (f *fakeSender) Send(ctx context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("smtp: connection refused")
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (f *fakeSender) lastBody(t *testing.T) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.sent, "no mail was sent")
	return f.sent[len(f.sent)-1].body
}

var otpCodePattern = regexp.MustCompile(`\d{6}`)

func extractCode(t *testing.T, body string) string {
	code := otpCodePattern.FindString(body)
	require.NotEmpty(t, code, "mail body carries no 6-digit code: %q", body)
	return code
}

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryHours: 168},
		OTP: utils.OTPConfig{ExpiryMinutes: 5, Length: 6},
	}
}

type authFixture struct {
	svc    AuthService
	users  *fakeUserRepo
	otps   *fakeOTPRepo
	sender *fakeSender
}

func newAuthFixture() *authFixture {
	users := newFakeUserRepo()
	otps := newFakeOTPRepo()
	sender := &fakeSender{}
	repo := &repository.Repository{User: users, OTP: otps}
	svc := NewAuthService(repo, sender, testConfig(), zap.NewNop())
	return &authFixture{svc: svc, users: users, otps: otps, sender: sender}
}

func register(t *testing.T, f *authFixture, name, email string) {
	t.Helper()
	err := f.svc.Register(context.Background(), &request.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "secret1",
	})
	require.NoError(t, err)
}

func requestCode(t *testing.T, f *authFixture, email string) string {
	t.Helper()
	err := f.svc.SendOTP(context.Background(), &request.SendOTPRequest{Email: email})
	require.NoError(t, err)
	return extractCode(t, f.sender.lastBody(t))
}

// ==================== TESTS ====================

func TestRegisterConflictOnSecondAttempt(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	req := &request.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "secret1"}
	require.NoError(t, f.svc.Register(ctx, req))

	err := f.svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	f := newAuthFixture()
	register(t, f, "Ana", "ana@x.com")

	user, err := f.users.FindByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Ana", user.Name)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret1", user.PasswordHash))
}

func TestSendOTPRequiresRegistration(t *testing.T) {
	f := newAuthFixture()

	err := f.svc.SendOTP(context.Background(), &request.SendOTPRequest{Email: "nobody@x.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, f.sender.sent)
}

func TestSendOTPStoresHashNotPlaintext(t *testing.T) {
	f := newAuthFixture()
	register(t, f, "Ana", "ana@x.com")
	code := requestCode(t, f, "ana@x.com")

	otp, err := f.otps.FindByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	require.NotNil(t, otp)
	assert.NotEqual(t, code, otp.CodeHash)
	assert.True(t, utils.CheckPasswordHash(code, otp.CodeHash))
}

func TestVerifyOTPHappyPath(t *testing.T) {
	f := newAuthFixture()
	register(t, f, "Ana", "ana@x.com")
	code := requestCode(t, f, "ana@x.com")

	result, err := f.svc.VerifyOTP(context.Background(), &request.VerifyOTPRequest{
		Email: "ana@x.com",
		OTP:   code,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "Ana", result.User.Name)
	assert.Equal(t, "ana@x.com", result.User.Email)

	// Token is bound by value to the user's id and email
	claims, err := utils.ParseToken("test-secret", result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, claims.UserID)
	assert.Equal(t, "ana@x.com", claims.Email)

	// Expiry is 7 days out
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, (168 * time.Hour).Seconds(), remaining.Seconds(), 60)
}

func TestVerifyOTPIsSingleUse(t *testing.T) {
	f := newAuthFixture()
	register(t, f, "Ana", "ana@x.com")
	code := requestCode(t, f, "ana@x.com")
	ctx := context.Background()

	_, err := f.svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "ana@x.com", OTP: code})
	require.NoError(t, err)

	_, err = f.svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "ana@x.com", OTP: code})
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestVerifyOTPWrongCodeDoesNotConsume(t *testing.T) {
	f := newAuthFixture()
	register(t, f, "Ana", "ana@x.com")
	code := requestCode(t, f, "ana@x.com")
	ctx := context.Background()

	wrong := "000000"
	if wrong == code {
		wrong = "111111"
	}

	_, err := f.svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "ana@x.com", OTP: wrong})
	assert.ErrorIs(t, err, ErrOTPMismatch)

	// The outstanding code still works
	_, err = f.svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "ana@x.com", OTP: code})
	assert.NoError(t, err)
}

func TestSendOTPSupersedesPriorCode(t *testing.T) {
	f := newAuthFixture()
	register(t, f, "Ana", "ana@x.com")
	ctx := context.Background()

	first := requestCode(t, f, "ana@x.com")
	second := requestCode(t, f, "ana@x.com")

	if first != second {
		// First code is dead even though its TTL has not elapsed
		_, err := f.svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "ana@x.com", OTP: first})
		assert.ErrorIs(t, err, ErrOTPMismatch)
	}

	_, err := f.svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "ana@x.com", OTP: second})
	assert.NoError(t, err)
}

func TestVerifyOTPExpiredCodeLooksAbsent(t *testing.T) {
	f := newAuthFixture()
	register(t, f, "Ana", "ana@x.com")
	code := requestCode(t, f, "ana@x.com")

	// Move the store's clock past the 5-minute TTL
	f.otps.now = func() time.Time { return time.Now().Add(5*time.Minute + time.Second) }

	_, err := f.svc.VerifyOTP(context.Background(), &request.VerifyOTPRequest{
		Email: "ana@x.com",
		OTP:   code,
	})
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestSendOTPDeliveryFailureIsSurfaced(t *testing.T) {
	f := newAuthFixture()
	register(t, f, "Ana", "ana@x.com")
	f.sender.fail = true

	err := f.svc.SendOTP(context.Background(), &request.SendOTPRequest{Email: "ana@x.com"})
	assert.ErrorIs(t, err, ErrDeliveryFailed)

	// The OTP row was written before the send and is not rolled back
	otp, err := f.otps.FindByEmail(context.Background(), "ana@x.com")
	require.NoError(t, err)
	assert.NotNil(t, otp)
}

func TestSendOTPDeliversExactlyOneMail(t *testing.T) {
	f := newAuthFixture()
	register(t, f, "Ana", "ana@x.com")
	requestCode(t, f, "ana@x.com")

	require.Len(t, f.sender.sent, 1)
	assert.Equal(t, "ana@x.com", f.sender.sent[0].to)
}

func TestLoginProbeReturnsName(t *testing.T) {
	f := newAuthFixture()
	register(t, f, "Ana", "ana@x.com")
	ctx := context.Background()

	result, err := f.svc.Login(ctx, &request.LoginRequest{Email: "ana@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", result.Name)
	assert.Equal(t, "Use OTP to login", result.Message)

	_, err = f.svc.Login(ctx, &request.LoginRequest{Email: "nobody@x.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestVerifyOTPUserVanished(t *testing.T) {
	f := newAuthFixture()
	register(t, f, "Ana", "ana@x.com")
	code := requestCode(t, f, "ana@x.com")

	// User record disappears between issuance and verification
	f.users.mu.Lock()
	delete(f.users.users, "ana@x.com")
	f.users.mu.Unlock()

	_, err := f.svc.VerifyOTP(context.Background(), &request.VerifyOTPRequest{
		Email: "ana@x.com",
		OTP:   code,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
