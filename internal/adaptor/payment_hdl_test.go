package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"food-ordering/internal/dto/request"
	"food-ordering/internal/dto/response"
	"food-ordering/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPaymentService struct {
	gotUserID uuid.UUID
	result    *response.PaymentResponse
	err       error
}

func (s *stubPaymentService) Process(ctx context.Context, userID uuid.UUID, req *request.PaymentRequest) (*response.PaymentResponse, error) {
	s.gotUserID = userID
	return s.result, s.err
}

const paymentBody = `{
	"amount": 24.50,
	"items": [{"name":"Paneer Tikka","price":9.50,"quantity":1}],
	"cardNumber": "4111111111111111",
	"cvv": "123"
}`

func TestPaymentHandlerSuccess(t *testing.T) {
	userID := uuid.New()
	stub := &stubPaymentService{
		result: &response.PaymentResponse{Success: true, OrderID: "o1", Message: "Payment successful"},
	}
	h := NewPaymentHandler(stub, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/payment/process", strings.NewReader(paymentBody))
	req = req.WithContext(utils.SetUserContext(req.Context(), userID, "ana@x.com"))
	rec := httptest.NewRecorder()
	h.Process(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "o1", body["orderId"])
	assert.Equal(t, userID, stub.gotUserID)
}

func TestPaymentHandlerRequiresAuthContext(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/payment/process", strings.NewReader(paymentBody))
	rec := httptest.NewRecorder()
	h.Process(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPaymentHandlerRejectsBadCard(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentService{}, zap.NewNop())

	body := `{"amount": 10, "items": [{"name":"Naan","price":5,"quantity":2}], "cardNumber": "1234", "cvv": "12"}`
	req := httptest.NewRequest(http.MethodPost, "/payment/process", strings.NewReader(body))
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "ana@x.com"))
	rec := httptest.NewRecorder()
	h.Process(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentHandlerRejectsEmptyItems(t *testing.T) {
	h := NewPaymentHandler(&stubPaymentService{}, zap.NewNop())

	body := `{"amount": 10, "items": []}`
	req := httptest.NewRequest(http.MethodPost, "/payment/process", strings.NewReader(body))
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "ana@x.com"))
	rec := httptest.NewRecorder()
	h.Process(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
