package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPaymentUseCase is a mock implementation of payment.PaymentUseCase
type MockPaymentUseCase struct {
	mock.Mock
}

func (m *MockPaymentUseCase) CreatePayment(ctx context.Context, ticket *domain.Ticket, amount float64, cardNumber string) (*domain.Payment, error) {
	args := m.Called(ctx, ticket, amount, cardNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentUseCase) Settle(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentUseCase) GetByTicket(ticketNumber int64) (*domain.Payment, error) {
	args := m.Called(ticketNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func TestPaymentHandler_pay(t *testing.T) {
	mockPayments := &MockPaymentUseCase{}
	mockLedger := &MockLedgerUseCase{}
	handler := NewPaymentHandler(mockPayments, mockLedger)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "number", Value: "1"}}
	body, _ := json.Marshal(payTicketRequest{CardNumber: "1111222233334444"})
	c.Request = httptest.NewRequest("POST", "/tickets/1/payment", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	ticket := testTicket(1)
	p := &domain.Payment{ID: "pay-1", TicketNumber: 1, Amount: 500, CardMask: "************4444", Status: domain.PaymentUnsettled}

	mockLedger.On("GetTicket", int64(1)).Return(ticket, nil)
	// The handler supplies seat price + baggage fee as the amount.
	mockPayments.On("CreatePayment", c.Request.Context(), ticket, 500.0, "1111222233334444").Return(p, nil)
	mockPayments.On("Settle", c.Request.Context(), p).Return(nil)

	handler.pay(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response paymentResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "************4444", response.CardMask)

	mockPayments.AssertExpectations(t)
	mockLedger.AssertExpectations(t)
}

func TestPaymentHandler_pay_alreadyPaid(t *testing.T) {
	mockPayments := &MockPaymentUseCase{}
	mockLedger := &MockLedgerUseCase{}
	handler := NewPaymentHandler(mockPayments, mockLedger)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "number", Value: "1"}}
	body, _ := json.Marshal(payTicketRequest{CardNumber: "1111222233334444"})
	c.Request = httptest.NewRequest("POST", "/tickets/1/payment", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	ticket := testTicket(1)
	p := &domain.Payment{ID: "pay-1", TicketNumber: 1, Amount: 500, Status: domain.PaymentSettled}

	mockLedger.On("GetTicket", int64(1)).Return(ticket, nil)
	mockPayments.On("CreatePayment", c.Request.Context(), ticket, 500.0, "1111222233334444").Return(p, nil)
	mockPayments.On("Settle", c.Request.Context(), p).Return(domain.ErrAlreadySettled)

	handler.pay(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already paid")

	mockPayments.AssertExpectations(t)
}

func TestPaymentHandler_pay_invalidCard(t *testing.T) {
	mockPayments := &MockPaymentUseCase{}
	mockLedger := &MockLedgerUseCase{}
	handler := NewPaymentHandler(mockPayments, mockLedger)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "number", Value: "1"}}
	body, _ := json.Marshal(payTicketRequest{CardNumber: "bad"})
	c.Request = httptest.NewRequest("POST", "/tickets/1/payment", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	ticket := testTicket(1)
	mockLedger.On("GetTicket", int64(1)).Return(ticket, nil)
	mockPayments.On("CreatePayment", c.Request.Context(), ticket, 500.0, "bad").Return(nil, domain.ErrInvalidCard)

	handler.pay(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockPayments.AssertNotCalled(t, "Settle")
}
