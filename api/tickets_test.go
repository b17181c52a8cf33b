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

// MockLedgerUseCase is a mock implementation of ledger.LedgerUseCase
type MockLedgerUseCase struct {
	mock.Mock
}

func (m *MockLedgerUseCase) BookSeat(ctx context.Context, passportNo string, flightNumber, seatNumber int) (*domain.Ticket, error) {
	args := m.Called(ctx, passportNo, flightNumber, seatNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockLedgerUseCase) CancelTicket(ctx context.Context, ticketNumber int64, requestingPassport string) error {
	args := m.Called(ctx, ticketNumber, requestingPassport)
	return args.Error(0)
}

func (m *MockLedgerUseCase) AttachBaggage(ctx context.Context, ticketNumber int64, baggageID int, weight float64) (*domain.Baggage, error) {
	args := m.Called(ctx, ticketNumber, baggageID, weight)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Baggage), args.Error(1)
}

func (m *MockLedgerUseCase) GetTicket(ticketNumber int64) (*domain.Ticket, error) {
	args := m.Called(ticketNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockLedgerUseCase) ListTicketsByPassenger(passportNo string) []*domain.Ticket {
	args := m.Called(passportNo)
	return args.Get(0).([]*domain.Ticket)
}

func (m *MockLedgerUseCase) ListAllTickets() []*domain.Ticket {
	args := m.Called()
	return args.Get(0).([]*domain.Ticket)
}

func testTicket(number int64) *domain.Ticket {
	p := &domain.Passenger{Name: "Amina", Age: 30, PassportNo: "40112233"}
	seat := domain.Seat{FlightNumber: 100, Number: 1, Class: domain.SeatClassEconomy, Price: 500, Status: domain.SeatHeld}
	return domain.NewTicket(number, p, 100, seat)
}

func TestTicketHandler_book(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(bookSeatRequest{PassportNo: "40112233", FlightNumber: 100, SeatNumber: 1})
	c.Request = httptest.NewRequest("POST", "/tickets", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	ticket := testTicket(1)
	mockService.On("BookSeat", c.Request.Context(), "40112233", 100, 1).Return(ticket, nil)

	handler.book(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response ticketResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), response.Number)
	assert.Equal(t, string(domain.TicketUnpaid), response.Status)
	assert.Equal(t, 500.0, response.AmountDue)

	mockService.AssertExpectations(t)
}

func TestTicketHandler_book_seatUnavailable(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(bookSeatRequest{PassportNo: "40112233", FlightNumber: 100, SeatNumber: 1})
	c.Request = httptest.NewRequest("POST", "/tickets", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("BookSeat", c.Request.Context(), "40112233", 100, 1).Return(nil, domain.ErrSeatUnavailable)

	handler.book(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_cancel(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "number", Value: "1"}}
	c.Request = httptest.NewRequest("DELETE", "/tickets/1?passport_no=40112233", nil)

	mockService.On("CancelTicket", c.Request.Context(), int64(1), "40112233").Return(nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_cancel_notOwner(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "number", Value: "1"}}
	c.Request = httptest.NewRequest("DELETE", "/tickets/1?passport_no=50995511", nil)

	mockService.On("CancelTicket", c.Request.Context(), int64(1), "50995511").Return(domain.ErrNotOwner)

	handler.cancel(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_cancel_missingPassport(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "number", Value: "1"}}
	c.Request = httptest.NewRequest("DELETE", "/tickets/1", nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CancelTicket")
}

func TestTicketHandler_adminCancel(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "number", Value: "1"}}
	c.Request = httptest.NewRequest("DELETE", "/admin/tickets/1", nil)

	// Empty requesting passport means the ownership check is skipped.
	mockService.On("CancelTicket", c.Request.Context(), int64(1), "").Return(nil)

	handler.adminCancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestTicketHandler_attachBaggage(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "number", Value: "1"}}
	body, _ := json.Marshal(attachBaggageRequest{BaggageID: 7, Weight: 30})
	c.Request = httptest.NewRequest("POST", "/tickets/1/baggage", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	b := &domain.Baggage{ID: 7, Weight: 30, Status: domain.BaggageStatusInTransit, Fee: 70}
	mockService.On("AttachBaggage", c.Request.Context(), int64(1), 7, 30.0).Return(b, nil)

	handler.attachBaggage(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response baggageResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 70.0, response.Fee)

	mockService.AssertExpectations(t)
}

func TestTicketHandler_listByPassenger(t *testing.T) {
	mockService := &MockLedgerUseCase{}
	handler := NewTicketHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "passport", Value: "40112233"}}
	c.Request = httptest.NewRequest("GET", "/passengers/40112233/tickets", nil)

	mockService.On("ListTicketsByPassenger", "40112233").Return([]*domain.Ticket{testTicket(1)})

	handler.listByPassenger(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []ticketResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)

	mockService.AssertExpectations(t)
}
