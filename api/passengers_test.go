package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airreserve/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDirectoryUseCase is a mock implementation of directory.DirectoryUseCase
type MockDirectoryUseCase struct {
	mock.Mock
}

func (m *MockDirectoryUseCase) Register(name string, age int, phone, address, passportNo string) (*domain.Passenger, error) {
	args := m.Called(name, age, phone, address, passportNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockDirectoryUseCase) Login(passportNo string) (*domain.Passenger, error) {
	args := m.Called(passportNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockDirectoryUseCase) Get(passportNo string) (*domain.Passenger, error) {
	args := m.Called(passportNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Passenger), args.Error(1)
}

func (m *MockDirectoryUseCase) List() []domain.Passenger {
	args := m.Called()
	return args.Get(0).([]domain.Passenger)
}

func TestPassengerHandler_register(t *testing.T) {
	mockService := &MockDirectoryUseCase{}
	handler := NewPassengerHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := registerRequest{Name: "Amina", Age: 30, Phone: "0123456789", Address: "Cairo", PassportNo: "40112233"}
	body, _ := json.Marshal(req)
	c.Request = httptest.NewRequest("POST", "/passengers", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	p := &domain.Passenger{Name: "Amina", Age: 30, Phone: "0123456789", Address: "Cairo", PassportNo: "40112233"}
	mockService.On("Register", "Amina", 30, "0123456789", "Cairo", "40112233").Return(p, nil)

	handler.register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response passengerResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "40112233", response.PassportNo)

	mockService.AssertExpectations(t)
}

func TestPassengerHandler_register_underage(t *testing.T) {
	mockService := &MockDirectoryUseCase{}
	handler := NewPassengerHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := registerRequest{Name: "Kid", Age: 17, Phone: "0123456789", Address: "Cairo", PassportNo: "40112233"}
	body, _ := json.Marshal(req)
	c.Request = httptest.NewRequest("POST", "/passengers", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Register", "Kid", 17, "0123456789", "Cairo", "40112233").Return(nil, domain.ErrUnderage)

	handler.register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestPassengerHandler_login(t *testing.T) {
	mockService := &MockDirectoryUseCase{}
	handler := NewPassengerHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(loginRequest{PassportNo: "40112233"})
	c.Request = httptest.NewRequest("POST", "/passengers/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	p := &domain.Passenger{Name: "Amina", Age: 30, PassportNo: "40112233"}
	mockService.On("Login", "40112233").Return(p, nil)

	handler.login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestPassengerHandler_login_notFound(t *testing.T) {
	mockService := &MockDirectoryUseCase{}
	handler := NewPassengerHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(loginRequest{PassportNo: "99999999"})
	c.Request = httptest.NewRequest("POST", "/passengers/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Login", "99999999").Return(nil, domain.ErrPassengerNotFound)

	handler.login(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}
