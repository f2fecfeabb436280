package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegistrationHandler_create(t *testing.T) {
	mockService := &MockRegistrationUseCase{}
	handler := NewRegistrationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(registerRequest{UserID: 42, SessionID: 10})
	c.Request = httptest.NewRequest("POST", "/registrations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	reg := &domain.Registration{
		ID:           1,
		Token:        "token123",
		UserID:       42,
		SessionID:    10,
		Status:       domain.StatusBooked,
		RegisteredAt: time.Now(),
	}
	mockService.On("Register", c.Request.Context(), int64(42), int64(10)).Return(reg, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp registrationResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "token123", resp.Token)
	assert.Equal(t, string(domain.StatusBooked), resp.Status)
	mockService.AssertExpectations(t)
}

func TestRegistrationHandler_create_alreadyBooked(t *testing.T) {
	mockService := &MockRegistrationUseCase{}
	handler := NewRegistrationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(registerRequest{UserID: 42, SessionID: 10})
	c.Request = httptest.NewRequest("POST", "/registrations", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Register", c.Request.Context(), int64(42), int64(10)).Return(nil, domain.ErrAlreadyBooked)

	handler.create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegistrationHandler_cancel(t *testing.T) {
	mockService := &MockRegistrationUseCase{}
	handler := NewRegistrationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/registrations/5", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	mockService.On("Cancel", c.Request.Context(), int64(5)).Return(nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestRegistrationHandler_cancel_notFound(t *testing.T) {
	mockService := &MockRegistrationUseCase{}
	handler := NewRegistrationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/registrations/404", nil)
	c.Params = gin.Params{{Key: "id", Value: "404"}}

	mockService.On("Cancel", c.Request.Context(), int64(404)).Return(domain.ErrNotFound)

	handler.cancel(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegistrationHandler_cancel_badID(t *testing.T) {
	mockService := &MockRegistrationUseCase{}
	handler := NewRegistrationHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/registrations/oops", nil)
	c.Params = gin.Params{{Key: "id", Value: "oops"}}

	handler.cancel(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
}
