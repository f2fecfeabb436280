package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/fitbooking/internal/service/registration"
	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	service registration.RegistrationUseCase
}

type registerRequest struct {
	UserID    int64 `json:"user_id" binding:"required"`
	SessionID int64 `json:"session_id" binding:"required"`
}

type registrationResponse struct {
	ID           int64  `json:"id"`
	Token        string `json:"token"`
	UserID       int64  `json:"user_id"`
	SessionID    int64  `json:"session_id"`
	Status       string `json:"status"`
	RegisteredAt string `json:"registered_at"`
}

func NewRegistrationHandler(service registration.RegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

func (h *RegistrationHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.DELETE("/:id", h.cancel)
}

func (h *RegistrationHandler) create(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg, err := h.service.Register(c.Request.Context(), req.UserID, req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, registrationResponse{
		ID:           reg.ID,
		Token:        reg.Token,
		UserID:       reg.UserID,
		SessionID:    reg.SessionID,
		Status:       string(reg.Status),
		RegisteredAt: reg.RegisteredAt.Format(time.RFC3339),
	})
}

func (h *RegistrationHandler) cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration id"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": id})
}
