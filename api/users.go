package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/fitbooking/internal/service/registration"
	"github.com/Domenick1991/fitbooking/internal/service/user"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users         user.UserUseCase
	registrations registration.RegistrationUseCase
}

type ensureUserRequest struct {
	ID   int64  `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type userResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Balance int    `json:"balance"`
}

func NewUserHandler(users user.UserUseCase, registrations registration.RegistrationUseCase) *UserHandler {
	return &UserHandler{users: users, registrations: registrations}
}

func (h *UserHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.ensure)
	router.GET("/:id", h.get)
	router.GET("/:id/registrations", h.listRegistrations)
}

func (h *UserHandler) ensure(c *gin.Context) {
	var req ensureUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := h.users.Ensure(c.Request.Context(), req.ID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userResponse{ID: u.ID, Name: u.Name, Balance: u.Balance})
}

func (h *UserHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	u, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userResponse{ID: u.ID, Name: u.Name, Balance: u.Balance})
}

func (h *UserHandler) listRegistrations(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	regs, err := h.registrations.ListMy(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	type myRegistration struct {
		RegistrationID int64  `json:"registration_id"`
		SessionID      int64  `json:"session_id"`
		StartTime      string `json:"start_time"`
		TypeName       string `json:"type_name"`
	}
	resp := make([]myRegistration, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, myRegistration{
			RegistrationID: r.RegistrationID,
			SessionID:      r.SessionID,
			StartTime:      r.StartTime.Format(time.RFC3339),
			TypeName:       r.TypeName,
		})
	}
	c.JSON(http.StatusOK, resp)
}
