package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/fitbooking/internal/domain"
	"github.com/Domenick1991/fitbooking/internal/service/registration"
	"github.com/Domenick1991/fitbooking/internal/service/roster"
	"github.com/Domenick1991/fitbooking/internal/service/session"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessions      session.SessionUseCase
	roster        roster.RosterUseCase
	registrations registration.RegistrationUseCase
	windowDays    int
}

type createSessionRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	TypeID    int16     `json:"type_id" binding:"required"`
}

type markAttendanceRequest struct {
	UserID   int64 `json:"user_id" binding:"required"`
	Attended *bool `json:"attended" binding:"required"`
}

type updateStatusRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Status string `json:"status" binding:"required"`
	IsPaid *bool  `json:"is_paid"`
}

type sessionResponse struct {
	ID        int64  `json:"id"`
	TypeID    int16  `json:"type_id"`
	TypeName  string `json:"type_name,omitempty"`
	StartTime string `json:"start_time"`
	CreatedBy int64  `json:"created_by"`
	Booked    int    `json:"booked,omitempty"`
}

func NewSessionHandler(sessions session.SessionUseCase, rosterSvc roster.RosterUseCase, registrations registration.RegistrationUseCase, windowDays int) *SessionHandler {
	if windowDays <= 0 {
		windowDays = 7
	}
	return &SessionHandler{sessions: sessions, roster: rosterSvc, registrations: registrations, windowDays: windowDays}
}

func (h *SessionHandler) Register(router *gin.RouterGroup, gate *OperatorGate) {
	router.GET("/", h.listUpcoming)
	router.POST("/", gate.Require(), h.create)
	router.GET("/window", gate.Require(), h.listWindow)
	router.DELETE("/:id", gate.Require(), h.delete)
	router.GET("/:id/roster", gate.Require(), h.getRoster)
	router.POST("/:id/attendance", gate.Require(), h.markAttendance)
	router.PUT("/:id/status", gate.Require(), h.updateStatus)
}

func (h *SessionHandler) RegisterTypes(router *gin.RouterGroup) {
	router.GET("/", h.listTypes)
}

func (h *SessionHandler) listUpcoming(c *gin.Context) {
	sessions, err := h.sessions.ListUpcoming(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	counts, err := h.roster.CountBookedPerSession(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, sessionResponse{
			ID:        s.ID,
			TypeID:    s.TypeID,
			TypeName:  s.TypeName,
			StartTime: s.StartTime.Format(time.RFC3339),
			CreatedBy: s.CreatedBy,
			Booked:    counts[s.ID],
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SessionHandler) create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	operatorID := c.GetInt64(operatorIDKey)
	session, err := h.sessions.Create(c.Request.Context(), req.StartTime, req.TypeID, operatorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sessionResponse{
		ID:        session.ID,
		TypeID:    session.TypeID,
		StartTime: session.StartTime.Format(time.RFC3339),
		CreatedBy: session.CreatedBy,
	})
}

func (h *SessionHandler) listWindow(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(h.windowDays)))
	if err != nil || days < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid days"})
		return
	}

	sessions, err := h.sessions.ListWindow(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, sessionResponse{
			ID:        s.ID,
			TypeID:    s.TypeID,
			TypeName:  s.TypeName,
			StartTime: s.StartTime.Format(time.RFC3339),
			CreatedBy: s.CreatedBy,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SessionHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *SessionHandler) getRoster(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	if _, err := h.sessions.GetByID(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	details, err := h.roster.ListAttendeeDetails(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	type attendee struct {
		Name        string `json:"name"`
		UserID      int64  `json:"user_id"`
		SessionTime string `json:"session_time"`
		SessionType string `json:"session_type"`
	}
	resp := make([]attendee, 0, len(details))
	for _, d := range details {
		resp = append(resp, attendee{
			Name:        d.Name,
			UserID:      d.UserID,
			SessionTime: d.StartTime.Format(time.RFC3339),
			SessionType: d.TypeName,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SessionHandler) markAttendance(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.registrations.MarkAttendance(c.Request.Context(), id, req.UserID, *req.Attended); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": id, "user_id": req.UserID})
}

func (h *SessionHandler) updateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := domain.RegistrationStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	if err := h.registrations.UpdateStatus(c.Request.Context(), id, req.UserID, status, req.IsPaid); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": id, "user_id": req.UserID, "status": req.Status})
}

func (h *SessionHandler) listTypes(c *gin.Context) {
	types, err := h.sessions.ListTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}
