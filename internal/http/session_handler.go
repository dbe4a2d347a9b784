package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talentloop/internal/domain"
	"talentloop/internal/repository"
	"talentloop/internal/session"
)

// SessionHandler holds dependencies for session lifecycle endpoints.
type SessionHandler struct {
	logger      *zap.Logger
	manager     *session.Manager
	assessments repository.AssessmentRepository
	limiter     RateLimiter
}

func NewSessionHandler(
	logger *zap.Logger,
	manager *session.Manager,
	assessments repository.AssessmentRepository,
	limiter RateLimiter,
) *SessionHandler {
	return &SessionHandler{
		logger:      logger,
		manager:     manager,
		assessments: assessments,
		limiter:     limiter,
	}
}

// CreateSession handles POST /sessions.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many sessions"})
		return
	}

	var req struct {
		CandidateName  string `json:"candidate_name" binding:"required"`
		AttributeSetID string `json:"attribute_set_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create session request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sess, err := h.manager.StartSession(req.CandidateName, req.AttributeSetID)
	if err != nil {
		h.respondError(c, "create session", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": sess})
}

// GetSession handles GET /sessions/:id.
func (h *SessionHandler) GetSession(c *gin.Context) {
	sess, err := h.manager.GetSession(c.Param("id"))
	if err != nil {
		h.respondError(c, "get session", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// LogExchange handles POST /sessions/:id/exchanges. The scene field is
// optional and defaults to the session's current scene.
func (h *SessionHandler) LogExchange(c *gin.Context) {
	var req struct {
		CharacterLine string `json:"character_line" binding:"required"`
		CandidateText string `json:"candidate_text" binding:"required"`
		Scene         string `json:"scene"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid log exchange request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	scene := domain.Scene(req.Scene)
	if req.Scene != "" && !scene.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown scene"})
		return
	}

	capture, err := h.manager.LogExchange(c.Param("id"), req.CharacterLine, req.CandidateText, scene)
	if err != nil {
		h.respondError(c, "log exchange", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"capture": capture})
}

// TransitionScene handles POST /sessions/:id/scene. The body may name the
// target scene; an empty body advances to the next scene in order.
func (h *SessionHandler) TransitionScene(c *gin.Context) {
	var req struct {
		Scene string `json:"scene"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("invalid transition request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	target := domain.Scene(req.Scene)
	if req.Scene != "" && !target.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown scene"})
		return
	}

	scene, err := h.manager.TransitionScene(c.Param("id"), target)
	if err != nil {
		h.respondError(c, "transition scene", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scene": scene})
}

// CompleteSession handles POST /sessions/:id/complete.
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	result, err := h.manager.CompleteSession(c.Param("id"))
	if err != nil {
		h.respondError(c, "complete session", err)
		return
	}
	if err := h.assessments.Save(c.Request.Context(), result); err != nil {
		h.logger.Error("save assessment failed", zap.Error(err), zap.String("assessment_id", result.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save assessment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"assessment": result})
}

// AbandonSession handles POST /sessions/:id/abandon.
func (h *SessionHandler) AbandonSession(c *gin.Context) {
	if err := h.manager.AbandonSession(c.Param("id")); err != nil {
		h.respondError(c, "abandon session", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAssessments handles GET /sessions/:id/assessments. Both the base and
// any later hybrid assessment of the session are returned in save order.
func (h *SessionHandler) ListAssessments(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.manager.GetSession(id); err != nil {
		h.respondError(c, "list assessments", err)
		return
	}
	results, err := h.assessments.ListBySession(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("list assessments failed", zap.Error(err), zap.String("session_id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessments": results})
}

// GetProgress handles GET /sessions/:id/progress.
func (h *SessionHandler) GetProgress(c *gin.Context) {
	progress, err := h.manager.Progress(c.Param("id"))
	if err != nil {
		h.respondError(c, "get progress", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

func (h *SessionHandler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConfiguration):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
