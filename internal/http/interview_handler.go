package http

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talentloop/internal/assessment"
	"talentloop/internal/catalog"
	"talentloop/internal/domain"
	"talentloop/internal/repository"
	"talentloop/internal/session"
)

// InterviewHandler exposes the scripted three-scene driver over HTTP. Each
// interview lives in memory until it completes; the finished assessment is
// saved to the repository so the view endpoints can serve it.
type InterviewHandler struct {
	logger      *zap.Logger
	catalog     *catalog.Catalog
	pipeline    *assessment.Pipeline
	assessments repository.AssessmentRepository
	limiter     RateLimiter

	mu     sync.Mutex
	active map[string]*session.Interviewer
}

func NewInterviewHandler(
	logger *zap.Logger,
	cat *catalog.Catalog,
	pipeline *assessment.Pipeline,
	assessments repository.AssessmentRepository,
	limiter RateLimiter,
) *InterviewHandler {
	return &InterviewHandler{
		logger:      logger,
		catalog:     cat,
		pipeline:    pipeline,
		assessments: assessments,
		limiter:     limiter,
		active:      make(map[string]*session.Interviewer),
	}
}

// CreateInterview handles POST /interviews.
func (h *InterviewHandler) CreateInterview(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many interviews"})
		return
	}

	var req struct {
		CandidateName string `json:"candidate_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create interview request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	iv, opening, err := session.StartInterview(h.catalog, h.pipeline, h.logger, req.CandidateName)
	if err != nil {
		h.respondError(c, "create interview", err)
		return
	}

	h.mu.Lock()
	h.active[iv.Session().ID] = iv
	h.mu.Unlock()

	c.JSON(http.StatusCreated, gin.H{
		"interview_id": iv.Session().ID,
		"prompt":       opening,
	})
}

// ProcessResponse handles POST /interviews/:id/responses. On the final office
// exchange the interview leaves the registry and the assessment is persisted.
func (h *InterviewHandler) ProcessResponse(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid interview response request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	id := c.Param("id")
	h.mu.Lock()
	defer h.mu.Unlock()

	iv, ok := h.active[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "interview not found"})
		return
	}

	prompt, done, err := iv.ProcessResponse(req.Text)
	if err != nil {
		h.respondError(c, "process response", err)
		return
	}
	if done != nil {
		delete(h.active, id)
		if err := h.assessments.Save(c.Request.Context(), done.Result); err != nil {
			h.logger.Error("save assessment failed", zap.Error(err), zap.String("assessment_id", done.Result.ID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save assessment"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"assessment": done.Result,
			"transcript": done.Transcript,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"prompt": prompt})
}

func (h *InterviewHandler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "interview not found"})
	case errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrConfiguration):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
