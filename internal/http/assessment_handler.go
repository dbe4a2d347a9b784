package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talentloop/internal/assessment"
	"talentloop/internal/domain"
	"talentloop/internal/output"
	"talentloop/internal/repository"
)

// AssessmentHandler serves stored assessments, hybrid reconciliation and the
// presentation views.
type AssessmentHandler struct {
	logger      *zap.Logger
	assessments repository.AssessmentRepository
	schema      *assessment.SchemaValidator
	hybrid      *assessment.HybridValidator
}

func NewAssessmentHandler(
	logger *zap.Logger,
	assessments repository.AssessmentRepository,
	schema *assessment.SchemaValidator,
	hybrid *assessment.HybridValidator,
) *AssessmentHandler {
	return &AssessmentHandler{
		logger:      logger,
		assessments: assessments,
		schema:      schema,
		hybrid:      hybrid,
	}
}

// GetAssessment handles GET /assessments/:id.
func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	result, err := h.assessments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "get assessment", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessment": result})
}

// SubmitLLMAssessment handles POST /assessments/:id/llm. The body carries the
// raw model reply; it is parsed, schema-checked and reconciled against the
// stored algorithmic assessment.
func (h *AssessmentHandler) SubmitLLMAssessment(c *gin.Context) {
	var req struct {
		Raw string `json:"raw" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid llm submission request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	base, err := h.assessments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "load base assessment", err)
		return
	}

	llm, err := assessment.ParseLLMAssessment(req.Raw)
	if err != nil {
		h.respondError(c, "parse llm assessment", err)
		return
	}
	if err := h.schema.Validate(llm); err != nil {
		h.respondError(c, "validate llm assessment", err)
		return
	}

	final, validation := h.hybrid.BuildHybridAssessment(base, llm)
	if err := h.assessments.Save(c.Request.Context(), final); err != nil {
		h.logger.Error("save hybrid assessment failed", zap.Error(err), zap.String("assessment_id", final.ID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save assessment"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"assessment": final,
		"validation": validation,
	})
}

// GetView handles GET /assessments/:id/views/:view.
func (h *AssessmentHandler) GetView(c *gin.Context) {
	result, err := h.assessments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, "get assessment", err)
		return
	}

	switch c.Param("view") {
	case "statsheet":
		c.JSON(http.StatusOK, gin.H{"view": output.StatSheetHandler{}.Format(result)})
	case "rating":
		c.JSON(http.StatusOK, gin.H{"view": output.FormalRatingHandler{}.Format(result)})
	case "report":
		c.JSON(http.StatusOK, gin.H{"view": output.InternalReportHandler{}.Format(result)})
	case "summary":
		c.JSON(http.StatusOK, gin.H{"view": output.CandidateSummaryHandler{}.Format(result)})
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown view"})
	}
}

func (h *AssessmentHandler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
