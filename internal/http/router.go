package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the gin router with middlewares and routes.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *JWTService,
	sessionH *SessionHandler,
	assessmentH *AssessmentHandler,
	interviewH *InterviewHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/", JWTAuthMiddleware(jwtSvc))

	sessions := api.Group("/sessions")
	sessions.POST("", sessionH.CreateSession)
	sessions.GET("/:id", sessionH.GetSession)
	sessions.POST("/:id/exchanges", sessionH.LogExchange)
	sessions.POST("/:id/scene", sessionH.TransitionScene)
	sessions.POST("/:id/complete", sessionH.CompleteSession)
	sessions.POST("/:id/abandon", sessionH.AbandonSession)
	sessions.GET("/:id/progress", sessionH.GetProgress)
	sessions.GET("/:id/assessments", sessionH.ListAssessments)

	interviews := api.Group("/interviews")
	interviews.POST("", interviewH.CreateInterview)
	interviews.POST("/:id/responses", interviewH.ProcessResponse)

	assessments := api.Group("/assessments")
	assessments.GET("/:id", assessmentH.GetAssessment)
	assessments.POST("/:id/llm", assessmentH.SubmitLLMAssessment)
	assessments.GET("/:id/views/:view", assessmentH.GetView)

	return r
}

// zapLoggerMiddleware is a simple zap request logger.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware forces Content-Type: application/json on responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
