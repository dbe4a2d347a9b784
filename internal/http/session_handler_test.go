package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"talentloop/internal/assessment"
	"talentloop/internal/catalog"
	"talentloop/internal/repository"
	"talentloop/internal/session"
	"talentloop/internal/textsignal"
)

type apiFixture struct {
	router *gin.Engine
	token  string
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	logger := zap.NewNop()
	scorer := textsignal.DefaultScorer
	pipeline := assessment.NewPipeline(scorer, cat.Attribute)
	manager := session.NewManager(session.NewMemoryStore(), cat, pipeline, 0, logger)
	assessments := repository.NewInMemoryAssessmentRepository()

	jwtSvc := NewJWTService("secret", 15*time.Minute)
	token, err := jwtSvc.IssueAccessToken("recruiter-1", "Recruiter")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	sessionH := NewSessionHandler(logger, manager, assessments, nil)
	assessmentH := NewAssessmentHandler(logger, assessments, assessment.NewSchemaValidator(), assessment.NewHybridValidator(scorer, logger))
	interviewH := NewInterviewHandler(logger, cat, pipeline, assessments, nil)
	return &apiFixture{
		router: NewRouter(logger, jwtSvc, sessionH, assessmentH, interviewH),
		token:  token,
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
	}
}

func (f *apiFixture) startSession(t *testing.T) string {
	t.Helper()
	rec := f.do(t, http.MethodPost, "/sessions", gin.H{"candidate_name": "Sam Rivera"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var body struct {
		Session struct {
			ID string `json:"id"`
		} `json:"session"`
	}
	decodeBody(t, rec, &body)
	if body.Session.ID == "" {
		t.Fatalf("expected session id")
	}
	return body.Session.ID
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	id := f.startSession(t)

	rec := f.do(t, http.MethodPost, "/sessions/"+id+"/exchanges", gin.H{
		"character_line": "How was the trip over?",
		"candidate_text": "Good! I figured out a faster route.",
		"scene":          "elevator",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("log exchange: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var exchange struct {
		Capture struct {
			NewlyCaptured []string `json:"newly_captured"`
		} `json:"capture"`
	}
	decodeBody(t, rec, &exchange)
	if len(exchange.Capture.NewlyCaptured) != 1 {
		t.Fatalf("expected one capture, got %v", exchange.Capture.NewlyCaptured)
	}

	// The scene field may be omitted; it defaults to the current scene.
	rec = f.do(t, http.MethodPost, "/sessions/"+id+"/exchanges", gin.H{
		"character_line": "Anything else?",
		"candidate_text": "That about covers it.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("log exchange without scene: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	// Transitions accept an explicit target scene.
	rec = f.do(t, http.MethodPost, "/sessions/"+id+"/scene", gin.H{"scene": "reception"})
	if rec.Code != http.StatusOK {
		t.Fatalf("transition: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = f.do(t, http.MethodPost, "/sessions/"+id+"/complete", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("complete: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var completed struct {
		Assessment struct {
			ID string `json:"id"`
		} `json:"assessment"`
	}
	decodeBody(t, rec, &completed)

	// Double completion conflicts.
	rec = f.do(t, http.MethodPost, "/sessions/"+id+"/complete", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("double complete: expected 409, got %d", rec.Code)
	}

	// The stored assessment serves all four views.
	for _, view := range []string{"statsheet", "rating", "report", "summary"} {
		rec = f.do(t, http.MethodGet, "/assessments/"+completed.Assessment.ID+"/views/"+view, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("view %s: expected 200, got %d", view, rec.Code)
		}
	}
	rec = f.do(t, http.MethodGet, "/assessments/"+completed.Assessment.ID+"/views/hologram", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown view: expected 404, got %d", rec.Code)
	}
}

func TestSessionEndpoints_ErrorMapping(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/sessions/nope/exchanges", gin.H{
		"character_line": "line",
		"candidate_text": "text",
		"scene":          "elevator",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown session: expected 404, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/sessions", gin.H{"candidate_name": "Sam", "attribute_set_id": "nope"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown set: expected 400, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/sessions/nope/assessments", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown session assessments: expected 404, got %d", rec.Code)
	}

	id := f.startSession(t)
	rec = f.do(t, http.MethodPost, "/sessions/"+id+"/exchanges", gin.H{
		"character_line": "line",
		"candidate_text": "text",
		"scene":          "office",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("wrong scene: expected 409, got %d", rec.Code)
	}

	// Skipping a scene is an invalid transition.
	rec = f.do(t, http.MethodPost, "/sessions/"+id+"/scene", gin.H{"scene": "office"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("skipped scene: expected 409, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodPost, "/sessions/"+id+"/abandon", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("abandon: expected 204, got %d", rec.Code)
	}
	rec = f.do(t, http.MethodPost, "/sessions/"+id+"/complete", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("complete after abandon: expected 409, got %d", rec.Code)
	}
}

func TestSubmitLLMAssessmentOverHTTP(t *testing.T) {
	f := newAPIFixture(t)
	id := f.startSession(t)

	rec := f.do(t, http.MethodPost, "/sessions/"+id+"/complete", nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("complete: expected 201, got %d", rec.Code)
	}
	var completed struct {
		Assessment struct {
			ID string `json:"id"`
		} `json:"assessment"`
	}
	decodeBody(t, rec, &completed)

	raw := "```json\n" + `{
		"dimensions": {"iq": 6, "personality": 6, "motivation": 6, "work_history": 6,
			"passions": 6, "culture_fit": 6, "technical": 6, "gtm": 6,
			"eq": 6, "empathy": 6, "self_awareness": 6},
		"archetype": "generalist_orchestrator",
		"archetype_confidence": 0.8,
		"recommended_tier": "moderate"
	}` + "\n```"

	rec = f.do(t, http.MethodPost, "/assessments/"+completed.Assessment.ID+"/llm", gin.H{"raw": raw})
	if rec.Code != http.StatusCreated {
		t.Fatalf("llm submit: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var hybrid struct {
		Assessment struct {
			ID string `json:"id"`
		} `json:"assessment"`
		Validation struct {
			IsValid bool `json:"is_valid"`
		} `json:"validation"`
	}
	decodeBody(t, rec, &hybrid)
	if !hybrid.Validation.IsValid {
		t.Fatalf("expected valid hybrid result")
	}
	if hybrid.Assessment.ID == completed.Assessment.ID {
		t.Fatalf("hybrid assessment must get its own id")
	}

	rec = f.do(t, http.MethodPost, "/assessments/"+completed.Assessment.ID+"/llm", gin.H{"raw": "not json at all"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("garbage submission: expected 422, got %d", rec.Code)
	}

	// The session now carries both the base and the hybrid assessment.
	rec = f.do(t, http.MethodGet, "/sessions/"+id+"/assessments", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list assessments: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var listed struct {
		Assessments []struct {
			ID string `json:"id"`
		} `json:"assessments"`
	}
	decodeBody(t, rec, &listed)
	if len(listed.Assessments) != 2 {
		t.Fatalf("expected 2 assessments, got %d", len(listed.Assessments))
	}
	if listed.Assessments[0].ID != completed.Assessment.ID || listed.Assessments[1].ID != hybrid.Assessment.ID {
		t.Fatalf("expected save order base then hybrid, got %+v", listed.Assessments)
	}
}
