package session

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"talentloop/internal/assessment"
	"talentloop/internal/catalog"
	"talentloop/internal/domain"
	"talentloop/internal/textsignal"
)

// newScriptedScorer returns a canned scorer covering every dimension so
// pipeline output is fully predictable.
func newScriptedScorer() *textsignal.MockScorer {
	dims := make(map[domain.Dimension]domain.DimensionScore, len(domain.AllDimensions))
	for _, dim := range domain.AllDimensions {
		dims[dim] = domain.DimensionScore{Score: 6, Confidence: 0.5}
	}
	return &textsignal.MockScorer{
		Score: textsignal.InterviewScore{
			Dimensions:   dims,
			Tier:         domain.TierModerate,
			OverallScore: 6,
			GreenFlags:   []string{"shows ownership"},
		},
		Competency: domain.CompetencyProfile{Signals: map[string]float64{"collaboration": 0.6}},
		Archetype: domain.ArchetypeResult{
			Primary:    domain.ArchetypeGeneralistOrchestrator,
			Secondary:  domain.ArchetypeTechnicalBuilder,
			Confidence: 0.55,
			AllScores:  map[domain.Archetype]float64{domain.ArchetypeGeneralistOrchestrator: 0.55},
		},
		Emotion: domain.EmotionVector{Enthusiasm: 0.4, Warmth: 0.5},
	}
}

func newTestInterviewer(t *testing.T) (*Interviewer, ScenePrompt) {
	t.Helper()
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	pipeline := assessment.NewPipeline(newScriptedScorer(), cat.Attribute)
	iv, opening, err := StartInterview(cat, pipeline, zap.NewNop(), "Sam Rivera")
	if err != nil {
		t.Fatalf("start interview: %v", err)
	}
	return iv, opening
}

// runToCompletion answers every prompt with the same text and returns the
// completion payload.
func runToCompletion(t *testing.T, iv *Interviewer) *InterviewComplete {
	t.Helper()
	for i := 0; i < 14; i++ {
		prompt, done, err := iv.ProcessResponse("I figured out how we built it together.")
		if err != nil {
			t.Fatalf("process response %d: %v", i, err)
		}
		if done != nil {
			return done
		}
		if prompt == nil {
			t.Fatalf("response %d yielded neither prompt nor completion", i)
		}
	}
	t.Fatalf("interview did not complete within 14 responses")
	return nil
}

func TestStartInterview_OpensElevator(t *testing.T) {
	iv, opening := newTestInterviewer(t)

	if opening.Scene != domain.SceneElevator {
		t.Fatalf("expected elevator opening, got %v", opening.Scene)
	}
	if opening.Character != "Riley" {
		t.Fatalf("expected Riley, got %q", opening.Character)
	}
	sess := iv.Session()
	if sess.CurrentScene != domain.SceneElevator || !sess.Active() {
		t.Fatalf("unexpected initial session state")
	}
	if len(sess.Transcript) != 1 || sess.Transcript[0].Speaker != domain.SpeakerCharacter {
		t.Fatalf("opening line must be the first transcript entry")
	}
}

func TestProcessResponse_SceneCapsAndTransitions(t *testing.T) {
	iv, _ := newTestInterviewer(t)

	// Elevator allows 3 candidate exchanges; the third hands off to reception.
	for i := 0; i < 2; i++ {
		prompt, done, err := iv.ProcessResponse("Just the usual commute.")
		if err != nil || done != nil {
			t.Fatalf("exchange %d: err=%v done=%v", i, err, done)
		}
		if prompt.Scene != domain.SceneElevator {
			t.Fatalf("exchange %d: expected elevator prompt, got %v", i, prompt.Scene)
		}
	}
	prompt, done, err := iv.ProcessResponse("Honestly, the team and the mission.")
	if err != nil || done != nil {
		t.Fatalf("third exchange: err=%v done=%v", err, done)
	}
	if prompt.Scene != domain.SceneReception || prompt.Character != "Jordan" {
		t.Fatalf("expected reception opening from Jordan, got %v/%s", prompt.Scene, prompt.Character)
	}
	if iv.Session().CurrentScene != domain.SceneReception {
		t.Fatalf("session did not advance to reception")
	}
	if got := iv.Session().SceneExchanges[domain.SceneElevator]; got != 3 {
		t.Fatalf("expected 3 elevator exchanges, got %d", got)
	}
}

func TestProcessResponse_FollowUpCycling(t *testing.T) {
	iv, _ := newTestInterviewer(t)
	cat, _ := catalog.New()
	elevator, _ := cat.Scene(domain.SceneElevator)

	prompt, _, err := iv.ProcessResponse("Pretty smooth trip, thanks.")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if prompt.Text != elevator.FollowUps[0] {
		t.Fatalf("expected first follow-up, got %q", prompt.Text)
	}
	prompt, _, err = iv.ProcessResponse("First time, actually.")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if prompt.Text != elevator.FollowUps[1] {
		t.Fatalf("expected second follow-up, got %q", prompt.Text)
	}
}

func TestProcessResponse_CompletionIsTerminal(t *testing.T) {
	iv, _ := newTestInterviewer(t)
	done := runToCompletion(t, iv)

	if done.Result == nil {
		t.Fatalf("expected assessment result")
	}
	if iv.Session().Status != domain.StatusCompleted {
		t.Fatalf("expected completed status, got %v", iv.Session().Status)
	}
	if got := iv.Session().SceneExchanges[domain.SceneOffice]; got != 7 {
		t.Fatalf("expected 7 office exchanges, got %d", got)
	}

	// The transcript ends with Morgan's closing line.
	last := done.Transcript[len(done.Transcript)-1]
	if last.Speaker != domain.SpeakerCharacter || last.Scene != domain.SceneOffice {
		t.Fatalf("expected office closing line at transcript end")
	}

	if _, _, err := iv.ProcessResponse("One more thing..."); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState after completion, got %v", err)
	}
}

func TestProcessResponse_TotalExchangeBudget(t *testing.T) {
	iv, _ := newTestInterviewer(t)
	responses := 0
	for {
		_, done, err := iv.ProcessResponse("Sure, happy to talk about that.")
		if err != nil {
			t.Fatalf("process: %v", err)
		}
		responses++
		if done != nil {
			break
		}
	}
	if responses != 14 {
		t.Fatalf("expected 14 candidate responses (3+4+7), got %d", responses)
	}
}
