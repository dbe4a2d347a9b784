package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentloop/internal/assessment"
	"talentloop/internal/catalog"
	"talentloop/internal/domain"
)

// ScenePrompt is the next line the current character speaks to the candidate.
type ScenePrompt struct {
	Scene     domain.Scene `json:"scene"`
	Character string       `json:"character"`
	Text      string       `json:"text"`
}

// InterviewComplete is returned once, when the office scene closes.
type InterviewComplete struct {
	Transcript []domain.TranscriptEntry `json:"transcript"`
	Result     *domain.AssessmentResult `json:"result"`
}

// Interviewer drives the scripted three-scene journey for one candidate.
// Each ProcessResponse either yields the next prompt or, after the final
// office exchange, the finished assessment. It is not safe for concurrent
// use; one interviewer owns one session.
type Interviewer struct {
	catalog  *catalog.Catalog
	detector *Detector
	pipeline *assessment.Pipeline
	logger   *zap.Logger
	sess     *domain.InterviewSession
	done     *InterviewComplete
}

// StartInterview opens a session on the default attribute set and returns the
// elevator opening line.
func StartInterview(
	cat *catalog.Catalog,
	pipeline *assessment.Pipeline,
	logger *zap.Logger,
	candidateName string,
) (*Interviewer, ScenePrompt, error) {
	set, err := cat.Set(catalog.DefaultSetID)
	if err != nil {
		return nil, ScenePrompt{}, err
	}
	sceneDef, err := cat.Scene(domain.SceneElevator)
	if err != nil {
		return nil, ScenePrompt{}, err
	}

	now := time.Now().UTC()
	sess := &domain.InterviewSession{
		ID:                 uuid.NewString(),
		CandidateName:      candidateName,
		AttributeSetID:     set.ID,
		CapturedAttributes: make(map[string]*domain.CapturedAttribute),
		CurrentScene:       domain.SceneElevator,
		SceneExchanges:     make(map[domain.Scene]int),
		StartedAt:          now,
		LastActivityAt:     now,
		Status:             domain.StatusActive,
	}

	iv := &Interviewer{
		catalog:  cat,
		detector: NewDetector(cat, set),
		pipeline: pipeline,
		logger:   logger,
		sess:     sess,
	}
	opening := iv.speak(sceneDef, sceneDef.OpeningLine, now)
	return iv, opening, nil
}

// Session exposes the underlying session for inspection. Callers must not
// mutate it.
func (iv *Interviewer) Session() *domain.InterviewSession { return iv.sess }

// ProcessResponse records one candidate response and advances the script.
// Exactly one of the two return values is non-nil on success.
func (iv *Interviewer) ProcessResponse(text string) (*ScenePrompt, *InterviewComplete, error) {
	if !iv.sess.Active() {
		return nil, nil, fmt.Errorf("%w: session %s is %s", domain.ErrInvalidState, iv.sess.ID, iv.sess.Status)
	}

	now := time.Now().UTC()
	scene := iv.sess.CurrentScene
	sceneDef, err := iv.catalog.Scene(scene)
	if err != nil {
		return nil, nil, err
	}

	iv.sess.SceneExchanges[scene]++
	exchange := iv.sess.SceneExchanges[scene]
	iv.sess.Transcript = append(iv.sess.Transcript, domain.TranscriptEntry{
		Scene:          scene,
		Character:      sceneDef.Character,
		Speaker:        domain.SpeakerCandidate,
		Text:           text,
		Timestamp:      now,
		ExchangeNumber: exchange,
	})
	iv.sess.LastActivityAt = now

	newly := iv.detector.Detect(iv.sess, scene, text, now)
	if len(newly) > 0 && iv.logger != nil {
		iv.logger.Debug("attributes captured",
			zap.String("session_id", iv.sess.ID),
			zap.String("scene", string(scene)),
			zap.Strings("attributes", newly),
		)
	}

	if exchange < sceneDef.MaxExchanges {
		idx := (exchange - 1) % len(sceneDef.FollowUps)
		prompt := iv.speak(sceneDef, sceneDef.FollowUps[idx], now)
		return &prompt, nil, nil
	}

	// Scene cap reached: the character hands off or wraps up.
	iv.speak(sceneDef, sceneDef.TransitionLine, now)

	next, ok := scene.Next()
	if !ok {
		iv.sess.Status = domain.StatusCompleted
		result := iv.pipeline.Build(iv.sess)
		iv.done = &InterviewComplete{Transcript: iv.sess.Transcript, Result: result}
		if iv.logger != nil {
			iv.logger.Info("interview completed",
				zap.String("session_id", iv.sess.ID),
				zap.Float64("overall_score", result.OverallScore),
				zap.String("tier", string(result.Tier)),
			)
		}
		return nil, iv.done, nil
	}

	iv.sess.CurrentScene = next
	nextDef, err := iv.catalog.Scene(next)
	if err != nil {
		return nil, nil, err
	}
	prompt := iv.speak(nextDef, nextDef.OpeningLine, now)
	return &prompt, nil, nil
}

// speak appends a character line to the transcript and returns it as a prompt.
func (iv *Interviewer) speak(def catalog.SceneDefinition, line string, now time.Time) ScenePrompt {
	iv.sess.Transcript = append(iv.sess.Transcript, domain.TranscriptEntry{
		Scene:          def.Scene,
		Character:      def.Character,
		Speaker:        domain.SpeakerCharacter,
		Text:           line,
		Timestamp:      now,
		ExchangeNumber: iv.sess.SceneExchanges[def.Scene],
	})
	return ScenePrompt{Scene: def.Scene, Character: def.Character, Text: line}
}
