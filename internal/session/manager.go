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

// Manager runs the session protocol for callers that drive the conversation
// themselves (an external UI or agent): exchanges are logged as they happen
// and the manager handles capture, scene transitions and lifecycle.
type Manager struct {
	store    Store
	catalog  *catalog.Catalog
	pipeline *assessment.Pipeline
	idleTTL  time.Duration
	logger   *zap.Logger
}

func NewManager(store Store, cat *catalog.Catalog, pipeline *assessment.Pipeline, idleTTL time.Duration, logger *zap.Logger) *Manager {
	return &Manager{store: store, catalog: cat, pipeline: pipeline, idleTTL: idleTTL, logger: logger}
}

// StartSession creates an active session in the elevator scene. The attribute
// set must exist; an empty id selects the default set.
func (m *Manager) StartSession(candidateName, attributeSetID string) (*domain.InterviewSession, error) {
	if attributeSetID == "" {
		attributeSetID = catalog.DefaultSetID
	}
	set, err := m.catalog.Set(attributeSetID)
	if err != nil {
		return nil, err
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
	if err := m.store.Insert(sess); err != nil {
		return nil, err
	}
	if m.logger != nil {
		m.logger.Info("session started",
			zap.String("session_id", sess.ID),
			zap.String("attribute_set", set.ID),
		)
	}
	return sess, nil
}

// GetSession loads a session, applying idle expiry first.
func (m *Manager) GetSession(sessionID string) (*domain.InterviewSession, error) {
	sess, err := m.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	m.expireIfIdle(sess)
	return sess, nil
}

// LogExchange appends one character/candidate exchange to the transcript and
// runs attribute detection over the candidate text only. The scene, when
// given, must match the session's current scene; an empty scene defaults to
// it. The caller paces the conversation, so exchanges past the scene's cap
// are still recorded and only reported via SceneCapReached. Nothing is
// mutated when validation fails.
func (m *Manager) LogExchange(sessionID, characterLine, candidateText string, scene domain.Scene) (domain.CaptureResult, error) {
	sess, err := m.activeSession(sessionID)
	if err != nil {
		return domain.CaptureResult{}, err
	}
	if scene == "" {
		scene = sess.CurrentScene
	}
	if scene != sess.CurrentScene {
		return domain.CaptureResult{}, fmt.Errorf("%w: exchange scene %q, session is in %q", domain.ErrInvalidState, scene, sess.CurrentScene)
	}
	sceneDef, err := m.catalog.Scene(scene)
	if err != nil {
		return domain.CaptureResult{}, err
	}
	detector, err := m.detectorFor(sess)
	if err != nil {
		return domain.CaptureResult{}, err
	}

	now := time.Now().UTC()
	sess.SceneExchanges[scene]++
	exchange := sess.SceneExchanges[scene]
	sess.Transcript = append(sess.Transcript,
		domain.TranscriptEntry{
			Scene:          scene,
			Character:      sceneDef.Character,
			Speaker:        domain.SpeakerCharacter,
			Text:           characterLine,
			Timestamp:      now,
			ExchangeNumber: exchange,
		},
		domain.TranscriptEntry{
			Scene:          scene,
			Character:      sceneDef.Character,
			Speaker:        domain.SpeakerCandidate,
			Text:           candidateText,
			Timestamp:      now,
			ExchangeNumber: exchange,
		},
	)
	sess.LastActivityAt = now

	newly := detector.Detect(sess, scene, candidateText, now)
	return domain.CaptureResult{
		NewlyCaptured:      newly,
		Progress:           detector.Progress(sess),
		SuggestedQuestions: detector.SuggestQuestions(sess),
		SceneCapReached:    exchange >= sceneDef.MaxExchanges,
	}, nil
}

// TransitionScene advances the session to the next scene in order. A target
// scene, when given, must be that next scene; scenes cannot be skipped or
// revisited. The office scene is terminal and closes only via CompleteSession.
func (m *Manager) TransitionScene(sessionID string, target domain.Scene) (domain.Scene, error) {
	sess, err := m.activeSession(sessionID)
	if err != nil {
		return "", err
	}
	next, ok := sess.CurrentScene.Next()
	if !ok {
		return "", fmt.Errorf("%w: scene %q is terminal", domain.ErrInvalidState, sess.CurrentScene)
	}
	if target != "" && target != next {
		return "", fmt.Errorf("%w: cannot transition from %q to %q", domain.ErrInvalidState, sess.CurrentScene, target)
	}
	sess.CurrentScene = next
	sess.LastActivityAt = time.Now().UTC()
	if m.logger != nil {
		m.logger.Info("scene transition",
			zap.String("session_id", sess.ID),
			zap.String("scene", string(next)),
		)
	}
	return next, nil
}

// CompleteSession closes the session and produces its assessment. Completing
// twice is an invalid state transition.
func (m *Manager) CompleteSession(sessionID string) (*domain.AssessmentResult, error) {
	sess, err := m.activeSession(sessionID)
	if err != nil {
		return nil, err
	}
	sess.Status = domain.StatusCompleted
	sess.LastActivityAt = time.Now().UTC()
	result := m.pipeline.Build(sess)
	if m.logger != nil {
		m.logger.Info("session completed",
			zap.String("session_id", sess.ID),
			zap.Float64("overall_score", result.OverallScore),
			zap.String("tier", string(result.Tier)),
		)
	}
	return result, nil
}

// AbandonSession marks the session abandoned. No assessment is produced and
// the captured state is kept only for inspection.
func (m *Manager) AbandonSession(sessionID string) error {
	sess, err := m.activeSession(sessionID)
	if err != nil {
		return err
	}
	sess.Status = domain.StatusAbandoned
	sess.LastActivityAt = time.Now().UTC()
	if m.logger != nil {
		m.logger.Info("session abandoned", zap.String("session_id", sess.ID))
	}
	return nil
}

// Progress reports capture progress without mutating the session.
func (m *Manager) Progress(sessionID string) (domain.CaptureProgress, error) {
	sess, err := m.GetSession(sessionID)
	if err != nil {
		return domain.CaptureProgress{}, err
	}
	detector, err := m.detectorFor(sess)
	if err != nil {
		return domain.CaptureProgress{}, err
	}
	return detector.Progress(sess), nil
}

func (m *Manager) activeSession(sessionID string) (*domain.InterviewSession, error) {
	sess, err := m.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	m.expireIfIdle(sess)
	if !sess.Active() {
		return nil, fmt.Errorf("%w: session %s is %s", domain.ErrInvalidState, sess.ID, sess.Status)
	}
	return sess, nil
}

// expireIfIdle lazily abandons sessions whose last activity is older than the
// idle TTL. A zero TTL disables expiry.
func (m *Manager) expireIfIdle(sess *domain.InterviewSession) {
	if m.idleTTL <= 0 || !sess.Active() {
		return
	}
	if time.Since(sess.LastActivityAt) > m.idleTTL {
		sess.Status = domain.StatusAbandoned
		if m.logger != nil {
			m.logger.Info("session expired idle",
				zap.String("session_id", sess.ID),
				zap.Duration("idle_ttl", m.idleTTL),
			)
		}
	}
}

func (m *Manager) detectorFor(sess *domain.InterviewSession) (*Detector, error) {
	set, err := m.catalog.Set(sess.AttributeSetID)
	if err != nil {
		return nil, err
	}
	return NewDetector(m.catalog, set), nil
}
