package domain

import (
	"sort"
	"time"
)

// DimensionScore is one scored evaluation axis with its supporting evidence.
type DimensionScore struct {
	Score      float64  `json:"score"`
	Signals    []string `json:"signals,omitempty"`
	Confidence float64  `json:"confidence"`
}

// CompetencyProfile holds named competency signals with strengths in [0,1].
type CompetencyProfile struct {
	Signals map[string]float64 `json:"signals"`
}

// TopSignals returns the n strongest signals, strongest first. Ties break
// alphabetically so output is deterministic.
func (p CompetencyProfile) TopSignals(n int) []string {
	names := make([]string, 0, len(p.Signals))
	for name := range p.Signals {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		si, sj := p.Signals[names[i]], p.Signals[names[j]]
		if si != sj {
			return si > sj
		}
		return names[i] < names[j]
	})
	if n > len(names) {
		n = len(names)
	}
	return names[:n]
}

// Signal returns the strength of a named signal, zero when absent.
func (p CompetencyProfile) Signal(name string) float64 {
	return p.Signals[name]
}

// EmotionVector is the affect profile of the candidate's aggregated text.
// All fields are in [0,1].
type EmotionVector struct {
	Enthusiasm float64 `json:"enthusiasm"`
	Confidence float64 `json:"confidence"`
	Warmth     float64 `json:"warmth"`
	Tension    float64 `json:"tension"`
	Reflection float64 `json:"reflection"`
}

// ArchetypeResult is the outcome of archetype classification.
type ArchetypeResult struct {
	Primary    Archetype             `json:"primary"`
	Secondary  Archetype             `json:"secondary,omitempty"`
	Confidence float64               `json:"confidence"`
	AllScores  map[Archetype]float64 `json:"all_scores"`
}

// AssessmentResult is the canonical, immutable output of a completed
// interview. It is the sole artifact output handlers consume.
type AssessmentResult struct {
	ID            string                       `json:"id"`
	SessionID     string                       `json:"session_id"`
	CandidateName string                       `json:"candidate_name"`
	Transcript    []TranscriptEntry            `json:"transcript"`
	Dimensions    map[Dimension]DimensionScore `json:"dimensions"`
	Competency    CompetencyProfile            `json:"competency"`
	Emotion       EmotionVector                `json:"emotion"`
	Archetype     ArchetypeResult              `json:"archetype"`
	Tier          Tier                         `json:"tier"`
	OverallScore  float64                      `json:"overall_score"`
	GreenFlags    []string                     `json:"green_flags"`
	RedFlags      []string                     `json:"red_flags"`
	CompletedAt   time.Time                    `json:"completed_at"`
	Duration      time.Duration                `json:"duration"`
}
