package textsignal

import "talentloop/internal/domain"

// InterviewScore is the baseline evaluation of aggregated candidate text.
type InterviewScore struct {
	Dimensions   map[domain.Dimension]domain.DimensionScore `json:"dimensions"`
	Tier         domain.Tier                                `json:"tier"`
	OverallScore float64                                    `json:"overall_score"`
	GreenFlags   []string                                   `json:"green_flags"`
	RedFlags     []string                                   `json:"red_flags"`
}

// Scorer is the text-scoring boundary the conductor consumes. Implementations
// must be pure and deterministic given identical input: same text in, same
// scores out, no shared state.
type Scorer interface {
	ScoreInterview(text string) InterviewScore
	DetectCompetencySignals(text string) domain.CompetencyProfile
	ClassifyArchetype(dims map[domain.Dimension]domain.DimensionScore, profile domain.CompetencyProfile) domain.ArchetypeResult
	AnalyzeTextEmotion(text string) domain.EmotionVector
}
