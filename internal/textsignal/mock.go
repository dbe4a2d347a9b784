package textsignal

import "talentloop/internal/domain"

// MockScorer returns canned results for tests.
type MockScorer struct {
	Score      InterviewScore
	Competency domain.CompetencyProfile
	Archetype  domain.ArchetypeResult
	Emotion    domain.EmotionVector
}

func (m *MockScorer) ScoreInterview(string) InterviewScore { return m.Score }

func (m *MockScorer) DetectCompetencySignals(string) domain.CompetencyProfile {
	return m.Competency
}

func (m *MockScorer) ClassifyArchetype(map[domain.Dimension]domain.DimensionScore, domain.CompetencyProfile) domain.ArchetypeResult {
	return m.Archetype
}

func (m *MockScorer) AnalyzeTextEmotion(string) domain.EmotionVector { return m.Emotion }
