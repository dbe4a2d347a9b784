package assessment

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"talentloop/internal/domain"
)

func llmSubmission(score float64) domain.LLMAssessment {
	dims := make(map[string]float64, len(domain.AllDimensions))
	for _, dim := range domain.AllDimensions {
		dims[string(dim)] = score
	}
	return domain.LLMAssessment{
		Dimensions:          dims,
		Archetype:           string(domain.ArchetypeTechnicalBuilder),
		ArchetypeConfidence: 0.8,
		RecommendedTier:     string(domain.TierForScore(score)),
	}
}

func transcriptWith(text string) []domain.TranscriptEntry {
	return []domain.TranscriptEntry{
		{Speaker: domain.SpeakerCharacter, Text: "Tell me more."},
		{Speaker: domain.SpeakerCandidate, Text: text},
	}
}

func TestValidateAssessment_AgreementProducesNoWarnings(t *testing.T) {
	v := NewHybridValidator(flatScorer(6, 0.5), zap.NewNop())
	llm := llmSubmission(6)

	result := v.ValidateAssessment(llm, transcriptWith("steady answer"))
	if !result.IsValid {
		t.Fatalf("expected valid result")
	}
	if len(result.BiasWarnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.BiasWarnings)
	}
	for _, dim := range domain.AllDimensions {
		if !almostEqual(result.AdjustedScores[dim], 6) {
			t.Fatalf("dimension %s: adjusted score must equal llm score, got %v", dim, result.AdjustedScores[dim])
		}
	}
	// Perfect agreement scales to the maximum confidence boost.
	if !almostEqual(result.ConfidenceAdjustment, 1) {
		t.Fatalf("expected adjustment 1, got %v", result.ConfidenceAdjustment)
	}
}

func TestValidateAssessment_LargeDisagreementAdjustsScore(t *testing.T) {
	v := NewHybridValidator(flatScorer(4, 0.5), zap.NewNop())
	llm := llmSubmission(9)

	result := v.ValidateAssessment(llm, transcriptWith("brief answer"))
	if len(result.BiasWarnings) != len(domain.AllDimensions) {
		t.Fatalf("expected a warning per dimension, got %d", len(result.BiasWarnings))
	}
	// 0.7*9 + 0.3*4 = 7.5 on every dimension.
	for _, dim := range domain.AllDimensions {
		if !almostEqual(result.AdjustedScores[dim], 7.5) {
			t.Fatalf("dimension %s: expected 7.5, got %v", dim, result.AdjustedScores[dim])
		}
	}
	// avgAgreement = 1 - 5/10 = 0.5, so no confidence shift either way.
	if !almostEqual(result.ConfidenceAdjustment, 0) {
		t.Fatalf("expected adjustment 0, got %v", result.ConfidenceAdjustment)
	}
}

func TestValidateAssessment_NegativeBiasDirection(t *testing.T) {
	v := NewHybridValidator(flatScorer(8, 0.5), zap.NewNop())
	llm := llmSubmission(4)

	result := v.ValidateAssessment(llm, transcriptWith("strong answer"))
	if len(result.BiasWarnings) == 0 {
		t.Fatalf("expected warnings")
	}
	if !strings.Contains(result.BiasWarnings[0], "negative bias") {
		t.Fatalf("expected negative bias warning, got %q", result.BiasWarnings[0])
	}
}

func TestValidateAssessment_RedFlagOmission(t *testing.T) {
	scorer := flatScorer(6, 0.5)
	scorer.Score.RedFlags = []string{"blames former colleagues"}
	v := NewHybridValidator(scorer, zap.NewNop())

	llm := llmSubmission(6)
	result := v.ValidateAssessment(llm, transcriptWith("they were all terrible"))
	found := false
	for _, w := range result.BiasWarnings {
		if strings.Contains(w, "didn't flag") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected omission warning, got %v", result.BiasWarnings)
	}

	// The same flag reported by the LLM in different words suppresses it.
	llm.RedFlags = []string{"tends to blames others for failures"}
	result = v.ValidateAssessment(llm, transcriptWith("they were all terrible"))
	for _, w := range result.BiasWarnings {
		if strings.Contains(w, "didn't flag") {
			t.Fatalf("overlapping flag must not warn: %v", result.BiasWarnings)
		}
	}
}

func TestValidateAssessment_HaloWarning(t *testing.T) {
	scorer := flatScorer(6, 0.5)
	scorer.Score.RedFlags = []string{"vague on specifics", "deflects questions", "blames others"}
	v := NewHybridValidator(scorer, zap.NewNop())

	llm := llmSubmission(6)
	llm.GreenFlags = []string{"a", "b", "c", "d", "e", "f"}
	llm.RedFlags = []string{"vague on specifics", "deflects questions", "blames others"}

	result := v.ValidateAssessment(llm, transcriptWith("glowing answer"))
	found := false
	for _, w := range result.BiasWarnings {
		if strings.Contains(w, "overlooking red flags") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected halo warning, got %v", result.BiasWarnings)
	}
}

func TestBuildHybridAssessment_ComposesAdjustedResult(t *testing.T) {
	scorer := flatScorer(4, 0.5)
	v := NewHybridValidator(scorer, zap.NewNop())
	p := NewPipeline(scorer, lookupFrom(testDefs()))
	base := p.Build(sessionWithCaptures(nil))
	base.GreenFlags = []string{"ships consistently"}

	llm := llmSubmission(9)
	llm.GreenFlags = []string{"Ships Consistently", "deep technical insight"}

	final, validation := v.BuildHybridAssessment(base, llm)

	for _, dim := range domain.AllDimensions {
		if !almostEqual(final.Dimensions[dim].Score, 7.5) {
			t.Fatalf("dimension %s: expected adjusted 7.5, got %v", dim, final.Dimensions[dim].Score)
		}
	}
	if !almostEqual(final.OverallScore, 7.5) {
		t.Fatalf("expected overall 7.5, got %v", final.OverallScore)
	}
	if final.Tier != domain.TierStrong {
		t.Fatalf("tier must be recomputed from adjusted overall, got %v", final.Tier)
	}
	// LLM archetype wins at confidence 0.8.
	if final.Archetype.Primary != domain.ArchetypeTechnicalBuilder {
		t.Fatalf("expected llm archetype, got %v", final.Archetype.Primary)
	}
	// Case-insensitive flag union dedupes.
	if len(final.GreenFlags) != 2 {
		t.Fatalf("expected 2 deduped green flags, got %v", final.GreenFlags)
	}
	if validation.ConfidenceAdjustment > 0.01 || validation.ConfidenceAdjustment < -0.01 {
		t.Fatalf("expected near-zero adjustment, got %v", validation.ConfidenceAdjustment)
	}
}

func TestBuildHybridAssessment_LowLLMConfidenceKeepsBaseArchetype(t *testing.T) {
	scorer := flatScorer(6, 0.5)
	v := NewHybridValidator(scorer, zap.NewNop())
	p := NewPipeline(scorer, lookupFrom(testDefs()))
	base := p.Build(sessionWithCaptures(nil))

	llm := llmSubmission(6)
	llm.ArchetypeConfidence = 0.4

	final, _ := v.BuildHybridAssessment(base, llm)
	if final.Archetype.Primary != base.Archetype.Primary {
		t.Fatalf("expected base archetype kept, got %v", final.Archetype.Primary)
	}
}
