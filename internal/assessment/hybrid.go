package assessment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentloop/internal/domain"
	"talentloop/internal/textsignal"
)

// Bias detection constants. A per-dimension disagreement beyond biasThreshold
// marks the LLM score as potentially biased; the algorithmic score is then a
// minority corrective, not an override.
const (
	biasThreshold       = 2.5
	llmScoreWeight      = 0.7
	algoScoreWeight     = 0.3
	haloGreenFlagLimit  = 5
	haloRedFlagLimit    = 2
	confidenceBlendPart = 0.2
)

// ValidationResult is the outcome of reconciling an LLM assessment against
// the algorithmic baseline. Warnings are advisory; they never block.
type ValidationResult struct {
	IsValid              bool                         `json:"is_valid"`
	BiasWarnings         []string                     `json:"bias_warnings"`
	AdjustedScores       map[domain.Dimension]float64 `json:"adjusted_scores"`
	ConfidenceAdjustment float64                      `json:"confidence_adjustment"`
}

// HybridValidator cross-checks an externally submitted assessment against the
// text-signal baseline and composes the blended final result.
type HybridValidator struct {
	scorer textsignal.Scorer
	logger *zap.Logger
}

func NewHybridValidator(scorer textsignal.Scorer, logger *zap.Logger) *HybridValidator {
	return &HybridValidator{scorer: scorer, logger: logger}
}

// ValidateAssessment compares per-dimension scores, cross-checks red flags
// and derives the confidence adjustment. The submission must already have
// passed schema validation.
func (v *HybridValidator) ValidateAssessment(llm domain.LLMAssessment, transcript []domain.TranscriptEntry) ValidationResult {
	algo := v.scorer.ScoreInterview(candidateText(transcript))

	result := ValidationResult{
		IsValid:        true,
		AdjustedScores: make(map[domain.Dimension]float64, len(domain.AllDimensions)),
	}

	var agreementSum float64
	for _, dim := range domain.AllDimensions {
		llmScore := llm.Dimensions[string(dim)]
		algoScore := algo.Dimensions[dim].Score
		diff := llmScore - algoScore

		adjusted := llmScore
		if diff > biasThreshold {
			adjusted = llmScoreWeight*llmScore + algoScoreWeight*algoScore
			result.BiasWarnings = append(result.BiasWarnings,
				fmt.Sprintf("potential positive bias on %s: llm %.1f vs baseline %.1f", dim, llmScore, algoScore))
		} else if -diff > biasThreshold {
			adjusted = llmScoreWeight*llmScore + algoScoreWeight*algoScore
			result.BiasWarnings = append(result.BiasWarnings,
				fmt.Sprintf("potential negative bias on %s: llm %.1f vs baseline %.1f", dim, llmScore, algoScore))
		}
		result.AdjustedScores[dim] = adjusted

		agreement := 1 - abs(diff)/10
		agreementSum += agreement
	}

	// Omission check: baseline red flags the LLM never mentioned.
	for _, algoFlag := range algo.RedFlags {
		if !flagsOverlap(algoFlag, llm.RedFlags) {
			result.BiasWarnings = append(result.BiasWarnings,
				fmt.Sprintf("algorithm detected %q but LLM didn't flag it", algoFlag))
		}
	}

	// Halo heuristic: lots of praise while the baseline keeps finding problems.
	if len(llm.GreenFlags) > haloGreenFlagLimit && len(algo.RedFlags) > haloRedFlagLimit {
		result.BiasWarnings = append(result.BiasWarnings,
			"LLM may be overlooking red flags: high green-flag count against multiple baseline red flags")
	}

	avgAgreement := agreementSum / float64(len(domain.AllDimensions))
	result.ConfidenceAdjustment = (avgAgreement - 0.5) * 2

	if v.logger != nil && len(result.BiasWarnings) > 0 {
		v.logger.Info("bias warnings emitted",
			zap.Int("count", len(result.BiasWarnings)),
			zap.Float64("confidence_adjustment", result.ConfidenceAdjustment),
		)
	}
	return result
}

// BuildHybridAssessment composes the adjusted scores, the reconciled
// archetype and the union of flags into a full AssessmentResult. Tier is
// recomputed from the adjusted overall score so score and tier can't drift
// apart.
func (v *HybridValidator) BuildHybridAssessment(base *domain.AssessmentResult, llm domain.LLMAssessment) (*domain.AssessmentResult, ValidationResult) {
	vr := v.ValidateAssessment(llm, base.Transcript)

	confShift := (vr.ConfidenceAdjustment + 1) / 2

	dims := make(map[domain.Dimension]domain.DimensionScore, len(domain.AllDimensions))
	var total float64
	for _, dim := range domain.AllDimensions {
		b := base.Dimensions[dim]
		score := vr.AdjustedScores[dim]
		dims[dim] = domain.DimensionScore{
			Score:      score,
			Signals:    b.Signals,
			Confidence: clamp01((1-confidenceBlendPart)*b.Confidence + confidenceBlendPart*confShift),
		}
		total += score
	}
	overall := total / float64(len(domain.AllDimensions))

	archetype := base.Archetype
	if llm.ArchetypeConfidence >= 0.7 {
		archetype = domain.ArchetypeResult{
			Primary:    domain.Archetype(llm.Archetype),
			Secondary:  base.Archetype.Primary,
			Confidence: llm.ArchetypeConfidence,
			AllScores:  base.Archetype.AllScores,
		}
		if archetype.Secondary == archetype.Primary {
			archetype.Secondary = base.Archetype.Secondary
		}
	}
	archetype.Confidence = clamp01(archetype.Confidence * (1 + confidenceBlendPart*vr.ConfidenceAdjustment))

	completedAt := time.Now().UTC()
	return &domain.AssessmentResult{
		ID:            uuid.NewString(),
		SessionID:     base.SessionID,
		CandidateName: base.CandidateName,
		Transcript:    base.Transcript,
		Dimensions:    dims,
		Competency:    base.Competency,
		Emotion:       base.Emotion,
		Archetype:     archetype,
		Tier:          domain.TierForScore(overall),
		OverallScore:  overall,
		GreenFlags:    unionFlags(llm.GreenFlags, base.GreenFlags),
		RedFlags:      unionFlags(llm.RedFlags, base.RedFlags),
		CompletedAt:   completedAt,
		Duration:      base.Duration,
	}, vr
}

func candidateText(transcript []domain.TranscriptEntry) string {
	var out strings.Builder
	for _, e := range transcript {
		if e.Speaker != domain.SpeakerCandidate {
			continue
		}
		if out.Len() > 0 {
			out.WriteByte('\n')
		}
		out.WriteString(e.Text)
	}
	return out.String()
}

// flagsOverlap reports whether any substantive word of flag appears in one of
// the reported flags.
func flagsOverlap(flag string, reported []string) bool {
	for _, word := range strings.Fields(strings.ToLower(flag)) {
		if len(word) < 4 {
			continue
		}
		for _, r := range reported {
			if strings.Contains(strings.ToLower(r), word) {
				return true
			}
		}
	}
	return false
}

func unionFlags(primary, secondary []string) []string {
	seen := make(map[string]struct{}, len(primary)+len(secondary))
	var out []string
	for _, f := range primary {
		key := strings.ToLower(strings.TrimSpace(f))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			out = append(out, f)
		}
	}
	for _, f := range secondary {
		key := strings.ToLower(strings.TrimSpace(f))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
