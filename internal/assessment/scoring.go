package assessment

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"talentloop/internal/domain"
	"talentloop/internal/textsignal"
)

// Blend weights and archetype override thresholds, kept as named tunables.
const (
	baselineWeight  = 0.4
	attributeWeight = 0.6

	archetypeOverrideConfidence = 0.7
	archetypeOverrideCaptures   = 5
)

// dimContribution maps one attribute category onto dimensions. Partial
// contributions carry half weight in the per-dimension average.
type dimContribution struct {
	dim    domain.Dimension
	weight float64
}

func contributionsFor(def domain.AttributeDefinition) []dimContribution {
	switch def.Category {
	case domain.CategoryCognitive:
		return []dimContribution{{domain.DimIQ, 1}, {domain.DimTechnical, 1}}
	case domain.CategoryEmotional:
		out := []dimContribution{{domain.DimEQ, 1}}
		if def.ID == "empathy" {
			out = append(out, dimContribution{domain.DimEmpathy, 1})
		}
		if def.ID == "self_awareness" {
			out = append(out, dimContribution{domain.DimSelfAwareness, 1})
		}
		return out
	case domain.CategoryProfessional:
		out := []dimContribution{{domain.DimWorkHistory, 1}}
		if def.ID == "communication" || def.ID == "leadership" {
			out = append(out, dimContribution{domain.DimPersonality, 1})
		}
		return out
	case domain.CategoryMotivation:
		return []dimContribution{{domain.DimMotivation, 1}, {domain.DimPassions, 1}}
	case domain.CategoryPersonality:
		return []dimContribution{{domain.DimPersonality, 1}}
	case domain.CategoryCultural:
		return []dimContribution{{domain.DimCultureFit, 1}}
	case domain.CategoryRelationship:
		return []dimContribution{{domain.DimEmpathy, 0.5}, {domain.DimCultureFit, 0.5}}
	case domain.CategoryIdentity:
		return []dimContribution{{domain.DimSelfAwareness, 0.5}, {domain.DimMotivation, 0.5}}
	}
	return nil
}

// attributeArchetypeWeights assigns weighted archetype contributions to
// specific attribute ids. A captured attribute contributes
// confidence × weight to each listed archetype.
var attributeArchetypeWeights = map[string]map[domain.Archetype]float64{
	"technical":            {domain.ArchetypeTechnicalBuilder: 2, domain.ArchetypeDomainExpert: 0.5},
	"ai_readiness":         {domain.ArchetypeTechnicalBuilder: 2},
	"problem_solving":      {domain.ArchetypeTechnicalBuilder: 1, domain.ArchetypeCreativeStrategist: 0.5},
	"communication":        {domain.ArchetypeGTMOperator: 1.5},
	"social_style":         {domain.ArchetypeGTMOperator: 1.5},
	"creativity":           {domain.ArchetypeCreativeStrategist: 2},
	"learning_agility":     {domain.ArchetypeCreativeStrategist: 1, domain.ArchetypeGeneralistOrchestrator: 0.5},
	"passion_depth":        {domain.ArchetypeCreativeStrategist: 0.5},
	"execution_discipline": {domain.ArchetypeExecutionMachine: 2},
	"intrinsic_drive":      {domain.ArchetypeExecutionMachine: 1},
	"resilience":           {domain.ArchetypeExecutionMachine: 1},
	"leadership":           {domain.ArchetypeGeneralistOrchestrator: 1.5},
	"team_orientation":     {domain.ArchetypeGeneralistOrchestrator: 1.5},
	"adaptability":         {domain.ArchetypeGeneralistOrchestrator: 1},
	"domain_expertise":     {domain.ArchetypeDomainExpert: 2},
}

// maxArchetypeWeight is the attainable contribution ceiling per archetype,
// used to normalize attribute-derived archetype scores into [0,1].
var maxArchetypeWeight = func() map[domain.Archetype]float64 {
	out := make(map[domain.Archetype]float64, len(domain.AllArchetypes))
	for _, weights := range attributeArchetypeWeights {
		for arch, w := range weights {
			out[arch] += w
		}
	}
	return out
}()

// Pipeline turns a finished session into the canonical AssessmentResult.
type Pipeline struct {
	scorer  textsignal.Scorer
	defLook func(id string) (domain.AttributeDefinition, bool)
}

// NewPipeline builds a pipeline over the text-scoring boundary and an
// attribute definition lookup (normally catalog.Attribute).
func NewPipeline(scorer textsignal.Scorer, defLook func(id string) (domain.AttributeDefinition, bool)) *Pipeline {
	return &Pipeline{scorer: scorer, defLook: defLook}
}

// Build scores the session's aggregated candidate text, blends in
// attribute-derived evidence and resolves archetype and tier. It never
// mutates the session beyond reading it.
func (p *Pipeline) Build(sess *domain.InterviewSession) *domain.AssessmentResult {
	text := sess.CandidateText()
	base := p.scorer.ScoreInterview(text)
	competency := p.scorer.DetectCompetencySignals(text)
	emotion := p.scorer.AnalyzeTextEmotion(text)

	dims := p.blendDimensions(base.Dimensions, sess.CapturedAttributes)

	var total float64
	for _, dim := range domain.AllDimensions {
		total += dims[dim].Score
	}
	overall := total / float64(len(domain.AllDimensions))

	archetype := p.resolveArchetype(sess, dims, competency)

	completedAt := time.Now().UTC()
	return &domain.AssessmentResult{
		ID:            uuid.NewString(),
		SessionID:     sess.ID,
		CandidateName: sess.CandidateName,
		Transcript:    sess.Transcript,
		Dimensions:    dims,
		Competency:    competency,
		Emotion:       emotion,
		Archetype:     archetype,
		Tier:          domain.TierForScore(overall),
		OverallScore:  overall,
		GreenFlags:    base.GreenFlags,
		RedFlags:      base.RedFlags,
		CompletedAt:   completedAt,
		Duration:      completedAt.Sub(sess.StartedAt),
	}
}

// blendDimensions averages attribute contributions per dimension, then blends
// 40% baseline with 60% attribute-derived wherever attribute evidence exists.
func (p *Pipeline) blendDimensions(
	base map[domain.Dimension]domain.DimensionScore,
	captured map[string]*domain.CapturedAttribute,
) map[domain.Dimension]domain.DimensionScore {
	type acc struct {
		scoreSum, confSum, weightSum float64
		ids                          []string
	}
	accs := make(map[domain.Dimension]*acc)

	for _, dim := range domain.AllDimensions {
		accs[dim] = &acc{}
	}
	for _, id := range sortedKeys(captured) {
		ca := captured[id]
		def, ok := p.defLook(id)
		if !ok {
			continue
		}
		for _, c := range contributionsFor(def) {
			a := accs[c.dim]
			a.scoreSum += ca.Confidence * 10 * c.weight
			a.confSum += ca.Confidence * c.weight
			a.weightSum += c.weight
			a.ids = append(a.ids, id)
		}
	}

	out := make(map[domain.Dimension]domain.DimensionScore, len(domain.AllDimensions))
	for _, dim := range domain.AllDimensions {
		b := base[dim]
		a := accs[dim]
		if a.weightSum == 0 {
			out[dim] = b
			continue
		}
		attrScore := a.scoreSum / a.weightSum
		attrConf := a.confSum / a.weightSum
		out[dim] = domain.DimensionScore{
			Score:      baselineWeight*b.Score + attributeWeight*attrScore,
			Signals:    append(append([]string{}, b.Signals...), a.ids...),
			Confidence: baselineWeight*b.Confidence + attributeWeight*attrConf,
		}
	}
	return out
}

// resolveArchetype prefers the attribute-derived winner when structured
// evidence is strong enough, falling back to the competency-profile
// classifier when capture is sparse.
func (p *Pipeline) resolveArchetype(
	sess *domain.InterviewSession,
	dims map[domain.Dimension]domain.DimensionScore,
	competency domain.CompetencyProfile,
) domain.ArchetypeResult {
	holistic := p.scorer.ClassifyArchetype(dims, competency)

	scores := make(map[domain.Archetype]float64, len(domain.AllArchetypes))
	for _, id := range sortedKeys(sess.CapturedAttributes) {
		ca := sess.CapturedAttributes[id]
		for arch, w := range attributeArchetypeWeights[id] {
			scores[arch] += ca.Confidence * w
		}
	}

	var winner domain.Archetype
	var best float64
	for _, arch := range domain.AllArchetypes {
		if s := scores[arch]; winner == "" || s > best {
			winner, best = arch, s
		}
	}

	normalized := 0.0
	if max := maxArchetypeWeight[winner]; max > 0 {
		normalized = best / max
	}

	if normalized > archetypeOverrideConfidence && len(sess.CapturedAttributes) >= archetypeOverrideCaptures {
		normScores := make(map[domain.Archetype]float64, len(scores))
		for arch, s := range scores {
			if max := maxArchetypeWeight[arch]; max > 0 {
				normScores[arch] = s / max
			}
		}
		secondary := holistic.Primary
		if secondary == winner {
			secondary = holistic.Secondary
		}
		return domain.ArchetypeResult{
			Primary:    winner,
			Secondary:  secondary,
			Confidence: normalized,
			AllScores:  normScores,
		}
	}
	return holistic
}

// sortedKeys walks capture maps in stable order so scoring is reproducible.
func sortedKeys(m map[string]*domain.CapturedAttribute) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
