package textsignal

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"talentloop/internal/domain"
)

// LexicalScorer scores text with fixed keyword lexicons. It carries no state,
// so the zero value is usable and every method is reproducible.
type LexicalScorer struct{}

// DefaultScorer allows direct use without instantiating.
var DefaultScorer = LexicalScorer{}

// normalize lowercases, NFD-decomposes and strips combining marks so lexicon
// matching is stable across accented input in either composed form.
func normalize(s string) string {
	s = norm.NFD.String(strings.ToLower(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func matchAll(text string, keywords []string) []string {
	var hits []string
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			hits = append(hits, kw)
		}
	}
	return hits
}

var dimensionLexicons = map[domain.Dimension][]string{
	domain.DimIQ:            {"root cause", "first principles", "hypothesis", "trade-off", "tradeoff", "figured out", "broke it down", "pattern"},
	domain.DimPersonality:   {"outgoing", "energized", "curious", "sense of humor", "honest", "direct", "calm"},
	domain.DimMotivation:    {"driven", "obsessed", "couldn't stop", "side project", "ambitious", "hungry"},
	domain.DimWorkHistory:   {"shipped", "launched", "delivered", "led the", "promoted", "founded", "built"},
	domain.DimPassions:      {"love", "passionate", "fascinat", "excites me", "hobby", "rabbit hole"},
	domain.DimCultureFit:    {"together", "we built", "our team", "scrappy", "ambiguity", "wore many hats", "feedback"},
	domain.DimTechnical:     {"architecture", "production", "api", "database", "deployed", "system design", "code", "infrastructure"},
	domain.DimGTM:           {"customers", "pipeline", "revenue", "pitched", "closed", "market", "positioning", "sales"},
	domain.DimEQ:            {"i felt", "they felt", "listened", "stepped back", "read the room", "de-escalat"},
	domain.DimEmpathy:       {"their perspective", "put myself in", "understood how", "supported", "checked in on"},
	domain.DimSelfAwareness: {"i realized", "my weakness", "i struggle", "blind spot", "i tend to", "feedback taught me"},
}

var greenFlagLexicon = []struct {
	keyword string
	flag    string
}{
	{"credit to the team", "shares credit generously"},
	{"mentored", "invests in other people"},
	{"i realized", "reflects on own behavior"},
	{"shipped", "demonstrated delivery track record"},
	{"taught myself", "self-directed learner"},
	{"customers", "thinks from the customer's side"},
}

var redFlagLexicon = []struct {
	keyword string
	flag    string
}{
	{"did everything myself", "dismissive of teammates"},
	{"they slowed me down", "dismissive of teammates"},
	{"no weaknesses", "lacks self-criticism"},
	{"never wrong", "lacks self-criticism"},
	{"only for the money", "purely extrinsic motivation"},
	{"hate", "strong negative framing"},
	{"blame", "deflects responsibility"},
	{"fired for", "unexplained departures"},
}

var competencyLexicons = map[string][]string{
	"strategic_thinking": {"long term", "big picture", "positioning", "five years", "bet on"},
	"customer_focus":     {"customers", "users", "their problem", "churn", "feedback from"},
	"ownership":          {"my call", "took responsibility", "owned it", "accountable", "end to end"},
	"collaboration":      {"together", "paired", "cross-functional", "we built", "aligned"},
	"craftsmanship":      {"polish", "quality", "refactor", "details", "did it right"},
	"storytelling":       {"pitched", "narrative", "presented", "convinced", "storytell"},
	"experimentation":    {"experiment", "a/b", "prototype", "tried", "what if"},
	"operational_rigor":  {"process", "metrics", "on time", "checklist", "runbook"},
}

var emotionLexicons = struct {
	enthusiasm []string
	confidence []string
	warmth     []string
	tension    []string
	reflection []string
}{
	enthusiasm: []string{"love", "excit", "thrilled", "can't wait", "amazing", "!"},
	confidence: []string{"i know", "certain", "proven", "i've done this", "confident"},
	warmth:     []string{"thank", "appreciate", "kind", "we", "happy to"},
	tension:    []string{"worried", "stress", "afraid", "nervous", "pressure", "burn"},
	reflection: []string{"i realized", "looking back", "in hindsight", "i learned", "i wonder"},
}

// archetypeWeights scores archetypes from dimensions and competency signals.
// Declaration order in domain.AllArchetypes breaks ties.
var archetypeWeights = map[domain.Archetype]struct {
	dims    map[domain.Dimension]float64
	signals map[string]float64
}{
	domain.ArchetypeTechnicalBuilder: {
		dims:    map[domain.Dimension]float64{domain.DimTechnical: 2, domain.DimIQ: 1},
		signals: map[string]float64{"craftsmanship": 5, "experimentation": 3},
	},
	domain.ArchetypeGTMOperator: {
		dims:    map[domain.Dimension]float64{domain.DimGTM: 2, domain.DimPersonality: 1},
		signals: map[string]float64{"storytelling": 5, "customer_focus": 3},
	},
	domain.ArchetypeCreativeStrategist: {
		dims:    map[domain.Dimension]float64{domain.DimIQ: 1, domain.DimPassions: 1},
		signals: map[string]float64{"strategic_thinking": 5, "experimentation": 4},
	},
	domain.ArchetypeExecutionMachine: {
		dims:    map[domain.Dimension]float64{domain.DimWorkHistory: 2, domain.DimMotivation: 1},
		signals: map[string]float64{"operational_rigor": 5, "ownership": 3},
	},
	domain.ArchetypeGeneralistOrchestrator: {
		dims:    map[domain.Dimension]float64{domain.DimEQ: 1, domain.DimCultureFit: 1, domain.DimPersonality: 1},
		signals: map[string]float64{"collaboration": 5, "ownership": 2},
	},
	domain.ArchetypeDomainExpert: {
		dims:    map[domain.Dimension]float64{domain.DimWorkHistory: 1, domain.DimTechnical: 1},
		signals: map[string]float64{"strategic_thinking": 2, "craftsmanship": 2},
	},
}

// ScoreInterview scores aggregated candidate text into the 11 dimensions plus
// green/red flags, purely from keyword density.
func (LexicalScorer) ScoreInterview(text string) InterviewScore {
	norm := normalize(text)

	dims := make(map[domain.Dimension]domain.DimensionScore, len(domain.AllDimensions))
	var total float64
	for _, dim := range domain.AllDimensions {
		hits := matchAll(norm, dimensionLexicons[dim])
		score := 3.0 + 0.9*float64(len(hits))
		if score > 10 {
			score = 10
		}
		conf := 0.3 + 0.1*float64(len(hits))
		if conf > 0.9 {
			conf = 0.9
		}
		dims[dim] = domain.DimensionScore{Score: score, Signals: hits, Confidence: conf}
		total += score
	}
	overall := total / float64(len(domain.AllDimensions))

	var green, red []string
	seenGreen := make(map[string]struct{})
	for _, g := range greenFlagLexicon {
		if strings.Contains(norm, g.keyword) {
			if _, dup := seenGreen[g.flag]; !dup {
				seenGreen[g.flag] = struct{}{}
				green = append(green, g.flag)
			}
		}
	}
	seenRed := make(map[string]struct{})
	for _, r := range redFlagLexicon {
		if strings.Contains(norm, r.keyword) {
			if _, dup := seenRed[r.flag]; !dup {
				seenRed[r.flag] = struct{}{}
				red = append(red, r.flag)
			}
		}
	}

	return InterviewScore{
		Dimensions:   dims,
		Tier:         domain.TierForScore(overall),
		OverallScore: overall,
		GreenFlags:   green,
		RedFlags:     red,
	}
}

// DetectCompetencySignals profiles named competencies from keyword density.
func (LexicalScorer) DetectCompetencySignals(text string) domain.CompetencyProfile {
	norm := normalize(text)
	signals := make(map[string]float64, len(competencyLexicons))
	for name, lexicon := range competencyLexicons {
		strength := 0.25 * float64(len(matchAll(norm, lexicon)))
		if strength > 1 {
			strength = 1
		}
		if strength > 0 {
			signals[name] = strength
		}
	}
	return domain.CompetencyProfile{Signals: signals}
}

// AnalyzeTextEmotion derives a coarse affect vector from keyword density.
func (LexicalScorer) AnalyzeTextEmotion(text string) domain.EmotionVector {
	norm := normalize(text)
	scale := func(lexicon []string) float64 {
		v := 0.15 * float64(len(matchAll(norm, lexicon)))
		if v > 1 {
			v = 1
		}
		return v
	}
	return domain.EmotionVector{
		Enthusiasm: scale(emotionLexicons.enthusiasm),
		Confidence: scale(emotionLexicons.confidence),
		Warmth:     scale(emotionLexicons.warmth),
		Tension:    scale(emotionLexicons.tension),
		Reflection: scale(emotionLexicons.reflection),
	}
}

// ClassifyArchetype weighs dimension scores and competency signals into the
// six archetypes. Primary is the highest scorer; ties break on declaration
// order in domain.AllArchetypes.
func (LexicalScorer) ClassifyArchetype(dims map[domain.Dimension]domain.DimensionScore, profile domain.CompetencyProfile) domain.ArchetypeResult {
	scores := make(map[domain.Archetype]float64, len(domain.AllArchetypes))
	for _, arch := range domain.AllArchetypes {
		w := archetypeWeights[arch]
		var s float64
		for dim, weight := range w.dims {
			s += dims[dim].Score * weight
		}
		for name, weight := range w.signals {
			s += profile.Signal(name) * weight
		}
		scores[arch] = s
	}

	var primary, secondary domain.Archetype
	var best, second float64
	for _, arch := range domain.AllArchetypes {
		s := scores[arch]
		if primary == "" || s > best {
			secondary, second = primary, best
			primary, best = arch, s
			continue
		}
		if secondary == "" || s > second {
			secondary, second = arch, s
		}
	}

	confidence := 0.5
	if best+second > 0 {
		confidence = best / (best + second)
	}
	return domain.ArchetypeResult{
		Primary:    primary,
		Secondary:  secondary,
		Confidence: confidence,
		AllScores:  scores,
	}
}
