package output

import (
	"math"

	"talentloop/internal/domain"
)

// StatSheet is the game-styled rendering of an assessment.
type StatSheet struct {
	Name          string         `json:"name"`
	Race          string         `json:"race"`
	Class         string         `json:"class"`
	Level         int            `json:"level"`
	Stats         map[string]int `json:"stats"`
	Proficiencies []string       `json:"proficiencies"`
	Traits        []string       `json:"traits"`
	Flaws         []string       `json:"flaws"`
}

// statPair derives one 1-20 stat from a dimension pair.
type statPair struct {
	name string
	a, b domain.Dimension
}

var statPairs = []statPair{
	{"INT", domain.DimIQ, domain.DimTechnical},
	{"WIS", domain.DimSelfAwareness, domain.DimEQ},
	{"CHA", domain.DimPersonality, domain.DimGTM},
	{"CON", domain.DimWorkHistory, domain.DimMotivation},
	{"DEX", domain.DimCultureFit, domain.DimEmpathy},
	{"STR", domain.DimPassions, domain.DimMotivation},
}

// raceProfile scores one archetypal label against dimensions, competency
// signals and emotion fields. Declaration order breaks ties.
type raceProfile struct {
	name    string
	dims    map[domain.Dimension]float64
	signals map[string]float64
	emotion func(domain.EmotionVector) float64
}

var raceProfiles = []raceProfile{
	{
		name:    "Gnome",
		dims:    map[domain.Dimension]float64{domain.DimTechnical: 1.5, domain.DimIQ: 1},
		signals: map[string]float64{"craftsmanship": 2, "experimentation": 1},
	},
	{
		name:    "Half-Elf",
		dims:    map[domain.Dimension]float64{domain.DimGTM: 1.5, domain.DimPersonality: 1},
		signals: map[string]float64{"storytelling": 2, "customer_focus": 1},
		emotion: func(e domain.EmotionVector) float64 { return 2 * e.Warmth },
	},
	{
		name:    "Elf",
		dims:    map[domain.Dimension]float64{domain.DimIQ: 1, domain.DimPassions: 1},
		signals: map[string]float64{"strategic_thinking": 2, "experimentation": 1},
		emotion: func(e domain.EmotionVector) float64 { return 2 * e.Reflection },
	},
	{
		name:    "Dwarf",
		dims:    map[domain.Dimension]float64{domain.DimWorkHistory: 1.5, domain.DimMotivation: 1},
		signals: map[string]float64{"operational_rigor": 2, "ownership": 1},
	},
	{
		name:    "Human",
		dims:    map[domain.Dimension]float64{domain.DimCultureFit: 1, domain.DimEQ: 1},
		signals: map[string]float64{"collaboration": 2},
		emotion: func(e domain.EmotionVector) float64 { return e.Warmth + e.Enthusiasm },
	},
	{
		name:    "Halfling",
		dims:    map[domain.Dimension]float64{domain.DimEmpathy: 1.5, domain.DimEQ: 1},
		signals: map[string]float64{"collaboration": 1, "customer_focus": 1},
		emotion: func(e domain.EmotionVector) float64 { return 2 * e.Warmth },
	},
	{
		name:    "Dragonborn",
		dims:    map[domain.Dimension]float64{domain.DimMotivation: 1.5, domain.DimPassions: 1},
		signals: map[string]float64{"ownership": 2},
		emotion: func(e domain.EmotionVector) float64 { return 2*e.Enthusiasm + e.Confidence },
	},
	{
		name:    "Tiefling",
		dims:    map[domain.Dimension]float64{domain.DimSelfAwareness: 1.5, domain.DimPersonality: 1},
		signals: map[string]float64{"strategic_thinking": 1, "storytelling": 1},
		emotion: func(e domain.EmotionVector) float64 { return e.Reflection + e.Tension },
	},
}

var archetypeClasses = map[domain.Archetype]string{
	domain.ArchetypeTechnicalBuilder:       "Artificer",
	domain.ArchetypeGTMOperator:            "Bard",
	domain.ArchetypeCreativeStrategist:     "Wizard",
	domain.ArchetypeExecutionMachine:       "Fighter",
	domain.ArchetypeGeneralistOrchestrator: "Ranger",
	domain.ArchetypeDomainExpert:           "Sage",
}

var tierLevels = map[domain.Tier]int{
	domain.TierTop1Percent: 20,
	domain.TierStrong:      15,
	domain.TierModerate:    10,
	domain.TierWeak:        5,
	domain.TierPass:        1,
}

// StatSheetHandler renders the playful character-sheet view.
type StatSheetHandler struct{}

func (StatSheetHandler) Format(result *domain.AssessmentResult) StatSheet {
	stats := make(map[string]int, len(statPairs))
	for _, p := range statPairs {
		avg := (result.Dimensions[p.a].Score + result.Dimensions[p.b].Score) / 2
		v := int(math.Round(avg * 2))
		if v < 1 {
			v = 1
		}
		if v > 20 {
			v = 20
		}
		stats[p.name] = v
	}

	return StatSheet{
		Name:          result.CandidateName,
		Race:          resolveRace(result),
		Class:         archetypeClasses[result.Archetype.Primary],
		Level:         tierLevels[result.Tier],
		Stats:         stats,
		Proficiencies: result.Competency.TopSignals(3),
		Traits:        topN(result.GreenFlags, 3),
		Flaws:         topN(result.RedFlags, 3),
	}
}

func resolveRace(result *domain.AssessmentResult) string {
	var winner string
	best := math.Inf(-1)
	for _, rp := range raceProfiles {
		var score float64
		for dim, w := range rp.dims {
			score += w * result.Dimensions[dim].Score / 10
		}
		for name, w := range rp.signals {
			score += w * result.Competency.Signal(name)
		}
		if rp.emotion != nil {
			score += rp.emotion(result.Emotion)
		}
		if score > best {
			winner, best = rp.name, score
		}
	}
	return winner
}
