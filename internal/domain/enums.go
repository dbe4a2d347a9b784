package domain

// Scene is one of the three fixed conversational stages of an interview.
type Scene string

const (
	SceneElevator  Scene = "elevator"
	SceneReception Scene = "reception"
	SceneOffice    Scene = "office"
)

// SceneOrder is the fixed progression of the scripted journey.
var SceneOrder = []Scene{SceneElevator, SceneReception, SceneOffice}

func (s Scene) Valid() bool {
	switch s {
	case SceneElevator, SceneReception, SceneOffice:
		return true
	}
	return false
}

// Next returns the scene that follows s, and false when s is terminal.
func (s Scene) Next() (Scene, bool) {
	for i, sc := range SceneOrder {
		if sc == s && i+1 < len(SceneOrder) {
			return SceneOrder[i+1], true
		}
	}
	return "", false
}

// Speaker identifies who produced a transcript entry.
type Speaker string

const (
	SpeakerCharacter Speaker = "character"
	SpeakerCandidate Speaker = "candidate"
)

// SessionStatus is the lifecycle state of an InterviewSession.
type SessionStatus string

const (
	StatusActive    SessionStatus = "active"
	StatusCompleted SessionStatus = "completed"
	StatusAbandoned SessionStatus = "abandoned"
)

// AttributeCategory groups attribute definitions by the kind of signal they capture.
type AttributeCategory string

const (
	CategoryCognitive    AttributeCategory = "cognitive"
	CategoryEmotional    AttributeCategory = "emotional"
	CategoryProfessional AttributeCategory = "professional"
	CategoryIdentity     AttributeCategory = "identity"
	CategoryPersonality  AttributeCategory = "personality"
	CategoryRelationship AttributeCategory = "relationship"
	CategoryMotivation   AttributeCategory = "motivation"
	CategoryCultural     AttributeCategory = "cultural"
)

func (c AttributeCategory) Valid() bool {
	switch c {
	case CategoryCognitive, CategoryEmotional, CategoryProfessional, CategoryIdentity,
		CategoryPersonality, CategoryRelationship, CategoryMotivation, CategoryCultural:
		return true
	}
	return false
}

// CaptureMethod describes how an attribute may be evidenced during a conversation.
type CaptureMethod string

const (
	MethodDirectQuestion   CaptureMethod = "direct_question"
	MethodObservation      CaptureMethod = "observation"
	MethodStoryExtraction  CaptureMethod = "story_extraction"
	MethodPatternDetection CaptureMethod = "pattern_detection"
	MethodSelfReport       CaptureMethod = "self_report"
)

// Dimension is one of the 11 fixed 0-10 scored evaluation axes.
type Dimension string

const (
	DimIQ            Dimension = "iq"
	DimPersonality   Dimension = "personality"
	DimMotivation    Dimension = "motivation"
	DimWorkHistory   Dimension = "work_history"
	DimPassions      Dimension = "passions"
	DimCultureFit    Dimension = "culture_fit"
	DimTechnical     Dimension = "technical"
	DimGTM           Dimension = "gtm"
	DimEQ            Dimension = "eq"
	DimEmpathy       Dimension = "empathy"
	DimSelfAwareness Dimension = "self_awareness"
)

// AllDimensions lists every dimension in declaration order. Iteration over
// score maps goes through this slice so results stay deterministic.
var AllDimensions = []Dimension{
	DimIQ, DimPersonality, DimMotivation, DimWorkHistory, DimPassions,
	DimCultureFit, DimTechnical, DimGTM, DimEQ, DimEmpathy, DimSelfAwareness,
}

func (d Dimension) Valid() bool {
	for _, dim := range AllDimensions {
		if d == dim {
			return true
		}
	}
	return false
}

// Archetype is one of the 6 coarse candidate profiles.
type Archetype string

const (
	ArchetypeTechnicalBuilder       Archetype = "technical_builder"
	ArchetypeGTMOperator            Archetype = "gtm_operator"
	ArchetypeCreativeStrategist     Archetype = "creative_strategist"
	ArchetypeExecutionMachine       Archetype = "execution_machine"
	ArchetypeGeneralistOrchestrator Archetype = "generalist_orchestrator"
	ArchetypeDomainExpert           Archetype = "domain_expert"
)

// AllArchetypes in declaration order; ties in classifiers break on this order.
var AllArchetypes = []Archetype{
	ArchetypeTechnicalBuilder,
	ArchetypeGTMOperator,
	ArchetypeCreativeStrategist,
	ArchetypeExecutionMachine,
	ArchetypeGeneralistOrchestrator,
	ArchetypeDomainExpert,
}

func (a Archetype) Valid() bool {
	for _, arch := range AllArchetypes {
		if a == arch {
			return true
		}
	}
	return false
}

// Tier is one of the 5 ordered outcome bands derived from overall score.
type Tier string

const (
	TierTop1Percent Tier = "top_1%"
	TierStrong      Tier = "strong"
	TierModerate    Tier = "moderate"
	TierWeak        Tier = "weak"
	TierPass        Tier = "pass"
)

func (t Tier) Valid() bool {
	switch t {
	case TierTop1Percent, TierStrong, TierModerate, TierWeak, TierPass:
		return true
	}
	return false
}

// TierForScore maps an overall score to its band. Lower bounds are inclusive.
func TierForScore(score float64) Tier {
	switch {
	case score >= 8.5:
		return TierTop1Percent
	case score >= 7:
		return TierStrong
	case score >= 5:
		return TierModerate
	case score >= 3:
		return TierWeak
	default:
		return TierPass
	}
}
