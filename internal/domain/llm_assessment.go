package domain

// LLMAssessment is the structured document an external language model submits
// about a finished interview. It is schema-validated strictly before any use;
// malformed submissions are rejected, never coerced.
type LLMAssessment struct {
	Dimensions          map[string]float64     `json:"dimensions" validate:"required,dive,gte=0,lte=10"`
	Archetype           string                 `json:"archetype" validate:"required,oneof=technical_builder gtm_operator creative_strategist execution_machine generalist_orchestrator domain_expert"`
	ArchetypeConfidence float64                `json:"archetype_confidence" validate:"gte=0,lte=1"`
	ArchetypeReasoning  string                 `json:"archetype_reasoning,omitempty"`
	ObservedAttributes  []LLMObservedAttribute `json:"observed_attributes,omitempty" validate:"dive"`
	GreenFlags          []string               `json:"green_flags,omitempty"`
	RedFlags            []string               `json:"red_flags,omitempty"`
	OverallImpression   string                 `json:"overall_impression,omitempty"`
	RecommendedTier     string                 `json:"recommended_tier" validate:"required,oneof=top_1% strong moderate weak pass"`
	VoiceProfile        *LLMVoiceProfile       `json:"voice_profile,omitempty"`
}

// LLMObservedAttribute is an attribute the model claims to have observed.
type LLMObservedAttribute struct {
	AttributeID string   `json:"attribute_id" validate:"required"`
	Evidence    []string `json:"evidence,omitempty"`
	Confidence  float64  `json:"confidence" validate:"gte=0,lte=1"`
}

// LLMVoiceProfile is the optional voice block a model may attach: how the
// candidate talks, recurring material, and guardrails for later rendering.
type LLMVoiceProfile struct {
	Themes             []string           `json:"themes,omitempty"`
	Tone               string             `json:"tone,omitempty"`
	Pace               string             `json:"pace,omitempty"`
	Vocabulary         string             `json:"vocabulary,omitempty"`
	Guardrails         []string           `json:"guardrails,omitempty"`
	Stories            []string           `json:"stories,omitempty"`
	Anecdotes          []string           `json:"anecdotes,omitempty"`
	TraitBlends        map[string]float64 `json:"trait_blends,omitempty" validate:"dive,gte=0,lte=1"`
	PersonalitySignals []string           `json:"personality_signals,omitempty"`
}
