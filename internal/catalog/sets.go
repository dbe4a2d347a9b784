package catalog

import "talentloop/internal/domain"

// DefaultSetID is the attribute set the scripted driver interviews against.
const DefaultSetID = "general_fit"

var attributeSets = []domain.AttributeSet{
	{
		ID: "general_fit",
		Attributes: []string{
			"problem_solving", "learning_agility", "technical", "ai_readiness",
			"empathy", "self_awareness", "resilience",
			"communication", "leadership", "execution_discipline", "domain_expertise",
			"values_alignment", "social_style", "creativity",
			"team_orientation", "intrinsic_drive", "passion_depth", "adaptability",
		},
		RequiredAttributes: []string{
			"problem_solving", "self_awareness", "communication",
			"intrinsic_drive", "team_orientation", "adaptability",
		},
		OptionalAttributes: []string{
			"learning_agility", "technical", "ai_readiness", "empathy", "resilience",
			"leadership", "execution_discipline", "domain_expertise",
			"values_alignment", "social_style", "creativity", "passion_depth",
		},
		InterviewStyle:    "conversational",
		EstimatedDuration: 25,
	},
	{
		ID: "technical_deep_dive",
		Attributes: []string{
			"problem_solving", "learning_agility", "technical", "ai_readiness",
			"self_awareness", "communication", "execution_discipline",
			"domain_expertise", "intrinsic_drive", "team_orientation",
		},
		RequiredAttributes: []string{
			"problem_solving", "technical", "ai_readiness", "execution_discipline",
		},
		OptionalAttributes: []string{
			"learning_agility", "self_awareness", "communication",
			"domain_expertise", "intrinsic_drive", "team_orientation",
		},
		InterviewStyle:    "probing",
		EstimatedDuration: 35,
	},
}
