package domain

import "fmt"

// ScoringRange is the optional numeric range an attribute can be scored on.
type ScoringRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AttributeDefinition is an immutable entry of the attribute catalog.
// Instances are created at registry load time and never mutated.
type AttributeDefinition struct {
	ID                 string            `json:"id"`
	Category           AttributeCategory `json:"category"`
	CaptureMethods     []CaptureMethod   `json:"capture_methods"`
	SignalKeywords     []string          `json:"signal_keywords"`
	AntiSignalKeywords []string          `json:"anti_signal_keywords"`
	ScoringRange       *ScoringRange     `json:"scoring_range,omitempty"`
	ExampleQuestions   []string          `json:"example_questions,omitempty"`
	Source             []string          `json:"source,omitempty"`
}

// AttributeSet is a named bundle of attributes targeted by one interview.
type AttributeSet struct {
	ID                 string   `json:"id"`
	Attributes         []string `json:"attributes"`
	RequiredAttributes []string `json:"required_attributes"`
	OptionalAttributes []string `json:"optional_attributes"`
	InterviewStyle     string   `json:"interview_style"`
	EstimatedDuration  int      `json:"estimated_duration_minutes"`
}

// Validate enforces requiredAttributes ∪ optionalAttributes ⊆ attributes.
func (s AttributeSet) Validate() error {
	members := make(map[string]struct{}, len(s.Attributes))
	for _, id := range s.Attributes {
		members[id] = struct{}{}
	}
	for _, id := range s.RequiredAttributes {
		if _, ok := members[id]; !ok {
			return fmt.Errorf("%w: required attribute %q not in set %q", ErrConfiguration, id, s.ID)
		}
	}
	for _, id := range s.OptionalAttributes {
		if _, ok := members[id]; !ok {
			return fmt.Errorf("%w: optional attribute %q not in set %q", ErrConfiguration, id, s.ID)
		}
	}
	return nil
}
