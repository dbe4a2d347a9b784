package session

import (
	"strings"
	"time"

	"talentloop/internal/catalog"
	"talentloop/internal/domain"
)

// Capture confidence starts at baseConfidence for a single keyword match and
// grows with corroborating matches, capped so keyword stuffing can't buy
// false certainty.
const (
	baseConfidence     = 0.6
	confidencePerMatch = 0.1
	confidenceCap      = 0.95
)

// Detector runs attribute detection for one attribute set. It is stateless
// across calls; all capture state lives on the session.
type Detector struct {
	set  domain.AttributeSet
	defs []domain.AttributeDefinition
}

func NewDetector(cat *catalog.Catalog, set domain.AttributeSet) *Detector {
	return &Detector{set: set, defs: cat.SetAttributes(set)}
}

// Detect matches a single candidate response against every attribute of the
// set and returns the ids newly captured by this response. Capture is
// monotonic: existing captures are never revoked or re-scored; reinforcing
// matches only append evidence.
func (d *Detector) Detect(sess *domain.InterviewSession, scene domain.Scene, text string, now time.Time) []string {
	lower := strings.ToLower(text)

	var newly []string
	for _, def := range d.defs {
		matches := countMatches(lower, def.SignalKeywords)
		if matches == 0 || anyMatch(lower, def.AntiSignalKeywords) {
			continue
		}

		if existing, ok := sess.CapturedAttributes[def.ID]; ok {
			existing.Evidence = append(existing.Evidence, text)
			continue
		}

		confidence := baseConfidence + confidencePerMatch*float64(matches-1)
		if confidence > confidenceCap {
			confidence = confidenceCap
		}
		sess.CapturedAttributes[def.ID] = &domain.CapturedAttribute{
			AttributeID: def.ID,
			CapturedAt:  now,
			Scene:       scene,
			Evidence:    []string{text},
			Confidence:  confidence,
		}
		newly = append(newly, def.ID)
	}
	return newly
}

// Progress reports capture completeness against the set's required and
// optional members.
func (d *Detector) Progress(sess *domain.InterviewSession) domain.CaptureProgress {
	p := domain.CaptureProgress{
		RequiredTotal: len(d.set.RequiredAttributes),
		OptionalTotal: len(d.set.OptionalAttributes),
	}
	for _, id := range d.set.RequiredAttributes {
		if _, ok := sess.CapturedAttributes[id]; ok {
			p.RequiredCaptured++
		} else {
			p.MissingRequired = append(p.MissingRequired, id)
		}
	}
	for _, id := range d.set.OptionalAttributes {
		if _, ok := sess.CapturedAttributes[id]; ok {
			p.OptionalCaptured++
		}
	}
	if total := len(d.set.Attributes); total > 0 {
		p.Percent = 100 * float64(len(sess.CapturedAttributes)) / float64(total)
	}
	return p
}

// SuggestQuestions proposes elicitation prompts for the top three still
// missing required attributes, in set order.
func (d *Detector) SuggestQuestions(sess *domain.InterviewSession) []string {
	var out []string
	for _, def := range d.defs {
		if len(out) == 3 {
			break
		}
		if !d.isRequired(def.ID) {
			continue
		}
		if _, ok := sess.CapturedAttributes[def.ID]; ok {
			continue
		}
		if len(def.ExampleQuestions) > 0 {
			out = append(out, def.ExampleQuestions[0])
		}
	}
	return out
}

func (d *Detector) isRequired(id string) bool {
	for _, req := range d.set.RequiredAttributes {
		if req == id {
			return true
		}
	}
	return false
}

func countMatches(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

func anyMatch(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
