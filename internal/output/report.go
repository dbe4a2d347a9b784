package output

import (
	"fmt"
	"strings"

	"talentloop/internal/domain"
)

// RiskLevel is the 3-step risk scale of the internal report.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// InternalReport is the detailed interviewer-facing view.
type InternalReport struct {
	CandidateName          string                 `json:"candidate_name"`
	Strengths              []RatedDimension       `json:"strengths"`
	CommunicationStyle     string                 `json:"communication_style"`
	ProblemSolvingApproach string                 `json:"problem_solving_approach"`
	Teamwork               string                 `json:"teamwork"`
	LeadershipPotential    string                 `json:"leadership_potential"`
	Risks                  map[string]RiskLevel   `json:"risks"`
	ProbingQuestions       []string               `json:"probing_questions"`
	RedFlags               []string               `json:"red_flags"`
}

// RatedDimension is one dimension with its band, strongest first in reports.
type RatedDimension struct {
	Dimension domain.Dimension `json:"dimension"`
	Band      CompetencyBand   `json:"band"`
}

// InternalReportHandler renders the full internal hiring report.
type InternalReportHandler struct{}

func (InternalReportHandler) Format(result *domain.AssessmentResult) InternalReport {
	ranks := rankedDimensions(result)
	strengths := make([]RatedDimension, 0, len(ranks))
	for _, r := range ranks {
		strengths = append(strengths, RatedDimension{Dimension: r.Dim, Band: bandForScore(r.Score)})
	}

	return InternalReport{
		CandidateName:          result.CandidateName,
		Strengths:              strengths,
		CommunicationStyle:     communicationStyle(result),
		ProblemSolvingApproach: problemSolvingApproach(result),
		Teamwork:               teamworkNarrative(result),
		LeadershipPotential:    leadershipNarrative(result),
		Risks: map[string]RiskLevel{
			"culture_fit": riskFor(result.Dimensions[domain.DimCultureFit].Score),
			"performance": riskFor(result.OverallScore),
			"retention":   riskFor((result.Dimensions[domain.DimMotivation].Score + result.Dimensions[domain.DimPassions].Score) / 2),
		},
		ProbingQuestions: probingQuestions(result),
		RedFlags:         append([]string{}, result.RedFlags...),
	}
}

func riskFor(score float64) RiskLevel {
	switch {
	case score >= 7:
		return RiskLow
	case score >= 5:
		return RiskModerate
	default:
		return RiskHigh
	}
}

func communicationStyle(result *domain.AssessmentResult) string {
	warm := result.Emotion.Warmth >= 0.5
	story := result.Competency.Signal("storytelling") >= 0.5
	switch {
	case warm && story:
		return "warm and narrative, lands points through stories"
	case story:
		return "structured storyteller, leads with examples"
	case warm:
		return "warm and direct, more conversational than structured"
	default:
		return "concise and matter-of-fact"
	}
}

func problemSolvingApproach(result *domain.AssessmentResult) string {
	iq := result.Dimensions[domain.DimIQ].Score
	exp := result.Competency.Signal("experimentation") >= 0.5
	switch {
	case iq >= 7 && exp:
		return "analytical and iterative, tests hypotheses quickly"
	case iq >= 7:
		return "analytical, reasons from first principles"
	case exp:
		return "hands-on, learns by building"
	default:
		return "pragmatic, leans on established patterns"
	}
}

func teamworkNarrative(result *domain.AssessmentResult) string {
	empathy := result.Dimensions[domain.DimEmpathy].Score
	collab := result.Competency.Signal("collaboration")
	switch {
	case empathy >= 7 && collab >= 0.5:
		return "strong collaborator, actively invests in others"
	case empathy >= 7:
		return "empathetic but reads as more independent than collaborative"
	case collab >= 0.5:
		return "works well in teams, mostly task-oriented"
	default:
		return "limited teamwork signal observed"
	}
}

func leadershipNarrative(result *domain.AssessmentResult) string {
	ownership := result.Competency.Signal("ownership")
	personality := result.Dimensions[domain.DimPersonality].Score
	switch {
	case ownership >= 0.5 && personality >= 7:
		return "high, takes ownership and carries people along"
	case ownership >= 0.5:
		return "emerging, strong ownership but unproven with people"
	default:
		return "not yet evidenced"
	}
}

// probingQuestions targets the two weakest dimensions and every red-flag
// category present.
func probingQuestions(result *domain.AssessmentResult) []string {
	var out []string
	for _, r := range lowestDimensions(result, 2) {
		out = append(out, fmt.Sprintf("Can you share a concrete example that shows your %s?", strings.ReplaceAll(string(r.Dim), "_", " ")))
	}
	for _, flag := range result.RedFlags {
		out = append(out, fmt.Sprintf("Earlier you touched on something that read as %q. Can you walk me through that in more detail?", flag))
	}
	return out
}
