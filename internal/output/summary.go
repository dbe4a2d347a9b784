package output

import (
	"fmt"
	"strings"

	"talentloop/internal/domain"
)

// CandidateSummary is the view shared with the candidate. It carries no raw
// scores; dimensions are reframed as constructive language.
type CandidateSummary struct {
	Greeting    string   `json:"greeting"`
	Highlights  []string `json:"highlights"`
	GrowthAreas []string `json:"growth_areas"`
	Closing     string   `json:"closing"`
}

// strengthPhrases and growthPhrases translate dimensions into candidate-safe
// wording.
var strengthPhrases = map[domain.Dimension]string{
	domain.DimIQ:            "You reason through problems with real clarity.",
	domain.DimPersonality:   "Your presence comes through strongly in conversation.",
	domain.DimMotivation:    "Your drive and sense of purpose stood out.",
	domain.DimWorkHistory:   "Your track record speaks for itself.",
	domain.DimPassions:      "Your genuine enthusiasm for your craft is evident.",
	domain.DimCultureFit:    "You came across as someone teams would want around.",
	domain.DimTechnical:     "Your technical depth was one of the strongest signals.",
	domain.DimGTM:           "You communicate value in a way that lands.",
	domain.DimEQ:            "You read the room well and respond thoughtfully.",
	domain.DimEmpathy:       "You show real care for the people you work with.",
	domain.DimSelfAwareness: "You reflect on your own growth with unusual honesty.",
}

var growthPhrases = map[domain.Dimension]string{
	domain.DimIQ:            "Practicing structured problem breakdowns could sharpen your analysis further.",
	domain.DimPersonality:   "Letting more of your personality into the conversation would serve you well.",
	domain.DimMotivation:    "Articulating what drives you would make your story more compelling.",
	domain.DimWorkHistory:   "Grounding answers in specific past work would strengthen your case.",
	domain.DimPassions:      "Sharing what genuinely excites you would add color to your story.",
	domain.DimCultureFit:    "Talking more about how you like to work with others would help.",
	domain.DimTechnical:     "Deepening hands-on technical detail would round out the picture.",
	domain.DimGTM:           "Framing your work in terms of the audience it serves is worth practicing.",
	domain.DimEQ:            "Pausing to acknowledge the other side of a story can build connection.",
	domain.DimEmpathy:       "Bringing in the people affected by your work would enrich your examples.",
	domain.DimSelfAwareness: "Reflecting openly on setbacks tends to build trust with interviewers.",
}

// CandidateSummaryHandler renders the candidate-facing recap.
type CandidateSummaryHandler struct{}

func (CandidateSummaryHandler) Format(result *domain.AssessmentResult) CandidateSummary {
	ranks := rankedDimensions(result)

	highlights := make([]string, 0, 3)
	for _, r := range ranks[:3] {
		highlights = append(highlights, strengthPhrases[r.Dim])
	}
	growth := make([]string, 0, 2)
	for _, r := range lowestDimensions(result, 2) {
		growth = append(growth, growthPhrases[r.Dim])
	}

	encouraging := result.OverallScore >= 6
	first := firstName(result.CandidateName)

	greeting := fmt.Sprintf("Thanks for spending the time with us, %s.", first)
	closing := "We appreciate you walking us through your experience. The notes above reflect what came through in the conversation."
	if encouraging {
		greeting = fmt.Sprintf("Thanks for a genuinely great conversation, %s.", first)
		closing = "You left a strong impression. Whatever happens next, keep leaning into the strengths above."
	}

	return CandidateSummary{
		Greeting:    greeting,
		Highlights:  highlights,
		GrowthAreas: growth,
		Closing:     closing,
	}
}

func firstName(full string) string {
	full = strings.TrimSpace(full)
	if full == "" {
		return "there"
	}
	if i := strings.IndexByte(full, ' '); i > 0 {
		return full[:i]
	}
	return full
}
