package output

import "talentloop/internal/domain"

// CompetencyBand is the 5-band rating scale used by HR views.
type CompetencyBand string

const (
	BandExceptional CompetencyBand = "exceptional"
	BandStrong      CompetencyBand = "strong"
	BandProficient  CompetencyBand = "proficient"
	BandDeveloping  CompetencyBand = "developing"
	BandBelow       CompetencyBand = "below_expectations"
)

// bandForScore maps a 0-10 dimension score to its rating band.
func bandForScore(score float64) CompetencyBand {
	switch {
	case score >= 9:
		return BandExceptional
	case score >= 7:
		return BandStrong
	case score >= 5:
		return BandProficient
	case score >= 3:
		return BandDeveloping
	default:
		return BandBelow
	}
}

var tierRecommendations = map[domain.Tier]string{
	domain.TierTop1Percent: "strong hire, fast-track",
	domain.TierStrong:      "hire",
	domain.TierModerate:    "hire with reservations",
	domain.TierWeak:        "hold, gather more signal",
	domain.TierPass:        "do not hire",
}

// FormalRating is the HR-facing scored view of an assessment.
type FormalRating struct {
	CandidateName    string                               `json:"candidate_name"`
	Ratings          map[domain.Dimension]DimensionRating `json:"ratings"`
	OverallScore     float64                              `json:"overall_score"`
	Recommendation   string                               `json:"recommendation"`
	DevelopmentAreas []domain.Dimension                   `json:"development_areas"`
}

// DimensionRating pairs the raw score with its band.
type DimensionRating struct {
	Score float64        `json:"score"`
	Band  CompetencyBand `json:"band"`
}

// FormalRatingHandler renders the formal five-band HR rating.
type FormalRatingHandler struct{}

func (FormalRatingHandler) Format(result *domain.AssessmentResult) FormalRating {
	ratings := make(map[domain.Dimension]DimensionRating, len(domain.AllDimensions))
	for _, dim := range domain.AllDimensions {
		score := result.Dimensions[dim].Score
		ratings[dim] = DimensionRating{Score: score, Band: bandForScore(score)}
	}

	low := lowestDimensions(result, 3)
	areas := make([]domain.Dimension, 0, len(low))
	for _, r := range low {
		areas = append(areas, r.Dim)
	}

	return FormalRating{
		CandidateName:    result.CandidateName,
		Ratings:          ratings,
		OverallScore:     result.OverallScore,
		Recommendation:   tierRecommendations[result.Tier],
		DevelopmentAreas: areas,
	}
}
