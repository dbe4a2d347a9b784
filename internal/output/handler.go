// Package output renders a finished AssessmentResult into presentation
// shapes. Every handler is a pure function of its input: no shared state, no
// side effects, and the result is never mutated.
package output

import (
	"sort"

	"talentloop/internal/domain"
)

// Handler formats one assessment into a presentation-specific view.
type Handler[T any] interface {
	Format(result *domain.AssessmentResult) T
}

var (
	_ Handler[StatSheet]        = StatSheetHandler{}
	_ Handler[FormalRating]     = FormalRatingHandler{}
	_ Handler[InternalReport]   = InternalReportHandler{}
	_ Handler[CandidateSummary] = CandidateSummaryHandler{}
)

// dimRank pairs a dimension with its score for sorting.
type dimRank struct {
	Dim   domain.Dimension
	Score float64
}

// rankedDimensions returns every dimension sorted high to low, ties broken on
// the canonical dimension order so output is deterministic.
func rankedDimensions(result *domain.AssessmentResult) []dimRank {
	ranks := make([]dimRank, 0, len(domain.AllDimensions))
	for _, dim := range domain.AllDimensions {
		ranks = append(ranks, dimRank{Dim: dim, Score: result.Dimensions[dim].Score})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Score > ranks[j].Score
	})
	return ranks
}

func lowestDimensions(result *domain.AssessmentResult, n int) []dimRank {
	ranks := rankedDimensions(result)
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	if n > len(ranks) {
		n = len(ranks)
	}
	return ranks[:n]
}

func topN(items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	out := make([]string, n)
	copy(out, items[:n])
	return out
}
