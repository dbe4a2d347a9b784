package output

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"talentloop/internal/domain"
)

func sampleResult() *domain.AssessmentResult {
	dims := map[domain.Dimension]domain.DimensionScore{
		domain.DimIQ:            {Score: 8, Confidence: 0.7},
		domain.DimPersonality:   {Score: 6, Confidence: 0.6},
		domain.DimMotivation:    {Score: 9, Confidence: 0.8},
		domain.DimWorkHistory:   {Score: 7, Confidence: 0.7},
		domain.DimPassions:      {Score: 8, Confidence: 0.6},
		domain.DimCultureFit:    {Score: 6, Confidence: 0.5},
		domain.DimTechnical:     {Score: 9, Confidence: 0.8},
		domain.DimGTM:           {Score: 3, Confidence: 0.4},
		domain.DimEQ:            {Score: 5, Confidence: 0.5},
		domain.DimEmpathy:       {Score: 4, Confidence: 0.5},
		domain.DimSelfAwareness: {Score: 7, Confidence: 0.6},
	}
	return &domain.AssessmentResult{
		ID:            "a1",
		SessionID:     "s1",
		CandidateName: "Sam Rivera",
		Dimensions:    dims,
		Competency: domain.CompetencyProfile{Signals: map[string]float64{
			"craftsmanship":   0.9,
			"ownership":       0.7,
			"experimentation": 0.5,
			"collaboration":   0.2,
		}},
		Emotion: domain.EmotionVector{Enthusiasm: 0.6, Confidence: 0.5, Warmth: 0.3, Reflection: 0.4},
		Archetype: domain.ArchetypeResult{
			Primary:    domain.ArchetypeTechnicalBuilder,
			Secondary:  domain.ArchetypeDomainExpert,
			Confidence: 0.85,
		},
		Tier:         domain.TierStrong,
		OverallScore: 6.5,
		GreenFlags:   []string{"demonstrated delivery track record", "self-directed learner"},
		RedFlags:     []string{"dismissive of teammates"},
		CompletedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Duration:     22 * time.Minute,
	}
}

func TestHandlers_PureAndRepeatable(t *testing.T) {
	result := sampleResult()
	snapshot, _ := json.Marshal(result)

	if !reflect.DeepEqual(StatSheetHandler{}.Format(result), StatSheetHandler{}.Format(result)) {
		t.Fatalf("stat sheet must be repeatable")
	}
	if !reflect.DeepEqual(FormalRatingHandler{}.Format(result), FormalRatingHandler{}.Format(result)) {
		t.Fatalf("formal rating must be repeatable")
	}
	if !reflect.DeepEqual(InternalReportHandler{}.Format(result), InternalReportHandler{}.Format(result)) {
		t.Fatalf("internal report must be repeatable")
	}
	if !reflect.DeepEqual(CandidateSummaryHandler{}.Format(result), CandidateSummaryHandler{}.Format(result)) {
		t.Fatalf("candidate summary must be repeatable")
	}

	after, _ := json.Marshal(result)
	if string(snapshot) != string(after) {
		t.Fatalf("handlers must not mutate their input")
	}
}

func TestStatSheet_StatsAndMappings(t *testing.T) {
	sheet := StatSheetHandler{}.Format(sampleResult())

	if sheet.Class != "Artificer" {
		t.Fatalf("technical_builder must map to Artificer, got %q", sheet.Class)
	}
	if sheet.Level != 15 {
		t.Fatalf("strong tier must map to level 15, got %d", sheet.Level)
	}
	// INT averages iq 8 and technical 9: round(8.5*2) = 17.
	if sheet.Stats["INT"] != 17 {
		t.Fatalf("expected INT 17, got %d", sheet.Stats["INT"])
	}
	for name, v := range sheet.Stats {
		if v < 1 || v > 20 {
			t.Fatalf("stat %s out of range: %d", name, v)
		}
	}
	if len(sheet.Proficiencies) != 3 || sheet.Proficiencies[0] != "craftsmanship" {
		t.Fatalf("expected craftsmanship as top proficiency, got %v", sheet.Proficiencies)
	}
	if sheet.Race == "" {
		t.Fatalf("expected a race label")
	}
	if len(sheet.Flaws) != 1 {
		t.Fatalf("expected red flags as flaws, got %v", sheet.Flaws)
	}
}

func TestFormalRating_BandsAndDevelopmentAreas(t *testing.T) {
	rating := FormalRatingHandler{}.Format(sampleResult())

	if rating.Ratings[domain.DimMotivation].Band != BandExceptional {
		t.Fatalf("score 9 must be exceptional, got %v", rating.Ratings[domain.DimMotivation].Band)
	}
	if rating.Ratings[domain.DimGTM].Band != BandDeveloping {
		t.Fatalf("score 3 must be developing, got %v", rating.Ratings[domain.DimGTM].Band)
	}
	if rating.Recommendation != "hire" {
		t.Fatalf("strong tier must recommend hire, got %q", rating.Recommendation)
	}
	if len(rating.DevelopmentAreas) != 3 {
		t.Fatalf("expected 3 development areas, got %v", rating.DevelopmentAreas)
	}
	if rating.DevelopmentAreas[0] != domain.DimGTM {
		t.Fatalf("lowest dimension must lead development areas, got %v", rating.DevelopmentAreas[0])
	}
}

func TestInternalReport_RisksAndQuestions(t *testing.T) {
	report := InternalReportHandler{}.Format(sampleResult())

	if report.Strengths[0].Dimension != domain.DimMotivation && report.Strengths[0].Dimension != domain.DimTechnical {
		t.Fatalf("strengths must sort strength-first, got %v", report.Strengths[0])
	}
	if report.Risks["culture_fit"] != RiskModerate {
		t.Fatalf("culture fit 6 must be moderate risk, got %v", report.Risks["culture_fit"])
	}
	if report.Risks["retention"] != RiskLow {
		t.Fatalf("motivation 9 and passions 8 must be low retention risk, got %v", report.Risks["retention"])
	}
	// Two lowest dimensions plus one red flag.
	if len(report.ProbingQuestions) != 3 {
		t.Fatalf("expected 3 probing questions, got %v", report.ProbingQuestions)
	}
}

func TestCandidateSummary_NoScoresAndToneBranch(t *testing.T) {
	result := sampleResult()
	summary := CandidateSummaryHandler{}.Format(result)

	if len(summary.Highlights) != 3 || len(summary.GrowthAreas) != 2 {
		t.Fatalf("expected 3 highlights and 2 growth areas")
	}
	all := summary.Greeting + strings.Join(summary.Highlights, " ") + strings.Join(summary.GrowthAreas, " ") + summary.Closing
	for _, digit := range "0123456789" {
		if strings.ContainsRune(all, digit) {
			t.Fatalf("candidate summary must not surface numbers: %q", all)
		}
	}
	if !strings.Contains(summary.Greeting, "Sam") {
		t.Fatalf("greeting should address the candidate, got %q", summary.Greeting)
	}
	// Overall 6.5 takes the encouraging branch.
	if !strings.Contains(summary.Closing, "strong impression") {
		t.Fatalf("expected encouraging closing, got %q", summary.Closing)
	}

	result.OverallScore = 4
	neutral := CandidateSummaryHandler{}.Format(result)
	if strings.Contains(neutral.Closing, "strong impression") {
		t.Fatalf("expected neutral closing for low overall, got %q", neutral.Closing)
	}
}
