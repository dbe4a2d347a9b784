package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"talentloop/internal/domain"
)

func sampleAssessment(id, sessionID string) *domain.AssessmentResult {
	return &domain.AssessmentResult{
		ID:            id,
		SessionID:     sessionID,
		CandidateName: "Sam",
		Dimensions: map[domain.Dimension]domain.DimensionScore{
			domain.DimIQ: {Score: 7, Confidence: 0.6},
		},
		Tier:         domain.TierStrong,
		OverallScore: 7,
		CompletedAt:  time.Now().UTC(),
	}
}

func TestInMemoryAssessmentRepository_SaveAndGet(t *testing.T) {
	repo := NewInMemoryAssessmentRepository()
	ctx := context.Background()

	if err := repo.Save(ctx, sampleAssessment("a1", "s1")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Save(ctx, sampleAssessment("a1", "s1")); !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected duplicate save rejected, got %v", err)
	}

	got, err := repo.GetByID(ctx, "a1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CandidateName != "Sam" || got.Tier != domain.TierStrong {
		t.Fatalf("unexpected result %+v", got)
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInMemoryAssessmentRepository_ListBySession(t *testing.T) {
	repo := NewInMemoryAssessmentRepository()
	ctx := context.Background()

	if err := repo.Save(ctx, sampleAssessment("a1", "s1")); err != nil {
		t.Fatalf("save a1: %v", err)
	}
	if err := repo.Save(ctx, sampleAssessment("a2", "s1")); err != nil {
		t.Fatalf("save a2: %v", err)
	}
	if err := repo.Save(ctx, sampleAssessment("b1", "s2")); err != nil {
		t.Fatalf("save b1: %v", err)
	}

	results, err := repo.ListBySession(ctx, "s1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 2 || results[0].ID != "a1" || results[1].ID != "a2" {
		t.Fatalf("expected ordered a1,a2, got %v", results)
	}
}
