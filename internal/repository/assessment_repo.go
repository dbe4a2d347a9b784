package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"talentloop/internal/domain"
)

// AssessmentRepository persists completed assessments for audit. Sessions
// themselves never touch storage; only their final artifact does.
type AssessmentRepository interface {
	Save(ctx context.Context, result *domain.AssessmentResult) error
	GetByID(ctx context.Context, id string) (*domain.AssessmentResult, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.AssessmentResult, error)
}

type PgAssessmentRepository struct {
	pool *pgxpool.Pool
}

func NewPgAssessmentRepository(pool *pgxpool.Pool) *PgAssessmentRepository {
	return &PgAssessmentRepository{pool: pool}
}

func (r *PgAssessmentRepository) Save(ctx context.Context, result *domain.AssessmentResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal assessment %s: %w", result.ID, err)
	}
	const query = `
		INSERT INTO assessments (id, session_id, candidate_name, tier, overall_score, payload, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.pool.Exec(ctx, query,
		result.ID,
		result.SessionID,
		result.CandidateName,
		string(result.Tier),
		result.OverallScore,
		payload,
		result.CompletedAt,
	)
	return err
}

func (r *PgAssessmentRepository) GetByID(ctx context.Context, id string) (*domain.AssessmentResult, error) {
	const query = `
		SELECT payload
		FROM assessments
		WHERE id = $1
	`
	var payload []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: assessment %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return unmarshalAssessment(payload)
}

func (r *PgAssessmentRepository) ListBySession(ctx context.Context, sessionID string) ([]*domain.AssessmentResult, error) {
	const query = `
		SELECT payload
		FROM assessments
		WHERE session_id = $1
		ORDER BY completed_at
	`
	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*domain.AssessmentResult
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		result, err := unmarshalAssessment(payload)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func unmarshalAssessment(payload []byte) (*domain.AssessmentResult, error) {
	var result domain.AssessmentResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("unmarshal assessment: %w", err)
	}
	return &result, nil
}

// InMemoryAssessmentRepository backs deployments without a database and the
// CLI driver.
type InMemoryAssessmentRepository struct {
	mu     sync.Mutex
	byID   map[string]*domain.AssessmentResult
	bySess map[string][]string
}

func NewInMemoryAssessmentRepository() *InMemoryAssessmentRepository {
	return &InMemoryAssessmentRepository{
		byID:   make(map[string]*domain.AssessmentResult),
		bySess: make(map[string][]string),
	}
}

func (r *InMemoryAssessmentRepository) Save(_ context.Context, result *domain.AssessmentResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byID[result.ID]; dup {
		return fmt.Errorf("%w: assessment %s already saved", domain.ErrInvalidState, result.ID)
	}
	clone := *result
	r.byID[result.ID] = &clone
	r.bySess[result.SessionID] = append(r.bySess[result.SessionID], result.ID)
	return nil
}

func (r *InMemoryAssessmentRepository) GetByID(_ context.Context, id string) (*domain.AssessmentResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: assessment %s", domain.ErrNotFound, id)
	}
	clone := *result
	return &clone, nil
}

func (r *InMemoryAssessmentRepository) ListBySession(_ context.Context, sessionID string) ([]*domain.AssessmentResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.bySess[sessionID]
	out := make([]*domain.AssessmentResult, 0, len(ids))
	for _, id := range ids {
		clone := *r.byID[id]
		out = append(out, &clone)
	}
	return out, nil
}
