package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/factline/credo/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClaimStore struct {
	db *pgxpool.Pool
}

func NewClaimStore(db *pgxpool.Pool) *ClaimStore {
	return &ClaimStore{db: db}
}

// Upsert writes the latest report for a claim. Re-scoring the same claim
// replaces the stored report rather than growing history.
func (s *ClaimStore) Upsert(ctx context.Context, c *domain.ClaimRecord) error {
	report, err := json.Marshal(c.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	return s.db.QueryRow(ctx,
		`INSERT INTO claims (tenant_id, claim_hash, text, report)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (tenant_id, claim_hash)
		 DO UPDATE SET text = EXCLUDED.text, report = EXCLUDED.report, updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		c.TenantID, c.ClaimHash, c.Text, report,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (s *ClaimStore) GetByHash(ctx context.Context, tenantID uuid.UUID, claimHash string) (*domain.ClaimRecord, error) {
	c := &domain.ClaimRecord{}
	var report []byte
	err := s.db.QueryRow(ctx,
		`SELECT id, tenant_id, claim_hash, text, report, created_at, updated_at
		 FROM claims WHERE tenant_id = $1 AND claim_hash = $2`,
		tenantID, claimHash,
	).Scan(&c.ID, &c.TenantID, &c.ClaimHash, &c.Text, &report, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(report, &c.Report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return c, nil
}

func (s *ClaimStore) ListRecent(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.ClaimRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(ctx,
		`SELECT id, tenant_id, claim_hash, text, report, created_at, updated_at
		 FROM claims WHERE tenant_id = $1
		 ORDER BY updated_at DESC
		 LIMIT $2`,
		tenantID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	defer rows.Close()

	var claims []domain.ClaimRecord
	for rows.Next() {
		var c domain.ClaimRecord
		var report []byte
		if err := rows.Scan(&c.ID, &c.TenantID, &c.ClaimHash, &c.Text, &report, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(report, &c.Report); err != nil {
			return nil, fmt.Errorf("unmarshal report: %w", err)
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}
