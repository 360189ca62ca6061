package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/alcyxob/fitness-ai/internal/domain"
	"github.com/alcyxob/fitness-ai/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReferenceRepo reads the body_parts and equipment tables.
type ReferenceRepo struct {
	db *pgxpool.Pool
}

func NewReferenceRepo(db *pgxpool.Pool) *ReferenceRepo {
	return &ReferenceRepo{db: db}
}

func (r *ReferenceRepo) GetBodyPart(ctx context.Context, id int64) (*domain.BodyPart, error) {
	var bp domain.BodyPart
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id, name FROM body_parts WHERE id = $1`, id,
	).Scan(&bp.ID, &bp.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get body part: %w", err)
	}
	return &bp, nil
}

func (r *ReferenceRepo) FindEquipmentByIDs(ctx context.Context, ids []int64) ([]domain.Equipment, error) {
	if len(ids) == 0 {
		return []domain.Equipment{}, nil
	}

	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT id, name FROM equipment WHERE id = ANY($1)`, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("find equipment: %w", err)
	}

	equipment, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Equipment])
	if err != nil {
		return nil, fmt.Errorf("scan equipment: %w", err)
	}
	return equipment, nil
}

func (r *ReferenceRepo) ListBodyParts(ctx context.Context) ([]domain.BodyPart, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT id, name FROM body_parts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list body parts: %w", err)
	}

	bodyParts, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.BodyPart])
	if err != nil {
		return nil, fmt.Errorf("scan body parts: %w", err)
	}
	return bodyParts, nil
}

func (r *ReferenceRepo) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	rows, err := conn(ctx, r.db).Query(ctx, `SELECT id, name FROM equipment ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}

	equipment, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Equipment])
	if err != nil {
		return nil, fmt.Errorf("scan equipment: %w", err)
	}
	return equipment, nil
}
