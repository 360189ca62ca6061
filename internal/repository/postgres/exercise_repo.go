package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alcyxob/fitness-ai/internal/domain"
	"github.com/alcyxob/fitness-ai/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExerciseRepo implements repository.ExerciseRepository.
type ExerciseRepo struct {
	db *pgxpool.Pool
}

func NewExerciseRepo(db *pgxpool.Pool) *ExerciseRepo {
	return &ExerciseRepo{db: db}
}

const exerciseInsertColumns = 8

func (r *ExerciseRepo) CreateBatch(ctx context.Context, exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO exercises
		(workout_list_id, equipment_id, position, name, steps, sets, repetitions, youtube_url) VALUES `)
	args := make([]any, 0, len(exercises)*exerciseInsertColumns)
	for i, ex := range exercises {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * exerciseInsertColumns
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8)
		args = append(args,
			ex.WorkoutListID, ex.EquipmentID, ex.Position, ex.Name,
			ex.Steps, ex.Sets, ex.Repetitions, ex.YoutubeURL,
		)
	}
	sb.WriteString(` RETURNING id, position, created_at, updated_at`)

	rows, err := conn(ctx, r.db).Query(ctx, sb.String(), args...)
	if err != nil {
		return fmt.Errorf("insert exercises: %w", err)
	}
	defer rows.Close()

	// RETURNING order is not guaranteed, match rows back by position
	byPosition := make(map[int]int, len(exercises))
	for i, ex := range exercises {
		byPosition[ex.Position] = i
	}
	inserted := 0
	for rows.Next() {
		var ex domain.Exercise
		if err := rows.Scan(&ex.ID, &ex.Position, &ex.CreatedAt, &ex.UpdatedAt); err != nil {
			return fmt.Errorf("scan inserted exercise: %w", err)
		}
		i := byPosition[ex.Position]
		exercises[i].ID = ex.ID
		exercises[i].CreatedAt = ex.CreatedAt
		exercises[i].UpdatedAt = ex.UpdatedAt
		inserted++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("insert exercises: %w", err)
	}
	if inserted != len(exercises) {
		return fmt.Errorf("insert exercises: expected %d rows, got %d", len(exercises), inserted)
	}

	return nil
}

func (r *ExerciseRepo) UpdateCounts(ctx context.Context, workoutListID, exerciseID int64, in domain.UpdateExerciseInput) (*domain.Exercise, error) {
	row := conn(ctx, r.db).QueryRow(ctx,
		`WITH updated AS (
			UPDATE exercises
			SET sets = COALESCE($3, sets),
			    repetitions = COALESCE($4, repetitions),
			    updated_at = now()
			WHERE id = $1 AND workout_list_id = $2
			RETURNING id, workout_list_id, equipment_id, position, name, steps,
			          sets, repetitions, youtube_url, created_at, updated_at
		)
		SELECT u.*, eq.id, eq.name FROM updated u JOIN equipment eq ON eq.id = u.equipment_id`,
		exerciseID, workoutListID, in.Sets, in.Repetitions,
	)

	var ex domain.Exercise
	eq := &domain.Equipment{}
	err := row.Scan(
		&ex.ID, &ex.WorkoutListID, &ex.EquipmentID, &ex.Position, &ex.Name, &ex.Steps,
		&ex.Sets, &ex.Repetitions, &ex.YoutubeURL, &ex.CreatedAt, &ex.UpdatedAt, &eq.ID, &eq.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("update exercise: %w", err)
	}
	ex.Equipment = eq

	return &ex, nil
}
