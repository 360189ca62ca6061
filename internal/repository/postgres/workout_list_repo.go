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

// WorkoutListRepo implements repository.WorkoutListRepository.
type WorkoutListRepo struct {
	db *pgxpool.Pool
}

func NewWorkoutListRepo(db *pgxpool.Pool) *WorkoutListRepo {
	return &WorkoutListRepo{db: db}
}

func (r *WorkoutListRepo) Create(ctx context.Context, list *domain.WorkoutList) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO workout_lists (user_id, body_part_id, name)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		list.UserID, list.BodyPartID, list.Name,
	).Scan(&list.ID, &list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert workout list: %w", err)
	}
	return nil
}

const listSelect = `
	SELECT wl.id, wl.user_id, wl.body_part_id, wl.name, wl.created_at, wl.updated_at, bp.id, bp.name
	FROM workout_lists wl
	JOIN body_parts bp ON bp.id = wl.body_part_id`

func (r *WorkoutListRepo) GetForUser(ctx context.Context, id, userID int64) (*domain.WorkoutList, error) {
	lists, err := r.queryLists(ctx, listSelect+` WHERE wl.id = $1 AND wl.user_id = $2`, id, userID)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return nil, repository.ErrNotFound
	}
	return &lists[0], nil
}

func (r *WorkoutListRepo) ListByUser(ctx context.Context, userID int64) ([]domain.WorkoutList, error) {
	return r.queryLists(ctx, listSelect+` WHERE wl.user_id = $1 ORDER BY wl.created_at DESC, wl.id DESC`, userID)
}

func (r *WorkoutListRepo) ExistsForUser(ctx context.Context, id, userID int64) error {
	var found int64
	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT id FROM workout_lists WHERE id = $1 AND user_id = $2`, id, userID,
	).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("check workout list: %w", err)
	}
	return nil
}

// DeleteForUser removes the list and, through the foreign key cascade, its exercises.
func (r *WorkoutListRepo) DeleteForUser(ctx context.Context, id, userID int64) error {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`DELETE FROM workout_lists WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete workout list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *WorkoutListRepo) queryLists(ctx context.Context, query string, args ...any) ([]domain.WorkoutList, error) {
	q := conn(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query workout lists: %w", err)
	}

	lists, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.WorkoutList, error) {
		var wl domain.WorkoutList
		bp := &domain.BodyPart{}
		err := row.Scan(&wl.ID, &wl.UserID, &wl.BodyPartID, &wl.Name, &wl.CreatedAt, &wl.UpdatedAt, &bp.ID, &bp.Name)
		wl.BodyPart = bp
		wl.Exercises = []domain.Exercise{}
		return wl, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan workout lists: %w", err)
	}
	if len(lists) == 0 {
		return lists, nil
	}

	ids := make([]int64, len(lists))
	byID := make(map[int64]int, len(lists))
	for i, wl := range lists {
		ids[i] = wl.ID
		byID[wl.ID] = i
	}

	exRows, err := q.Query(ctx,
		`SELECT e.id, e.workout_list_id, e.equipment_id, e.position, e.name, e.steps,
		        e.sets, e.repetitions, e.youtube_url, e.created_at, e.updated_at, eq.id, eq.name
		 FROM exercises e
		 JOIN equipment eq ON eq.id = e.equipment_id
		 WHERE e.workout_list_id = ANY($1)
		 ORDER BY e.workout_list_id, e.position`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}

	exercises, err := pgx.CollectRows(exRows, scanExerciseWithEquipment)
	if err != nil {
		return nil, fmt.Errorf("scan exercises: %w", err)
	}

	for _, ex := range exercises {
		i := byID[ex.WorkoutListID]
		lists[i].Exercises = append(lists[i].Exercises, ex)
	}

	return lists, nil
}

func scanExerciseWithEquipment(row pgx.CollectableRow) (domain.Exercise, error) {
	var ex domain.Exercise
	eq := &domain.Equipment{}
	err := row.Scan(
		&ex.ID, &ex.WorkoutListID, &ex.EquipmentID, &ex.Position, &ex.Name, &ex.Steps,
		&ex.Sets, &ex.Repetitions, &ex.YoutubeURL, &ex.CreatedAt, &ex.UpdatedAt, &eq.ID, &eq.Name,
	)
	ex.Equipment = eq
	return ex, err
}
