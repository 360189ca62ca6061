package repository

import (
	"context"

	"github.com/alcyxob/fitness-ai/internal/domain"
)

var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

//go:generate mockgen -source=$GOFILE -destination=../service/repository_mocks_test.go -package=service_test

// Transactor runs fn inside a single database transaction. Repositories called
// with the ctx handed to fn take part in that transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByExternalID(ctx context.Context, provider domain.IdentityProvider, externalID string) (*domain.User, error)
	LinkExternalID(ctx context.Context, userID int64, provider domain.IdentityProvider, externalID string) error
}

// ReferenceRepository reads the body part and equipment catalogs.
type ReferenceRepository interface {
	GetBodyPart(ctx context.Context, id int64) (*domain.BodyPart, error)
	// FindEquipmentByIDs returns the rows matching ids, each at most once, in no particular order.
	FindEquipmentByIDs(ctx context.Context, ids []int64) ([]domain.Equipment, error)
	ListBodyParts(ctx context.Context) ([]domain.BodyPart, error)
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)
}

// WorkoutListRepository defines the interface for interacting with workout lists.
// Every read and delete is scoped to the owning user.
type WorkoutListRepository interface {
	Create(ctx context.Context, list *domain.WorkoutList) error
	// GetForUser returns the list joined with its body part and exercises.
	GetForUser(ctx context.Context, id, userID int64) (*domain.WorkoutList, error)
	// ListByUser returns the user's lists newest first, joined like GetForUser.
	ListByUser(ctx context.Context, userID int64) ([]domain.WorkoutList, error)
	// ExistsForUser returns ErrNotFound unless id belongs to userID.
	ExistsForUser(ctx context.Context, id, userID int64) error
	DeleteForUser(ctx context.Context, id, userID int64) error
}

// ExerciseRepository defines the interface for interacting with exercises of a list.
type ExerciseRepository interface {
	// CreateBatch inserts all exercises in one statement and fills in their IDs.
	CreateBatch(ctx context.Context, exercises []domain.Exercise) error
	// UpdateCounts applies the non-nil fields of in to the exercise if it
	// belongs to workoutListID, and returns the stored row.
	UpdateCounts(ctx context.Context, workoutListID, exerciseID int64, in domain.UpdateExerciseInput) (*domain.Exercise, error)
}

// GenerationRepository keeps the audit trail of generation attempts.
type GenerationRepository interface {
	Record(ctx context.Context, record *domain.GenerationRecord) error
	ListByUser(ctx context.Context, userID int64, limit int64) ([]domain.GenerationRecord, error)
}
