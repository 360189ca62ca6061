package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/alcyxob/fitness-ai/internal/cache"
	"github.com/alcyxob/fitness-ai/internal/domain"
	"github.com/alcyxob/fitness-ai/internal/generator"
	"github.com/alcyxob/fitness-ai/internal/metrics"
	"github.com/alcyxob/fitness-ai/internal/repository"
	"github.com/alcyxob/fitness-ai/internal/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// --- Error Messages ---
const (
	msgBodyPartRequired      = "BodyPartId is required"
	msgEquipmentIDsInvalid   = "equipmentIds must be an array with 0 to 2 items"
	msgEquipmentIDsEmpty     = "equipmentIds must contain at least one item"
	msgListNotFound          = "Workout list not found or you are not authorized"
	msgExerciseNotFound      = "Exercise not found in this workout list"
	msgSetsOrRepsRequired    = "Sets or repetitions are required"
	msgSetsInvalid           = "Sets must be a positive integer"
	msgRepetitionsInvalid    = "Repetitions must be a positive integer"
	msgGenerationRateLimited = "Too many workout lists requested, please try again in %d seconds"

	// MaxEquipmentPerList caps how many pieces of equipment a list may use.
	MaxEquipmentPerList = 2

	auditTimeout = 3 * time.Second
)

//go:generate mockgen -source=$GOFILE -destination=workout_mocks_test.go -package=service_test

// ExerciseGenerator produces exercise candidates for a body part and equipment selection.
type ExerciseGenerator interface {
	Generate(ctx context.Context, equipmentNames []string, bodyPart string) (*generator.Result, error)
}

type WorkoutService interface {
	Create(ctx context.Context, userID int64, in domain.CreateWorkoutListInput) (*domain.WorkoutList, error)
	List(ctx context.Context, userID int64) ([]domain.WorkoutList, error)
	Get(ctx context.Context, userID, listID int64) (*domain.WorkoutList, error)
	UpdateExercise(ctx context.Context, userID, listID, exerciseID int64, in domain.UpdateExerciseInput) (*domain.Exercise, error)
	Delete(ctx context.Context, userID, listID int64) error
}

type WorkoutServiceParams struct {
	Tx         repository.Transactor
	Lists      repository.WorkoutListRepository
	Exercises  repository.ExerciseRepository
	References repository.ReferenceRepository
	Generator  ExerciseGenerator
	// optional
	Audit   repository.GenerationRepository
	Cache   cache.WorkoutListCache
	Limiter cache.GenerationLimiter
	Metrics *metrics.Manager
}

type workoutService struct {
	tx         repository.Transactor
	lists      repository.WorkoutListRepository
	exercises  repository.ExerciseRepository
	references *ReferenceValidator
	generator  ExerciseGenerator
	audit      repository.GenerationRepository
	cache      cache.WorkoutListCache
	limiter    cache.GenerationLimiter
	metrics    *metrics.Manager
}

func NewWorkoutService(params WorkoutServiceParams) WorkoutService {
	s := &workoutService{
		tx:         params.Tx,
		lists:      params.Lists,
		exercises:  params.Exercises,
		references: NewReferenceValidator(params.References),
		generator:  params.Generator,
		audit:      params.Audit,
		cache:      params.Cache,
		limiter:    params.Limiter,
		metrics:    params.Metrics,
	}
	if s.cache == nil {
		s.cache = cache.NoopWorkoutListCache{}
	}
	if s.limiter == nil {
		s.limiter = cache.NoopGenerationLimiter{}
	}
	return s
}

// generationAttempt collects what the audit log needs about one create call.
type generationAttempt struct {
	bodyPart   string
	equipment  []string
	model      string
	candidates int
	duration   time.Duration
	called     bool
}

// Create validates the request, asks the generator for exercises and stores
// the list together with its exercises in one transaction.
func (s *workoutService) Create(ctx context.Context, userID int64, in domain.CreateWorkoutListInput) (_ *domain.WorkoutList, err error) {
	ctx, span := tracing.StartSpan(ctx, "workout.create", attribute.Int64("user_id", userID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := validateCreateInput(in); err != nil {
		return nil, err
	}

	bodyPart, equipment, err := s.references.Resolve(ctx, in.BodyPartID, in.EquipmentIDs)
	if err != nil {
		return nil, err
	}

	// only requests that reach the generator spend a token
	if err := s.checkRateLimit(ctx, userID); err != nil {
		return nil, err
	}

	equipmentNames := make([]string, len(equipment))
	equipmentIDs := make([]int64, len(equipment))
	for i, eq := range equipment {
		equipmentNames[i] = eq.Name
		equipmentIDs[i] = eq.ID
	}

	attempt := &generationAttempt{bodyPart: bodyPart.Name, equipment: equipmentNames}
	var created *domain.WorkoutList
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		list := &domain.WorkoutList{
			UserID:     userID,
			BodyPartID: bodyPart.ID,
			Name:       in.Name,
		}
		if err := s.lists.Create(ctx, list); err != nil {
			return domain.Internal("Internal Server Error", err)
		}

		result, err := s.generate(ctx, attempt)
		if err != nil {
			return err
		}

		exercises := make([]domain.Exercise, len(result.Exercises))
		for i, candidate := range result.Exercises {
			equipmentID, err := AssignEquipment(i, equipmentIDs)
			if err != nil {
				return domain.Internal("Internal Server Error", err)
			}
			exercises[i] = domain.Exercise{
				WorkoutListID: list.ID,
				EquipmentID:   equipmentID,
				Position:      i,
				Name:          candidate.Name,
				Steps:         candidate.Steps,
				Sets:          candidate.Sets,
				Repetitions:   candidate.Repetitions,
				YoutubeURL:    candidate.YoutubeURL,
			}
		}
		if err := s.exercises.CreateBatch(ctx, exercises); err != nil {
			return domain.Internal("Internal Server Error", err)
		}

		created, err = s.lists.GetForUser(ctx, list.ID, userID)
		if err != nil {
			return domain.Internal("Internal Server Error", err)
		}
		return nil
	})

	s.recordAttempt(ctx, userID, created, attempt, err)

	if err != nil {
		logger := log.WithFields(log.Fields{
			"userId":     userID,
			"bodyPartId": in.BodyPartID,
		})
		if domain.IsKind(err, domain.KindGeneration) {
			logger.Warnf("generate workout list: %s", err)
		} else {
			logger.Errorf("create workout list: %s", err)
		}
		return nil, err
	}

	s.cache.Invalidate(ctx, userID)
	return created, nil
}

func validateCreateInput(in domain.CreateWorkoutListInput) error {
	// unknown ids, negative ones included, are left to the lookup
	if in.BodyPartID == 0 {
		return domain.Validation(msgBodyPartRequired)
	}
	if in.EquipmentIDs == nil || len(in.EquipmentIDs) > MaxEquipmentPerList {
		return domain.Validation(msgEquipmentIDsInvalid)
	}
	if len(in.EquipmentIDs) == 0 {
		return domain.Validation(msgEquipmentIDsEmpty)
	}
	return nil
}

// checkRateLimit fails open: a broken limiter must not block list creation.
func (s *workoutService) checkRateLimit(ctx context.Context, userID int64) error {
	allowed, retryAfter, err := s.limiter.Allow(ctx, userID)
	if err != nil {
		log.WithField("userId", userID).Errorf("generation limiter: %s", err)
		return nil
	}
	if allowed {
		return nil
	}
	seconds := int(math.Ceil(retryAfter.Seconds()))
	return domain.RateLimited(fmt.Sprintf(msgGenerationRateLimited, seconds), retryAfter)
}

func (s *workoutService) generate(ctx context.Context, attempt *generationAttempt) (*generator.Result, error) {
	attempt.called = true
	start := time.Now()
	result, err := s.generator.Generate(ctx, attempt.equipment, attempt.bodyPart)
	attempt.duration = time.Since(start)

	if s.metrics != nil {
		s.metrics.HistGenerationDuration.Observe(attempt.duration.Seconds())
	}
	if err != nil {
		return nil, domain.Generation(err)
	}

	attempt.model = result.Model
	attempt.candidates = len(result.Exercises)
	return result, nil
}

// recordAttempt writes the audit entry and the outcome metric. Audit failures are only logged.
func (s *workoutService) recordAttempt(ctx context.Context, userID int64, created *domain.WorkoutList, attempt *generationAttempt, txErr error) {
	if !attempt.called {
		return
	}

	outcome := domain.GenerationSucceeded
	if txErr != nil {
		outcome = domain.GenerationFailed
	}
	if s.metrics != nil {
		s.metrics.CounterGenerations.WithLabelValues(string(outcome)).Inc()
	}
	if s.audit == nil {
		return
	}

	record := &domain.GenerationRecord{
		UserID:     userID,
		BodyPart:   attempt.bodyPart,
		Equipment:  attempt.equipment,
		Model:      attempt.model,
		Outcome:    outcome,
		Candidates: attempt.candidates,
		DurationMs: attempt.duration.Milliseconds(),
	}
	if created != nil && txErr == nil {
		record.WorkoutListID = created.ID
	}
	var derr *domain.Error
	if errors.As(txErr, &derr) {
		record.Error = derr.Message
		record.Retryable = derr.Retryable
	}

	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()
	if err := s.audit.Record(auditCtx, record); err != nil {
		log.WithField("userId", userID).Errorf("record generation attempt: %s", err)
	}
}

func (s *workoutService) List(ctx context.Context, userID int64) ([]domain.WorkoutList, error) {
	lists, version, ok := s.cache.GetLists(ctx, userID)
	if ok {
		return lists, nil
	}

	lists, err := s.lists.ListByUser(ctx, userID)
	if err != nil {
		log.WithField("userId", userID).Errorf("list workout lists: %s", err)
		return nil, domain.Internal("Internal Server Error", err)
	}

	s.cache.SetLists(ctx, userID, version, lists)
	return lists, nil
}

func (s *workoutService) Get(ctx context.Context, userID, listID int64) (*domain.WorkoutList, error) {
	list, err := s.lists.GetForUser(ctx, listID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound(msgListNotFound)
		}
		log.WithFields(log.Fields{"userId": userID, "listId": listID}).Errorf("get workout list: %s", err)
		return nil, domain.Internal("Internal Server Error", err)
	}
	return list, nil
}

func (s *workoutService) UpdateExercise(ctx context.Context, userID, listID, exerciseID int64, in domain.UpdateExerciseInput) (*domain.Exercise, error) {
	if in.Empty() {
		return nil, domain.Validation(msgSetsOrRepsRequired)
	}
	if in.Sets != nil && *in.Sets < 1 {
		return nil, domain.Validation(msgSetsInvalid)
	}
	if in.Repetitions != nil && *in.Repetitions < 1 {
		return nil, domain.Validation(msgRepetitionsInvalid)
	}

	var updated *domain.Exercise
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := s.lists.ExistsForUser(ctx, listID, userID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.NotFound(msgListNotFound)
			}
			return domain.Internal("Internal Server Error", err)
		}

		var err error
		updated, err = s.exercises.UpdateCounts(ctx, listID, exerciseID, in)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.NotFound(msgExerciseNotFound)
			}
			return domain.Internal("Internal Server Error", err)
		}
		return nil
	})
	if err != nil {
		if domain.KindOf(err) == domain.KindInternal {
			log.WithFields(log.Fields{"userId": userID, "listId": listID, "exerciseId": exerciseID}).Errorf("update exercise: %s", err)
		}
		return nil, err
	}

	s.cache.Invalidate(ctx, userID)
	return updated, nil
}

func (s *workoutService) Delete(ctx context.Context, userID, listID int64) error {
	if err := s.lists.DeleteForUser(ctx, listID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NotFound(msgListNotFound)
		}
		log.WithFields(log.Fields{"userId": userID, "listId": listID}).Errorf("delete workout list: %s", err)
		return domain.Internal("Internal Server Error", err)
	}

	s.cache.Invalidate(ctx, userID)
	return nil
}
