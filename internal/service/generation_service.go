package service

import (
	"context"

	"github.com/alcyxob/fitness-ai/internal/domain"
	"github.com/alcyxob/fitness-ai/internal/repository"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultGenerationHistoryLimit = 20
	MaxGenerationHistoryLimit     = 100
)

// GenerationService reads back the caller's generation audit log.
type GenerationService interface {
	// Recent returns the user's latest attempts, newest first. A non-positive
	// limit means the default, larger ones are capped.
	Recent(ctx context.Context, userID int64, limit int64) ([]domain.GenerationRecord, error)
}

type generationService struct {
	audit repository.GenerationRepository
}

func NewGenerationService(audit repository.GenerationRepository) GenerationService {
	return &generationService{audit: audit}
}

func (s *generationService) Recent(ctx context.Context, userID int64, limit int64) ([]domain.GenerationRecord, error) {
	switch {
	case limit <= 0:
		limit = DefaultGenerationHistoryLimit
	case limit > MaxGenerationHistoryLimit:
		limit = MaxGenerationHistoryLimit
	}

	records, err := s.audit.ListByUser(ctx, userID, limit)
	if err != nil {
		log.WithField("userId", userID).Errorf("list generation attempts: %s", err)
		return nil, domain.Internal("Internal Server Error", err)
	}
	return records, nil
}
