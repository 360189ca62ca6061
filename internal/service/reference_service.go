package service

import (
	"context"
	"errors"

	"github.com/alcyxob/fitness-ai/internal/domain"
	"github.com/alcyxob/fitness-ai/internal/repository"
)

const (
	msgBodyPartNotFound   = "Body part not found"
	msgEquipmentNotFound  = "One or more equipments not found"
	bodyPartsCacheKey     = "catalog:body-parts"
	equipmentListCacheKey = "catalog:equipment"
)

// CatalogCache is the in-process cache for the reference listings.
type CatalogCache interface {
	Get(key string, dst any) bool
	Set(key string, value any)
}

// ReferenceValidator resolves the ids of a create request against the catalogs.
type ReferenceValidator struct {
	repo repository.ReferenceRepository
}

func NewReferenceValidator(repo repository.ReferenceRepository) *ReferenceValidator {
	return &ReferenceValidator{repo: repo}
}

// Resolve returns the body part and the equipment in request order.
// Duplicated ids resolve to the same row more than once.
func (v *ReferenceValidator) Resolve(ctx context.Context, bodyPartID int64, equipmentIDs []int64) (*domain.BodyPart, []domain.Equipment, error) {
	bodyPart, err := v.repo.GetBodyPart(ctx, bodyPartID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, domain.NotFound(msgBodyPartNotFound)
		}
		return nil, nil, domain.Internal("Internal Server Error", err)
	}

	found, err := v.repo.FindEquipmentByIDs(ctx, equipmentIDs)
	if err != nil {
		return nil, nil, domain.Internal("Internal Server Error", err)
	}

	byID := make(map[int64]domain.Equipment, len(found))
	for _, eq := range found {
		byID[eq.ID] = eq
	}

	equipment := make([]domain.Equipment, 0, len(equipmentIDs))
	for _, id := range equipmentIDs {
		eq, ok := byID[id]
		if !ok {
			return nil, nil, domain.NotFound(msgEquipmentNotFound)
		}
		equipment = append(equipment, eq)
	}

	return bodyPart, equipment, nil
}

type ReferenceService interface {
	ListBodyParts(ctx context.Context) ([]domain.BodyPart, error)
	ListEquipment(ctx context.Context) ([]domain.Equipment, error)
}

type referenceService struct {
	repo  repository.ReferenceRepository
	cache CatalogCache
}

func NewReferenceService(repo repository.ReferenceRepository, cache CatalogCache) ReferenceService {
	return &referenceService{
		repo:  repo,
		cache: cache,
	}
}

func (s *referenceService) ListBodyParts(ctx context.Context) ([]domain.BodyPart, error) {
	var bodyParts []domain.BodyPart
	if s.cache != nil && s.cache.Get(bodyPartsCacheKey, &bodyParts) {
		return bodyParts, nil
	}

	bodyParts, err := s.repo.ListBodyParts(ctx)
	if err != nil {
		return nil, domain.Internal("Internal Server Error", err)
	}
	if s.cache != nil {
		s.cache.Set(bodyPartsCacheKey, bodyParts)
	}
	return bodyParts, nil
}

func (s *referenceService) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	var equipment []domain.Equipment
	if s.cache != nil && s.cache.Get(equipmentListCacheKey, &equipment) {
		return equipment, nil
	}

	equipment, err := s.repo.ListEquipment(ctx)
	if err != nil {
		return nil, domain.Internal("Internal Server Error", err)
	}
	if s.cache != nil {
		s.cache.Set(equipmentListCacheKey, equipment)
	}
	return equipment, nil
}
