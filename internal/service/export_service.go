package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alcyxob/fitness-ai/internal/domain"
	"github.com/alcyxob/fitness-ai/internal/storage"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ExportResult points at a JSON snapshot of a workout list.
type ExportResult struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ExportService interface {
	Export(ctx context.Context, userID, listID int64) (*ExportResult, error)
}

type exportService struct {
	workouts WorkoutService
	files    storage.FileStorage
	expiry   time.Duration
	now      func() time.Time
}

func NewExportService(workouts WorkoutService, files storage.FileStorage, expiry time.Duration) ExportService {
	if expiry <= 0 {
		expiry = storage.DefaultPresignedURLExpiry
	}
	return &exportService{
		workouts: workouts,
		files:    files,
		expiry:   expiry,
		now:      time.Now,
	}
}

// Export uploads the owned list as JSON and returns a temporary download link.
func (s *exportService) Export(ctx context.Context, userID, listID int64) (*ExportResult, error) {
	list, err := s.workouts.Get(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	body, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return nil, domain.Internal("Internal Server Error", err)
	}

	key := exportKey(userID, listID)
	logger := log.WithFields(log.Fields{"userId": userID, "listId": listID, "key": key})

	if err := s.files.PutObject(ctx, key, "application/json", bytes.NewReader(body)); err != nil {
		logger.Errorf("upload export: %s", err)
		return nil, domain.Internal("Could not export workout list", err)
	}

	url, err := s.files.GeneratePresignedDownloadURL(ctx, key, s.expiry)
	if err != nil {
		logger.Errorf("presign export: %s", err)
		// nobody can reach the object without a link
		if delErr := s.files.DeleteObject(ctx, key); delErr != nil {
			logger.Warnf("remove unreachable export: %s", delErr)
		}
		return nil, domain.Internal("Could not export workout list", err)
	}

	return &ExportResult{
		URL:       url,
		ExpiresAt: s.now().Add(s.expiry).UTC(),
	}, nil
}

func exportKey(userID, listID int64) string {
	return fmt.Sprintf("exports/%d/%d/%s.json", userID, listID, uuid.NewString())
}
