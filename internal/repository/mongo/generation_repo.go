package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/alcyxob/fitness-ai/internal/domain"
	"github.com/alcyxob/fitness-ai/internal/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/attribute"
)

const generationCollectionName = "generations"

// GenerationRepo stores one document per generation attempt.
type GenerationRepo struct {
	collection *mongo.Collection
}

func NewGenerationRepo(db *mongo.Database) *GenerationRepo {
	return &GenerationRepo{
		collection: db.Collection(generationCollectionName),
	}
}

func (r *GenerationRepo) Record(ctx context.Context, record *domain.GenerationRecord) (err error) {
	ctx, span := tracing.StartSpan(ctx, "mongo.generations.record", attribute.Int64("userId", record.UserID))
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	if _, err = r.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert generation record: %w", err)
	}
	return nil
}

// ListByUser returns the user's most recent attempts first.
func (r *GenerationRepo) ListByUser(ctx context.Context, userID int64, limit int64) ([]domain.GenerationRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("find generation records: %w", err)
	}
	defer cursor.Close(ctx)

	records := []domain.GenerationRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode generation records: %w", err)
	}
	return records, nil
}

func EnsureGenerationIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys:    bson.D{{Key: "outcome", Value: 1}},
			Options: options.Index(),
		},
	}

	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Warnf("failed to create indexes for collection %s: %s", collection.Name(), err)
	}
}

// GenerationCollection is the collection EnsureGenerationIndexes should be run against.
func GenerationCollection(db *mongo.Database) *mongo.Collection {
	return db.Collection(generationCollectionName)
}
