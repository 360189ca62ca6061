package domain

import "time"

type GenerationOutcome string

const (
	GenerationSucceeded GenerationOutcome = "succeeded"
	GenerationFailed    GenerationOutcome = "failed"
)

// GenerationRecord is an audit entry for one generation attempt.
type GenerationRecord struct {
	ID            string            `bson:"_id,omitempty" json:"id"`
	UserID        int64             `bson:"userId" json:"userId"`
	WorkoutListID int64             `bson:"workoutListId" json:"workoutListId"`
	BodyPart      string            `bson:"bodyPart" json:"bodyPart"`
	Equipment     []string          `bson:"equipment" json:"equipment"`
	Model         string            `bson:"model" json:"model"`
	Outcome       GenerationOutcome `bson:"outcome" json:"outcome"`
	Error         string            `bson:"error,omitempty" json:"error,omitempty"`
	Retryable     bool              `bson:"retryable" json:"retryable"`
	Candidates    int               `bson:"candidates" json:"candidates"`
	DurationMs    int64             `bson:"durationMs" json:"durationMs"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
}
