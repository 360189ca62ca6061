package domain

import "time"

// WorkoutList is a saved, generated workout owned by one user.
// BodyPart and Exercises are populated on reads.
type WorkoutList struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"UserId"`
	BodyPartID int64      `json:"BodyPartId"`
	Name       string     `json:"name"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	BodyPart   *BodyPart  `json:"BodyPart,omitempty"`
	Exercises  []Exercise `json:"Exercises"`
}

// CreateWorkoutListInput is the caller's request to generate a new list.
// A nil EquipmentIDs means the field was absent.
type CreateWorkoutListInput struct {
	BodyPartID   int64
	EquipmentIDs []int64
	Name         string
}
