package domain

import "time"

// Exercise is one generated exercise inside a workout list.
// Position keeps the order in which the generator returned it.
type Exercise struct {
	ID            int64      `json:"id"`
	WorkoutListID int64      `json:"-"`
	EquipmentID   int64      `json:"EquipmentId"`
	Position      int        `json:"-"`
	Name          string     `json:"name"`
	Steps         string     `json:"steps"`
	Sets          int        `json:"sets"`
	Repetitions   int        `json:"repetitions"`
	YoutubeURL    string     `json:"youtubeUrl"`
	CreatedAt     time.Time  `json:"-"`
	UpdatedAt     time.Time  `json:"-"`
	Equipment     *Equipment `json:"Equipment,omitempty"`
}

// GeneratedExercise is a candidate returned by the generator, before it is
// bound to a list and a piece of equipment.
type GeneratedExercise struct {
	Name        string `json:"name"`
	Steps       string `json:"steps"`
	Sets        int    `json:"sets"`
	Repetitions int    `json:"repetitions"`
	YoutubeURL  string `json:"youtubeUrl"`
}

// UpdateExerciseInput carries a partial update. Nil fields are left untouched.
type UpdateExerciseInput struct {
	Sets        *int
	Repetitions *int
}

// Empty reports whether the update changes nothing.
func (in UpdateExerciseInput) Empty() bool {
	return in.Sets == nil && in.Repetitions == nil
}
