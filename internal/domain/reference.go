package domain

// BodyPart is a target muscle group from the fixed catalog.
type BodyPart struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Equipment is a gym tool from the fixed catalog.
type Equipment struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DefaultBodyParts seeds the body part catalog.
var DefaultBodyParts = []string{
	"Chest",
	"Back",
	"Shoulders",
	"Biceps",
	"Triceps",
	"Legs",
	"Abs",
	"Full Body",
}

// DefaultEquipment seeds the equipment catalog.
var DefaultEquipment = []string{
	"Barbell",
	"SZ-Bar",
	"Dumbbell",
	"Gym mat",
	"Swiss Ball",
	"Pull-up bar",
	"none (bodyweight exercise)",
	"Bench",
	"Incline bench",
	"Kettlebell",
	"Resistance band",
}
