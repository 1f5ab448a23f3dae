package workout

import "time"

type Exercise struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name" example:"Back squat"`
	MuscleGroup string    `db:"muscle_group" json:"muscle_group" example:"legs"`
	Equipment   string    `db:"equipment" json:"equipment" example:"barbell"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateExerciseRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	MuscleGroup string `json:"muscle_group" binding:"max=60"`
	Equipment   string `json:"equipment" binding:"max=60"`
	Description string `json:"description"`
}

type Workout struct {
	ID          int               `db:"id" json:"id"`
	UserID      int               `db:"user_id" json:"user_id"`
	PerformedOn time.Time         `db:"performed_on" json:"performed_on"`
	Notes       string            `db:"notes" json:"notes"`
	CreatedAt   time.Time         `db:"created_at" json:"created_at"`
	Exercises   []WorkoutExercise `db:"-" json:"exercises"`
}

type WorkoutExercise struct {
	ID           int        `db:"id" json:"id"`
	WorkoutID    int        `db:"workout_id" json:"workout_id"`
	ExerciseID   int        `db:"exercise_id" json:"exercise_id"`
	ExerciseName string     `db:"exercise_name" json:"exercise_name"`
	Position     int        `db:"position" json:"position"`
	Sets         []SetEntry `db:"-" json:"sets"`
}

type SetEntry struct {
	ID                int     `db:"id" json:"id"`
	WorkoutExerciseID int     `db:"workout_exercise_id" json:"workout_exercise_id"`
	SetNumber         int     `db:"set_number" json:"set_number"`
	Reps              int     `db:"reps" json:"reps"`
	WeightKg          float64 `db:"weight_kg" json:"weight_kg"`
}

type LogSet struct {
	Reps     int     `json:"reps" binding:"min=0" example:"8"`
	WeightKg float64 `json:"weight_kg" binding:"min=0" example:"80"`
}

type LogExercise struct {
	ExerciseID int      `json:"exercise_id" binding:"required"`
	Sets       []LogSet `json:"sets" binding:"required,min=1,dive"`
}

type LogWorkoutRequest struct {
	PerformedOn string        `json:"performed_on" binding:"required" example:"2025-03-03"`
	Notes       string        `json:"notes"`
	Exercises   []LogExercise `json:"exercises" binding:"required,min=1,dive"`
}
