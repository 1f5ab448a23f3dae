package programme

import "time"

type Programme struct {
	ID          int                 `db:"id" json:"id"`
	Name        string              `db:"name" json:"name" example:"Strength block A"`
	Description string              `db:"description" json:"description"`
	CreatedBy   *int                `db:"created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time           `db:"created_at" json:"created_at"`
	Exercises   []ProgrammeExercise `db:"-" json:"exercises"`
}

type ProgrammeExercise struct {
	ID           int    `db:"id" json:"id"`
	ProgrammeID  int    `db:"programme_id" json:"programme_id"`
	ExerciseID   int    `db:"exercise_id" json:"exercise_id"`
	ExerciseName string `db:"exercise_name" json:"exercise_name"`
	Position     int    `db:"position" json:"position"`
	Sets         int    `db:"sets" json:"sets"`
	Reps         int    `db:"reps" json:"reps"`
	Notes        string `db:"notes" json:"notes"`
}

type Assignment struct {
	ID          int       `db:"id" json:"id"`
	ProgrammeID int       `db:"programme_id" json:"programme_id"`
	UserID      int       `db:"user_id" json:"user_id"`
	StartsOn    time.Time `db:"starts_on" json:"starts_on"`
	AssignedAt  time.Time `db:"assigned_at" json:"assigned_at"`
}

type AssignedProgramme struct {
	Programme
	StartsOn   time.Time `db:"starts_on" json:"starts_on"`
	AssignedAt time.Time `db:"assigned_at" json:"assigned_at"`
}

type ExerciseInput struct {
	ExerciseID int    `json:"exercise_id" binding:"required"`
	Sets       int    `json:"sets" binding:"required,min=1" example:"3"`
	Reps       int    `json:"reps" binding:"required,min=1" example:"10"`
	Notes      string `json:"notes"`
}

type CreateProgrammeRequest struct {
	Name        string          `json:"name" binding:"required,max=120"`
	Description string          `json:"description"`
	Exercises   []ExerciseInput `json:"exercises" binding:"required,min=1,dive"`
}

type AssignRequest struct {
	UserID   int    `json:"user_id" binding:"required"`
	StartsOn string `json:"starts_on" binding:"required" example:"2025-03-03"`
}
