package workout

import (
	"context"

	"ptstudio/internal/api"
)

type Repository interface {
	CreateExercise(ctx context.Context, e Exercise) (*Exercise, error)
	ListExercises(ctx context.Context) ([]Exercise, error)
	SearchExercises(ctx context.Context, query string, limit int) ([]Exercise, error)
	GetExercisesByIDs(ctx context.Context, ids []int) ([]Exercise, error)
	// CreateWorkout stores the workout with its exercises and sets in one
	// transaction.
	CreateWorkout(ctx context.Context, w Workout) (*Workout, error)
	ListWorkouts(ctx context.Context, userID int, page api.Page) ([]Workout, error)
	DeleteWorkout(ctx context.Context, userID, id int) error
}
