package analytics

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	ListSetPoints(ctx context.Context, userID int, since time.Time) ([]SetPoint, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListSetPoints(ctx context.Context, userID int, since time.Time) ([]SetPoint, error) {
	points := []SetPoint{}
	err := r.db.SelectContext(ctx, &points, `
		SELECT w.id AS workout_id, e.name AS exercise, w.performed_on, se.reps, se.weight_kg
		FROM set_entries se
		JOIN workout_exercises we ON we.id = se.workout_exercise_id
		JOIN workouts w ON w.id = we.workout_id
		JOIN exercises e ON e.id = we.exercise_id
		WHERE w.user_id = $1 AND w.performed_on >= $2::date
		ORDER BY w.performed_on ASC, we.position ASC, se.set_number ASC
	`, userID, since.Format(time.DateOnly))
	if err != nil {
		return nil, err
	}
	return points, nil
}
