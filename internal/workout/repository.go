package workout

import (
	"context"
	"errors"

	"ptstudio/internal/api"
	"ptstudio/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrExerciseExists   = errors.New("an exercise with this name already exists")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrWorkoutNotFound  = errors.New("workout not found")
)

const exerciseColumns = `id, name, muscle_group, equipment, description, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

func (r *repository) CreateExercise(ctx context.Context, e Exercise) (*Exercise, error) {
	var out Exercise
	err := r.db.GetContext(ctx, &out, `
		INSERT INTO exercises (name, muscle_group, equipment, description)
		VALUES ($1, $2, $3, $4)
		RETURNING `+exerciseColumns,
		e.Name, e.MuscleGroup, e.Equipment, e.Description)
	if pqCode(err) == "23505" {
		return nil, ErrExerciseExists
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) ListExercises(ctx context.Context) ([]Exercise, error) {
	exercises := []Exercise{}
	err := r.db.SelectContext(ctx, &exercises, `SELECT `+exerciseColumns+` FROM exercises ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *repository) SearchExercises(ctx context.Context, query string, limit int) ([]Exercise, error) {
	if limit <= 0 {
		limit = 20
	}
	exercises := []Exercise{}
	err := r.db.SelectContext(ctx, &exercises, `
		SELECT `+exerciseColumns+`
		FROM exercises
		WHERE name ILIKE '%' || $1 || '%' OR muscle_group ILIKE '%' || $1 || '%' OR equipment ILIKE '%' || $1 || '%'
		ORDER BY name ASC
		LIMIT $2
	`, query, limit)
	if err != nil {
		return nil, err
	}
	return exercises, nil
}

// GetExercisesByIDs keeps the order of ids.
func (r *repository) GetExercisesByIDs(ctx context.Context, ids []int) ([]Exercise, error) {
	if len(ids) == 0 {
		return []Exercise{}, nil
	}

	found := []Exercise{}
	err := r.db.SelectContext(ctx, &found, `SELECT `+exerciseColumns+` FROM exercises WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	byID := make(map[int]Exercise, len(found))
	for _, e := range found {
		byID[e.ID] = e
	}
	out := make([]Exercise, 0, len(found))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *repository) CreateWorkout(ctx context.Context, w Workout) (*Workout, error) {
	out := w
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO workouts (user_id, performed_on, notes)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`, w.UserID, w.PerformedOn, w.Notes).Scan(&out.ID, &out.CreatedAt)
		if err != nil {
			return err
		}

		out.Exercises = make([]WorkoutExercise, 0, len(w.Exercises))
		for i, ex := range w.Exercises {
			var we WorkoutExercise
			err := tx.GetContext(ctx, &we, `
				INSERT INTO workout_exercises (workout_id, exercise_id, position)
				VALUES ($1, $2, $3)
				RETURNING id, workout_id, exercise_id, position,
				          (SELECT name FROM exercises WHERE id = $2) AS exercise_name
			`, out.ID, ex.ExerciseID, i+1)
			if pqCode(err) == "23503" {
				return ErrExerciseNotFound
			}
			if err != nil {
				return err
			}

			we.Sets = make([]SetEntry, 0, len(ex.Sets))
			for j, set := range ex.Sets {
				var se SetEntry
				err := tx.GetContext(ctx, &se, `
					INSERT INTO set_entries (workout_exercise_id, set_number, reps, weight_kg)
					VALUES ($1, $2, $3, $4)
					RETURNING id, workout_exercise_id, set_number, reps, weight_kg
				`, we.ID, j+1, set.Reps, set.WeightKg)
				if err != nil {
					return err
				}
				we.Sets = append(we.Sets, se)
			}
			out.Exercises = append(out.Exercises, we)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) ListWorkouts(ctx context.Context, userID int, page api.Page) ([]Workout, error) {
	page = page.Normalize()

	workouts := []Workout{}
	err := r.db.SelectContext(ctx, &workouts, `
		SELECT id, user_id, performed_on, notes, created_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY performed_on DESC, id DESC
		LIMIT $2 OFFSET $3
	`, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return workouts, nil
	}

	ids := make([]int, len(workouts))
	for i, w := range workouts {
		ids[i] = w.ID
	}

	exercises := []WorkoutExercise{}
	err = r.db.SelectContext(ctx, &exercises, `
		SELECT we.id, we.workout_id, we.exercise_id, e.name AS exercise_name, we.position
		FROM workout_exercises we
		JOIN exercises e ON e.id = we.exercise_id
		WHERE we.workout_id = ANY($1)
		ORDER BY we.workout_id, we.position
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	sets := []SetEntry{}
	err = r.db.SelectContext(ctx, &sets, `
		SELECT se.id, se.workout_exercise_id, se.set_number, se.reps, se.weight_kg
		FROM set_entries se
		JOIN workout_exercises we ON we.id = se.workout_exercise_id
		WHERE we.workout_id = ANY($1)
		ORDER BY se.workout_exercise_id, se.set_number
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	setsByExercise := make(map[int][]SetEntry)
	for _, s := range sets {
		setsByExercise[s.WorkoutExerciseID] = append(setsByExercise[s.WorkoutExerciseID], s)
	}
	exercisesByWorkout := make(map[int][]WorkoutExercise)
	for _, we := range exercises {
		we.Sets = setsByExercise[we.ID]
		if we.Sets == nil {
			we.Sets = []SetEntry{}
		}
		exercisesByWorkout[we.WorkoutID] = append(exercisesByWorkout[we.WorkoutID], we)
	}
	for i := range workouts {
		workouts[i].Exercises = exercisesByWorkout[workouts[i].ID]
		if workouts[i].Exercises == nil {
			workouts[i].Exercises = []WorkoutExercise{}
		}
	}
	return workouts, nil
}

func (r *repository) DeleteWorkout(ctx context.Context, userID, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}
