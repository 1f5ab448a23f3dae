package programme

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ptstudio/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrProgrammeNotFound = errors.New("programme not found")
	ErrUnknownReference  = errors.New("unknown exercise or client")
)

const programmeColumns = `id, name, description, created_by, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}

func (r *repository) Create(ctx context.Context, p Programme) (*Programme, error) {
	out := p
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO programmes (name, description, created_by)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`, p.Name, p.Description, p.CreatedBy).Scan(&out.ID, &out.CreatedAt)
		if err != nil {
			return err
		}

		out.Exercises = make([]ProgrammeExercise, 0, len(p.Exercises))
		for i, ex := range p.Exercises {
			var pe ProgrammeExercise
			err := tx.GetContext(ctx, &pe, `
				INSERT INTO programme_exercises (programme_id, exercise_id, position, sets, reps, notes)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id, programme_id, exercise_id, position, sets, reps, notes,
				          (SELECT name FROM exercises WHERE id = $2) AS exercise_name
			`, out.ID, ex.ExerciseID, i+1, ex.Sets, ex.Reps, ex.Notes)
			if isForeignKeyViolation(err) {
				return ErrUnknownReference
			}
			if err != nil {
				return err
			}
			out.Exercises = append(out.Exercises, pe)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) exercisesFor(ctx context.Context, ids []int) (map[int][]ProgrammeExercise, error) {
	rows := []ProgrammeExercise{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT pe.id, pe.programme_id, pe.exercise_id, e.name AS exercise_name,
		       pe.position, pe.sets, pe.reps, pe.notes
		FROM programme_exercises pe
		JOIN exercises e ON e.id = pe.exercise_id
		WHERE pe.programme_id = ANY($1)
		ORDER BY pe.programme_id, pe.position
	`, pq.Array(ids))
	if err != nil {
		return nil, err
	}

	out := make(map[int][]ProgrammeExercise, len(ids))
	for _, pe := range rows {
		out[pe.ProgrammeID] = append(out[pe.ProgrammeID], pe)
	}
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Programme, error) {
	var p Programme
	err := r.db.GetContext(ctx, &p, `SELECT `+programmeColumns+` FROM programmes WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProgrammeNotFound
	}
	if err != nil {
		return nil, err
	}

	byProgramme, err := r.exercisesFor(ctx, []int{p.ID})
	if err != nil {
		return nil, err
	}
	p.Exercises = byProgramme[p.ID]
	if p.Exercises == nil {
		p.Exercises = []ProgrammeExercise{}
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context) ([]Programme, error) {
	programmes := []Programme{}
	err := r.db.SelectContext(ctx, &programmes, `SELECT `+programmeColumns+` FROM programmes ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	if len(programmes) == 0 {
		return programmes, nil
	}

	ids := make([]int, len(programmes))
	for i, p := range programmes {
		ids[i] = p.ID
	}
	byProgramme, err := r.exercisesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range programmes {
		programmes[i].Exercises = byProgramme[programmes[i].ID]
		if programmes[i].Exercises == nil {
			programmes[i].Exercises = []ProgrammeExercise{}
		}
	}
	return programmes, nil
}

// Assign gives a client a programme. Assigning it again moves the start date.
func (r *repository) Assign(ctx context.Context, programmeID, userID int, startsOn time.Time) (*Assignment, error) {
	var a Assignment
	err := r.db.GetContext(ctx, &a, `
		INSERT INTO programme_assignments (programme_id, user_id, starts_on)
		VALUES ($1, $2, $3)
		ON CONFLICT (programme_id, user_id) DO UPDATE SET starts_on = EXCLUDED.starts_on
		RETURNING id, programme_id, user_id, starts_on, assigned_at
	`, programmeID, userID, startsOn)
	if isForeignKeyViolation(err) {
		return nil, ErrUnknownReference
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListAssigned(ctx context.Context, userID int) ([]AssignedProgramme, error) {
	assigned := []AssignedProgramme{}
	err := r.db.SelectContext(ctx, &assigned, `
		SELECT p.id, p.name, p.description, p.created_by, p.created_at,
		       a.starts_on, a.assigned_at
		FROM programme_assignments a
		JOIN programmes p ON p.id = a.programme_id
		WHERE a.user_id = $1
		ORDER BY a.starts_on DESC, p.id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	if len(assigned) == 0 {
		return assigned, nil
	}

	ids := make([]int, len(assigned))
	for i, a := range assigned {
		ids[i] = a.ID
	}
	byProgramme, err := r.exercisesFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range assigned {
		assigned[i].Exercises = byProgramme[assigned[i].ID]
		if assigned[i].Exercises == nil {
			assigned[i].Exercises = []ProgrammeExercise{}
		}
	}
	return assigned, nil
}
