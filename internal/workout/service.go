package workout

import (
	"context"
	"errors"
	"strings"
	"time"

	"ptstudio/internal/api"
	"ptstudio/internal/logger"
	"ptstudio/internal/search"
)

var ErrInvalidWorkout = errors.New("invalid workout")

const searchLimit = 20

type Service interface {
	CreateExercise(ctx context.Context, req CreateExerciseRequest) (*Exercise, error)
	ListExercises(ctx context.Context, query string) ([]Exercise, error)
	ReindexExercises(ctx context.Context) (int, error)
	LogWorkout(ctx context.Context, userID int, req LogWorkoutRequest) (*Workout, error)
	ListWorkouts(ctx context.Context, userID int, page api.Page) ([]Workout, error)
	DeleteWorkout(ctx context.Context, userID, id int) error
}

type service struct {
	repo  Repository
	index search.ExerciseIndex
}

// NewService builds the workout service. index may be nil, in which case
// exercise search falls back to ILIKE.
func NewService(repo Repository, index search.ExerciseIndex) Service {
	return &service{repo: repo, index: index}
}

func toDoc(e Exercise) search.ExerciseDoc {
	return search.ExerciseDoc{
		ID:          e.ID,
		Name:        e.Name,
		MuscleGroup: e.MuscleGroup,
		Equipment:   e.Equipment,
		Description: e.Description,
	}
}

func (s *service) CreateExercise(ctx context.Context, req CreateExerciseRequest) (*Exercise, error) {
	e, err := s.repo.CreateExercise(ctx, Exercise{
		Name:        strings.TrimSpace(req.Name),
		MuscleGroup: strings.ToLower(strings.TrimSpace(req.MuscleGroup)),
		Equipment:   strings.ToLower(strings.TrimSpace(req.Equipment)),
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	if s.index != nil {
		if err := s.index.IndexExercise(ctx, toDoc(*e)); err != nil {
			logger.Error("failed to index exercise", "exercise_id", e.ID, "error", err)
		}
	}
	return e, nil
}

func (s *service) ListExercises(ctx context.Context, query string) ([]Exercise, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.repo.ListExercises(ctx)
	}

	if s.index != nil {
		ids, err := s.index.SearchExercises(ctx, query, searchLimit)
		if err == nil {
			return s.repo.GetExercisesByIDs(ctx, ids)
		}
		logger.Warn("exercise search unavailable, falling back to database", "error", err)
	}
	return s.repo.SearchExercises(ctx, query, searchLimit)
}

// ReindexExercises pushes the whole library into the search index.
func (s *service) ReindexExercises(ctx context.Context) (int, error) {
	if s.index == nil {
		return 0, nil
	}
	exercises, err := s.repo.ListExercises(ctx)
	if err != nil {
		return 0, err
	}
	for i, e := range exercises {
		if err := s.index.IndexExercise(ctx, toDoc(e)); err != nil {
			return i, err
		}
	}
	return len(exercises), nil
}

func (s *service) LogWorkout(ctx context.Context, userID int, req LogWorkoutRequest) (*Workout, error) {
	performedOn, err := time.Parse("2006-01-02", req.PerformedOn)
	if err != nil {
		return nil, ErrInvalidWorkout
	}
	if len(req.Exercises) == 0 {
		return nil, ErrInvalidWorkout
	}

	w := Workout{
		UserID:      userID,
		PerformedOn: performedOn,
		Notes:       req.Notes,
		Exercises:   make([]WorkoutExercise, 0, len(req.Exercises)),
	}
	for _, ex := range req.Exercises {
		if len(ex.Sets) == 0 {
			return nil, ErrInvalidWorkout
		}
		we := WorkoutExercise{ExerciseID: ex.ExerciseID, Sets: make([]SetEntry, 0, len(ex.Sets))}
		for _, set := range ex.Sets {
			if set.Reps < 0 || set.WeightKg < 0 {
				return nil, ErrInvalidWorkout
			}
			we.Sets = append(we.Sets, SetEntry{Reps: set.Reps, WeightKg: set.WeightKg})
		}
		w.Exercises = append(w.Exercises, we)
	}

	created, err := s.repo.CreateWorkout(ctx, w)
	if err != nil {
		return nil, err
	}
	logger.Info("workout logged", "user_id", userID, "workout_id", created.ID, "exercises", len(created.Exercises))
	return created, nil
}

func (s *service) ListWorkouts(ctx context.Context, userID int, page api.Page) ([]Workout, error) {
	return s.repo.ListWorkouts(ctx, userID, page)
}

func (s *service) DeleteWorkout(ctx context.Context, userID, id int) error {
	return s.repo.DeleteWorkout(ctx, userID, id)
}
