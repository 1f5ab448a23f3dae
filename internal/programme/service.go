package programme

import (
	"context"
	"errors"
	"strings"
	"time"

	"ptstudio/internal/events"
	"ptstudio/internal/logger"
	"ptstudio/internal/notification"
)

var ErrInvalidProgramme = errors.New("invalid programme")

type Notifier interface {
	Notify(ctx context.Context, userID int, kind, title, body string) error
}

type Service interface {
	CreateProgramme(ctx context.Context, adminID int, req CreateProgrammeRequest) (*Programme, error)
	GetProgramme(ctx context.Context, id int) (*Programme, error)
	ListProgrammes(ctx context.Context) ([]Programme, error)
	Assign(ctx context.Context, programmeID int, req AssignRequest) (*Assignment, error)
	ListAssigned(ctx context.Context, userID int) ([]AssignedProgramme, error)
}

type service struct {
	repo      Repository
	notifier  Notifier
	publisher events.Publisher
}

func NewService(repo Repository, notifier Notifier, publisher events.Publisher) Service {
	return &service{repo: repo, notifier: notifier, publisher: publisher}
}

func (s *service) CreateProgramme(ctx context.Context, adminID int, req CreateProgrammeRequest) (*Programme, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(req.Exercises) == 0 {
		return nil, ErrInvalidProgramme
	}

	p := Programme{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		CreatedBy:   &adminID,
		Exercises:   make([]ProgrammeExercise, 0, len(req.Exercises)),
	}
	for _, ex := range req.Exercises {
		if ex.Sets < 1 || ex.Reps < 1 {
			return nil, ErrInvalidProgramme
		}
		p.Exercises = append(p.Exercises, ProgrammeExercise{
			ExerciseID: ex.ExerciseID,
			Sets:       ex.Sets,
			Reps:       ex.Reps,
			Notes:      strings.TrimSpace(ex.Notes),
		})
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	logger.Info("programme created", "programme_id", created.ID, "admin_id", adminID)
	return created, nil
}

func (s *service) GetProgramme(ctx context.Context, id int) (*Programme, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListProgrammes(ctx context.Context) ([]Programme, error) {
	return s.repo.List(ctx)
}

func (s *service) Assign(ctx context.Context, programmeID int, req AssignRequest) (*Assignment, error) {
	startsOn, err := time.Parse("2006-01-02", req.StartsOn)
	if err != nil {
		return nil, ErrInvalidProgramme
	}

	p, err := s.repo.GetByID(ctx, programmeID)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.Assign(ctx, programmeID, req.UserID, startsOn)
	if err != nil {
		return nil, err
	}
	logger.Info("programme assigned", "programme_id", programmeID, "user_id", req.UserID)

	if s.notifier != nil {
		body := p.Name + " starts on " + startsOn.Format("Mon 2 Jan")
		if err := s.notifier.Notify(ctx, req.UserID, notification.KindProgramme, "New programme", body); err != nil {
			logger.Error("failed to notify programme assignment", "user_id", req.UserID, "error", err)
		}
	}
	events.Emit(ctx, s.publisher, events.TopicTraining, events.Event{
		Type:     events.ProgrammeAssigned,
		UserID:   req.UserID,
		EntityID: programmeID,
	})
	return a, nil
}

func (s *service) ListAssigned(ctx context.Context, userID int) ([]AssignedProgramme, error) {
	return s.repo.ListAssigned(ctx, userID)
}
