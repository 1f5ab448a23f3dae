package analytics

import (
	"context"
	"time"
)

type Service interface {
	Progress(ctx context.Context, userID int, window Window) ([]Progress, error)
	Weekly(ctx context.Context, userID int, exercise string, window Window) ([]WeekPoint, error)
}

type service struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

func NewService(repo Repository, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{repo: repo, loc: loc, now: time.Now}
}

func (s *service) Progress(ctx context.Context, userID int, window Window) ([]Progress, error) {
	since := window.Since(s.now().In(s.loc))
	points, err := s.repo.ListSetPoints(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	return ExerciseProgress(points, since), nil
}

// Weekly builds the full weekly history and keeps the trailing window.
func (s *service) Weekly(ctx context.Context, userID int, exercise string, window Window) ([]WeekPoint, error) {
	points, err := s.repo.ListSetPoints(ctx, userID, time.Time{})
	if err != nil {
		return nil, err
	}
	series := WeeklySeries(points, exercise, 0, s.now().In(s.loc))
	return Trailing(series, window), nil
}
