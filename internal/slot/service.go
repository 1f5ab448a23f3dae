package slot

import (
	"context"
	"errors"
	"time"
)

var ErrSlotInvalid = errors.New("invalid slot")

const defaultRange = 14 * 24 * time.Hour

type Service interface {
	CreateSlot(ctx context.Context, req CreateSlotRequest) (*Slot, error)
	GetSlot(ctx context.Context, id int) (*SlotView, error)
	ListSlots(ctx context.Context, from, to time.Time) ([]SlotView, error)
	ListRaw(ctx context.Context, from, to time.Time) ([]Slot, error)
	UpdateSlot(ctx context.Context, id int, req UpdateSlotRequest) (*Slot, error)
	DeleteSlot(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateSlot(ctx context.Context, req CreateSlotRequest) (*Slot, error) {
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, ErrSlotInvalid
	}

	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, ErrSlotInvalid
	}

	if !endTime.After(startTime) || req.Capacity <= 0 {
		return nil, ErrSlotInvalid
	}

	cost := req.CreditCost
	if cost <= 0 {
		cost = 1
	}
	title := req.Title
	if title == "" {
		title = "Personal training"
	}

	return s.repo.Create(ctx, Slot{
		Title:      title,
		TrainerID:  req.TrainerID,
		StartTime:  startTime.UTC(),
		EndTime:    endTime.UTC(),
		Capacity:   req.Capacity,
		CreditCost: cost,
	})
}

func (s *service) GetSlot(ctx context.Context, id int) (*SlotView, error) {
	sl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v := View(*sl)
	return &v, nil
}

func (s *service) ListSlots(ctx context.Context, from, to time.Time) ([]SlotView, error) {
	slots, err := s.ListRaw(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return Views(slots), nil
}

// ListRaw returns slots starting in [from, to). A zero bound defaults to now
// and two weeks after from.
func (s *service) ListRaw(ctx context.Context, from, to time.Time) ([]Slot, error) {
	if from.IsZero() {
		from = time.Now()
	}
	if to.IsZero() {
		to = from.Add(defaultRange)
	}
	if !to.After(from) {
		return nil, ErrSlotInvalid
	}
	return s.repo.ListBetween(ctx, from, to)
}

func (s *service) UpdateSlot(ctx context.Context, id int, req UpdateSlotRequest) (*Slot, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	title := current.Title
	if req.Title != nil && *req.Title != "" {
		title = *req.Title
	}
	capacity := current.Capacity
	if req.Capacity != nil {
		capacity = *req.Capacity
	}
	if capacity < current.BookedCount {
		return nil, ErrCapacityBelowBooked
	}

	return s.repo.Update(ctx, id, title, capacity)
}

func (s *service) DeleteSlot(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
