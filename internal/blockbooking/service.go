package blockbooking

import (
	"context"
	"errors"
	"time"

	"ptstudio/internal/booking"
	"ptstudio/internal/credits"
	"ptstudio/internal/logger"
	"ptstudio/internal/slot"
)

// SlotStore finds or creates the slot an occurrence is booked on.
type SlotStore interface {
	FindByStart(ctx context.Context, start time.Time) (*slot.Slot, error)
	Create(ctx context.Context, s slot.Slot) (*slot.Slot, error)
}

type Booker interface {
	BookForBlock(ctx context.Context, userID, slotID, blockBookingID int) (*booking.BookResponse, error)
}

type Service interface {
	CreateRule(ctx context.Context, adminID int, req CreateRuleRequest) (*Rule, error)
	ListRules(ctx context.Context, activeOnly bool) ([]Rule, error)
	Deactivate(ctx context.Context, id int) error
	Generate(ctx context.Context, id int) (*GenerateResponse, error)
	GenerateAll(ctx context.Context) ([]GenerateResponse, error)
}

type service struct {
	repo   Repository
	slots  SlotStore
	booker Booker
	loc    *time.Location
	now    func() time.Time
}

func NewService(repo Repository, slots SlotStore, booker Booker, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		repo:   repo,
		slots:  slots,
		booker: booker,
		loc:    loc,
		now:    time.Now,
	}
}

func (s *service) CreateRule(ctx context.Context, adminID int, req CreateRuleRequest) (*Rule, error) {
	if req.Weekday == nil {
		return nil, ErrInvalidRule
	}
	startsOn, err := time.ParseInLocation("2006-01-02", req.StartsOn, s.loc)
	if err != nil {
		return nil, ErrInvalidRule
	}

	rule := Rule{
		UserID:          req.UserID,
		Weekday:         *req.Weekday,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		StartsOn:        startsOn,
		Weeks:           req.Weeks,
		CreatedBy:       &adminID,
	}
	if _, err := Occurrences(rule, s.loc); err != nil {
		return nil, err
	}
	if rule.DurationMinutes <= 0 {
		return nil, ErrInvalidRule
	}

	return s.repo.Create(ctx, rule)
}

func (s *service) ListRules(ctx context.Context, activeOnly bool) ([]Rule, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *service) Deactivate(ctx context.Context, id int) error {
	return s.repo.SetActive(ctx, id, false)
}

func (s *service) Generate(ctx context.Context, id int) (*GenerateResponse, error) {
	rule, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, *rule)
}

// GenerateAll runs every active rule. A rule that fails is logged and the
// rest still run.
func (s *service) GenerateAll(ctx context.Context) ([]GenerateResponse, error) {
	rules, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	out := make([]GenerateResponse, 0, len(rules))
	for _, rule := range rules {
		resp, err := s.generate(ctx, rule)
		if err != nil {
			logger.Error("block booking generation failed", "rule_id", rule.ID, "error", err)
			continue
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (s *service) generate(ctx context.Context, rule Rule) (*GenerateResponse, error) {
	starts, err := Occurrences(rule, s.loc)
	if err != nil {
		return nil, err
	}

	now := s.now()
	resp := &GenerateResponse{RuleID: rule.ID, Outcomes: make([]Outcome, 0, len(starts))}
	for _, start := range starts {
		if !start.After(now) {
			resp.Outcomes = append(resp.Outcomes, Outcome{Start: start, Status: "skipped:past"})
			continue
		}
		resp.Outcomes = append(resp.Outcomes, s.bookOccurrence(ctx, rule, start))
	}

	logger.Info("block booking generated", "rule_id", rule.ID, "user_id", rule.UserID, "occurrences", len(starts))
	return resp, nil
}

func (s *service) bookOccurrence(ctx context.Context, rule Rule, start time.Time) Outcome {
	out := Outcome{Start: start}

	sl, err := s.slots.FindByStart(ctx, start)
	if errors.Is(err, slot.ErrSlotNotFound) {
		sl, err = s.slots.Create(ctx, slot.Slot{
			Title:      "Block booking",
			StartTime:  start.UTC(),
			EndTime:    start.Add(time.Duration(rule.DurationMinutes) * time.Minute).UTC(),
			Capacity:   1,
			CreditCost: 1,
		})
	}
	if err != nil {
		logger.Error("block booking slot lookup failed", "rule_id", rule.ID, "start", start, "error", err)
		out.Status = "skipped:error"
		return out
	}
	out.SlotID = sl.ID

	// An occurrence the client cancelled stays cancelled.
	prior, err := s.repo.OccurrenceStatus(ctx, rule.ID, sl.ID)
	if err != nil {
		logger.Error("block booking occurrence lookup failed", "rule_id", rule.ID, "slot_id", sl.ID, "error", err)
		out.Status = "skipped:error"
		return out
	}
	switch prior {
	case "":
	case booking.StatusBooked:
		out.Status = OutcomeAlreadyBooked
		return out
	default:
		out.Status = OutcomeCancelled
		return out
	}

	resp, err := s.booker.BookForBlock(ctx, rule.UserID, sl.ID, rule.ID)
	switch {
	case err == nil:
		out.BookingID = resp.Booking.ID
		out.Status = OutcomeBooked
	case errors.Is(err, booking.ErrAlreadyBooked):
		out.Status = OutcomeAlreadyBooked
	case errors.Is(err, booking.ErrSlotFull):
		out.Status = "skipped:slot_full"
	case errors.Is(err, credits.ErrInsufficientCredits):
		out.Status = "skipped:insufficient_credits"
	case errors.Is(err, booking.ErrSlotInPast):
		out.Status = "skipped:past"
	default:
		logger.Error("block booking occurrence failed", "rule_id", rule.ID, "slot_id", sl.ID, "error", err)
		out.Status = "skipped:error"
	}
	return out
}
