package blockbooking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"ptstudio/internal/auth"
	"ptstudio/internal/booking"
	"ptstudio/internal/credits"
	"ptstudio/internal/slot"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct{ mock.Mock }

func (m *MockRepository) Create(ctx context.Context, r Rule) (*Rule, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Rule), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Rule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Rule), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, activeOnly bool) ([]Rule, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]Rule), args.Error(1)
}

func (m *MockRepository) SetActive(ctx context.Context, id int, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *MockRepository) OccurrenceStatus(ctx context.Context, ruleID, slotID int) (string, error) {
	args := m.Called(ctx, ruleID, slotID)
	return args.String(0), args.Error(1)
}

type MockSlots struct{ mock.Mock }

func (m *MockSlots) FindByStart(ctx context.Context, start time.Time) (*slot.Slot, error) {
	args := m.Called(ctx, start)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*slot.Slot), args.Error(1)
}

func (m *MockSlots) Create(ctx context.Context, s slot.Slot) (*slot.Slot, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*slot.Slot), args.Error(1)
}

type MockBooker struct{ mock.Mock }

func (m *MockBooker) BookForBlock(ctx context.Context, userID, slotID, blockBookingID int) (*booking.BookResponse, error) {
	args := m.Called(ctx, userID, slotID, blockBookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.BookResponse), args.Error(1)
}

func TestService_GenerateOutcomes(t *testing.T) {
	repo := new(MockRepository)
	slots := new(MockSlots)
	booker := new(MockBooker)

	// Mondays 2025-03-03 .. 2025-03-24 at 07:00 UTC; "now" is between the first two
	rule := &Rule{ID: 5, UserID: 7, Weekday: 1, StartTime: "07:00", DurationMinutes: 60,
		StartsOn: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), Weeks: 4, Active: true}
	w1 := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	w2 := w1.AddDate(0, 0, 7)
	w3 := w2.AddDate(0, 0, 7)

	repo.On("GetByID", mock.Anything, 5).Return(rule, nil)
	repo.On("OccurrenceStatus", mock.Anything, 5, mock.Anything).Return("", nil)

	slots.On("FindByStart", mock.Anything, w1).Return(&slot.Slot{ID: 31}, nil)
	booker.On("BookForBlock", mock.Anything, 7, 31, 5).Return(&booking.BookResponse{Booking: &booking.Booking{ID: 90}}, nil)

	slots.On("FindByStart", mock.Anything, w2).Return(nil, slot.ErrSlotNotFound)
	slots.On("Create", mock.Anything, slot.Slot{
		Title: "Block booking", StartTime: w2, EndTime: w2.Add(time.Hour), Capacity: 1, CreditCost: 1,
	}).Return(&slot.Slot{ID: 32}, nil)
	booker.On("BookForBlock", mock.Anything, 7, 32, 5).Return(nil, credits.ErrInsufficientCredits)

	slots.On("FindByStart", mock.Anything, w3).Return(&slot.Slot{ID: 33}, nil)
	booker.On("BookForBlock", mock.Anything, 7, 33, 5).Return(nil, booking.ErrAlreadyBooked)

	svc := NewService(repo, slots, booker, time.UTC).(*service)
	svc.now = func() time.Time { return time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC) }

	resp, err := svc.Generate(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, resp.Outcomes, 4)

	assert.Equal(t, "skipped:past", resp.Outcomes[0].Status)
	assert.Equal(t, OutcomeBooked, resp.Outcomes[1].Status)
	assert.Equal(t, 90, resp.Outcomes[1].BookingID)
	assert.Equal(t, "skipped:insufficient_credits", resp.Outcomes[2].Status)
	assert.Equal(t, 32, resp.Outcomes[2].SlotID)
	assert.Equal(t, OutcomeAlreadyBooked, resp.Outcomes[3].Status)

	slots.AssertExpectations(t)
	booker.AssertExpectations(t)
}

func TestService_GenerateSkipsCancelledOccurrence(t *testing.T) {
	repo := new(MockRepository)
	slots := new(MockSlots)
	booker := new(MockBooker)

	rule := &Rule{ID: 5, UserID: 7, Weekday: 1, StartTime: "07:00", DurationMinutes: 60,
		StartsOn: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Weeks: 3, Active: true}
	w1 := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	w2 := w1.AddDate(0, 0, 7)
	w3 := w2.AddDate(0, 0, 7)

	repo.On("GetByID", mock.Anything, 5).Return(rule, nil)
	slots.On("FindByStart", mock.Anything, w1).Return(&slot.Slot{ID: 31}, nil)
	slots.On("FindByStart", mock.Anything, w2).Return(&slot.Slot{ID: 32}, nil)
	slots.On("FindByStart", mock.Anything, w3).Return(&slot.Slot{ID: 33}, nil)

	repo.On("OccurrenceStatus", mock.Anything, 5, 31).Return(booking.StatusBooked, nil)
	repo.On("OccurrenceStatus", mock.Anything, 5, 32).Return(booking.StatusLateCancelled, nil)
	repo.On("OccurrenceStatus", mock.Anything, 5, 33).Return("", nil)
	booker.On("BookForBlock", mock.Anything, 7, 33, 5).Return(&booking.BookResponse{Booking: &booking.Booking{ID: 91}}, nil)

	svc := NewService(repo, slots, booker, time.UTC).(*service)
	svc.now = func() time.Time { return time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC) }

	resp, err := svc.Generate(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, resp.Outcomes, 3)

	assert.Equal(t, OutcomeAlreadyBooked, resp.Outcomes[0].Status)
	assert.Equal(t, OutcomeCancelled, resp.Outcomes[1].Status)
	assert.Equal(t, 32, resp.Outcomes[1].SlotID)
	assert.Equal(t, OutcomeBooked, resp.Outcomes[2].Status)

	booker.AssertNotCalled(t, "BookForBlock", mock.Anything, 7, 31, 5)
	booker.AssertNotCalled(t, "BookForBlock", mock.Anything, 7, 32, 5)
	booker.AssertExpectations(t)
}

func TestRepository_OccurrenceStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	defer sqlxDB.Close()

	query := regexp.QuoteMeta("SELECT status FROM bookings")
	mock.ExpectQuery(query).WithArgs(5, 32).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelled"))
	mock.ExpectQuery(query).WithArgs(5, 33).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	repo := NewRepository(sqlxDB)
	status, err := repo.OccurrenceStatus(context.Background(), 5, 32)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", status)

	status, err = repo.OccurrenceStatus(context.Background(), 5, 33)
	require.NoError(t, err)
	assert.Empty(t, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_GenerateAllContinuesPastBrokenRule(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything, true).Return([]Rule{
		{ID: 1, Weekday: 9, StartTime: "07:00", Weeks: 1},
		{ID: 2, Weekday: 1, StartTime: "07:00", Weeks: 1, StartsOn: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	out, err := NewService(repo, new(MockSlots), new(MockBooker), time.UTC).GenerateAll(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].RuleID)
	assert.Equal(t, "skipped:past", out[0].Outcomes[0].Status)
}

func TestService_CreateRule(t *testing.T) {
	repo := new(MockRepository)
	monday := 1
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r Rule) bool {
		return r.UserID == 7 && r.Weekday == 1 && *r.CreatedBy == 2 && r.StartsOn.Format("2006-01-02") == "2025-03-03"
	})).Return(&Rule{ID: 1}, nil)

	_, err := NewService(repo, nil, nil, time.UTC).CreateRule(context.Background(), 2, CreateRuleRequest{
		UserID: 7, Weekday: &monday, StartTime: "07:00", DurationMinutes: 60, StartsOn: "2025-03-03", Weeks: 4,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)

	_, err = NewService(repo, nil, nil, time.UTC).CreateRule(context.Background(), 2, CreateRuleRequest{
		UserID: 7, Weekday: &monday, StartTime: "7am", DurationMinutes: 60, StartsOn: "2025-03-03", Weeks: 4,
	})
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestRepository_SetActiveMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	defer sqlxDB.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE block_bookings SET active = $1 WHERE id = $2")).WithArgs(false, 9).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewRepository(sqlxDB).SetActive(context.Background(), 9, false)
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestRepository_ListActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	defer sqlxDB.Close()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM block_bookings WHERE active = TRUE ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "weekday", "start_time", "duration_minutes", "starts_on", "weeks", "active", "created_by", "created_at"}).
			AddRow(1, 7, 1, "07:00", 60, now, 4, true, 2, now))

	rules, err := NewRepository(sqlxDB).List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "07:00", rules[0].StartTime)
	assert.Equal(t, 2, *rules[0].CreatedBy)
}

func TestHandler_CreateValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		auth.SetSession(c, auth.Session{UserID: 2, Role: auth.RoleAdmin})
		c.Next()
	})
	router.POST("/admin/block-bookings", NewHandler(NewService(new(MockRepository), nil, nil, time.UTC)).Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/block-bookings",
		strings.NewReader(`{"user_id":7,"weekday":1,"start_time":"07:00","duration_minutes":60,"starts_on":"2025-03-03","weeks":0}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GenerateNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, 9).Return(nil, ErrRuleNotFound)

	router := gin.New()
	router.POST("/admin/block-bookings/:id/generate", NewHandler(NewService(repo, nil, nil, time.UTC)).Generate)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/admin/block-bookings/9/generate", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

