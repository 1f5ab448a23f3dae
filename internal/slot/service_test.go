package slot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct{ mock.Mock }

func (m *MockRepository) Create(ctx context.Context, s Slot) (*Slot, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Slot), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Slot), args.Error(1)
}

func (m *MockRepository) FindByStart(ctx context.Context, start time.Time) (*Slot, error) {
	args := m.Called(ctx, start)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Slot), args.Error(1)
}

func (m *MockRepository) ListBetween(ctx context.Context, from, to time.Time) ([]Slot, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]Slot), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, title string, capacity int) (*Slot, error) {
	args := m.Called(ctx, id, title, capacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Slot), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func TestService_CreateSlotDefaults(t *testing.T) {
	repo := new(MockRepository)
	start := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

	repo.On("Create", mock.Anything, Slot{
		Title:      "Personal training",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Capacity:   1,
		CreditCost: 1,
	}).Return(&Slot{ID: 1}, nil)

	_, err := NewService(repo).CreateSlot(context.Background(), CreateSlotRequest{
		StartTime: "2025-03-03T09:00:00Z",
		EndTime:   "2025-03-03T10:00:00Z",
		Capacity:  1,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_CreateSlotInvalid(t *testing.T) {
	svc := NewService(new(MockRepository))

	cases := []CreateSlotRequest{
		{StartTime: "bad", EndTime: "2025-03-03T10:00:00Z", Capacity: 1},
		{StartTime: "2025-03-03T10:00:00Z", EndTime: "2025-03-03T09:00:00Z", Capacity: 1},
		{StartTime: "2025-03-03T09:00:00Z", EndTime: "2025-03-03T10:00:00Z", Capacity: 0},
	}
	for _, req := range cases {
		_, err := svc.CreateSlot(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotInvalid)
	}
}

func TestService_ListSlotsRejectsInvertedRange(t *testing.T) {
	from := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	_, err := NewService(new(MockRepository)).ListSlots(context.Background(), from, from.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrSlotInvalid)
}

func TestService_UpdateSlotCapacityBelowBookings(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, 3).Return(&Slot{ID: 3, Title: "PT", Capacity: 4, BookedCount: 3}, nil)
	two := 2

	_, err := NewService(repo).UpdateSlot(context.Background(), 3, UpdateSlotRequest{Capacity: &two})
	assert.ErrorIs(t, err, ErrCapacityBelowBooked)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_ListMarksFullSlotsForWaitlist(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := new(MockRepository)
	from := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	repo.On("ListBetween", mock.Anything, from, to).Return([]Slot{
		{ID: 1, Capacity: 1, BookedCount: 1},
		{ID: 2, Capacity: 2, BookedCount: 1},
	}, nil)

	router := gin.New()
	router.GET("/slots", NewHandler(NewService(repo)).List)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/slots?from=2025-03-03T00:00:00Z&to=2025-03-10T00:00:00Z", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var views []SlotView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, ActionWaitlist, views[0].Action)
	assert.True(t, views[0].IsFull)
	assert.Equal(t, ActionBook, views[1].Action)
	assert.Equal(t, 1, views[1].Available)
}

func TestHandler_ListBadRange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/slots", NewHandler(NewService(new(MockRepository))).List)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/slots?from=yesterday", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := new(MockRepository)
	repo.On("Delete", mock.Anything, 4).Return(ErrSlotHasBookings)

	router := gin.New()
	router.DELETE("/admin/slots/:id", NewHandler(NewService(repo)).Delete)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("DELETE", "/admin/slots/4", strings.NewReader("")))
	assert.Equal(t, http.StatusConflict, w.Code)
}
