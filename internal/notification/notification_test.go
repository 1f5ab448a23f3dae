package notification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"ptstudio/internal/api"
	"ptstudio/internal/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })
	return NewRepository(sqlxDB), mock
}

var columns = []string{"id", "user_id", "kind", "title", "body", "read_at", "created_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := setupMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications (user_id, kind, title, body) VALUES ($1, $2, $3, $4)")).
		WithArgs(7, KindMessage, "New message", "hi").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(1, 7, KindMessage, "New message", "hi", nil, now))

	n, err := repo.Create(context.Background(), 7, KindMessage, "New message", "hi")
	require.NoError(t, err)
	assert.Equal(t, 1, n.ID)
	assert.Nil(t, n.ReadAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkRead(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET read_at = COALESCE(read_at, NOW()) WHERE id = $1 AND user_id = $2")).
		WithArgs(3, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.MarkRead(context.Background(), 7, 3))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET read_at")).
		WithArgs(4, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.MarkRead(context.Background(), 7, 4), ErrNotificationNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

type MockRepository struct{ mock.Mock }

func (m *MockRepository) Create(ctx context.Context, userID int, kind, title, body string) (*Notification, error) {
	args := m.Called(ctx, userID, kind, title, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Notification), args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID, limit, offset int) ([]Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]Notification), args.Error(1)
}

func (m *MockRepository) CountUnread(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) MarkRead(ctx context.Context, userID, id int) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockRepository) MarkAllRead(ctx context.Context, userID int) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_ListNormalizesPage(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListByUser", mock.Anything, 7, 50, 0).Return([]Notification{{ID: 1}}, nil)
	repo.On("CountUnread", mock.Anything, 7).Return(1, nil)

	resp, err := NewService(repo).List(context.Background(), 7, api.Page{Limit: 0, Offset: -1})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Unread)
	repo.AssertExpectations(t)
}

func withSession(userID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.SetSession(c, auth.Session{UserID: userID, Role: auth.RoleClient})
		c.Next()
	}
}

func TestHandler_MarkRead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := new(MockRepository)
	repo.On("MarkRead", mock.Anything, 7, 3).Return(nil)
	repo.On("MarkRead", mock.Anything, 7, 4).Return(ErrNotificationNotFound)

	h := NewHandler(NewService(repo))
	router := gin.New()
	router.Use(withSession(7))
	router.POST("/notifications/:id/read", h.MarkRead)

	tests := []struct {
		path   string
		status int
	}{
		{"/notifications/3/read", http.StatusNoContent},
		{"/notifications/4/read", http.StatusNotFound},
		{"/notifications/abc/read", http.StatusBadRequest},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", tt.path, nil))
		assert.Equal(t, tt.status, w.Code, tt.path)
	}
}
