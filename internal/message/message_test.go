package message

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"ptstudio/internal/api"
	"ptstudio/internal/auth"
	"ptstudio/internal/logger"
	"ptstudio/internal/notification"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var messageCols = []string{"id", "sender_id", "recipient_id", "body", "read_at", "created_at"}

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })
	return NewRepository(sqlxDB), mock
}

func TestRepository_CreateUnknownRecipient(t *testing.T) {
	repo, mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO messages (sender_id, recipient_id, body)")).
		WithArgs(7, 99, "hi").
		WillReturnError(&pq.Error{Code: "23503"})

	_, err := repo.Create(context.Background(), 7, 99, "hi")
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestRepository_ListConversationOldestFirst(t *testing.T) {
	repo, mock := setupMock(t)
	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC, id ASC")).
		WithArgs(7, 1, 50, 0).
		WillReturnRows(sqlmock.NewRows(messageCols).
			AddRow(1, 7, 1, "morning", nil, now.Add(-time.Hour)).
			AddRow(2, 1, 7, "see you at 9", nil, now))

	got, err := repo.ListConversation(context.Background(), 7, 1, api.Page{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "see you at 9", got[1].Body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkRead(t *testing.T) {
	repo, mock := setupMock(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE messages SET read_at = NOW()")).
		WithArgs(7, 1).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.MarkRead(context.Background(), 7, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestRedisBroker_PublishesOnUserChannel(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	m := Message{ID: 5, SenderID: 7, RecipientID: 1, Body: "hi", CreatedAt: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)}
	data, err := json.Marshal(m)
	require.NoError(t, err)

	mock.ExpectPublish("messages:1", string(data)).SetVal(1)

	require.NoError(t, NewRedisBroker(rdb).Publish(context.Background(), 1, m))
	assert.NoError(t, mock.ExpectationsWereMet())
}

type fakeBroker struct {
	published []int
	stream    chan Message
	closed    bool
	err       error
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{stream: make(chan Message, 4)}
}

func (b *fakeBroker) Publish(ctx context.Context, userID int, m Message) error {
	b.published = append(b.published, userID)
	return b.err
}

func (b *fakeBroker) Subscribe(ctx context.Context, userID int) (<-chan Message, func() error) {
	return b.stream, func() error {
		b.closed = true
		return nil
	}
}

type MockRepository struct{ mock.Mock }

func (m *MockRepository) Create(ctx context.Context, senderID, recipientID int, body string) (*Message, error) {
	args := m.Called(ctx, senderID, recipientID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Message), args.Error(1)
}

func (m *MockRepository) ListConversation(ctx context.Context, userID, peerID int, page api.Page) ([]Message, error) {
	args := m.Called(ctx, userID, peerID, page)
	return args.Get(0).([]Message), args.Error(1)
}

func (m *MockRepository) ListThreads(ctx context.Context, userID int) ([]Thread, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Thread), args.Error(1)
}

func (m *MockRepository) MarkRead(ctx context.Context, userID, peerID int) (int64, error) {
	args := m.Called(ctx, userID, peerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountUnread(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, userID int, kind, title, body string) error {
	return m.Called(ctx, userID, kind, title, body).Error(0)
}

func TestService_SendPublishesToBothParticipants(t *testing.T) {
	repo := new(MockRepository)
	notifier := new(MockNotifier)
	broker := newFakeBroker()
	broker.err = errors.New("redis down")

	repo.On("Create", mock.Anything, 7, 1, "Running late").
		Return(&Message{ID: 5, SenderID: 7, RecipientID: 1, Body: "Running late"}, nil)
	notifier.On("Notify", mock.Anything, 1, notification.KindMessage, "New message", "Running late").Return(nil)

	m, err := NewService(repo, broker, notifier).Send(context.Background(), 7, SendRequest{RecipientID: 1, Body: "  Running late "})
	require.NoError(t, err, "publish failures do not fail the send")
	assert.Equal(t, 5, m.ID)
	assert.Equal(t, []int{7, 1}, broker.published)
	notifier.AssertExpectations(t)
}

func TestService_SendRejects(t *testing.T) {
	svc := NewService(new(MockRepository), nil, nil)

	_, err := svc.Send(context.Background(), 7, SendRequest{RecipientID: 1, Body: "   "})
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = svc.Send(context.Background(), 7, SendRequest{RecipientID: 7, Body: "me"})
	assert.ErrorIs(t, err, ErrSelfMessage)
}

func TestPreviewTruncates(t *testing.T) {
	long := strings.Repeat("é", 200)
	p := preview(long)
	assert.Len(t, []rune(p), previewLength)
	assert.Equal(t, "short", preview("short"))
}

type streamRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *streamRecorder) CloseNotify() <-chan bool { return r.closed }

func clientRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		auth.SetSession(c, auth.Session{UserID: 7, Role: auth.RoleClient})
		c.Next()
	})
	router.GET("/messages/stream", h.Stream)
	return router
}

func TestHandler_StreamWritesEvents(t *testing.T) {
	broker := newFakeBroker()
	broker.stream <- Message{ID: 5, SenderID: 1, RecipientID: 7, Body: "hi"}
	close(broker.stream)

	h := NewHandler(NewService(new(MockRepository), broker, nil))
	h.heartbeat = time.Hour

	rec := &streamRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool)}
	clientRouter(h).ServeHTTP(rec, httptest.NewRequest("GET", "/messages/stream", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "event:message")
	assert.Contains(t, rec.Body.String(), `"body":"hi"`)
	assert.True(t, broker.closed)
}

func TestHandler_StreamWithoutBroker(t *testing.T) {
	h := NewHandler(NewService(new(MockRepository), nil, nil))

	rec := httptest.NewRecorder()
	clientRouter(h).ServeHTTP(rec, httptest.NewRequest("GET", "/messages/stream", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
