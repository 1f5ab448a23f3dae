package pack

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"ptstudio/internal/auth"
	"ptstudio/internal/credits"
	"ptstudio/internal/events"

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

func TestRepository_PurchaseCreditsPackPlusBonusOnce(t *testing.T) {
	repo, mock := setupMock(t)
	now := time.Now()
	p := Pack{ID: 2, Name: "10 pack", Credits: 10, BonusCredits: 1, PriceCents: 45000, Currency: "GBP", Active: true}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments (user_id, pack_id, amount_cents, currency, status, provider, reference)")).
		WithArgs(7, 2, int64(45000), "GBP", PaymentSucceeded, ProviderManual, "pay_x").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "pack_id", "amount_cents", "currency", "status", "provider", "reference", "created_at"}).
			AddRow(1, 7, 2, 45000, "GBP", PaymentSucceeded, ProviderManual, "pay_x", now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM credit_balances WHERE user_id = $1 FOR UPDATE")).WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "balance", "created_at", "updated_at"}).AddRow(3, 7, 2, now, now))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE credit_balances SET balance = $1")).WithArgs(13, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO credit_transactions")).
		WithArgs(7, 11, credits.TypePurchase, 13, "pay_x").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "amount", "type", "balance_after", "reference", "created_at"}).
			AddRow(8, 7, 11, credits.TypePurchase, 13, "pay_x", now))
	mock.ExpectCommit()

	payment, tx, err := repo.Purchase(context.Background(), 7, p, "pay_x")
	require.NoError(t, err)
	assert.Equal(t, PaymentSucceeded, payment.Status)
	assert.Equal(t, 11, tx.Amount)
	assert.Equal(t, 13, tx.BalanceAfter)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PurchaseRollsBackWhenCreditFails(t *testing.T) {
	repo, mock := setupMock(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payments")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "pack_id", "amount_cents", "currency", "status", "provider", "reference", "created_at"}).
			AddRow(1, 7, 2, 100, "GBP", PaymentSucceeded, ProviderManual, "pay_y", now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM credit_balances")).WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	_, _, err := repo.Purchase(context.Background(), 7, Pack{ID: 2, Credits: 1, PriceCents: 100, Currency: "GBP"}, "pay_y")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type MockRepository struct{ mock.Mock }

func (m *MockRepository) Create(ctx context.Context, p Pack) (*Pack, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Pack), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, p Pack) (*Pack, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Pack), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Pack, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Pack), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, activeOnly bool) ([]Pack, error) {
	args := m.Called(ctx, activeOnly)
	return args.Get(0).([]Pack), args.Error(1)
}

func (m *MockRepository) Purchase(ctx context.Context, userID int, p Pack, reference string) (*Payment, *credits.Transaction, error) {
	args := m.Called(ctx, userID, p, reference)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*Payment), args.Get(1).(*credits.Transaction), args.Error(2)
}

func (m *MockRepository) ListPayments(ctx context.Context, userID int) ([]Payment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Payment), args.Error(1)
}

type MockRewarder struct{ mock.Mock }

func (m *MockRewarder) RewardFirstPurchase(ctx context.Context, referredID int) error {
	return m.Called(ctx, referredID).Error(0)
}

func TestService_Purchase(t *testing.T) {
	repo := new(MockRepository)
	rewarder := new(MockRewarder)
	p := &Pack{ID: 2, Name: "5 pack", Credits: 5, BonusCredits: 0, PriceCents: 25000, Currency: "GBP", Active: true}

	repo.On("GetByID", mock.Anything, 2).Return(p, nil)
	repo.On("Purchase", mock.Anything, 7, *p, mock.MatchedBy(func(ref string) bool {
		return strings.HasPrefix(ref, "pay_")
	})).Return(&Payment{ID: 1}, &credits.Transaction{Amount: 5, BalanceAfter: 5}, nil)
	rewarder.On("RewardFirstPurchase", mock.Anything, 7).Return(errors.New("db hiccup"))

	resp, err := NewService(repo, rewarder, events.Noop{}).Purchase(context.Background(), 7, 2)
	require.NoError(t, err, "referral failure must not fail the purchase")
	assert.Equal(t, 5, resp.Balance)

	repo.AssertExpectations(t)
	rewarder.AssertExpectations(t)
}

func TestService_PurchaseInactivePack(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, 3).Return(&Pack{ID: 3, Active: false}, nil)

	_, err := NewService(repo, nil, events.Noop{}).Purchase(context.Background(), 7, 3)
	assert.ErrorIs(t, err, ErrPackInactive)
	repo.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdatePackAppliesOnlyGivenFields(t *testing.T) {
	repo := new(MockRepository)
	existing := &Pack{ID: 2, Name: "10 pack", Credits: 10, BonusCredits: 1, PriceCents: 45000, Active: true}
	inactive := false

	repo.On("GetByID", mock.Anything, 2).Return(existing, nil)
	repo.On("Update", mock.Anything, Pack{ID: 2, Name: "10 pack", Credits: 10, BonusCredits: 1, PriceCents: 45000, Active: false}).
		Return(&Pack{ID: 2, Active: false}, nil)

	_, err := NewService(repo, nil, events.Noop{}).UpdatePack(context.Background(), 2, UpdatePackRequest{Active: &inactive})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestHandler_PurchaseNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, 99).Return(nil, ErrPackNotFound)

	h := NewHandler(NewService(repo, nil, events.Noop{}))
	router := gin.New()
	router.Use(func(c *gin.Context) {
		auth.SetSession(c, auth.Session{UserID: 7, Role: auth.RoleClient})
		c.Next()
	})
	router.POST("/packs/:id/purchase", h.Purchase)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("POST", "/packs/99/purchase", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
