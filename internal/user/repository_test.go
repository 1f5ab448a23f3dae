package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"ptstudio/internal/api"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileCols = []string{"id", "email", "password_hash", "full_name", "phone", "role", "avatar_url", "referral_code", "created_at", "updated_at"}

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })
	return NewRepository(sqlxDB), mock
}

func TestRepository_CreateAddsBalance(t *testing.T) {
	repo, mock := setupMock(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profiles")).
		WithArgs("sam@example.com", "hash", "Sam", "", "client", "AB12CD34").
		WillReturnRows(sqlmock.NewRows(profileCols).
			AddRow(1, "sam@example.com", "hash", "Sam", "", "client", nil, "AB12CD34", now, now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO credit_balances (user_id, balance) VALUES ($1, 0)")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	p, err := repo.Create(context.Background(), Profile{
		Email: "sam@example.com", PasswordHash: "hash", FullName: "Sam", Role: "client", ReferralCode: "AB12CD34",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateDuplicateEmail(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profiles")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "profiles_email_key"})
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), Profile{Email: "sam@example.com"})
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByIDNotFound(t *testing.T) {
	repo, mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM profiles WHERE id = $1")).WithArgs(9).
		WillReturnRows(sqlmock.NewRows(profileCols))

	_, err := repo.FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRepository_SetAvatarReturnsPrevious(t *testing.T) {
	repo, mock := setupMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT avatar_url FROM profiles WHERE id = $1 FOR UPDATE")).WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"avatar_url"}).AddRow("https://cdn/old.jpg"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE profiles SET avatar_url = $2")).WithArgs(7, "https://cdn/new.jpg").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	previous, err := repo.SetAvatar(context.Background(), 7, "https://cdn/new.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/old.jpg", previous)
}

func TestRepository_GetClientProfileDefaultsToEmpty(t *testing.T) {
	repo, mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM client_profiles WHERE user_id = $1")).WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	cp, err := repo.GetClientProfile(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, cp.UserID)
	assert.Nil(t, cp.DateOfBirth)
}

func TestRepository_ListClients(t *testing.T) {
	repo, mock := setupMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.role = 'client'")).WithArgs("sam", 50, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "full_name", "phone", "balance", "created_at"}).
			AddRow(7, "sam@example.com", "Sam", "", 3, time.Now()))

	clients, err := repo.ListClients(context.Background(), "sam", api.Page{})
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, 3, clients[0].Balance)
}
