package database_test

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"studentdesk/app/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestGetUserByUsername(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("imaad").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "created_at", "updated_at"}).
			AddRow("user-1", "imaad", "$2a$14$hash", now, now))

	user, err := database.GetUserByUsername(db, "imaad")
	require.NoError(t, err)
	require.Equal(t, "user-1", user.ID)
	require.Equal(t, "imaad", user.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := database.GetUserByUsername(db, "ghost")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionLifecycle(t *testing.T) {
	db, mock := newMockDB(t)

	expires := time.Now().Add(24 * time.Hour)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions")).
		WithArgs("session-1", "user-1", expires, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions WHERE id = $1 AND expires_at > NOW()")).
		WithArgs("session-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "expires_at", "created_at"}).
			AddRow("session-1", "user-1", expires, time.Now()))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE id = $1")).
		WithArgs("session-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, database.CreateSession(db, "session-1", "user-1", expires))

	session, err := database.GetSessionByID(db, "session-1")
	require.NoError(t, err)
	require.Equal(t, "user-1", session.UserID)

	require.NoError(t, database.DeleteSession(db, "session-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
