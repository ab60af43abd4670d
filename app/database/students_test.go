package database_test

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"studentdesk/app/database"
	"studentdesk/app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func studentColumns() []string {
	return []string{"id", "name", "phone_number", "email", "created_at", "updated_at"}
}

func TestGetAllStudents(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, phone_number, email, created_at, updated_at")).
		WillReturnRows(sqlmock.NewRows(studentColumns()).
			AddRow("id-1", "Imaad Dean", "0700123456", "imaad@example.com", now, now).
			AddRow("id-2", "Swadiq Juma", "0700654321", "swadiq@example.com", now, now))

	students, err := database.GetAllStudents(db)
	require.NoError(t, err)
	require.Len(t, students, 2)
	require.Equal(t, "Imaad Dean", students[0].Name)
	require.Equal(t, "0700654321", students[1].PhoneNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateStudentReturnsGeneratedID(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO students (name, phone_number, email) VALUES ($1, $2, $3) RETURNING id")).
		WithArgs("Imaad Dean", "0700123456", "imaad@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("id-new"))

	student := &models.Student{
		Name:        "Imaad Dean",
		PhoneNumber: "0700123456",
		Email:       "imaad@example.com",
	}
	require.NoError(t, database.CreateStudent(db, student))
	require.Equal(t, "id-new", student.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStudentMissingRow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE students SET")).
		WithArgs("Imaad Dean", "0700123456", "imaad@example.com", "missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := database.UpdateStudent(db, &models.Student{
		ID:          "missing-id",
		Name:        "Imaad Dean",
		PhoneNumber: "0700123456",
		Email:       "imaad@example.com",
	})
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveStudentCopiesThenDeletes(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO archived_students (name, phone_number, email)")).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE id = $1")).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, database.ArchiveStudent(db, "id-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveStudentMissingRowRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO archived_students (name, phone_number, email)")).
		WithArgs("missing-id").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := database.ArchiveStudent(db, "missing-id")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveStudentDeleteFaultRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO archived_students (name, phone_number, email)")).
		WithArgs("id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE id = $1")).
		WithArgs("id-1").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := database.ArchiveStudent(db, "id-1")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
