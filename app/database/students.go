package database

import (
	"database/sql"
	"fmt"
	"studentdesk/app/models"
)

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	ctx, cancel := queryContext()
	defer cancel()

	query := `SELECT id, name, phone_number, email, created_at, updated_at
			  FROM students ORDER BY created_at, id`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(&student.ID, &student.Name, &student.PhoneNumber,
			&student.Email, &student.CreatedAt, &student.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	ctx, cancel := queryContext()
	defer cancel()

	student := &models.Student{}
	query := `SELECT id, name, phone_number, email, created_at, updated_at
			  FROM students WHERE id = $1`

	err := db.QueryRowContext(ctx, query, studentID).Scan(
		&student.ID, &student.Name, &student.PhoneNumber,
		&student.Email, &student.CreatedAt, &student.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return student, nil
}

func CreateStudent(db *sql.DB, student *models.Student) error {
	ctx, cancel := queryContext()
	defer cancel()

	query := `INSERT INTO students (name, phone_number, email) VALUES ($1, $2, $3) RETURNING id`
	return db.QueryRowContext(ctx, query,
		student.Name, student.PhoneNumber, student.Email).Scan(&student.ID)
}

// UpdateStudent updates a student in place. Returns sql.ErrNoRows when no
// student exists with the given id.
func UpdateStudent(db *sql.DB, student *models.Student) error {
	ctx, cancel := queryContext()
	defer cancel()

	query := `UPDATE students SET name = $1, phone_number = $2, email = $3, updated_at = NOW() WHERE id = $4`
	result, err := db.ExecContext(ctx, query,
		student.Name, student.PhoneNumber, student.Email, student.ID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ArchiveStudent copies a student into archived_students and deletes the
// live row, as one transaction: either both statements commit or neither
// does. Returns sql.ErrNoRows when no student exists with the given id.
func ArchiveStudent(db *sql.DB, studentID string) error {
	ctx, cancel := queryContext()
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	copyQuery := `INSERT INTO archived_students (name, phone_number, email)
				  SELECT name, phone_number, email FROM students WHERE id = $1`
	result, err := tx.ExecContext(ctx, copyQuery, studentID)
	if err != nil {
		return fmt.Errorf("archive student %s: %w", studentID, err)
	}

	copied, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if copied == 0 {
		return sql.ErrNoRows
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, studentID); err != nil {
		return fmt.Errorf("delete student %s: %w", studentID, err)
	}

	return tx.Commit()
}

func GetAllArchivedStudents(db *sql.DB) ([]*models.ArchivedStudent, error) {
	ctx, cancel := queryContext()
	defer cancel()

	query := `SELECT id, name, phone_number, email, archived_at
			  FROM archived_students ORDER BY archived_at DESC, id`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.ArchivedStudent
	for rows.Next() {
		var student models.ArchivedStudent
		if err := rows.Scan(&student.ID, &student.Name, &student.PhoneNumber,
			&student.Email, &student.ArchivedAt); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}
	return students, rows.Err()
}
