package database

import (
	"context"
	"database/sql"
	"studentdesk/app/models"
	"time"
)

// queryTimeout bounds every statement so a hung database connection
// cannot hang a request indefinitely.
const queryTimeout = 5 * time.Second

func queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), queryTimeout)
}

func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	ctx, cancel := queryContext()
	defer cancel()

	user := &models.User{}
	query := `SELECT id, username, password, created_at, updated_at
			  FROM users WHERE username = $1`

	err := db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.Password, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	ctx, cancel := queryContext()
	defer cancel()

	user := &models.User{}
	query := `SELECT id, username, password, created_at, updated_at
			  FROM users WHERE id = $1`

	err := db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID, &user.Username, &user.Password, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func CreateUser(db *sql.DB, username, hashedPassword string) (string, error) {
	ctx, cancel := queryContext()
	defer cancel()

	var id string
	query := `INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`
	err := db.QueryRowContext(ctx, query, username, hashedPassword).Scan(&id)
	return id, err
}

func CreateSession(db *sql.DB, sessionID, userID string, expiresAt time.Time) error {
	ctx, cancel := queryContext()
	defer cancel()

	query := `INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	_, err := db.ExecContext(ctx, query, sessionID, userID, expiresAt, time.Now())
	return err
}

func GetSessionByID(db *sql.DB, sessionID string) (*models.Session, error) {
	ctx, cancel := queryContext()
	defer cancel()

	session := &models.Session{}
	query := `SELECT id, user_id, expires_at, created_at FROM sessions WHERE id = $1 AND expires_at > NOW()`

	err := db.QueryRowContext(ctx, query, sessionID).Scan(
		&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
	)

	if err != nil {
		return nil, err
	}
	return session, nil
}

func DeleteSession(db *sql.DB, sessionID string) error {
	ctx, cancel := queryContext()
	defer cancel()

	query := `DELETE FROM sessions WHERE id = $1`
	_, err := db.ExecContext(ctx, query, sessionID)
	return err
}
