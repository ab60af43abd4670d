package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
)

type Config struct {
	DB            *sql.DB
	SessionSecret string
	ListenAddr    string
}

var AppConfig *Config

// Init reads configuration from the environment and connects to the
// database. A misconfigured or unreachable database is returned as an
// error so the caller can refuse to start instead of serving requests
// against a dead connection.
func Init() error {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return fmt.Errorf("config: SESSION_SECRET is not set")
	}

	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	user := getenv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getenv("DB_NAME", "studentdesk")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable connect_timeout=10",
		host, port, user, password, dbname)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		return fmt.Errorf("config: open database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("config: connect to database %q on %s:%s as %q: %w", dbname, host, port, user, err)
	}

	AppConfig = &Config{
		DB:            db,
		SessionSecret: secret,
		ListenAddr:    getenv("LISTEN_ADDR", ":8080"),
	}
	log.Println("Database connected successfully")
	return nil
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func SessionSecret() []byte {
	return []byte(AppConfig.SessionSecret)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
