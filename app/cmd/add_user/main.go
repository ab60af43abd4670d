package main

import (
	"fmt"
	"log"
	"os"

	"studentdesk/app/config"
	"studentdesk/app/database"
	"studentdesk/app/routes/auth"
)

// Staff accounts are provisioned with this tool; the web app has no
// signup flow.
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <username> <password>\n", os.Args[0])
		os.Exit(2)
	}
	username, password := os.Args[1], os.Args[2]

	if err := config.Init(); err != nil {
		log.Fatal(err)
	}
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	id, err := database.CreateUser(db, username, hashed)
	if err != nil {
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("User created successfully: %s (%s)\n", username, id)
}
