package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wayfarer/internal/config"
	"wayfarer/internal/db"
	"wayfarer/internal/model"
	"wayfarer/internal/repository"
)

// Seeds a demo user for local development so the map client has something to
// log in with on a fresh database.
func main() {
	username := flag.String("username", "demo", "username for the seeded user")
	email := flag.String("email", "demo@example.com", "email for the seeded user")
	password := flag.String("password", "demo-password", "password for the seeded user")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	users := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	existing, err := users.FindByEmail(ctx, *email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check existing user: %v", err)
	}
	if existing != nil {
		log.Printf("User %s already exists, nothing to do", *email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &model.User{
		Username:     *username,
		Email:        *email,
		PasswordHash: string(hashed),
	}
	if err := users.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	log.Printf("Seed completed successfully: user %s (id %d)", user.Email, user.ID)
}
