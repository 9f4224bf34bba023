package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/felipecouto0101/FastFeet-Deliveryman/config"
	"github.com/felipecouto0101/FastFeet-Deliveryman/pkg/helpers"
)

// Seeds one demo delivery person and prints a dev bearer token for manual
// testing against the protected routes.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	id := uuid.NewString()
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now().UTC()
	_, err = db.Exec(`
		INSERT INTO deliverymen (id, name, email, cpf, phone, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $7)
	`, id, "Demo Deliveryman", "demo@fastfeet.dev", "12345678901", "+5511999990000", hash, now)
	if err != nil {
		log.Fatalf("failed to seed delivery person: %v", err)
	}
	fmt.Printf("seeded delivery person: id=%s password=%s\n", id, password)

	jwt := helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	token, exp, err := jwt.Generate("seed")
	if err != nil {
		log.Fatalf("failed to generate dev token: %v", err)
	}
	fmt.Printf("dev bearer token (expires %s):\n%s\n", exp.Format(time.RFC3339), token)
}
