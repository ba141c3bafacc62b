package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/wishdrop/wishdrop-backend/config"
	"github.com/wishdrop/wishdrop-backend/pkg/helpers"
)

type demoUser struct {
	username string
	email    string
	about    string
}

type demoWish struct {
	name        string
	link        string
	image       string
	price       string
	description string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	users := []demoUser{
		{"alice", "alice@example.com", "Collects vintage cameras"},
		{"bob", "bob@example.com", "Always after new climbing gear"},
	}
	wishes := map[string][]demoWish{
		"alice": {
			{"Polaroid SX-70", "https://example.com/sx70", "https://example.com/sx70.jpg", "250.00", "The classic folding instant camera"},
			{"Camera strap", "https://example.com/strap", "https://example.com/strap.jpg", "35.50", "Leather strap for the SX-70"},
		},
		"bob": {
			{"Climbing rope 70m", "https://example.com/rope", "https://example.com/rope.jpg", "199.99", "Dry-treated single rope"},
		},
	}

	for _, u := range users {
		var id string
		err := db.QueryRow(`
			INSERT INTO users (username, email, password, about, avatar)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (username) DO UPDATE SET about = EXCLUDED.about
			RETURNING id
		`, u.username, u.email, hash, u.about, "https://i.pravatar.cc/300").Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.username, err)
		}
		fmt.Printf("seeded user: id=%s username=%s password=%s\n", id, u.username, password)

		for _, w := range wishes[u.username] {
			if _, err := db.Exec(`
				INSERT INTO wishes (name, link, image, price, description, owner_id)
				SELECT $1, $2, $3, $4::numeric, $5, $6
				WHERE NOT EXISTS (SELECT 1 FROM wishes WHERE name = $1 AND owner_id = $6)
			`, w.name, w.link, w.image, w.price, w.description, id); err != nil {
				log.Fatalf("failed to seed wish %q: %v", w.name, err)
			}
			fmt.Printf("seeded wish: %q for %s\n", w.name, u.username)
		}
	}
}
