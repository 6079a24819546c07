package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	username string
	name     string
	email    string
	role     string
}

var seedUsers = []seedUser{
	{"ahmed", "Ahmed Hassan", "ahmed@example.com", "chef"},
	{"marco", "Marco Rossi", "marco@example.com", "barman"},
	{"elena", "Elena Petrova", "elena@example.com", "captain"},
	{"james", "James Okafor", "james@example.com", "steward"},
	{"kostas", "Kostas Drakos", "kostas@example.com", "mechanic"},
	{"sofia", "Sofia Lindqvist", "sofia@example.com", "manager"},
	{"viktor", "Viktor Andersson", "viktor@example.com", "owner"},
}

type seedItem struct {
	name         string
	category     string
	roleCategory string
	unit         string
}

var seedItems = []seedItem{
	{"Fresh salmon", "food", "chef", "kg"},
	{"Olive oil", "food", "chef", "liter"},
	{"Basmati rice", "food", "chef", "kg"},
	{"Gin", "beverage", "barman", "bottle"},
	{"Tonic water", "beverage", "barman", "case"},
	{"Life jackets", "safety", "captain", "piece"},
	{"Flares", "safety", "captain", "box"},
	{"Bath towels", "equipment", "steward", "piece"},
	{"Cleaning spray", "equipment", "steward", "bottle"},
	{"Engine oil", "equipment", "mechanic", "liter"},
	{"Fuel filters", "equipment", "mechanic", "piece"},
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}
	defaultPassword := getenvDefault("SEED_PASSWORD", "Seastock1!")

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), 10)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var managerID string
	for _, u := range seedUsers {
		query := `
			INSERT INTO users (id, username, name, email, role, password_hash, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, TRUE)
			ON CONFLICT (username) DO UPDATE SET
			  name = EXCLUDED.name,
			  email = EXCLUDED.email,
			  password_hash = EXCLUDED.password_hash
			RETURNING id
		`
		var id string
		if err := db.QueryRow(query, uuid.NewString(), u.username, u.name, u.email, u.role, string(hash)).Scan(&id); err != nil {
			log.Fatalf("failed to seed user %s: %v", u.username, err)
		}
		if u.role == "manager" {
			managerID = id
		}
		fmt.Printf("seeded user: username=%s role=%s id=%s\n", u.username, u.role, id)
	}

	if _, err := db.Exec(`
		INSERT INTO trips (trip_name, destination, departure_date, return_date)
		SELECT 'Aegean charter', 'Santorini', NOW() + INTERVAL '7 days', NOW() + INTERVAL '14 days'
		WHERE NOT EXISTS (SELECT 1 FROM trips WHERE trip_name = 'Aegean charter')
	`); err != nil {
		log.Fatalf("failed to seed trip: %v", err)
	}

	for _, it := range seedItems {
		query := `
			INSERT INTO item_catalog (item_name, category, role_category, unit, added_by, is_active)
			SELECT $1, $2, $3, $4, $5, TRUE
			WHERE NOT EXISTS (SELECT 1 FROM item_catalog WHERE item_name = $1)
		`
		if _, err := db.Exec(query, it.name, it.category, it.roleCategory, it.unit, managerID); err != nil {
			log.Fatalf("failed to seed item %s: %v", it.name, err)
		}
	}

	fmt.Printf("seed complete: %d users, %d catalog items, password=%s\n", len(seedUsers), len(seedItems), defaultPassword)
}

func getenvDefault(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return v
}
