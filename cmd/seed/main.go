package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"travelmatch/internal/config"
	"travelmatch/internal/db"
	"travelmatch/internal/domain"
	"travelmatch/internal/repository"
)

const travelersSchema = `
CREATE TABLE IF NOT EXISTS travelers (
	id             TEXT PRIMARY KEY,
	display_name   TEXT NOT NULL,
	home_location  TEXT NOT NULL DEFAULT '',
	travel_style   TEXT NOT NULL,
	interests      TEXT[] NOT NULL DEFAULT '{}',
	budget_per_day DOUBLE PRECISION NOT NULL,
	trip_start     TIMESTAMPTZ NOT NULL,
	trip_end       TIMESTAMPTZ NOT NULL,
	destinations   TEXT[] NOT NULL DEFAULT '{}',
	created_at     TIMESTAMPTZ NOT NULL
)
`

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

// sampleTravelers es la cohorte de demostración que alimenta el api y el CLI.
func sampleTravelers() []domain.TravelProfile {
	now := time.Now().UTC()
	return []domain.TravelProfile{
		{
			ID:           "nina",
			DisplayName:  "Nina",
			HomeLocation: "Mumbai",
			TravelStyle:  "Backpacker",
			Interests:    []string{"food", "photography", "markets", "hostels", "trains"},
			BudgetPerDay: 50,
			TripStart:    day(time.November, 15),
			TripEnd:      day(time.November, 25),
			Destinations: []string{"Jaipur", "Agra", "Udaipur"},
			CreatedAt:    now,
		},
		{
			ID:           "aarav",
			DisplayName:  "Aarav",
			HomeLocation: "Delhi",
			TravelStyle:  "Backpacker",
			Interests:    []string{"food", "history", "street-art", "hostels", "trains"},
			BudgetPerDay: 45,
			TripStart:    day(time.November, 10),
			TripEnd:      day(time.November, 24),
			Destinations: []string{"Jaipur", "Agra", "Varanasi", "Delhi"},
			CreatedAt:    now.Add(time.Second),
		},
		{
			ID:           "meera",
			DisplayName:  "Meera",
			HomeLocation: "Bengaluru",
			TravelStyle:  "Comfort",
			Interests:    []string{"food", "museums", "architecture"},
			BudgetPerDay: 110,
			TripStart:    day(time.November, 18),
			TripEnd:      day(time.November, 28),
			Destinations: []string{"Udaipur", "Jodhpur"},
			CreatedAt:    now.Add(2 * time.Second),
		},
		{
			ID:           "karan",
			DisplayName:  "Karan",
			HomeLocation: "Pune",
			TravelStyle:  "Backpacker",
			Interests:    []string{"trekking", "photography", "hostels"},
			BudgetPerDay: 35,
			TripStart:    day(time.December, 2),
			TripEnd:      day(time.December, 12),
			Destinations: []string{"Manali", "Kasol"},
			CreatedAt:    now.Add(3 * time.Second),
		},
	}
}

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, travelersSchema); err != nil {
		log.Fatalf("create schema: %v", err)
	}
	if _, err := pool.Exec(ctx, "TRUNCATE travelers"); err != nil {
		log.Fatalf("truncate travelers: %v", err)
	}

	travelerRepo := repository.NewPgTravelerRepository(pool)
	for _, profile := range sampleTravelers() {
		if err := profile.Validate(); err != nil {
			log.Fatalf("sample profile %s invalid: %v", profile.ID, err)
		}
		if err := travelerRepo.Create(ctx, profile); err != nil {
			log.Fatalf("insert %s: %v", profile.ID, err)
		}
	}

	log.Printf("seeded %d travelers", len(sampleTravelers()))
}
