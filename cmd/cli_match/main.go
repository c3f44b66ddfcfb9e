package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"travelmatch/internal/config"
	"travelmatch/internal/db"
	"travelmatch/internal/repository"
	"travelmatch/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	travelerRepo := repository.NewPgTravelerRepository(pool)
	engine := service.NewCompatEngine(service.DefaultWeights(), cfg.BudgetSensitivity)
	matchSvc := service.NewMatchService(logger, travelerRepo, engine)

	travelers, err := travelerRepo.List(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if len(travelers) == 0 {
		fmt.Println("no travelers registered, run cmd/seed first")
		return
	}

	fmt.Println("registered travelers:")
	for _, t := range travelers {
		fmt.Printf("  %s  %-12s %s -> %v\n", t.ID, t.DisplayName, t.TravelStyle, t.Destinations)
	}

	for {
		fmt.Print("\nreference traveler id (or 'exit'): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		referenceID := strings.TrimSpace(line)
		if referenceID == "" {
			continue
		}
		if referenceID == "exit" {
			return
		}

		results, err := matchSvc.EvaluateAll(ctx, referenceID)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}

		for _, r := range results {
			b := r.Compatibility.Breakdown
			fmt.Printf("\n%s (%s) — score %d/100\n", r.Traveler.DisplayName, r.Traveler.ID, r.Compatibility.Score)
			fmt.Printf("  common destinations: %v\n", r.Compatibility.CommonDestinations)
			if b != nil {
				fmt.Printf("  destinations %.2f | dates %.2f | interests %.2f | budget %.2f | style %.0f\n",
					b.DestinationRatio, b.DateOverlap, b.InterestJaccard, b.BudgetSimilarity, b.StyleMatch)
			}
		}
	}
}
