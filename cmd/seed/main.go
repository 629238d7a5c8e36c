// Command seed inserts the fixture cards used by integration runs, or prints
// a bcrypt hash for API_PASSWORD_HASH.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"cardvault/internal/config"
	"cardvault/internal/models"
	"cardvault/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

const fixtureCustomer = "CUSTOMER_TEST_ID"

var fixtures = []models.CreditCard{
	{ID: "CARD_1", Customer: fixtureCustomer, Number: 5000000000000001, Brand: models.BrandVisa, Status: models.StatusActive},
	{ID: "CARD_2", Customer: fixtureCustomer, Number: 5000000000000002, Brand: models.BrandMastercard, Status: models.StatusInactive},
	{ID: "CARD_3", Customer: fixtureCustomer, Number: 5000000000000003, Brand: models.BrandAmericanExpress, Status: models.StatusActive},
}

func main() {
	hash := flag.String("hash", "", "print a bcrypt hash of the given password and exit")
	dryRun := flag.Bool("dry-run", false, "seed an in-memory store instead of postgres")
	flag.Parse()

	if *hash != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*hash), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}
		fmt.Println(string(hashed))
		return
	}

	config.LoadEnv()
	cfg := config.Load()
	if *dryRun {
		cfg.Store = config.StoreMemory
	}

	store, err := repositories.OpenStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open card store: %v", err)
	}
	defer store.Close()

	inserted, err := seedCards(context.Background(), store.Cards, time.Now())
	if err != nil {
		log.Fatalf("Failed to seed cards: %v", err)
	}
	log.Printf("✅ Seeded %d of %d fixture cards", inserted, len(fixtures))
}

// seedCards saves every fixture whose id is not stored yet.
func seedCards(ctx context.Context, repo repositories.CreditCardRepository, now time.Time) (int, error) {
	inserted := 0
	for _, fixture := range fixtures {
		_, err := repo.FindByID(ctx, fixture.ID)
		if err == nil {
			log.Printf("Card %s already exists, skipping", fixture.ID)
			continue
		}
		if !errors.Is(err, repositories.ErrCardNotFound) {
			return inserted, fmt.Errorf("failed to look up %s: %w", fixture.ID, err)
		}

		card := fixture
		card.CreatedDate = now
		if card.Status == models.StatusInactive {
			modified := now
			card.LastModifiedDate = &modified
		}

		if err := repo.Save(ctx, &card); err != nil {
			return inserted, fmt.Errorf("failed to save %s: %w", fixture.ID, err)
		}
		inserted++
	}
	return inserted, nil
}
