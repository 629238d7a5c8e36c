package repositories

import (
	"fmt"
	"log"

	"cardvault/internal/config"

	"gorm.io/gorm"
)

// Store is an opened card store and its cleanup.
type Store struct {
	Cards CreditCardRepository
	DB    *gorm.DB
}

// OpenStore selects the card store named by cfg.Store.
func OpenStore(cfg config.Config) (*Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		log.Println("⚠️ Using in-memory card store, data is lost on restart")
		return &Store{Cards: NewMemoryCreditCardRepository()}, nil
	case config.StorePostgres, "":
		db, err := InitDB(cfg.DB)
		if err != nil {
			return nil, err
		}
		return &Store{Cards: NewCreditCardRepository(db), DB: db}, nil
	default:
		return nil, fmt.Errorf("unknown STORE %q", cfg.Store)
	}
}

func (s *Store) Close() {
	CloseDB(s.DB)
}
