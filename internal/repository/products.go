package repository

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/amirko228/couple-shop/internal/domain"
)

// ProductStore owns the canonical product list, persisted as a single JSON
// document under KeyProducts. Reads are fail-open: a missing or malformed
// document is replaced by the seed catalog.
type ProductStore struct {
	kv  KV
	log *zap.Logger
}

func NewProductStore(kv KV, log *zap.Logger) *ProductStore {
	return &ProductStore{kv: kv, log: log}
}

// All returns the full catalog, seeding the store on first read.
func (s *ProductStore) All() []domain.Product {
	raw, ok := s.kv.Get(KeyProducts)
	if !ok {
		seed := domain.SeedProducts()
		s.Save(seed)
		return seed
	}
	var list []domain.Product
	if err := json.Unmarshal(raw, &list); err != nil {
		s.log.Warn("product list corrupted, falling back to seed data", zap.Error(err))
		seed := domain.SeedProducts()
		s.Save(seed)
		return seed
	}
	return list
}

// Save writes the full list back, raising the change notification.
func (s *ProductStore) Save(list []domain.Product) {
	raw, err := json.Marshal(list)
	if err != nil {
		s.log.Error("marshal product list", zap.Error(err))
		return
	}
	s.kv.Put(KeyProducts, raw)
}
