package service

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/amirko228/couple-shop/internal/domain"
	"github.com/amirko228/couple-shop/internal/repository"
)

// ErrInvalidState marks operations rejected by the current state, e.g. a
// duplicate product id.
var ErrInvalidState = errors.New("invalid state")

// DefaultFeaturedLimit caps the featured view when no limit is configured.
const DefaultFeaturedLimit = 4

// Filter selects a subsequence of the catalog. Zero values wildcard their
// dimension; "all" is accepted as an explicit category wildcard.
type Filter struct {
	Category string
	Text     string
	PriceMin *int
	PriceMax *int
}

// CatalogService is the query and CRUD surface over the product store. Every
// read re-scans the fresh full list; there is no incremental indexing, which
// is fine at demo-catalog volumes.
type CatalogService struct {
	products      *repository.ProductStore
	featuredLimit int
	log           *zap.Logger
}

func NewCatalogService(products *repository.ProductStore, featuredLimit int, log *zap.Logger) *CatalogService {
	if featuredLimit <= 0 {
		featuredLimit = DefaultFeaturedLimit
	}
	return &CatalogService{products: products, featuredLimit: featuredLimit, log: log}
}

// List filters the full catalog, preserving store order. Text matches
// case-insensitively against name and description; the price range is
// inclusive on both ends.
func (s *CatalogService) List(f Filter) []domain.Product {
	out := make([]domain.Product, 0)
	text := strings.ToLower(f.Text)
	for _, p := range s.products.All() {
		if f.Category != "" && f.Category != "all" && string(p.Category) != f.Category {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(p.Name), text) &&
			!strings.Contains(strings.ToLower(p.Description), text) {
			continue
		}
		if f.PriceMin != nil && p.Price < *f.PriceMin {
			continue
		}
		if f.PriceMax != nil && p.Price > *f.PriceMax {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Featured returns the featured products capped at limit (the configured
// display limit when limit <= 0).
func (s *CatalogService) Featured(limit int) []domain.Product {
	if limit <= 0 {
		limit = s.featuredLimit
	}
	out := make([]domain.Product, 0, limit)
	for _, p := range s.products.All() {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

func (s *CatalogService) Get(id string) (*domain.Product, error) {
	for _, p := range s.products.All() {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *CatalogService) Create(p domain.Product) (*domain.Product, error) {
	if p.Name == "" || p.Price < 0 || !p.Category.Valid() {
		return nil, ErrInvalidInput
	}
	if p.ID == "" {
		p.ID = newToken()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	list := s.products.All()
	for _, existing := range list {
		if existing.ID == p.ID {
			return nil, ErrInvalidState
		}
	}
	s.products.Save(append(list, p))
	s.log.Info("product created", zap.String("id", p.ID), zap.String("name", p.Name))
	return &p, nil
}

func (s *CatalogService) Update(p domain.Product) (*domain.Product, error) {
	if p.ID == "" || p.Name == "" || p.Price < 0 || !p.Category.Valid() {
		return nil, ErrInvalidInput
	}
	list := s.products.All()
	for i := range list {
		if list[i].ID == p.ID {
			if p.CreatedAt.IsZero() {
				p.CreatedAt = list[i].CreatedAt
			}
			list[i] = p
			s.products.Save(list)
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *CatalogService) Delete(id string) error {
	list := s.products.All()
	for i := range list {
		if list[i].ID == id {
			s.products.Save(append(list[:i], list[i+1:]...))
			return nil
		}
	}
	return repository.ErrNotFound
}
