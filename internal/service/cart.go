package service

import (
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/amirko228/couple-shop/internal/domain"
	"github.com/amirko228/couple-shop/internal/repository"
)

// ErrInvalidInput marks validation failures surfaced as 400s.
var ErrInvalidInput = errors.New("invalid input")

// CartView is a cart snapshot with its derived aggregates. The aggregates are
// recomputed after every mutation, never cached across calls.
type CartView struct {
	Lines      []domain.CartLine `json:"items"`
	ItemCount  int               `json:"itemCount"`
	TotalPrice int               `json:"totalPrice"`
}

// CartService keeps one cart per owner key in the KV surface. Every mutation
// rewrites the owner's full line list immediately and synchronously.
//
// Lines merge on the (productID, size, color) composite key on add and on
// quantity update. RemoveProduct is deliberately coarser: it drops every
// variant of a product at once.
type CartService struct {
	kv  repository.KV
	log *zap.Logger
	mu  sync.Mutex
}

func NewCartService(kv repository.KV, log *zap.Logger) *CartService {
	return &CartService{kv: kv, log: log}
}

func (s *CartService) Get(owner string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view(s.load(owner))
}

// Add merges qty into an existing line with the same composite key, or
// appends a new line owning a snapshot of product. Size and color are trusted
// to come from the product's own lists; quantity is not bounded.
func (s *CartService) Add(owner string, product domain.Product, qty int, size, color string) (CartView, error) {
	if product.ID == "" || qty <= 0 {
		return CartView{}, ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.load(owner)
	merged := false
	for i := range lines {
		if lines[i].Product.ID == product.ID && lines[i].Size == size && lines[i].Color == color {
			lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, domain.CartLine{Product: product, Quantity: qty, Size: size, Color: color})
	}
	s.persist(owner, lines)
	return view(lines), nil
}

// UpdateQuantity sets the quantity of the line matching the composite key.
// A missing line is a no-op; the container does not enforce a minimum.
func (s *CartService) UpdateQuantity(owner, productID, size, color string, qty int) (CartView, error) {
	if productID == "" {
		return CartView{}, ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.load(owner)
	for i := range lines {
		if lines[i].Product.ID == productID && lines[i].Size == size && lines[i].Color == color {
			lines[i].Quantity = qty
			break
		}
	}
	s.persist(owner, lines)
	return view(lines), nil
}

// RemoveProduct removes every variant of productID. Idempotent.
func (s *CartService) RemoveProduct(owner, productID string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.load(owner)
	kept := lines[:0]
	for _, l := range lines {
		if l.Product.ID != productID {
			kept = append(kept, l)
		}
	}
	s.persist(owner, kept)
	return view(kept)
}

func (s *CartService) Clear(owner string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persist(owner, nil)
	return view(nil)
}

// load is fail-open: malformed persisted data is logged and treated as an
// empty cart.
func (s *CartService) load(owner string) []domain.CartLine {
	raw, ok := s.kv.Get(repository.CartKeyPrefix + owner)
	if !ok {
		return nil
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		s.log.Warn("cart data corrupted, starting empty", zap.String("owner", owner), zap.Error(err))
		return nil
	}
	return lines
}

func (s *CartService) persist(owner string, lines []domain.CartLine) {
	raw, err := json.Marshal(lines)
	if err != nil {
		s.log.Error("marshal cart", zap.String("owner", owner), zap.Error(err))
		return
	}
	s.kv.Put(repository.CartKeyPrefix+owner, raw)
}

func view(lines []domain.CartLine) CartView {
	v := CartView{Lines: lines}
	if v.Lines == nil {
		v.Lines = []domain.CartLine{}
	}
	for _, l := range lines {
		v.ItemCount += l.Quantity
		v.TotalPrice += l.Product.Price * l.Quantity
	}
	return v
}
