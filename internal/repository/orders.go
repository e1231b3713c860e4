package repository

import (
	"sync"

	"github.com/amirko228/couple-shop/internal/domain"
)

// OrderList holds orders for the lifetime of the process. There is no
// durability across restarts; that matches the absence of a database.
type OrderList struct {
	mu     sync.RWMutex
	orders []domain.Order
}

func NewOrderList() *OrderList { return &OrderList{} }

func (l *OrderList) Append(o domain.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = append(l.orders, o)
}

func (l *OrderList) All() []domain.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

func (l *OrderList) Get(id string) (*domain.Order, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (l *OrderList) Update(o domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.orders {
		if l.orders[i].ID == o.ID {
			l.orders[i] = o
			return nil
		}
	}
	return ErrNotFound
}

func (l *OrderList) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.orders {
		if l.orders[i].ID == id {
			l.orders = append(l.orders[:i], l.orders[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// CustomPrintList is the process-lifetime store for custom-print requests.
type CustomPrintList struct {
	mu       sync.RWMutex
	requests []domain.CustomPrintRequest
}

func NewCustomPrintList() *CustomPrintList { return &CustomPrintList{} }

func (l *CustomPrintList) Append(r domain.CustomPrintRequest) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = append(l.requests, r)
}

func (l *CustomPrintList) All() []domain.CustomPrintRequest {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.CustomPrintRequest, len(l.requests))
	copy(out, l.requests)
	return out
}

func (l *CustomPrintList) Get(id string) (*domain.CustomPrintRequest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, r := range l.requests {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (l *CustomPrintList) Update(r domain.CustomPrintRequest) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.requests {
		if l.requests[i].ID == r.ID {
			l.requests[i] = r
			return nil
		}
	}
	return ErrNotFound
}

func (l *CustomPrintList) Delete(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.requests {
		if l.requests[i].ID == id {
			l.requests = append(l.requests[:i], l.requests[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
