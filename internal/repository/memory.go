package repository

import "sync"

// MemoryKV is the in-process implementation of the KV surface.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
	subs []*subscription
}

type subscription struct {
	key    string
	fn     ChangeFunc
	closed bool
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

var _ KV = (*MemoryKV)(nil)

func (m *MemoryKV) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true
}

func (m *MemoryKV) Put(key string, value []byte) {
	cp := make([]byte, len(value))
	copy(cp, value)

	m.mu.Lock()
	m.data[key] = cp
	fns := m.matching(key)
	m.mu.Unlock()

	// Callbacks run outside the lock so they may read the store again, but
	// still synchronously with the mutation that triggered them.
	for _, fn := range fns {
		fn(key, cp)
	}
}

func (m *MemoryKV) Delete(key string) {
	m.mu.Lock()
	delete(m.data, key)
	fns := m.matching(key)
	m.mu.Unlock()

	for _, fn := range fns {
		fn(key, nil)
	}
}

func (m *MemoryKV) Subscribe(key string, fn ChangeFunc) func() {
	sub := &subscription{key: key, fn: fn}
	m.mu.Lock()
	m.subs = append(m.subs, sub)
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		sub.closed = true
		for i, s := range m.subs {
			if s == sub {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				break
			}
		}
	}
}

// matching collects callbacks in registration order. Caller holds mu.
func (m *MemoryKV) matching(key string) []ChangeFunc {
	var fns []ChangeFunc
	for _, s := range m.subs {
		if s.closed {
			continue
		}
		if s.key == "" || s.key == key {
			fns = append(fns, s.fn)
		}
	}
	return fns
}
