package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Store groups the counters the storefront cares about.
type Store struct {
	CatalogQueries Counter
	CartMutations  Counter
	OrdersPlaced   Counter
}

// Snapshot is a point-in-time copy of all counters for reporting.
type Snapshot struct {
	CatalogQueries uint64 `json:"catalog_queries"`
	CartMutations  uint64 `json:"cart_mutations"`
	OrdersPlaced   uint64 `json:"orders_placed"`
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		CatalogQueries: s.CatalogQueries.Load(),
		CartMutations:  s.CartMutations.Load(),
		OrdersPlaced:   s.OrdersPlaced.Load(),
	}
}
