// Package memory holds mutex-guarded in-memory repositories implementing the
// same contracts as the postgres package. They back the unit tests and can
// run the API without a database. State is explicit: construct a Store per
// test or call Reset between cases, nothing is shared implicitly.
package memory

import (
	"sync"

	"suplementosPro/domain"
)

type Store struct {
	mu sync.Mutex

	users      map[uint]domain.User
	byUsername map[string]uint
	byEmail    map[string]uint
	nextUserID uint

	products map[uint64]domain.Product

	// cart[userID][productID] = quantity
	cart map[uint]map[uint64]int

	orders      map[uint64]domain.Order
	orderItems  map[uint64][]domain.OrderItem
	nextOrderID uint64
}

func NewStore() *Store {
	s := &Store{}
	s.reset()
	return s
}

// Reset drops every record and restarts id sequences.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *Store) reset() {
	s.users = make(map[uint]domain.User)
	s.byUsername = make(map[string]uint)
	s.byEmail = make(map[string]uint)
	s.nextUserID = 0
	s.products = make(map[uint64]domain.Product)
	s.cart = make(map[uint]map[uint64]int)
	s.orders = make(map[uint64]domain.Order)
	s.orderItems = make(map[uint64][]domain.OrderItem)
	s.nextOrderID = 0
}

// SeedProduct inserts or replaces a catalog row. Test helper.
func (s *Store) SeedProduct(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// ProductStock reports current stock for assertions.
func (s *Store) ProductStock(id uint64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Stock
}
