package cart

import "sync"

// Store tracks the multiset of marketplace items a user intends to purchase
// and keeps the derived totals consistent. Items keep insertion order.
//
// Totals are recomputed from scratch after every mutation rather than
// maintained incrementally. Carts are small, and a full recompute cannot
// drift.
type Store struct {
	mu         sync.Mutex
	items      []Item
	totalCents int64
	points     int64
	itemCount  int
}

// Snapshot is the persisted shape of a cart. Aggregates are stored alongside
// the items for human inspection, but restore recomputes them from the items.
type Snapshot struct {
	Items       []Item `json:"items"`
	TotalCents  int64  `json:"total_cents"`
	TotalPoints int64  `json:"total_points"`
	ItemCount   int    `json:"item_count"`
}

func NewStore() *Store {
	return &Store{}
}

func NewStoreFromSnapshot(snap Snapshot) *Store {
	s := &Store{items: make([]Item, len(snap.Items))}
	copy(s.items, snap.Items)
	s.recompute()
	return s
}

// Add puts a product into the cart. A product already present has its
// quantity bumped by one; anything else is appended with quantity 1.
func (s *Store) Add(p Product) Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			s.recompute()
			return Event{Kind: EventQuantityChanged, ProductID: p.ID, ProductName: s.items[i].Name, Quantity: s.items[i].Quantity}
		}
	}
	s.items = append(s.items, Item{Product: p, Quantity: 1})
	s.recompute()
	return Event{Kind: EventItemAdded, ProductID: p.ID, ProductName: p.Name, Quantity: 1}
}

// Remove deletes the entry with the given id. Removing an absent id is a
// no-op.
func (s *Store) Remove(id string) Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(id)
}

// SetQuantity overwrites an entry's quantity. A quantity below one behaves
// as Remove.
func (s *Store) SetQuantity(id string, qty int) Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty < 1 {
		return s.removeLocked(id)
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = qty
			s.recompute()
			return Event{Kind: EventQuantityChanged, ProductID: id, ProductName: s.items[i].Name, Quantity: qty}
		}
	}
	return Event{Kind: EventNoop, ProductID: id}
}

// Clear resets the store to the empty state.
func (s *Store) Clear() Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.recompute()
	return Event{Kind: EventCleared}
}

func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			return true
		}
	}
	return false
}

func (s *Store) Quantity(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			return s.items[i].Quantity
		}
	}
	return 0
}

// Items returns a copy of the entries in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalCents
}

func (s *Store) TotalPoints() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.points
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCount
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return Snapshot{
		Items:       items,
		TotalCents:  s.totalCents,
		TotalPoints: s.points,
		ItemCount:   s.itemCount,
	}
}

func (s *Store) removeLocked(id string) Event {
	for i := range s.items {
		if s.items[i].ID == id {
			name := s.items[i].Name
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.recompute()
			return Event{Kind: EventItemRemoved, ProductID: id, ProductName: name}
		}
	}
	return Event{Kind: EventNoop, ProductID: id}
}

func (s *Store) recompute() {
	var cents, points int64
	var count int
	for i := range s.items {
		qty := int64(s.items[i].Quantity)
		cents += s.items[i].PriceCents * qty
		points += s.items[i].Points * qty
		count += s.items[i].Quantity
	}
	s.totalCents = cents
	s.points = points
	s.itemCount = count
}
