//go:build unit

package cart_test

import (
	"testing"

	"ecocollect/internal/domain/cart"
	"ecocollect/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Add(t *testing.T) {
	t.Run("appends a new entry with quantity 1", func(t *testing.T) {
		s := cart.NewStore()
		p := builder.NewProductBuilder().WithPriceCents(1000).BuildDomain()

		ev := s.Add(p)

		assert.Equal(t, cart.EventItemAdded, ev.Kind)
		assert.Equal(t, p.ID, ev.ProductID)
		assert.Equal(t, 1, s.ItemCount())
		assert.Equal(t, int64(1000), s.TotalCents())
	})

	t.Run("adding the same product twice bumps quantity", func(t *testing.T) {
		s := cart.NewStore()
		p := builder.NewProductBuilder().WithPriceCents(1000).BuildDomain()

		s.Add(p)
		ev := s.Add(p)

		assert.Equal(t, cart.EventQuantityChanged, ev.Kind)
		assert.Equal(t, 2, ev.Quantity)
		require.Len(t, s.Items(), 1)
		assert.Equal(t, 2, s.Quantity(p.ID))
		assert.Equal(t, int64(2000), s.TotalCents())
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		s := cart.NewStore()
		products := builder.NewProductBuilder().BuildMany(3)
		for _, p := range products {
			s.Add(p)
		}

		items := s.Items()
		require.Len(t, items, 3)
		for i, p := range products {
			assert.Equal(t, p.ID, items[i].ID)
		}
	})
}

func TestStore_Remove(t *testing.T) {
	t.Run("add then remove restores the pre-add state", func(t *testing.T) {
		s := cart.NewStore()
		resident := builder.NewProductBuilder().WithID("resident").BuildDomain()
		s.Add(resident)
		before := s.Snapshot()

		p := builder.NewProductBuilder().WithID("transient").BuildDomain()
		s.Add(p)
		ev := s.Remove(p.ID)

		assert.Equal(t, cart.EventItemRemoved, ev.Kind)
		assert.Empty(t, cmp.Diff(before, s.Snapshot()))
	})

	t.Run("removing an absent id is a no-op", func(t *testing.T) {
		s := cart.NewStore()
		s.Add(builder.NewProductBuilder().BuildDomain())
		before := s.Snapshot()

		ev := s.Remove("no-such-id")

		assert.Equal(t, cart.EventNoop, ev.Kind)
		assert.Empty(t, cmp.Diff(before, s.Snapshot()))
	})
}

func TestStore_SetQuantity(t *testing.T) {
	t.Run("overwrites the quantity", func(t *testing.T) {
		s := cart.NewStore()
		p := builder.NewProductBuilder().AsPointsPriced(50).BuildDomain()
		s.Add(p)

		ev := s.SetQuantity(p.ID, 3)

		assert.Equal(t, cart.EventQuantityChanged, ev.Kind)
		assert.Equal(t, 3, s.Quantity(p.ID))
		assert.Equal(t, int64(150), s.TotalPoints())
		assert.Equal(t, int64(0), s.TotalCents())
	})

	t.Run("quantity zero behaves as remove", func(t *testing.T) {
		s := cart.NewStore()
		p := builder.NewProductBuilder().AsPointsPriced(50).BuildDomain()
		s.Add(p)
		s.SetQuantity(p.ID, 3)

		ev := s.SetQuantity(p.ID, 0)

		assert.Equal(t, cart.EventItemRemoved, ev.Kind)
		assert.False(t, s.Contains(p.ID))
		assert.Equal(t, int64(0), s.TotalPoints())
		assert.Equal(t, 0, s.ItemCount())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		s := cart.NewStore()
		ev := s.SetQuantity("ghost", 5)
		assert.Equal(t, cart.EventNoop, ev.Kind)
		assert.Equal(t, 0, s.ItemCount())
	})
}

func TestStore_Clear(t *testing.T) {
	s := cart.NewStore()
	for _, p := range builder.NewProductBuilder().BuildMany(4) {
		s.Add(p)
	}

	ev := s.Clear()

	assert.Equal(t, cart.EventCleared, ev.Kind)
	assert.Empty(t, s.Items())
	assert.Equal(t, 0, s.ItemCount())
	assert.Equal(t, int64(0), s.TotalCents())
	assert.Equal(t, int64(0), s.TotalPoints())
}

func TestStore_Queries(t *testing.T) {
	s := cart.NewStore()

	assert.False(t, s.Contains("dev-001"))
	assert.Equal(t, 0, s.Quantity("dev-001"))

	p := builder.NewProductBuilder().BuildDomain()
	s.Add(p)

	assert.True(t, s.Contains(p.ID))
	assert.Equal(t, 1, s.Quantity(p.ID))
}

// Totals must equal the weighted sums over the remaining items after any
// sequence of mutations.
func TestStore_TotalsInvariant(t *testing.T) {
	s := cart.NewStore()
	money := builder.NewProductBuilder().WithID("m").WithPriceCents(999).BuildDomain()
	reward := builder.NewProductBuilder().WithID("r").AsPointsPriced(120).BuildDomain()

	steps := []func(){
		func() { s.Add(money) },
		func() { s.Add(money) },
		func() { s.Add(reward) },
		func() { s.SetQuantity(reward.ID, 5) },
		func() { s.Remove(money.ID) },
		func() { s.Add(money) },
		func() { s.SetQuantity(money.ID, 4) },
	}

	for _, step := range steps {
		step()

		var wantCents, wantPoints int64
		wantCount := 0
		for _, it := range s.Items() {
			wantCents += it.PriceCents * int64(it.Quantity)
			wantPoints += it.Points * int64(it.Quantity)
			wantCount += it.Quantity
		}
		assert.Equal(t, wantCents, s.TotalCents())
		assert.Equal(t, wantPoints, s.TotalPoints())
		assert.Equal(t, wantCount, s.ItemCount())
	}
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	s := cart.NewStore()
	for _, p := range builder.NewProductBuilder().WithPriceCents(2500).BuildMany(3) {
		s.Add(p)
	}
	s.Add(builder.NewProductBuilder().WithID("dev-001-0").BuildDomain())

	restored := cart.NewStoreFromSnapshot(s.Snapshot())

	assert.Empty(t, cmp.Diff(s.Snapshot(), restored.Snapshot()))
	assert.Equal(t, s.TotalCents(), restored.TotalCents())
	assert.Equal(t, s.ItemCount(), restored.ItemCount())
}

// Persisted aggregates are not trusted: restore recomputes them from the
// items.
func TestStore_RestoreRecomputesTotals(t *testing.T) {
	p := builder.NewProductBuilder().WithPriceCents(1000).BuildDomain()
	snap := cart.Snapshot{
		Items:      []cart.Item{{Product: p, Quantity: 2}},
		TotalCents: 999999,
		ItemCount:  42,
	}

	restored := cart.NewStoreFromSnapshot(snap)

	assert.Equal(t, int64(2000), restored.TotalCents())
	assert.Equal(t, 2, restored.ItemCount())
}
