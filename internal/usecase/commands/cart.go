package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"ecocollect/internal/domain/cart"
	"ecocollect/internal/infra"
	"ecocollect/internal/infra/snapshot"
)

type CartCommands interface {
	Add(ctx context.Context, product cart.Product) (cart.Event, error)
	Remove(ctx context.Context, productID string) (cart.Event, error)
	SetQuantity(ctx context.Context, productID string, quantity int) (cart.Event, error)
	Clear(ctx context.Context) (cart.Event, error)
}

type cartCommandsImpl struct {
	store *cart.Store
	repo  snapshot.Repository
}

func NewCartCommands(store *cart.Store, repo snapshot.Repository) CartCommands {
	return &cartCommandsImpl{store: store, repo: repo}
}

// RestoreCartStore builds the cart from its persisted snapshot. A missing
// or corrupt snapshot means an empty cart; that is never surfaced to the
// user, only logged.
func RestoreCartStore(ctx context.Context, repo snapshot.Repository) *cart.Store {
	blob, err := repo.Load(ctx, snapshot.CartKey)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("failed to load cart snapshot, starting empty", "error", err)
		}
		return cart.NewStore()
	}

	var snap cart.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		slog.Warn("corrupt cart snapshot, starting empty", "error", err)
		return cart.NewStore()
	}
	return cart.NewStoreFromSnapshot(snap)
}

func (c *cartCommandsImpl) Add(ctx context.Context, product cart.Product) (cart.Event, error) {
	ev := c.store.Add(product)
	c.persist(ctx)
	return ev, nil
}

func (c *cartCommandsImpl) Remove(ctx context.Context, productID string) (cart.Event, error) {
	ev := c.store.Remove(productID)
	if ev.Kind != cart.EventNoop {
		c.persist(ctx)
	}
	return ev, nil
}

func (c *cartCommandsImpl) SetQuantity(ctx context.Context, productID string, quantity int) (cart.Event, error) {
	ev := c.store.SetQuantity(productID, quantity)
	if ev.Kind != cart.EventNoop {
		c.persist(ctx)
	}
	return ev, nil
}

func (c *cartCommandsImpl) Clear(ctx context.Context) (cart.Event, error) {
	ev := c.store.Clear()
	c.persist(ctx)
	return ev, nil
}

func (c *cartCommandsImpl) persist(ctx context.Context) {
	PersistCartStore(ctx, c.repo, c.store)
}

// PersistCartStore is best-effort: a storage failure must never fail the
// mutation the user already saw succeed.
func PersistCartStore(ctx context.Context, repo snapshot.Repository, store *cart.Store) {
	blob, err := json.Marshal(store.Snapshot())
	if err != nil {
		slog.Warn("failed to encode cart snapshot", "error", err)
		return
	}
	if err := repo.Save(ctx, snapshot.CartKey, blob); err != nil {
		slog.Warn("failed to save cart snapshot", "error", err)
	}
}
