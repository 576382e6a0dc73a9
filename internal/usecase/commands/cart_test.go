//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"

	"ecocollect/internal/domain/cart"
	"ecocollect/internal/infra/snapshot"
	"ecocollect/internal/usecase/commands"
	"ecocollect/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartCommands_AddPersistsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := snapshot.NewMemStore()
	store := cart.NewStore()
	cmds := commands.NewCartCommands(store, repo)

	product := builder.NewProductBuilder().BuildDomain()
	ev, err := cmds.Add(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, cart.EventItemAdded, ev.Kind)

	blob, err := repo.Load(ctx, snapshot.CartKey)
	require.NoError(t, err)

	var snap cart.Snapshot
	require.NoError(t, json.Unmarshal(blob, &snap))
	require.Len(t, snap.Items, 1)
	assert.Equal(t, product.ID, snap.Items[0].Product.ID)
	assert.Equal(t, 1, snap.Items[0].Quantity)
}

func TestCartCommands_NoopSkipsPersist(t *testing.T) {
	ctx := context.Background()
	repo := snapshot.NewMemStore()
	cmds := commands.NewCartCommands(cart.NewStore(), repo)

	ev, err := cmds.Remove(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, cart.EventNoop, ev.Kind)

	_, err = repo.Load(ctx, snapshot.CartKey)
	assert.Error(t, err)
}

func TestRestoreCartStore(t *testing.T) {
	ctx := context.Background()
	product := builder.NewProductBuilder().BuildDomain()

	t.Run("round trips a saved cart", func(t *testing.T) {
		repo := snapshot.NewMemStore()
		store := cart.NewStore()
		cmds := commands.NewCartCommands(store, repo)
		_, err := cmds.Add(ctx, product)
		require.NoError(t, err)
		_, err = cmds.Add(ctx, product)
		require.NoError(t, err)

		restored := commands.RestoreCartStore(ctx, repo)
		assert.Equal(t, 2, restored.Quantity(product.ID))
		assert.Equal(t, store.TotalCents(), restored.TotalCents())
	})

	t.Run("missing snapshot starts empty", func(t *testing.T) {
		restored := commands.RestoreCartStore(ctx, snapshot.NewMemStore())
		assert.Equal(t, 0, restored.ItemCount())
	})

	t.Run("corrupt snapshot starts empty", func(t *testing.T) {
		repo := snapshot.NewMemStore()
		require.NoError(t, repo.Save(ctx, snapshot.CartKey, []byte("{not json")))

		restored := commands.RestoreCartStore(ctx, repo)
		assert.Equal(t, 0, restored.ItemCount())
	})
}
