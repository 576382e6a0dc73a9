//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"ecocollect/internal/domain/collection"
	"ecocollect/internal/infra/backend"
	"ecocollect/internal/infra/snapshot"
	"ecocollect/internal/pkg/clock"
	"ecocollect/internal/pkg/errs"
	"ecocollect/internal/usecase/commands"
	"ecocollect/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScheduler struct {
	created *backend.CollectionView
	listed  []backend.CollectionView
	err     error
	gotReq  backend.CreateCollectionRequest
}

func (s *stubScheduler) CreateCollection(_ context.Context, _ string, req backend.CreateCollectionRequest) (*backend.CollectionView, error) {
	s.gotReq = req
	return s.created, s.err
}

func (s *stubScheduler) ListCollections(_ context.Context, _ string) ([]backend.CollectionView, error) {
	return s.listed, s.err
}

func TestCollectionCommands_Submit(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	t.Run("estimates points per item before scheduling", func(t *testing.T) {
		scheduler := &stubScheduler{created: &backend.CollectionView{ID: "col-1", Status: "pending"}}
		cmds := commands.NewCollectionCommands(scheduler, snapshot.NewMemStore(), newTestSession(0), clk)

		view, err := cmds.Submit(ctx, commands.SubmitCollectionInput{
			Items: []collection.Item{
				{Type: collection.DeviceLaptop, Condition: collection.ConditionWorking, Quantity: 1},
				{Type: collection.DeviceSmartphone, Condition: collection.ConditionBroken, Quantity: 1},
			},
			Address:       "Main St 1",
			PreferredDate: "2026-03-05",
			PreferredTime: "morning",
		})
		require.NoError(t, err)
		assert.Equal(t, "col-1", view.ID)

		require.Len(t, scheduler.gotReq.Items, 2)
		assert.Equal(t, int64(180), scheduler.gotReq.Items[0].EstimatedPoints)
		assert.Equal(t, int64(64), scheduler.gotReq.Items[1].EstimatedPoints)
	})

	t.Run("rejects an empty item list", func(t *testing.T) {
		cmds := commands.NewCollectionCommands(&stubScheduler{}, snapshot.NewMemStore(), newTestSession(0), clk)

		_, err := cmds.Submit(ctx, commands.SubmitCollectionInput{Address: "Main St 1"})
		assert.ErrorIs(t, err, commands.ErrNoCollectionItems)
	})

	t.Run("requires a session", func(t *testing.T) {
		cmds := commands.NewCollectionCommands(&stubScheduler{}, snapshot.NewMemStore(), shared.NewSessionState(), clk)

		_, err := cmds.Submit(ctx, commands.SubmitCollectionInput{
			Items: []collection.Item{{Type: collection.DeviceLaptop, Condition: collection.ConditionWorking, Quantity: 1}},
		})
		assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
	})
}

func TestCollectionCommands_SyncCompleted(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	scheduler := &stubScheduler{listed: []backend.CollectionView{
		{ID: "col-1", Status: "completed", EstimatedPoints: 180},
		{ID: "col-2", Status: "pending", EstimatedPoints: 100},
		{ID: "col-3", Status: "completed", EstimatedPoints: 64},
	}}
	repo := snapshot.NewMemStore()
	session := newTestSession(1250)
	cmds := commands.NewCollectionCommands(scheduler, repo, session, clk)

	count, err := cmds.SyncCompleted(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	ledger, _ := session.Ledger()
	assert.Equal(t, int64(1494), ledger.Balance())

	// Running again credits nothing: both pickups are already in the history.
	count, err = cmds.SyncCompleted(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, int64(1494), ledger.Balance())

	_, err = repo.Load(ctx, snapshot.LedgerKey("user-1"))
	assert.NoError(t, err)
}
