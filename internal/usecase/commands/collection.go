package commands

import (
	"context"
	"log/slog"

	"ecocollect/internal/domain/collection"
	"ecocollect/internal/domain/points"
	"ecocollect/internal/infra"
	"ecocollect/internal/infra/backend"
	"ecocollect/internal/infra/snapshot"
	"ecocollect/internal/pkg/clock"
	"ecocollect/internal/pkg/errs"
	"ecocollect/internal/usecase/shared"
)

var ErrNoCollectionItems = errs.New("collection request has no items")

type CollectionScheduler interface {
	CreateCollection(ctx context.Context, token string, req backend.CreateCollectionRequest) (*backend.CollectionView, error)
	ListCollections(ctx context.Context, token string) ([]backend.CollectionView, error)
}

type SubmitCollectionInput struct {
	Items         []collection.Item
	Address       string
	PreferredDate string
	PreferredTime string
	Instructions  string
}

type CollectionCommands interface {
	// Submit estimates the points for each device locally and schedules a
	// pickup with the backend.
	Submit(ctx context.Context, input SubmitCollectionInput) (*backend.CollectionView, error)
	// SyncCompleted credits points for completed pickups that have not
	// been credited yet. Returns the number of pickups credited.
	SyncCompleted(ctx context.Context) (int, error)
}

type collectionCommandsImpl struct {
	backend CollectionScheduler
	repo    snapshot.Repository
	session *shared.SessionState
	clock   clock.Clock
}

func NewCollectionCommands(
	backendClient CollectionScheduler,
	repo snapshot.Repository,
	session *shared.SessionState,
	clk clock.Clock,
) CollectionCommands {
	return &collectionCommandsImpl{
		backend: backendClient,
		repo:    repo,
		session: session,
		clock:   clk,
	}
}

func (c *collectionCommandsImpl) Submit(ctx context.Context, input SubmitCollectionInput) (*backend.CollectionView, error) {
	tok, ok := c.session.Token()
	if !ok {
		return nil, errs.ErrNotLoggedIn
	}
	if len(input.Items) == 0 {
		return nil, ErrNoCollectionItems
	}

	items := make([]collection.Item, len(input.Items))
	copy(items, input.Items)
	for i := range items {
		items[i].EstimatedPoints = collection.EstimatePoints(items[i].Type, items[i].Condition, items[i].Quantity)
	}

	view, err := c.backend.CreateCollection(ctx, tok, backend.CreateCollectionRequest{
		Items:         items,
		Address:       input.Address,
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		Instructions:  input.Instructions,
	})
	if err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return nil, errs.Mark(err, errs.ErrBackendUnavailable)
		}
		return nil, errs.Mark(err, errs.ErrBackendRejected)
	}

	slog.Info("collection scheduled",
		"collection_id", view.ID, "estimated_points", collection.TotalEstimate(items))
	return view, nil
}

func (c *collectionCommandsImpl) SyncCompleted(ctx context.Context) (int, error) {
	user, ok := c.session.User()
	if !ok {
		return 0, errs.ErrNotLoggedIn
	}
	tok, _ := c.session.Token()
	ledger, ok := c.session.Ledger()
	if !ok {
		return 0, errs.ErrNotLoggedIn
	}

	views, err := c.backend.ListCollections(ctx, tok)
	if err != nil {
		if infra.IsKind(err, infra.KindUnavailable) {
			return 0, errs.Mark(err, errs.ErrBackendUnavailable)
		}
		return 0, errs.Mark(err, errs.ErrBackendRejected)
	}

	credited := make(map[string]bool)
	for _, txn := range ledger.History() {
		if txn.Direction == points.DirectionEarned && txn.CorrelationID != "" {
			credited[txn.CorrelationID] = true
		}
	}

	count := 0
	for _, v := range views {
		if v.Status != "completed" || credited[v.ID] || v.EstimatedPoints <= 0 {
			continue
		}
		if _, err := ledger.Earn(v.EstimatedPoints, "E-waste collection", v.ID, c.clock.Now()); err != nil {
			slog.Warn("failed to credit collection", "collection_id", v.ID, "error", err)
			continue
		}
		count++
	}
	if count > 0 {
		PersistLedger(ctx, c.repo, user.ID, ledger)
		slog.Info("collections credited", "count", count)
	}
	return count, nil
}
