package response

import (
	"time"

	"ecocollect/internal/domain/collection"
	"ecocollect/internal/infra/backend"
	"ecocollect/internal/usecase/queries"
)

type CollectionResponse struct {
	ID              string                       `json:"id"`
	Status          string                       `json:"status"`
	Items           []queries.CollectionItemView `json:"items"`
	Address         string                       `json:"address"`
	PreferredDate   string                       `json:"preferred_date"`
	PreferredTime   string                       `json:"preferred_time"`
	Instructions    string                       `json:"instructions,omitempty"`
	EstimatedPoints int64                        `json:"estimated_points"`
	CreatedAt       time.Time                    `json:"created_at"`
}

func FromCollectionView(v *backend.CollectionView) *CollectionResponse {
	items := make([]queries.CollectionItemView, len(v.Items))
	for i, it := range v.Items {
		items[i] = queries.CollectionItemView{
			Type:            string(it.Type),
			Brand:           it.Brand,
			Model:           it.Model,
			Condition:       string(it.Condition),
			Quantity:        it.Quantity,
			EstimatedPoints: it.EstimatedPoints,
		}
	}
	return &CollectionResponse{
		ID:              v.ID,
		Status:          v.Status,
		Items:           items,
		Address:         v.Address,
		PreferredDate:   v.PreferredDate,
		PreferredTime:   v.PreferredTime,
		Instructions:    v.Instructions,
		EstimatedPoints: collection.TotalEstimate(v.Items),
		CreatedAt:       v.CreatedAt,
	}
}

type SyncCollectionsResponse struct {
	Credited int `json:"credited"`
}
