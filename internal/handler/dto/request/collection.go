package request

import (
	"ecocollect/internal/domain/collection"
	"ecocollect/internal/usecase/commands"
)

type CollectionItemRequest struct {
	Type      string `json:"type" binding:"required,oneof=laptop desktop smartphone tablet monitor accessories"`
	Brand     string `json:"brand" binding:"omitempty,max=100"`
	Model     string `json:"model" binding:"omitempty,max=100"`
	Condition string `json:"condition" binding:"required,oneof=working minor-issues broken parts-only"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type SubmitCollectionRequest struct {
	Items         []CollectionItemRequest `json:"items" binding:"required,min=1,dive"`
	Address       string                  `json:"address" binding:"required,max=300"`
	PreferredDate string                  `json:"preferred_date" binding:"required"`
	PreferredTime string                  `json:"preferred_time" binding:"required"`
	Instructions  string                  `json:"instructions" binding:"omitempty,max=500"`
}

func (r *SubmitCollectionRequest) ToInput() commands.SubmitCollectionInput {
	items := make([]collection.Item, len(r.Items))
	for i, it := range r.Items {
		items[i] = collection.Item{
			Type:      collection.DeviceType(it.Type),
			Brand:     it.Brand,
			Model:     it.Model,
			Condition: collection.Condition(it.Condition),
			Quantity:  it.Quantity,
		}
	}
	return commands.SubmitCollectionInput{
		Items:         items,
		Address:       r.Address,
		PreferredDate: r.PreferredDate,
		PreferredTime: r.PreferredTime,
		Instructions:  r.Instructions,
	}
}
