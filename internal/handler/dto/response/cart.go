package response

import (
	"fmt"

	"ecocollect/internal/domain/cart"
	"ecocollect/internal/usecase/queries"
)

// CartMutationResponse pairs the post-mutation cart with a notice the UI
// can surface as a toast.
type CartMutationResponse struct {
	Event  string            `json:"event"`
	Notice string            `json:"notice,omitempty"`
	Cart   *queries.CartView `json:"cart"`
}

func FromCartEvent(ev cart.Event, view *queries.CartView) *CartMutationResponse {
	return &CartMutationResponse{
		Event:  string(ev.Kind),
		Notice: noticeFor(ev),
		Cart:   view,
	}
}

func noticeFor(ev cart.Event) string {
	switch ev.Kind {
	case cart.EventItemAdded:
		return fmt.Sprintf("%s added to cart", ev.ProductName)
	case cart.EventQuantityChanged:
		return fmt.Sprintf("%s quantity set to %d", ev.ProductName, ev.Quantity)
	case cart.EventItemRemoved:
		return fmt.Sprintf("%s removed from cart", ev.ProductName)
	case cart.EventCleared:
		return "Cart cleared"
	default:
		return ""
	}
}
