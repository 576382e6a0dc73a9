package request

import "ecocollect/internal/usecase/commands"

type CheckoutRequest struct {
	PaymentMethod   string `json:"payment_method" binding:"required,oneof=card points cash-on-delivery"`
	ShippingAddress string `json:"shipping_address" binding:"required,max=300"`
}

func (r *CheckoutRequest) ToInput() commands.CheckoutInput {
	return commands.CheckoutInput{
		PaymentMethod:   r.PaymentMethod,
		ShippingAddress: r.ShippingAddress,
	}
}
