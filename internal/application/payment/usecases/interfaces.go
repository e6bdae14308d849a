package usecases

import (
	"context"

	"aster/internal/infrastructure/payment/theadpay"
)

// Gateway is the payment provider surface the use cases depend on. The
// concrete adapter lives in infrastructure/payment.
type Gateway interface {
	// Pay performs the outbound create-payment call and returns the full
	// decoded gateway response.
	Pay(ctx context.Context, order theadpay.Order) (map[string]any, error)

	// Verify authenticates an inbound callback's signature.
	Verify(params theadpay.Params) bool
}

type PayOrderExecutor interface {
	Execute(ctx context.Context, cmd PayOrderCommand) (*PayOrderResult, error)
}

type HandleCallbackExecutor interface {
	Execute(ctx context.Context, cmd HandleCallbackCommand) (*HandleCallbackResult, error)
}
