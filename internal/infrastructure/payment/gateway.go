// Package payment adapts the gateway SDK clients to the application layer.
package payment

import (
	"context"
	"time"

	"aster/internal/infrastructure/payment/theadpay"
	"aster/internal/shared/config"
)

// THeadPayGateway wraps the THeadPay client with the configured merchant
// credentials.
type THeadPayGateway struct {
	client *theadpay.Client
	key    string
}

func NewTHeadPayGateway(cfg *config.THeadPayConfig) *THeadPayGateway {
	client := theadpay.NewClient(theadpay.Config{
		MerchantID:         cfg.MerchantID,
		GatewayURL:         cfg.GatewayURL,
		Key:                cfg.Key,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Timeout:            time.Duration(cfg.TimeoutSeconds) * time.Second,
	})

	return &THeadPayGateway{
		client: client,
		key:    cfg.Key,
	}
}

func (g *THeadPayGateway) Pay(ctx context.Context, order theadpay.Order) (map[string]any, error) {
	return g.client.Pay(ctx, order)
}

func (g *THeadPayGateway) Verify(params theadpay.Params) bool {
	return theadpay.Verify(params, g.key)
}
