package usecases

import (
	"context"
	"io"
	"log/slog"

	"aster/internal/infrastructure/payment/theadpay"
	"aster/internal/shared/logger"
)

type mockGateway struct {
	PayFunc    func(ctx context.Context, order theadpay.Order) (map[string]any, error)
	VerifyFunc func(params theadpay.Params) bool
}

func (m *mockGateway) Pay(ctx context.Context, order theadpay.Order) (map[string]any, error) {
	if m.PayFunc != nil {
		return m.PayFunc(ctx, order)
	}
	return map[string]any{"status": "success"}, nil
}

func (m *mockGateway) Verify(params theadpay.Params) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(params)
	}
	return true
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
