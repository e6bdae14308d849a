package usecases

import (
	"context"
	goerrors "errors"
	"strings"

	"aster/internal/infrastructure/payment/theadpay"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type PayOrderCommand struct {
	TradeNo       string
	TotalFeeCents int64
}

// PayOrderResult carries the full gateway response; the cashier URL and any
// gateway-assigned identifiers inside it are owned by the caller.
type PayOrderResult struct {
	Response map[string]any
}

// PayOrderUseCase performs the outbound create-payment call. The callback
// URLs are fixed at construction from configuration; the caller only supplies
// the order itself.
type PayOrderUseCase struct {
	gateway   Gateway
	notifyURL string
	returnURL string
	logger    logger.Interface
}

func NewPayOrderUseCase(
	gateway Gateway,
	notifyURL string,
	returnURL string,
	logger logger.Interface,
) *PayOrderUseCase {
	return &PayOrderUseCase{
		gateway:   gateway,
		notifyURL: notifyURL,
		returnURL: returnURL,
		logger:    logger,
	}
}

func (uc *PayOrderUseCase) Execute(ctx context.Context, cmd PayOrderCommand) (*PayOrderResult, error) {
	uc.logger.Infow("executing pay order use case", "trade_no", cmd.TradeNo, "total_fee_cents", cmd.TotalFeeCents)

	if len(strings.TrimSpace(cmd.TradeNo)) == 0 {
		return nil, errors.NewValidationError("trade number is required")
	}
	if cmd.TotalFeeCents <= 0 {
		return nil, errors.NewValidationError("total fee must be positive")
	}

	response, err := uc.gateway.Pay(ctx, theadpay.Order{
		TradeNo:       cmd.TradeNo,
		TotalFeeCents: cmd.TotalFeeCents,
		NotifyURL:     uc.notifyURL,
		ReturnURL:     uc.returnURL,
	})
	if err != nil {
		var rejected *theadpay.RejectedError
		if goerrors.As(err, &rejected) {
			uc.logger.Warnw("payment rejected by gateway", "trade_no", cmd.TradeNo, "reason", rejected.Message)
			return nil, errors.NewBadGatewayError("payment rejected by gateway", rejected.Message)
		}
		uc.logger.Errorw("payment gateway unreachable", "trade_no", cmd.TradeNo, "error", err)
		return nil, errors.NewBadGatewayError("payment gateway unreachable")
	}

	uc.logger.Infow("payment created", "trade_no", cmd.TradeNo)

	return &PayOrderResult{Response: response}, nil
}
