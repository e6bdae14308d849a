package usecases

import (
	"context"
	"strings"

	"aster/internal/infrastructure/payment/theadpay"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
)

type HandleCallbackCommand struct {
	Params map[string]string
}

type HandleCallbackResult struct {
	TradeNo string
	Paid    bool
}

// HandleCallbackUseCase authenticates an asynchronous payment-completion
// callback. Nothing in the callback is trusted before the signature checks
// out.
type HandleCallbackUseCase struct {
	gateway Gateway
	logger  logger.Interface
}

func NewHandleCallbackUseCase(gateway Gateway, logger logger.Interface) *HandleCallbackUseCase {
	return &HandleCallbackUseCase{
		gateway: gateway,
		logger:  logger,
	}
}

func (uc *HandleCallbackUseCase) Execute(ctx context.Context, cmd HandleCallbackCommand) (*HandleCallbackResult, error) {
	params := theadpay.Params(cmd.Params)

	if !uc.gateway.Verify(params) {
		uc.logger.Warnw("payment callback with invalid signature", "trade_no", cmd.Params["out_trade_no"])
		return nil, errors.NewForbiddenError("invalid callback signature")
	}

	tradeNo := cmd.Params["out_trade_no"]
	if len(strings.TrimSpace(tradeNo)) == 0 {
		return nil, errors.NewValidationError("callback is missing the trade number")
	}

	paid := cmd.Params["status"] == "success"

	uc.logger.Infow("payment callback verified", "trade_no", tradeNo, "paid", paid)

	return &HandleCallbackResult{
		TradeNo: tradeNo,
		Paid:    paid,
	}, nil
}
