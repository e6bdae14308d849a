package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"aster/internal/application/payment/usecases"
	"aster/internal/shared/errors"
	"aster/internal/shared/logger"
	"aster/internal/shared/utils"
)

type CheckoutRequest struct {
	TradeNo       string `json:"trade_no" validate:"required,max=64"`
	TotalFeeCents int64  `json:"total_fee_cents" validate:"required,gt=0"`
}

type PaymentHandler struct {
	payOrder       usecases.PayOrderExecutor
	handleCallback usecases.HandleCallbackExecutor
	logger         logger.Interface
}

func NewPaymentHandler(
	payOrder usecases.PayOrderExecutor,
	handleCallback usecases.HandleCallbackExecutor,
	logger logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		payOrder:       payOrder,
		handleCallback: handleCallback,
		logger:         logger,
	}
}

// Checkout creates a payment at the gateway and returns its response, which
// carries the cashier URL the frontend redirects to.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for checkout", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.payOrder.Execute(c.Request.Context(), usecases.PayOrderCommand{
		TradeNo:       req.TradeNo,
		TotalFeeCents: req.TotalFeeCents,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Response)
}

// Notify handles the gateway's asynchronous payment-completion callback.
// The gateway expects a bare "success"/"fail" body, not the JSON envelope.
func (h *PaymentHandler) Notify(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.logger.Warnw("unparseable payment callback", "error", err)
		c.String(http.StatusBadRequest, "fail")
		return
	}

	params := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	result, err := h.handleCallback.Execute(c.Request.Context(), usecases.HandleCallbackCommand{
		Params: params,
	})
	if err != nil {
		h.logger.Warnw("payment callback refused", "error", err)
		c.String(http.StatusBadRequest, "fail")
		return
	}

	if !result.Paid {
		h.logger.Infow("payment callback without completed payment", "trade_no", result.TradeNo)
	}

	c.String(http.StatusOK, "success")
}
