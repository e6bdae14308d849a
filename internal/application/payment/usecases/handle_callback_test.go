package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aster/internal/infrastructure/payment/theadpay"
	"aster/internal/shared/errors"
)

func TestHandleCallbackUseCase_Execute(t *testing.T) {
	t.Run("verified successful payment", func(t *testing.T) {
		var gotParams theadpay.Params
		gateway := &mockGateway{
			VerifyFunc: func(params theadpay.Params) bool {
				gotParams = params
				return true
			},
		}
		uc := NewHandleCallbackUseCase(gateway, testLogger())

		result, err := uc.Execute(context.Background(), HandleCallbackCommand{
			Params: map[string]string{
				"out_trade_no": "T1",
				"status":       "success",
				"sign":         "ABCDEF",
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "T1", result.TradeNo)
		assert.True(t, result.Paid)
		assert.Equal(t, "T1", gotParams["out_trade_no"])
	})

	t.Run("verified but not successful", func(t *testing.T) {
		uc := NewHandleCallbackUseCase(&mockGateway{}, testLogger())

		result, err := uc.Execute(context.Background(), HandleCallbackCommand{
			Params: map[string]string{
				"out_trade_no": "T1",
				"status":       "pending",
				"sign":         "ABCDEF",
			},
		})

		require.NoError(t, err)
		assert.False(t, result.Paid)
	})

	t.Run("invalid signature is forbidden", func(t *testing.T) {
		gateway := &mockGateway{
			VerifyFunc: func(params theadpay.Params) bool { return false },
		}
		uc := NewHandleCallbackUseCase(gateway, testLogger())

		result, err := uc.Execute(context.Background(), HandleCallbackCommand{
			Params: map[string]string{"out_trade_no": "T1", "sign": "WRONG"},
		})

		require.Error(t, err)
		assert.Nil(t, result)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	})

	t.Run("missing trade number", func(t *testing.T) {
		uc := NewHandleCallbackUseCase(&mockGateway{}, testLogger())

		result, err := uc.Execute(context.Background(), HandleCallbackCommand{
			Params: map[string]string{"status": "success", "sign": "ABCDEF"},
		})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsValidationError(err))
	})
}
