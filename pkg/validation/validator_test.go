package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type amountPayload struct {
	Amount string `json:"amount" validate:"required,decimal_amount"`
}

type telegramPayload struct {
	TelegramID string `json:"telegramId" validate:"required,telegram_id"`
}

func TestDecimalAmountRule(t *testing.T) {
	v := New()

	for _, amount := range []string{"450", "450.5", "450.00", "0.99"} {
		assert.NoErrorf(t, v.Validate(&amountPayload{Amount: amount}), "сумма %q должна проходить", amount)
	}
	for _, amount := range []string{"", "NaN", "-5", "12.345", "12,00", "1e3", " 450"} {
		assert.Errorf(t, v.Validate(&amountPayload{Amount: amount}), "сумма %q должна отклоняться", amount)
	}
}

func TestTelegramIDRule(t *testing.T) {
	v := New()

	for _, id := range []string{"@ahmed_tech", "ahmed_tech", "123456789"} {
		assert.NoErrorf(t, v.Validate(&telegramPayload{TelegramID: id}), "идентификатор %q должен проходить", id)
	}
	for _, id := range []string{"", "@", "@с пробелом", "@кириллица"} {
		assert.Errorf(t, v.Validate(&telegramPayload{TelegramID: id}), "идентификатор %q должен отклоняться", id)
	}
}
