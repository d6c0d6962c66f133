package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("decimal_amount", isDecimalAmount); err != nil {
		return err
	}
	if err := v.RegisterValidation("telegram_id", isTelegramID); err != nil {
		return err
	}
	return nil
}

var amountRegex = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// isDecimalAmount - денежная сумма как строка: "450", "450.5", "450.00".
// Всё остальное ("NaN", пустая строка, минус) отклоняется.
func isDecimalAmount(fl validator.FieldLevel) bool {
	return amountRegex.MatchString(fl.Field().String())
}

var telegramIDRegex = regexp.MustCompile(`^@?[A-Za-z0-9_]{1,64}$`)

// isTelegramID - идентификатор в мессенджере: "@ahmed_tech" или числовой id.
func isTelegramID(fl validator.FieldLevel) bool {
	return telegramIDRegex.MatchString(fl.Field().String())
}
