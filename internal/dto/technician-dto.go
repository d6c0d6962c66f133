package dto

import "github.com/aarondl/null/v8"

// CreateTechnicianDTO: строгий список полей, допустимых при создании.
type CreateTechnicianDTO struct {
	TelegramID  string      `json:"telegramId" validate:"required,telegram_id"`
	FirstName   string      `json:"firstName" validate:"required"`
	LastName    null.String `json:"lastName"`
	Username    null.String `json:"username"`
	PhoneNumber null.String `json:"phoneNumber"`
	// При отсутствии поля техник создаётся активным.
	IsActive null.Bool `json:"isActive"`
}

// UpdateTechnicianDTO: частичный патч. Поля вне этого списка игнорируются.
type UpdateTechnicianDTO struct {
	TelegramID  *string `json:"telegramId" validate:"omitempty,telegram_id"`
	FirstName   *string `json:"firstName" validate:"omitempty,min=1"`
	LastName    *string `json:"lastName"`
	Username    *string `json:"username"`
	PhoneNumber *string `json:"phoneNumber"`
	IsActive    *bool   `json:"isActive"`
}
