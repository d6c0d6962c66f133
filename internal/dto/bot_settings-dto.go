package dto

import "github.com/aarondl/null/v8"

// UpdateBotSettingsDTO заменяет единственную запись настроек целиком.
// Отсутствующий isActive записывается как false.
type UpdateBotSettingsDTO struct {
	BotToken         string      `json:"botToken" validate:"required"`
	GoogleMapsAPIKey null.String `json:"googleMapsApiKey" validate:"omitempty,min=1"`
	IsActive         null.Bool   `json:"isActive"`
}
