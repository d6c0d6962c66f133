package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// BotSettings - единственная запись конфигурации бота. ID всегда 1,
// обновление заменяет запись целиком.
type BotSettings struct {
	ID               uint64      `json:"id"`
	BotToken         string      `json:"botToken"`
	GoogleMapsAPIKey null.String `json:"googleMapsApiKey"`
	IsActive         bool        `json:"isActive"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}
