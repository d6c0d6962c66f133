package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

type Technician struct {
	ID          uint64      `json:"id"`
	TelegramID  string      `json:"telegramId"`
	FirstName   string      `json:"firstName"`
	LastName    null.String `json:"lastName"`
	Username    null.String `json:"username"`
	PhoneNumber null.String `json:"phoneNumber"`
	IsActive    bool        `json:"isActive"`
	JoinedAt    time.Time   `json:"joinedAt"`
}

// FullName - имя для уведомлений; фамилия может отсутствовать.
func (t Technician) FullName() string {
	if t.LastName.Valid && t.LastName.String != "" {
		return t.FirstName + " " + t.LastName.String
	}
	return t.FirstName
}
