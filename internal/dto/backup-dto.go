package dto

import (
	"time"

	"fieldops-system/internal/entities"
)

// BackupDTO - полный снимок хранилища. Пользователи в снимок не входят:
// учётная запись администратора задаётся конфигурацией.
type BackupDTO struct {
	Name          string                  `json:"name"`
	CreatedAt     time.Time               `json:"createdAt"`
	Technicians   []entities.Technician   `json:"technicians"`
	Tasks         []entities.Task         `json:"tasks"`
	Invoices      []entities.Invoice      `json:"invoices"`
	BotSettings   *entities.BotSettings   `json:"botSettings"`
	Notifications []entities.Notification `json:"notifications"`
}
