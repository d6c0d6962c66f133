package entities

import "time"

// Notification - запись журнала побочных эффектов. Журнал только
// дополняется; меняется лишь флаг isRead.
type Notification struct {
	ID        uint64    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
