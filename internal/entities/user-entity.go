package entities

import "time"

type User struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`

	// Хеш bcrypt, наружу не отдаётся.
	Password string `json:"-"`

	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
