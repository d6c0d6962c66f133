package entities

import "time"

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusSent    = "sent"
	InvoiceStatusPaid    = "paid"
)

type Invoice struct {
	ID            uint64    `json:"id"`
	InvoiceNumber string    `json:"invoiceNumber"`
	TaskID        uint64    `json:"taskId"`
	TechnicianID  uint64    `json:"technicianId"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
