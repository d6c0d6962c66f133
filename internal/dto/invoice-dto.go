package dto

// CreateInvoiceDTO: статус не принимается, счёт создаётся в "pending".
// Существование task/technician на этом уровне не проверяется -
// ссылочная целостность здесь структурная, не синхронная.
type CreateInvoiceDTO struct {
	TaskID       uint64 `json:"taskId" validate:"required"`
	TechnicianID uint64 `json:"technicianId" validate:"required"`
	Amount       string `json:"amount" validate:"required,decimal_amount"`
}

type UpdateInvoiceDTO struct {
	TaskID       *uint64 `json:"taskId"`
	TechnicianID *uint64 `json:"technicianId"`
	Amount       *string `json:"amount" validate:"omitempty,decimal_amount"`
	Status       *string `json:"status" validate:"omitempty,oneof=pending sent paid"`
}
