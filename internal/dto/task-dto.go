package dto

import "github.com/aarondl/null/v8"

// CreateTaskDTO: поле status не принимается - новая задача всегда
// создаётся в статусе "pending".
type CreateTaskDTO struct {
	Title             string      `json:"title" validate:"required"`
	Description       string      `json:"description" validate:"required"`
	ClientName        string      `json:"clientName" validate:"required"`
	ClientPhone       string      `json:"clientPhone" validate:"required"`
	Location          string      `json:"location" validate:"required"`
	MapURL            null.String `json:"mapUrl" validate:"omitempty,url"`
	TechnicianID      null.Uint64 `json:"technicianId"`
	ScheduledDate     string      `json:"scheduledDate" validate:"required"`
	ScheduledTimeFrom string      `json:"scheduledTimeFrom" validate:"required"`
	ScheduledTimeTo   string      `json:"scheduledTimeTo" validate:"required"`
}

type UpdateTaskDTO struct {
	Title             *string `json:"title" validate:"omitempty,min=1"`
	Description       *string `json:"description" validate:"omitempty,min=1"`
	ClientName        *string `json:"clientName" validate:"omitempty,min=1"`
	ClientPhone       *string `json:"clientPhone" validate:"omitempty,min=1"`
	Location          *string `json:"location" validate:"omitempty,min=1"`
	MapURL            *string `json:"mapUrl" validate:"omitempty,url"`
	TechnicianID      *uint64 `json:"technicianId"`
	Status            *string `json:"status" validate:"omitempty,oneof=pending sent accepted rejected in_progress completed paid"`
	ScheduledDate     *string `json:"scheduledDate" validate:"omitempty,min=1"`
	ScheduledTimeFrom *string `json:"scheduledTimeFrom" validate:"omitempty,min=1"`
	ScheduledTimeTo   *string `json:"scheduledTimeTo" validate:"omitempty,min=1"`
}
