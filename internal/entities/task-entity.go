package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Статусы задачи. Хранилище принимает только эти значения; порядок
// переходов не ограничен, как и в админ-панели.
const (
	TaskStatusPending    = "pending"
	TaskStatusSent       = "sent"
	TaskStatusAccepted   = "accepted"
	TaskStatusRejected   = "rejected"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusPaid       = "paid"
)

type Task struct {
	ID                uint64      `json:"id"`
	TaskNumber        string      `json:"taskNumber"`
	Title             string      `json:"title"`
	Description       string      `json:"description"`
	ClientName        string      `json:"clientName"`
	ClientPhone       string      `json:"clientPhone"`
	Location          string      `json:"location"`
	MapURL            null.String `json:"mapUrl"`
	TechnicianID      null.Uint64 `json:"technicianId"`
	Status            string      `json:"status"`
	ScheduledDate     string      `json:"scheduledDate"`
	ScheduledTimeFrom string      `json:"scheduledTimeFrom"`
	ScheduledTimeTo   string      `json:"scheduledTimeTo"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}
