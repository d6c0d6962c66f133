package services

import (
	"context"
	"testing"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/entities"
	"fieldops-system/internal/repositories"
	apperrors "fieldops-system/pkg/errors"
	"fieldops-system/pkg/utils"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func taskPayload(title string) dto.CreateTaskDTO {
	return dto.CreateTaskDTO{
		Title:             title,
		Description:       "описание",
		ClientName:        "Клиент",
		ClientPhone:       "+992900000000",
		Location:          "Душанбе",
		ScheduledDate:     "2024-06-19",
		ScheduledTimeFrom: "09:00",
		ScheduledTimeTo:   "12:00",
	}
}

func TestCreateTechnicianWritesNotification(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewStore()
	svc := NewTechnicianService(store.Technicians, store.Notifications, zap.NewNop())

	technician, err := svc.CreateTechnician(ctx, dto.CreateTechnicianDTO{
		TelegramID: "@new_tech",
		FirstName:  "Алим",
		LastName:   null.StringFrom("Каримов"),
	})
	require.NoError(t, err)

	notifications, err := store.Notifications.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "technician_added", notifications[0].Type)
	assert.Contains(t, notifications[0].Message, technician.FullName())
	assert.False(t, notifications[0].IsRead)
}

func TestCreateTaskWritesNotification(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewStore()
	svc := NewTaskService(store.Tasks, store.Notifications, zap.NewNop())

	task, err := svc.CreateTask(ctx, taskPayload("Ремонт кондиционера"))
	require.NoError(t, err)

	notifications, err := store.Notifications.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "task_created", notifications[0].Type)
	assert.Contains(t, notifications[0].Message, task.TaskNumber)
}

func TestUpdateTaskStatusNotification(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewStore()
	svc := NewTaskService(store.Tasks, store.Notifications, zap.NewNop())

	task, err := svc.CreateTask(ctx, taskPayload("Задача"))
	require.NoError(t, err)

	title := "Просто переименование"
	_, err = svc.UpdateTask(ctx, task.ID, dto.UpdateTaskDTO{Title: &title})
	require.NoError(t, err)

	notifications, _ := store.Notifications.GetNotifications(ctx)
	require.Len(t, notifications, 1, "патч без status уведомления не добавляет")

	// Уведомление пишется по факту присутствия status в патче, даже
	// если значение не изменилось.
	status := entities.TaskStatusPending
	_, err = svc.UpdateTask(ctx, task.ID, dto.UpdateTaskDTO{Status: &status})
	require.NoError(t, err)

	notifications, _ = store.Notifications.GetNotifications(ctx)
	require.Len(t, notifications, 2)
	assert.Equal(t, "task_status_changed", notifications[0].Type)
	assert.Contains(t, notifications[0].Message, task.TaskNumber)
	assert.Contains(t, notifications[0].Message, status)
}

func TestCreateInvoiceWritesNotification(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewStore()
	svc := NewInvoiceService(store.Invoices, store.Notifications, zap.NewNop())

	invoice, err := svc.CreateInvoice(ctx, dto.CreateInvoiceDTO{TaskID: 1, TechnicianID: 1, Amount: "250.00"})
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusPending, invoice.Status)

	notifications, err := store.Notifications.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "invoice_created", notifications[0].Type)
	assert.Contains(t, notifications[0].Message, invoice.InvoiceNumber)
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewStore()
	taskSvc := NewTaskService(store.Tasks, store.Notifications, zap.NewNop())
	invoiceSvc := NewInvoiceService(store.Invoices, store.Notifications, zap.NewNop())
	dashboardSvc := NewDashboardService(store.Tasks, store.Technicians, store.Invoices, zap.NewNop())

	_, err := store.Technicians.CreateTechnician(ctx, dto.CreateTechnicianDTO{TelegramID: "@a", FirstName: "А"})
	require.NoError(t, err)
	_, err = store.Technicians.CreateTechnician(ctx, dto.CreateTechnicianDTO{
		TelegramID: "@b", FirstName: "Б", IsActive: null.BoolFrom(false),
	})
	require.NoError(t, err)

	// Задачи по одной на каждый статус: активны только sent, accepted
	// и in_progress.
	statuses := []string{
		entities.TaskStatusPending, entities.TaskStatusSent, entities.TaskStatusAccepted,
		entities.TaskStatusRejected, entities.TaskStatusInProgress, entities.TaskStatusCompleted,
		entities.TaskStatusPaid,
	}
	for _, status := range statuses {
		task, err := taskSvc.CreateTask(ctx, taskPayload("Задача "+status))
		require.NoError(t, err)
		if status != entities.TaskStatusPending {
			s := status
			_, err = store.Tasks.UpdateTask(ctx, task.ID, dto.UpdateTaskDTO{Status: &s})
			require.NoError(t, err)
		}
	}

	paid := entities.InvoiceStatusPaid
	for _, amount := range []string{"60.50", "39.50"} {
		invoice, err := invoiceSvc.CreateInvoice(ctx, dto.CreateInvoiceDTO{TaskID: 1, TechnicianID: 1, Amount: amount})
		require.NoError(t, err)
		_, err = store.Invoices.UpdateInvoice(ctx, invoice.ID, dto.UpdateInvoiceDTO{Status: &paid})
		require.NoError(t, err)
	}
	_, err = invoiceSvc.CreateInvoice(ctx, dto.CreateInvoiceDTO{TaskID: 1, TechnicianID: 1, Amount: "500.00"})
	require.NoError(t, err)

	stats, err := dashboardSvc.GetDashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.ActiveTasks)
	assert.Equal(t, 2, stats.TotalTechnicians)
	assert.Equal(t, 1, stats.ActiveTechnicians)
	assert.Equal(t, 1, stats.PendingInvoices)
	assert.InDelta(t, 100.00, stats.MonthlyRevenue, 0.001)
}

func TestDashboardSkipsUnparseableAmount(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewStore()
	dashboardSvc := NewDashboardService(store.Tasks, store.Technicians, store.Invoices, zap.NewNop())

	// Битое значение может попасть только через восстановление снимка,
	// create-путь такие суммы не пропускает.
	_, err := store.Invoices.Import(ctx, []entities.Invoice{
		{ID: 1, InvoiceNumber: "INV-000001", Amount: "NaN", Status: entities.InvoiceStatusPaid},
		{ID: 2, InvoiceNumber: "INV-000002", Amount: "75.25", Status: entities.InvoiceStatusPaid},
	})
	require.NoError(t, err)

	stats, err := dashboardSvc.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 75.25, stats.MonthlyRevenue, 0.001)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewStore()

	hash, err := utils.HashPassword("admin123")
	require.NoError(t, err)
	_, err = store.Users.CreateUser(ctx, "admin", hash, "admin")
	require.NoError(t, err)

	svc := NewAuthService(store.Users, "panel-token", zap.NewNop())

	res, err := svc.Login(ctx, dto.LoginDTO{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", res.User.Username)
	assert.Equal(t, "admin", res.User.Role)
	assert.Equal(t, "panel-token", res.Token)

	_, err = svc.Login(ctx, dto.LoginDTO{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginDTO{Username: "nobody", Password: "admin123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestBackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := repositories.NewStore()
	taskSvc := NewTaskService(source.Tasks, source.Notifications, zap.NewNop())

	_, err := source.Technicians.CreateTechnician(ctx, dto.CreateTechnicianDTO{TelegramID: "@t", FirstName: "Т"})
	require.NoError(t, err)
	task, err := taskSvc.CreateTask(ctx, taskPayload("Задача"))
	require.NoError(t, err)

	backupSvc := NewBackupService(
		source.IDs, source.Technicians, source.Tasks, source.Invoices, source.BotSettings, source.Notifications, zap.NewNop(),
	)
	snapshot, err := backupSvc.Snapshot(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, snapshot.Name)
	require.Len(t, snapshot.Tasks, 1)
	require.NotNil(t, snapshot.BotSettings)

	target := repositories.NewStore()
	restoreSvc := NewBackupService(
		target.IDs, target.Technicians, target.Tasks, target.Invoices, target.BotSettings, target.Notifications, zap.NewNop(),
	)
	require.NoError(t, restoreSvc.Restore(ctx, *snapshot))

	restored, err := target.Tasks.FindTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.TaskNumber, restored.TaskNumber)

	// Счётчик сдвинут за максимальный id снимка: новая запись не
	// затирает восстановленные.
	fresh, err := target.Tasks.CreateTask(ctx, taskPayload("После восстановления"))
	require.NoError(t, err)
	assert.Greater(t, fresh.ID, task.ID)
}
