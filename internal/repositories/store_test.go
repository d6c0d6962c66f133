package repositories

import (
	"context"
	"testing"

	"fieldops-system/internal/dto"
	"fieldops-system/internal/entities"
	apperrors "fieldops-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTechnicianPayload(telegramID, firstName string) dto.CreateTechnicianDTO {
	return dto.CreateTechnicianDTO{TelegramID: telegramID, FirstName: firstName}
}

func newTaskPayload(title string) dto.CreateTaskDTO {
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

func TestSharedIDAllocatorAcrossKinds(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	technician, err := store.Technicians.CreateTechnician(ctx, newTechnicianPayload("@one", "Первый"))
	require.NoError(t, err)
	task, err := store.Tasks.CreateTask(ctx, newTaskPayload("Первая задача"))
	require.NoError(t, err)
	invoice, err := store.Invoices.CreateInvoice(ctx, dto.CreateInvoiceDTO{TaskID: task.ID, TechnicianID: technician.ID, Amount: "100.00"})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), technician.ID, "первый id достаётся технику")
	assert.Equal(t, uint64(2), task.ID, "счётчик сквозной, а не по виду записей")
	assert.Equal(t, uint64(3), invoice.ID)

	assert.Equal(t, "TK-000002", task.TaskNumber, "номер задачи выводится из id")
	assert.Equal(t, "INV-000003", invoice.InvoiceNumber, "номер счёта выводится из id")
}

func TestCreateTaskForcesPendingStatus(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	task, err := store.Tasks.CreateTask(ctx, newTaskPayload("Задача"))
	require.NoError(t, err)
	assert.Equal(t, entities.TaskStatusPending, task.Status)
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)
}

func TestCreateTechnicianDefaultsToActive(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	technician, err := store.Technicians.CreateTechnician(ctx, newTechnicianPayload("@active", "Активный"))
	require.NoError(t, err)
	assert.True(t, technician.IsActive, "без isActive техник создаётся активным")
	assert.False(t, technician.LastName.Valid, "незаполненные поля остаются null")

	inactive, err := store.Technicians.CreateTechnician(ctx, dto.CreateTechnicianDTO{
		TelegramID: "@sleepy",
		FirstName:  "Спящий",
		IsActive:   null.BoolFrom(false),
	})
	require.NoError(t, err)
	assert.False(t, inactive.IsActive)
}

func TestUpdateMergesPatchAndKeepsRest(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	task, err := store.Tasks.CreateTask(ctx, newTaskPayload("Старое название"))
	require.NoError(t, err)

	newTitle := "Новое название"
	status := entities.TaskStatusSent
	updated, err := store.Tasks.UpdateTask(ctx, task.ID, dto.UpdateTaskDTO{Title: &newTitle, Status: &status})
	require.NoError(t, err)

	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, entities.TaskStatusSent, updated.Status)
	assert.Equal(t, task.Description, updated.Description, "незатронутые поля не меняются")
	assert.Equal(t, task.TaskNumber, updated.TaskNumber, "номер вычисляется только при создании")
	assert.False(t, updated.UpdatedAt.Before(task.UpdatedAt))
}

func TestNotFoundSemantics(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Tasks.UpdateTask(ctx, 999, dto.UpdateTaskDTO{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = store.Technicians.DeleteTechnician(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = store.Invoices.FindInvoice(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = store.Notifications.MarkAsRead(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteTechnicianDoesNotCascade(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	technician, err := store.Technicians.CreateTechnician(ctx, newTechnicianPayload("@gone", "Уходящий"))
	require.NoError(t, err)

	payload := newTaskPayload("Задача с исполнителем")
	payload.TechnicianID = null.Uint64From(technician.ID)
	task, err := store.Tasks.CreateTask(ctx, payload)
	require.NoError(t, err)

	require.NoError(t, store.Technicians.DeleteTechnician(ctx, technician.ID))

	kept, err := store.Tasks.FindTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, kept.TechnicianID.Valid, "ссылка на удалённого техника остаётся висячей")
	assert.Equal(t, technician.ID, kept.TechnicianID.Uint64)
}

func TestNotificationsSortedNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	first, err := store.Notifications.CreateNotification(ctx, dto.CreateNotificationDTO{Type: "a", Message: "первое"})
	require.NoError(t, err)
	second, err := store.Notifications.CreateNotification(ctx, dto.CreateNotificationDTO{Type: "b", Message: "второе"})
	require.NoError(t, err)
	third, err := store.Notifications.CreateNotification(ctx, dto.CreateNotificationDTO{Type: "c", Message: "третье"})
	require.NoError(t, err)

	require.NoError(t, store.Notifications.MarkAsRead(ctx, second.ID))

	all, err := store.Notifications.GetNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID, "свежие уведомления первыми")
	assert.Equal(t, first.ID, all[2].ID)

	unread, err := store.Notifications.GetUnreadNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, unread, 2)
	for _, n := range unread {
		assert.False(t, n.IsRead)
		assert.NotEqual(t, second.ID, n.ID)
	}
}

func TestBotSettingsSingleton(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	settings, err := store.BotSettings.GetBotSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), settings.ID)
	assert.Empty(t, settings.BotToken, "запись по умолчанию: пустой токен, бот выключен")
	assert.False(t, settings.IsActive)

	updated, err := store.BotSettings.UpdateBotSettings(ctx, dto.UpdateBotSettingsDTO{
		BotToken:         "123456:token",
		GoogleMapsAPIKey: null.StringFrom("maps-key"),
		IsActive:         null.BoolFrom(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	// Повторная замена без isActive сбрасывает флаг в false.
	replaced, err := store.BotSettings.UpdateBotSettings(ctx, dto.UpdateBotSettingsDTO{BotToken: "другой"})
	require.NoError(t, err)
	assert.False(t, replaced.IsActive)
	assert.False(t, replaced.GoogleMapsAPIKey.Valid, "замена целиком, без слияния")
}

func TestImportReplacesContentsAndReportsMaxID(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Tasks.CreateTask(ctx, newTaskPayload("живая задача"))
	require.NoError(t, err)

	records := []entities.Task{
		{ID: 41, TaskNumber: "TK-000041", Title: "из снимка", Status: entities.TaskStatusPending},
		{ID: 7, TaskNumber: "TK-000007", Title: "тоже из снимка", Status: entities.TaskStatusPaid},
	}
	maxID, err := store.Tasks.Import(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, uint64(41), maxID)

	list, err := store.Tasks.GetTasks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2, "импорт замещает содержимое, а не дополняет его")
	assert.Equal(t, uint64(7), list[0].ID)
	assert.Equal(t, uint64(41), list[1].ID)
}

func TestIDAllocatorAdvance(t *testing.T) {
	ids := NewIDAllocator()
	assert.Equal(t, uint64(1), ids.Next())

	ids.Advance(10)
	assert.Equal(t, uint64(11), ids.Next())

	// Сдвиг назад игнорируется.
	ids.Advance(3)
	assert.Equal(t, uint64(12), ids.Next())
}
