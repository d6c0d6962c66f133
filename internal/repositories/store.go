package repositories

// Store собирает все in-memory репозитории поверх одного счётчика id.
// Один экземпляр на процесс: его делят роутер, сидеры и тесты.
type Store struct {
	IDs           *IDAllocator
	Users         UserRepositoryInterface
	Technicians   TechnicianRepositoryInterface
	Tasks         TaskRepositoryInterface
	Invoices      InvoiceRepositoryInterface
	BotSettings   BotSettingsRepositoryInterface
	Notifications NotificationRepositoryInterface
}

func NewStore() *Store {
	ids := NewIDAllocator()
	return &Store{
		IDs:           ids,
		Users:         NewUserRepository(ids),
		Technicians:   NewTechnicianRepository(ids),
		Tasks:         NewTaskRepository(ids),
		Invoices:      NewInvoiceRepository(ids),
		BotSettings:   NewBotSettingsRepository(),
		Notifications: NewNotificationRepository(ids),
	}
}
