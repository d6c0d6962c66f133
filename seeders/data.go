package seeders

import (
	"fieldops-system/internal/dto"

	"github.com/aarondl/null/v8"
)

// Демонстрационный набор: три техника, четыре задачи в разных статусах,
// три счёта и несколько уведомлений. Данные проходят через обычные
// create-пути хранилища, поэтому номера и id выдаются как в проде.
var demoTechnicians = []dto.CreateTechnicianDTO{
	{
		TelegramID:  "@ahmed_tech",
		FirstName:   "Ahmed",
		LastName:    null.StringFrom("Mohammed"),
		Username:    null.StringFrom("ahmed_tech"),
		PhoneNumber: null.StringFrom("+966501234567"),
		IsActive:    null.BoolFrom(true),
	},
	{
		TelegramID:  "@mohammed_fix",
		FirstName:   "Mohammed",
		LastName:    null.StringFrom("Ali"),
		Username:    null.StringFrom("mohammed_fix"),
		PhoneNumber: null.StringFrom("+966507654321"),
		IsActive:    null.BoolFrom(true),
	},
	{
		TelegramID:  "@khalid_repair",
		FirstName:   "Khalid",
		LastName:    null.StringFrom("Alsaad"),
		Username:    null.StringFrom("khalid_repair"),
		PhoneNumber: null.StringFrom("+966509876543"),
		IsActive:    null.BoolFrom(false),
	},
}

// technicianIndex: позиция в demoTechnicians; -1 означает задачу без
// исполнителя. Статус выставляется отдельным патчем после создания.
var demoTasks = []struct {
	payload         dto.CreateTaskDTO
	technicianIndex int
	status          string
}{
	{
		payload: dto.CreateTaskDTO{
			Title:             "Central AC repair",
			Description:       "Compressor failure in the head office central AC unit",
			ClientName:        "Advanced Business Co.",
			ClientPhone:       "+966501111111",
			Location:          "Riyadh, Al Olaya, Business Tower",
			MapURL:            null.StringFrom("https://maps.google.com/?q=24.7136,46.6753"),
			ScheduledDate:     "2024-06-19",
			ScheduledTimeFrom: "09:00",
			ScheduledTimeTo:   "12:00",
		},
		technicianIndex: 0,
		status:          "in_progress",
	},
	{
		payload: dto.CreateTaskDTO{
			Title:             "Cooling system maintenance",
			Description:       "Scheduled maintenance of the cooling system in the main warehouse",
			ClientName:        "General Trade Est.",
			ClientPhone:       "+966502222222",
			Location:          "Jeddah, Al Rawdah, Prince Sultan Rd",
			MapURL:            null.StringFrom("https://maps.google.com/?q=21.5433,39.1728"),
			ScheduledDate:     "2024-06-18",
			ScheduledTimeFrom: "14:00",
			ScheduledTimeTo:   "17:00",
		},
		technicianIndex: 1,
		status:          "completed",
	},
	{
		payload: dto.CreateTaskDTO{
			Title:             "New split AC installation",
			Description:       "Install a split AC unit in the administration office",
			ClientName:        "Engineering Consulting Office",
			ClientPhone:       "+966503333333",
			Location:          "Dammam, Al Faisaliyah, Office Park",
			MapURL:            null.StringFrom("https://maps.google.com/?q=26.3927,50.0410"),
			ScheduledDate:     "2024-06-20",
			ScheduledTimeFrom: "10:00",
			ScheduledTimeTo:   "15:00",
		},
		technicianIndex: -1,
		status:          "pending",
	},
	{
		payload: dto.CreateTaskDTO{
			Title:             "Electrical fault repair",
			Description:       "Fix a fault in the AC unit electrical circuit",
			ClientName:        "Al Asala Restaurant",
			ClientPhone:       "+966504444444",
			Location:          "Khobar, Corniche, next to Marina Mall",
			MapURL:            null.StringFrom("https://maps.google.com/?q=26.2172,50.1971"),
			ScheduledDate:     "2024-06-19",
			ScheduledTimeFrom: "16:00",
			ScheduledTimeTo:   "18:00",
		},
		technicianIndex: 0,
		status:          "sent",
	},
}

// taskIndex/technicianIndex ссылаются на позиции в demoTasks и
// demoTechnicians.
var demoInvoices = []struct {
	taskIndex       int
	technicianIndex int
	amount          string
	status          string
}{
	{taskIndex: 1, technicianIndex: 1, amount: "450.00", status: "paid"},
	{taskIndex: 0, technicianIndex: 0, amount: "1300.00", status: "pending"},
	{taskIndex: 3, technicianIndex: 0, amount: "275.00", status: "pending"},
}

var demoNotifications = []struct {
	payload dto.CreateNotificationDTO
	isRead  bool
}{
	{
		payload: dto.CreateNotificationDTO{Type: "task_assigned", Message: "New task assigned: Central AC repair"},
	},
	{
		payload: dto.CreateNotificationDTO{Type: "payment_received", Message: "Invoice for 450.00 has been paid"},
	},
	{
		payload: dto.CreateNotificationDTO{Type: "task_completed", Message: "Cooling system maintenance completed"},
		isRead:  true,
	},
}
