package dto

// DashboardStatsDTO - сводка для главной страницы панели.
// MonthlyRevenue исторически считается за всё время, а не за месяц;
// имя поля сохранено ради совместимости с клиентом.
type DashboardStatsDTO struct {
	ActiveTasks       int     `json:"activeTasks"`
	TotalTechnicians  int     `json:"totalTechnicians"`
	ActiveTechnicians int     `json:"activeTechnicians"`
	PendingInvoices   int     `json:"pendingInvoices"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
}
