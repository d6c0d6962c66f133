package controllers

import (
	"fmt"
	"net/http"
	"time"

	"fieldops-system/internal/entities"
	"fieldops-system/internal/services"
	"fieldops-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

var taskSheetHeaders = []string{
	"Number", "Title", "Client", "Client phone", "Location", "Status",
	"Technician", "Scheduled date", "Time from", "Time to", "Created at",
}

var technicianSheetHeaders = []string{
	"Technician", "Total tasks", "Completed tasks", "Paid revenue",
}

// ExportReport выгружает книгу XLSX: лист задач и сводный лист по
// техникам - те же цифры, что страница отчётов считает на клиенте.
func (c *ReportController) ExportReport(ctx echo.Context) error {
	data, err := c.reportService.GetReportData(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	f := excelize.NewFile()
	taskSheet := "Tasks"
	f.SetSheetName("Sheet1", taskSheet)
	f.SetSheetRow(taskSheet, "A1", &taskSheetHeaders)

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(taskSheet, "A1", "K1", headerStyle)

	for i, task := range data.Tasks {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := taskRow(task, data.Technicians)
		f.SetSheetRow(taskSheet, cell, &row)
	}
	f.SetColWidth(taskSheet, "B", "B", 30)
	f.SetColWidth(taskSheet, "C", "E", 25)
	f.SetColWidth(taskSheet, "G", "G", 25)

	summarySheet := "Technicians"
	f.NewSheet(summarySheet)
	f.SetSheetRow(summarySheet, "A1", &technicianSheetHeaders)
	f.SetCellStyle(summarySheet, "A1", "D1", headerStyle)
	for i, summary := range data.Summaries {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{summary.Name, summary.TotalTasks, summary.CompletedTasks, summary.PaidRevenue}
		f.SetSheetRow(summarySheet, cell, &row)
	}
	f.SetColWidth(summarySheet, "A", "A", 30)

	fileName := fmt.Sprintf("report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func taskRow(task entities.Task, technicians map[uint64]entities.Technician) []interface{} {
	technicianName := "Unassigned"
	if task.TechnicianID.Valid {
		// Висячая ссылка после удаления техника показывается как Unknown.
		technicianName = "Unknown"
		if technician, ok := technicians[task.TechnicianID.Uint64]; ok {
			technicianName = technician.FullName()
		}
	}

	return []interface{}{
		task.TaskNumber, task.Title, task.ClientName, task.ClientPhone, task.Location,
		task.Status, technicianName, task.ScheduledDate, task.ScheduledTimeFrom,
		task.ScheduledTimeTo, task.CreatedAt.Format("2006-01-02 15:04"),
	}
}
