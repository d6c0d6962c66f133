package routes

import (
	"fieldops-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runReportRouter(secureGroup *echo.Group, reportCtrl *controllers.ReportController) {
	secureGroup.GET("/reports/export", reportCtrl.ExportReport)
}
