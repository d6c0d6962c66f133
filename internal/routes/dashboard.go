package routes

import (
	"fieldops-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runDashboardRouter(secureGroup *echo.Group, dashboardCtrl *controllers.DashboardController) {
	secureGroup.GET("/dashboard/stats", dashboardCtrl.GetDashboardStats)
}
