package routes

import (
	"fieldops-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runTechnicianRouter(secureGroup *echo.Group, technicianCtrl *controllers.TechnicianController) {
	secureGroup.GET("/technicians", technicianCtrl.GetTechnicians)
	secureGroup.POST("/technicians", technicianCtrl.CreateTechnician)
	secureGroup.PUT("/technicians/:id", technicianCtrl.UpdateTechnician)
	secureGroup.DELETE("/technicians/:id", technicianCtrl.DeleteTechnician)
}
