package routes

import (
	"fieldops-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runTaskRouter(secureGroup *echo.Group, taskCtrl *controllers.TaskController) {
	secureGroup.GET("/tasks", taskCtrl.GetTasks)
	secureGroup.POST("/tasks", taskCtrl.CreateTask)
	secureGroup.PUT("/tasks/:id", taskCtrl.UpdateTask)
	secureGroup.DELETE("/tasks/:id", taskCtrl.DeleteTask)
}
