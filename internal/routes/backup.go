package routes

import (
	"fieldops-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runBackupRouter(secureGroup *echo.Group, backupCtrl *controllers.BackupController) {
	secureGroup.GET("/backup", backupCtrl.GetBackup)
	secureGroup.POST("/backup/restore", backupCtrl.RestoreBackup)
}
