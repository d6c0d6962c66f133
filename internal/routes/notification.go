package routes

import (
	"fieldops-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runNotificationRouter(secureGroup *echo.Group, notificationCtrl *controllers.NotificationController) {
	secureGroup.GET("/notifications", notificationCtrl.GetNotifications)
	secureGroup.GET("/notifications/unread", notificationCtrl.GetUnreadNotifications)
	secureGroup.PUT("/notifications/:id/read", notificationCtrl.MarkAsRead)
}
