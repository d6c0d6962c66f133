package routes

import (
	"fieldops-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runBotSettingsRouter(secureGroup *echo.Group, botSettingsCtrl *controllers.BotSettingsController) {
	secureGroup.GET("/bot-settings", botSettingsCtrl.GetBotSettings)
	secureGroup.PUT("/bot-settings", botSettingsCtrl.UpdateBotSettings)
}
