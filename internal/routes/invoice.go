package routes

import (
	"fieldops-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

// Удаление счетов панель не поддерживает, поэтому DELETE здесь нет.
func runInvoiceRouter(secureGroup *echo.Group, invoiceCtrl *controllers.InvoiceController) {
	secureGroup.GET("/invoices", invoiceCtrl.GetInvoices)
	secureGroup.POST("/invoices", invoiceCtrl.CreateInvoice)
	secureGroup.PUT("/invoices/:id", invoiceCtrl.UpdateInvoice)
}
