package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-mercearia/pkg/middleware"
)

// RegisterInvoiceRoutes registra as rotas do módulo de notas fiscais de venda
func RegisterInvoiceRoutes(r *gin.RouterGroup, invoiceController *controller.InvoiceController) {
	invoices := r.Group("/invoices")
	invoices.Use(middleware.AuthMiddleware())
	{
		invoices.POST("", invoiceController.Create)
		invoices.GET("", invoiceController.List)
		invoices.GET("/:id", invoiceController.Get)
		invoices.PUT("/:id", invoiceController.Update)
		invoices.DELETE("/:id", invoiceController.Delete)
		invoices.GET("/:id/pdf", invoiceController.GetPDF)
	}
}
