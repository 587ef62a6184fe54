package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-mercearia/pkg/middleware"
)

// RegisterPurchaseRoutes registra as rotas do módulo de notas fiscais de compra
func RegisterPurchaseRoutes(r *gin.RouterGroup, purchaseController *controller.PurchaseController) {
	purchases := r.Group("/purchase-invoices")
	purchases.Use(middleware.AuthMiddleware())
	{
		purchases.POST("", purchaseController.Create)
		purchases.GET("", purchaseController.List)
		purchases.GET("/:id", purchaseController.Get)
		purchases.PUT("/:id", purchaseController.Update)
		purchases.DELETE("/:id", purchaseController.Delete)
	}
}
