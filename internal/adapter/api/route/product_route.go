package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-mercearia/pkg/middleware"
)

// RegisterProductRoutes registra as rotas do módulo de produtos
func RegisterProductRoutes(r *gin.RouterGroup, productController *controller.ProductController) {
	products := r.Group("/products")
	products.Use(middleware.AuthMiddleware())
	{
		products.POST("", productController.Create)
		products.GET("", productController.List)
		products.GET("/:id", productController.Get)
		products.PUT("/:id", productController.Update)
		products.DELETE("/:id", productController.Delete)
		products.GET("/barcode/:barcode", productController.GetByBarcode)
		products.GET("/category/:category", productController.ListByCategory)
		products.GET("/distributor/:distributor", productController.ListByDistributor)
		products.GET("/search", productController.Search)
	}
}
