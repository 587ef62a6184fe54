package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-mercearia/pkg/middleware"
)

// RegisterDistributorRoutes registra as rotas do módulo de distribuidores
func RegisterDistributorRoutes(r *gin.RouterGroup, distributorController *controller.DistributorController) {
	distributors := r.Group("/distributors")
	distributors.Use(middleware.AuthMiddleware())
	{
		distributors.POST("", distributorController.Create)
		distributors.GET("", distributorController.List)
		distributors.GET("/:id", distributorController.Get)
		distributors.PUT("/:id", distributorController.Update)
		distributors.DELETE("/:id", distributorController.Delete)
	}
}
