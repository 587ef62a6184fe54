package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-mercearia/pkg/middleware"
)

// RegisterAuthRoutes registra as rotas do módulo de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/me", middleware.AuthMiddleware(), authController.Me)
	}
}
