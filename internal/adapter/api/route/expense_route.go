package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-mercearia/pkg/middleware"
)

// RegisterExpenseRoutes registra as rotas do módulo de despesas
func RegisterExpenseRoutes(r *gin.RouterGroup, expenseController *controller.ExpenseController) {
	expenses := r.Group("/expenses")
	expenses.Use(middleware.AuthMiddleware())
	{
		expenses.POST("", expenseController.Create)
		expenses.GET("", expenseController.List)
		expenses.GET("/:id", expenseController.Get)
		expenses.DELETE("/:id", expenseController.Delete)
	}
}
