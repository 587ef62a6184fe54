package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/repository"
	expensedomain "github.com/hugohenrick/erp-mercearia/internal/domain/expense"
	"github.com/hugohenrick/erp-mercearia/pkg/logger"
)

// ExpenseController gerencia as requisições relacionadas a despesas
type ExpenseController struct {
	expenseRepo expensedomain.Repository
	logger      logger.Logger
}

// NewExpenseController cria uma nova instância de ExpenseController
func NewExpenseController(expenseRepo expensedomain.Repository, logger logger.Logger) *ExpenseController {
	return &ExpenseController{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// Create registra uma nova despesa
// @Summary Registrar despesa
// @Description Cria uma nova despesa operacional
// @Tags expenses
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param expense body dto.ExpenseRequest true "Dados da despesa"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [post]
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.ExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	e, err := expensedomain.NewExpense(
		expensedomain.Type(req.ExpenseType),
		req.Amount,
		req.Description,
		req.Date,
		ctx.GetString("user_id"),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar despesa", err.Error()))
		return
	}

	if err := c.expenseRepo.Create(ctx, e); err != nil {
		c.logger.Error("erro ao criar despesa no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar despesa", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(e))
}

// Get retorna uma despesa pelo ID
// @Summary Buscar despesa
// @Description Retorna os dados de uma despesa pelo ID
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da despesa"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/{id} [get]
func (c *ExpenseController) Get(ctx *gin.Context) {
	e, err := c.expenseRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "despesa não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar despesa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar despesa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(e))
}

// List lista despesas com filtro opcional por período
// @Summary Listar despesas
// @Description Lista despesas, da mais recente para a mais antiga
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param start_date query string false "Data inicial (YYYY-MM-DD)"
// @Param end_date query string false "Data final (YYYY-MM-DD)"
// @Success 200 {object} dto.ExpenseListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses [get]
func (c *ExpenseController) List(ctx *gin.Context) {
	startDate, endDate, err := parseDateRange(ctx.Query("start_date"), ctx.Query("end_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "filtro de data inválido", err.Error()))
		return
	}

	expenses, err := c.expenseRepo.List(ctx, expensedomain.ListFilter{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.logger.Error("erro ao listar despesas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar despesas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(expenses))
}

// Delete remove uma despesa
// @Summary Excluir despesa
// @Description Remove uma despesa do sistema
// @Tags expenses
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da despesa"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /expenses/{id} [delete]
func (c *ExpenseController) Delete(ctx *gin.Context) {
	if err := c.expenseRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrExpenseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "despesa não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir despesa", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir despesa", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("despesa excluída com sucesso", nil))
}
