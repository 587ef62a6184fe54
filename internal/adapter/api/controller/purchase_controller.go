package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/repository"
	purchasedomain "github.com/hugohenrick/erp-mercearia/internal/domain/purchase"
	"github.com/hugohenrick/erp-mercearia/pkg/logger"
)

// PurchaseController gerencia as requisições relacionadas a notas fiscais de compra
type PurchaseController struct {
	purchaseRepo purchasedomain.Repository
	logger       logger.Logger
}

// NewPurchaseController cria uma nova instância de PurchaseController
func NewPurchaseController(purchaseRepo purchasedomain.Repository, logger logger.Logger) *PurchaseController {
	return &PurchaseController{
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

// Create registra uma nova nota fiscal de compra. A gravação da nota e a
// entrada do estoque de cada item acontecem na mesma transação.
// @Summary Registrar nota de compra
// @Description Cria uma nota fiscal de compra e soma o estoque recebido
// @Tags purchase-invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param invoice body dto.PurchaseRequest true "Dados da nota"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchase-invoices [post]
func (c *PurchaseController) Create(ctx *gin.Context) {
	var req dto.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	inv, err := purchasedomain.NewInvoice(
		req.InvoiceNumber,
		req.DistributorID,
		dto.ToPurchaseItems(req.Items),
		purchasedomain.PaymentMethod(req.PaymentMethod),
		purchasedomain.Status(req.Status),
		req.Notes,
		ctx.GetString("user_id"),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar nota de compra", err.Error()))
		return
	}

	if err := c.purchaseRepo.Create(ctx, inv); err != nil {
		c.respondPurchaseError(ctx, err, "erro ao registrar nota de compra")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPurchaseResponse(inv))
}

// Get retorna uma nota de compra pelo ID
// @Summary Buscar nota de compra
// @Description Retorna os dados de uma nota fiscal de compra pelo ID
// @Tags purchase-invoices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchase-invoices/{id} [get]
func (c *PurchaseController) Get(ctx *gin.Context) {
	inv, err := c.purchaseRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPurchaseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nota de compra não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar nota de compra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar nota de compra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(inv))
}

// List lista notas de compra com filtros por período e distribuidor
// @Summary Listar notas de compra
// @Description Lista notas fiscais de compra, da mais recente para a mais antiga
// @Tags purchase-invoices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param start_date query string false "Data inicial (YYYY-MM-DD)"
// @Param end_date query string false "Data final (YYYY-MM-DD)"
// @Param distributor_id query string false "ID do distribuidor"
// @Success 200 {object} dto.PurchaseListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchase-invoices [get]
func (c *PurchaseController) List(ctx *gin.Context) {
	filter := purchasedomain.ListFilter{
		DistributorID: ctx.Query("distributor_id"),
	}

	startDate, endDate, err := parseDateRange(ctx.Query("start_date"), ctx.Query("end_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "filtro de data inválido", err.Error()))
		return
	}
	filter.StartDate = startDate
	filter.EndDate = endDate

	invoices, err := c.purchaseRepo.List(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao listar notas de compra", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar notas de compra", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(invoices))
}

// Update aplica uma atualização parcial em uma nota de compra. Quando a
// lista de itens é substituída, a diferença entre itens antigos e novos é
// aplicada ao estoque na mesma transação, com o sinal invertido em relação
// às vendas: itens removidos devolvem estoque, itens adicionados somam.
// @Summary Atualizar nota de compra
// @Description Atualiza uma nota fiscal de compra, reconciliando o estoque
// @Tags purchase-invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Param invoice body dto.PurchaseUpdateRequest true "Campos a atualizar"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchase-invoices/{id} [put]
func (c *PurchaseController) Update(ctx *gin.Context) {
	var req dto.PurchaseUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	inv, err := c.purchaseRepo.Update(ctx, ctx.Param("id"), req.ToPurchaseUpdate())
	if err != nil {
		c.respondPurchaseError(ctx, err, "erro ao atualizar nota de compra")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(inv))
}

// Delete remove uma nota de compra, devolvendo o estoque que havia entrado
// por ela na mesma transação
// @Summary Excluir nota de compra
// @Description Remove uma nota fiscal de compra e reverte o estoque recebido
// @Tags purchase-invoices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /purchase-invoices/{id} [delete]
func (c *PurchaseController) Delete(ctx *gin.Context) {
	if err := c.purchaseRepo.Delete(ctx, ctx.Param("id")); err != nil {
		c.respondPurchaseError(ctx, err, "erro ao excluir nota de compra")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("nota de compra excluída com sucesso", nil))
}

// respondPurchaseError mapeia os erros do motor de notas de compra para o
// status HTTP correspondente
func (c *PurchaseController) respondPurchaseError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, repository.ErrPurchaseNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nota de compra não encontrada", err.Error()))
	case errors.Is(err, repository.ErrDistributorNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "distribuidor não encontrado", err.Error()))
	case errors.Is(err, repository.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
	case errors.Is(err, repository.ErrInsufficientStock):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "estoque insuficiente", err.Error()))
	case errors.Is(err, repository.ErrPurchaseDuplicateNumber):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "número de nota já utilizado", err.Error()))
	case errors.Is(err, purchasedomain.ErrNoItems),
		errors.Is(err, purchasedomain.ErrEmptyItemProduct),
		errors.Is(err, purchasedomain.ErrInvalidQuantity),
		errors.Is(err, purchasedomain.ErrInvalidRate),
		errors.Is(err, purchasedomain.ErrInvalidPrice),
		errors.Is(err, purchasedomain.ErrNegativeTax),
		errors.Is(err, purchasedomain.ErrInvalidPaymentMethod),
		errors.Is(err, purchasedomain.ErrInvalidStatus):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, err.Error()))
	default:
		c.logger.Error(message, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, err.Error()))
	}
}
