package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/repository"
	invoicedomain "github.com/hugohenrick/erp-mercearia/internal/domain/invoice"
	"github.com/hugohenrick/erp-mercearia/pkg/logger"
	"github.com/hugohenrick/erp-mercearia/pkg/pdf"
)

// dateLayout é o formato aceito nos filtros de data das listagens
const dateLayout = "2006-01-02"

// InvoiceController gerencia as requisições relacionadas a notas fiscais de venda
type InvoiceController struct {
	invoiceRepo invoicedomain.Repository
	logger      logger.Logger
}

// NewInvoiceController cria uma nova instância de InvoiceController
func NewInvoiceController(invoiceRepo invoicedomain.Repository, logger logger.Logger) *InvoiceController {
	return &InvoiceController{
		invoiceRepo: invoiceRepo,
		logger:      logger,
	}
}

// Create emite uma nova nota fiscal de venda. A gravação da nota e a baixa
// do estoque de cada item acontecem na mesma transação: se qualquer item
// não tiver estoque suficiente, nada é persistido.
// @Summary Emitir nota de venda
// @Description Cria uma nota fiscal de venda e baixa o estoque dos itens
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param invoice body dto.InvoiceRequest true "Dados da nota"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices [post]
func (c *InvoiceController) Create(ctx *gin.Context) {
	var req dto.InvoiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	inv, err := invoicedomain.NewInvoice(
		req.InvoiceNumber,
		req.CustomerName,
		req.CustomerPhone,
		req.CustomerAddress,
		dto.ToInvoiceItems(req.Items),
		invoicedomain.PaymentMethod(req.PaymentMethod),
		invoicedomain.Status(req.Status),
		req.Notes,
		ctx.GetString("user_id"),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar nota fiscal", err.Error()))
		return
	}

	if err := c.invoiceRepo.Create(ctx, inv); err != nil {
		c.respondInvoiceError(ctx, err, "erro ao emitir nota fiscal")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToInvoiceResponse(inv))
}

// Get retorna uma nota de venda pelo ID
// @Summary Buscar nota de venda
// @Description Retorna os dados de uma nota fiscal de venda pelo ID
// @Tags invoices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id} [get]
func (c *InvoiceController) Get(ctx *gin.Context) {
	inv, err := c.invoiceRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nota fiscal não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar nota fiscal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar nota fiscal", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// List lista notas de venda com filtros e paginação
// @Summary Listar notas de venda
// @Description Lista notas fiscais de venda com filtros por período e cliente
// @Tags invoices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param start_date query string false "Data inicial (YYYY-MM-DD)"
// @Param end_date query string false "Data final (YYYY-MM-DD)"
// @Param customer query string false "Nome do cliente (parcial)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.InvoiceListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices [get]
func (c *InvoiceController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	filter := invoicedomain.ListFilter{
		CustomerName: ctx.Query("customer"),
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
	}

	startDate, endDate, err := parseDateRange(ctx.Query("start_date"), ctx.Query("end_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "filtro de data inválido", err.Error()))
		return
	}
	filter.StartDate = startDate
	filter.EndDate = endDate

	invoices, totalCount, err := c.invoiceRepo.List(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao listar notas fiscais", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar notas fiscais", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceListResponse(invoices, totalCount, pagination.Page, pagination.PageSize))
}

// Update aplica uma atualização parcial em uma nota de venda. Quando a lista
// de itens é substituída, a diferença entre itens antigos e novos é aplicada
// ao estoque na mesma transação da gravação.
// @Summary Atualizar nota de venda
// @Description Atualiza uma nota fiscal de venda, reconciliando o estoque
// @Tags invoices
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Param invoice body dto.InvoiceUpdateRequest true "Campos a atualizar"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id} [put]
func (c *InvoiceController) Update(ctx *gin.Context) {
	var req dto.InvoiceUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	inv, err := c.invoiceRepo.Update(ctx, ctx.Param("id"), req.ToInvoiceUpdate())
	if err != nil {
		c.respondInvoiceError(ctx, err, "erro ao atualizar nota fiscal")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInvoiceResponse(inv))
}

// Delete remove uma nota de venda. O estoque baixado na emissão não é
// devolvido: a exclusão arquiva o registro, não desfaz a venda.
// @Summary Excluir nota de venda
// @Description Remove uma nota fiscal de venda sem devolver o estoque
// @Tags invoices
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id} [delete]
func (c *InvoiceController) Delete(ctx *gin.Context) {
	if err := c.invoiceRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nota fiscal não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir nota fiscal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir nota fiscal", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("nota fiscal excluída com sucesso", nil))
}

// GetPDF retorna o cupom da nota de venda em PDF
// @Summary Cupom da nota em PDF
// @Description Gera o cupom imprimível da nota fiscal de venda
// @Tags invoices
// @Produce application/pdf
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID da nota"
// @Success 200 {file} binary
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id}/pdf [get]
func (c *InvoiceController) GetPDF(ctx *gin.Context) {
	inv, err := c.invoiceRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nota fiscal não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar nota fiscal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar nota fiscal", err.Error()))
		return
	}

	document, err := pdf.GenerateInvoicePDF(inv)
	if err != nil {
		c.logger.Error("erro ao gerar PDF da nota fiscal", "error", err, "invoice_id", inv.ID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar PDF", err.Error()))
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", inv.InvoiceNumber))
	ctx.Data(http.StatusOK, "application/pdf", document)
}

// respondInvoiceError mapeia os erros do motor de notas de venda para o
// status HTTP correspondente
func (c *InvoiceController) respondInvoiceError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, repository.ErrInvoiceNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "nota fiscal não encontrada", err.Error()))
	case errors.Is(err, repository.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
	case errors.Is(err, repository.ErrInsufficientStock):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "estoque insuficiente", err.Error()))
	case errors.Is(err, repository.ErrInvoiceDuplicateNumber):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "número de nota já utilizado", err.Error()))
	case errors.Is(err, invoicedomain.ErrNoItems),
		errors.Is(err, invoicedomain.ErrEmptyItemProduct),
		errors.Is(err, invoicedomain.ErrInvalidQuantity),
		errors.Is(err, invoicedomain.ErrInvalidPrice),
		errors.Is(err, invoicedomain.ErrInvalidPaymentMethod),
		errors.Is(err, invoicedomain.ErrInvalidStatus):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, message, err.Error()))
	default:
		c.logger.Error(message, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, message, err.Error()))
	}
}

// parseDateRange interpreta os filtros de data das listagens
func parseDateRange(start, end string) (*time.Time, *time.Time, error) {
	var startDate, endDate *time.Time

	if start != "" {
		parsed, err := time.Parse(dateLayout, start)
		if err != nil {
			return nil, nil, fmt.Errorf("data inicial inválida: %w", err)
		}
		startDate = &parsed
	}
	if end != "" {
		parsed, err := time.Parse(dateLayout, end)
		if err != nil {
			return nil, nil, fmt.Errorf("data final inválida: %w", err)
		}
		endDate = &parsed
	}

	return startDate, endDate, nil
}
