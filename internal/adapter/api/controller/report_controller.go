package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/api/dto"
	reportdomain "github.com/hugohenrick/erp-mercearia/internal/domain/report"
	"github.com/hugohenrick/erp-mercearia/pkg/excel"
	"github.com/hugohenrick/erp-mercearia/pkg/logger"
)

// ReportController gerencia as requisições de relatórios
type ReportController struct {
	reportRepo reportdomain.Repository
	logger     logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(reportRepo reportdomain.Repository, logger logger.Logger) *ReportController {
	return &ReportController{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// Sales retorna o relatório de vendas do período filtrado
// @Summary Relatório de vendas
// @Description Retorna as vendas do período com os agregados do filtro
// @Tags reports
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param start_date query string false "Data inicial (YYYY-MM-DD)"
// @Param end_date query string false "Data final (YYYY-MM-DD, inclusiva)"
// @Param payment_method query string false "Forma de pagamento"
// @Param status query string false "Status da nota"
// @Success 200 {object} dto.SalesReportResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales [get]
func (c *ReportController) Sales(ctx *gin.Context) {
	filter, ok := c.buildSalesFilter(ctx)
	if !ok {
		return
	}

	rows, err := c.reportRepo.SalesReport(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao gerar relatório de vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar relatório", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesReportResponse(rows))
}

// ExportSales exporta o relatório de vendas em planilha xlsx
// @Summary Exportar relatório de vendas
// @Description Exporta as vendas do período filtrado em planilha xlsx
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param Authorization header string true "Bearer token"
// @Param start_date query string false "Data inicial (YYYY-MM-DD)"
// @Param end_date query string false "Data final (YYYY-MM-DD, inclusiva)"
// @Param payment_method query string false "Forma de pagamento"
// @Param status query string false "Status da nota"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales/export [get]
func (c *ReportController) ExportSales(ctx *gin.Context) {
	filter, ok := c.buildSalesFilter(ctx)
	if !ok {
		return
	}

	rows, err := c.reportRepo.SalesReport(ctx, filter)
	if err != nil {
		c.logger.Error("erro ao gerar relatório de vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar relatório", err.Error()))
		return
	}

	buffer, err := excel.WriteSalesReport(rows)
	if err != nil {
		c.logger.Error("erro ao exportar relatório de vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao exportar relatório", err.Error()))
		return
	}

	filename := fmt.Sprintf("sales-report-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buffer.Bytes())
}

// buildSalesFilter interpreta os filtros do relatório de vendas. Em caso de
// filtro inválido, responde o erro e retorna ok=false.
func (c *ReportController) buildSalesFilter(ctx *gin.Context) (reportdomain.Filter, bool) {
	startDate, endDate, err := parseDateRange(ctx.Query("start_date"), ctx.Query("end_date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "filtro de data inválido", err.Error()))
		return reportdomain.Filter{}, false
	}

	return reportdomain.Filter{
		StartDate:     startDate,
		EndDate:       endDate,
		PaymentMethod: ctx.Query("payment_method"),
		Status:        ctx.Query("status"),
	}, true
}
