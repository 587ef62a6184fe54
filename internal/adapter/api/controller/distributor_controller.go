package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/repository"
	distributordomain "github.com/hugohenrick/erp-mercearia/internal/domain/distributor"
	"github.com/hugohenrick/erp-mercearia/pkg/logger"
)

// DistributorController gerencia as requisições relacionadas a distribuidores
type DistributorController struct {
	distributorRepo distributordomain.Repository
	logger          logger.Logger
}

// NewDistributorController cria uma nova instância de DistributorController
func NewDistributorController(distributorRepo distributordomain.Repository, logger logger.Logger) *DistributorController {
	return &DistributorController{
		distributorRepo: distributorRepo,
		logger:          logger,
	}
}

// Create cria um novo distribuidor
// @Summary Criar distribuidor
// @Description Cria um novo distribuidor no sistema
// @Tags distributors
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param distributor body dto.DistributorRequest true "Dados do distribuidor"
// @Success 201 {object} dto.DistributorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /distributors [post]
func (c *DistributorController) Create(ctx *gin.Context) {
	var req dto.DistributorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	exists, err := c.distributorRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		c.logger.Error("erro ao verificar nome do distribuidor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao verificar distribuidor", err.Error()))
		return
	}
	if exists {
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "distribuidor com mesmo nome já existe", ""))
		return
	}

	d, err := distributordomain.NewDistributor(
		req.Name,
		req.GSTIN,
		req.Company,
		req.Address,
		req.Phone,
		req.Email,
		req.ContactPerson,
		ctx.GetString("user_id"),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar distribuidor", err.Error()))
		return
	}

	if err := c.distributorRepo.Create(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDistributorDuplicateName) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "distribuidor com mesmo nome já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao criar distribuidor no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar distribuidor", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDistributorResponse(d))
}

// Get retorna um distribuidor pelo ID
// @Summary Buscar distribuidor
// @Description Retorna os dados de um distribuidor pelo ID
// @Tags distributors
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do distribuidor"
// @Success 200 {object} dto.DistributorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /distributors/{id} [get]
func (c *DistributorController) Get(ctx *gin.Context) {
	d, err := c.distributorRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrDistributorNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "distribuidor não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar distribuidor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar distribuidor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDistributorResponse(d))
}

// List lista todos os distribuidores
// @Summary Listar distribuidores
// @Description Lista todos os distribuidores cadastrados
// @Tags distributors
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.DistributorListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /distributors [get]
func (c *DistributorController) List(ctx *gin.Context) {
	distributors, err := c.distributorRepo.List(ctx)
	if err != nil {
		c.logger.Error("erro ao listar distribuidores", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar distribuidores", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDistributorListResponse(distributors))
}

// Update atualiza os dados de um distribuidor
// @Summary Atualizar distribuidor
// @Description Atualiza os dados de um distribuidor existente
// @Tags distributors
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do distribuidor"
// @Param distributor body dto.DistributorRequest true "Dados do distribuidor"
// @Success 200 {object} dto.DistributorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /distributors/{id} [put]
func (c *DistributorController) Update(ctx *gin.Context) {
	var req dto.DistributorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	d, err := c.distributorRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrDistributorNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "distribuidor não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar distribuidor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar distribuidor", err.Error()))
		return
	}

	if err := d.Update(req.Name, req.GSTIN, req.Company, req.Address, req.Phone, req.Email, req.ContactPerson); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar distribuidor", err.Error()))
		return
	}

	if err := c.distributorRepo.Update(ctx, d); err != nil {
		if errors.Is(err, repository.ErrDistributorDuplicateName) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "distribuidor com mesmo nome já existe", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar distribuidor no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar distribuidor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDistributorResponse(d))
}

// Delete remove um distribuidor
// @Summary Excluir distribuidor
// @Description Remove um distribuidor do sistema
// @Tags distributors
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do distribuidor"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /distributors/{id} [delete]
func (c *DistributorController) Delete(ctx *gin.Context) {
	if err := c.distributorRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrDistributorNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "distribuidor não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir distribuidor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir distribuidor", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("distribuidor excluído com sucesso", nil))
}
