package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/api/dto"
	"github.com/hugohenrick/erp-mercearia/internal/adapter/repository"
	productdomain "github.com/hugohenrick/erp-mercearia/internal/domain/product"
	"github.com/hugohenrick/erp-mercearia/pkg/logger"
)

// ProductController gerencia as requisições relacionadas a produtos
type ProductController struct {
	productRepo productdomain.Repository
	logger      logger.Logger
}

// NewProductController cria uma nova instância de ProductController
func NewProductController(productRepo productdomain.Repository, logger logger.Logger) *ProductController {
	return &ProductController{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Description Cria um novo produto no catálogo
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [post]
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := productdomain.NewProduct(
		req.Name,
		req.Barcode,
		req.Category,
		req.Distributor,
		req.Stock,
		req.CostPrice,
		req.MRP,
		req.SellingPrice,
		ctx.GetString("user_id"),
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}
	p.BatchNo = req.BatchNo
	p.MfgDate = req.MfgDate
	p.ExpiryDate = req.ExpiryDate
	p.ProductImage = req.ProductImage

	if err := c.productRepo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateBarcode) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "código de barras já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao criar produto no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(p))
}

// Get retorna um produto pelo ID
// @Summary Buscar produto
// @Description Retorna os dados de um produto pelo ID
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [get]
func (c *ProductController) Get(ctx *gin.Context) {
	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// GetByBarcode retorna um produto pelo código de barras
// @Summary Buscar produto por código de barras
// @Description Retorna os dados de um produto pelo código de barras
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param barcode path string true "Código de barras"
// @Success 200 {object} dto.ProductResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/barcode/{barcode} [get]
func (c *ProductController) GetByBarcode(ctx *gin.Context) {
	p, err := c.productRepo.FindByBarcode(ctx, ctx.Param("barcode"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto por código de barras", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// List lista os produtos do catálogo. Aceita filtros mutuamente exclusivos
// por categoria, distribuidor ou busca por nome.
// @Summary Listar produtos
// @Description Lista os produtos, com filtro opcional por categoria, distribuidor ou nome
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param category query string false "Categoria"
// @Param distributor query string false "Distribuidor"
// @Param search query string false "Busca por nome"
// @Success 200 {object} dto.ProductListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products [get]
func (c *ProductController) List(ctx *gin.Context) {
	var (
		products []*productdomain.Product
		err      error
	)

	switch {
	case ctx.Query("category") != "":
		products, err = c.productRepo.FindByCategory(ctx, ctx.Query("category"))
	case ctx.Query("distributor") != "":
		products, err = c.productRepo.FindByDistributor(ctx, ctx.Query("distributor"))
	case ctx.Query("search") != "":
		products, err = c.productRepo.SearchByName(ctx, ctx.Query("search"))
	default:
		products, err = c.productRepo.List(ctx)
	}

	if err != nil {
		c.logger.Error("erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// ListByCategory lista os produtos de uma categoria
// @Summary Listar produtos por categoria
// @Description Lista os produtos de uma categoria
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param category path string true "Categoria"
// @Success 200 {object} dto.ProductListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/category/{category} [get]
func (c *ProductController) ListByCategory(ctx *gin.Context) {
	products, err := c.productRepo.FindByCategory(ctx, ctx.Param("category"))
	if err != nil {
		c.logger.Error("erro ao listar produtos por categoria", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// ListByDistributor lista os produtos de um distribuidor
// @Summary Listar produtos por distribuidor
// @Description Lista os produtos fornecidos por um distribuidor
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param distributor path string true "Nome do distribuidor"
// @Success 200 {object} dto.ProductListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/distributor/{distributor} [get]
func (c *ProductController) ListByDistributor(ctx *gin.Context) {
	products, err := c.productRepo.FindByDistributor(ctx, ctx.Param("distributor"))
	if err != nil {
		c.logger.Error("erro ao listar produtos por distribuidor", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// Search pesquisa produtos por nome
// @Summary Pesquisar produtos
// @Description Pesquisa produtos pelo nome (busca parcial, sem distinção de maiúsculas)
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param name query string true "Nome ou parte do nome"
// @Success 200 {object} dto.ProductListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/search [get]
func (c *ProductController) Search(ctx *gin.Context) {
	name := ctx.Query("name")
	if name == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "parâmetro name é obrigatório", ""))
		return
	}

	products, err := c.productRepo.SearchByName(ctx, name)
	if err != nil {
		c.logger.Error("erro ao pesquisar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao pesquisar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(products))
}

// Update atualiza os dados cadastrais de um produto. O estoque não é
// alterado por esta rota: movimentações passam pelas notas fiscais.
// @Summary Atualizar produto
// @Description Atualiza os dados cadastrais de um produto
// @Tags products
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param product body dto.ProductRequest true "Dados do produto"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [put]
func (c *ProductController) Update(ctx *gin.Context) {
	var req dto.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := c.productRepo.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	err = p.Update(
		req.Name,
		req.Barcode,
		req.Category,
		req.Distributor,
		req.CostPrice,
		req.MRP,
		req.SellingPrice,
		req.BatchNo,
		req.MfgDate,
		req.ExpiryDate,
		req.ProductImage,
	)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar produto", err.Error()))
		return
	}

	if err := c.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrProductDuplicateBarcode) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "código de barras já cadastrado", err.Error()))
			return
		}
		c.logger.Error("erro ao atualizar produto no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(p))
}

// Delete remove um produto
// @Summary Excluir produto
// @Description Remove um produto do catálogo
// @Tags products
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /products/{id} [delete]
func (c *ProductController) Delete(ctx *gin.Context) {
	if err := c.productRepo.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto excluído com sucesso", nil))
}
