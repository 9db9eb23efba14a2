package catalog

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/application/catalog/dto"
	"github.com/phonefix-inc/phonefix/internal/application/catalog/usecases"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

type ListProductsExecutor interface {
	Execute(ctx context.Context, query usecases.ListProductsQuery) (*usecases.ListProductsResult, error)
}

type GetProductExecutor interface {
	Execute(ctx context.Context, idOrSlug string) (*dto.ProductDTO, error)
}

type Handler struct {
	listUC ListProductsExecutor
	getUC  GetProductExecutor
	logger logger.Interface
}

func NewHandler(listUC ListProductsExecutor, getUC GetProductExecutor, logger logger.Interface) *Handler {
	return &Handler{
		listUC: listUC,
		getUC:  getUC,
		logger: logger,
	}
}

// ListProducts handles GET /api/products?search=&category=&brand=
func (h *Handler) ListProducts(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListProductsQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		Page:     p.Page,
		Limit:    p.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Products, result.Total, result.Page, result.Limit)
}

// GetProduct handles GET /api/products/:id, where id may also be a slug.
func (h *Handler) GetProduct(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
