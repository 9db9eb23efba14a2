package cart

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/application/cart/dto"
	"github.com/phonefix-inc/phonefix/internal/application/cart/usecases"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/common"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/middleware"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

type Service interface {
	Get(ctx context.Context, a actor.Actor) (*dto.CartDTO, error)
	AddItem(ctx context.Context, cmd usecases.ItemCommand) (*dto.CartDTO, error)
	UpdateItem(ctx context.Context, cmd usecases.ItemCommand) (*dto.CartDTO, error)
	RemoveItem(ctx context.Context, a actor.Actor, productID uint) (*dto.CartDTO, error)
}

type AddItemRequest struct {
	ProductID uint `json:"product_id" validate:"required,gt=0"`
	Quantity  int  `json:"quantity" validate:"required,gt=0,lte=999"`
}

// UpdateItemRequest sets the absolute quantity; zero removes the line.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=999"`
}

type Handler struct {
	service Service
	logger  logger.Interface
}

func NewHandler(service Service, logger logger.Interface) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetCart handles GET /api/cart
func (h *Handler) GetCart(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddItem handles POST /api/cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := common.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.AddItem(c.Request.Context(), usecases.ItemCommand{
		Actor:     middleware.GetActor(c),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item added to cart", result)
}

// UpdateItem handles PUT /api/cart/items/:productId
func (h *Handler) UpdateItem(c *gin.Context) {
	productID, err := common.ParseID(c, "productId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateItemRequest
	if err := common.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.UpdateItem(c.Request.Context(), usecases.ItemCommand{
		Actor:     middleware.GetActor(c),
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Cart updated", result)
}

// RemoveItem handles DELETE /api/cart/items/:productId
func (h *Handler) RemoveItem(c *gin.Context) {
	productID, err := common.ParseID(c, "productId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.RemoveItem(c.Request.Context(), middleware.GetActor(c), productID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Item removed", result)
}
