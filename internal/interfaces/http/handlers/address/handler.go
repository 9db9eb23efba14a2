package address

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/application/address/dto"
	"github.com/phonefix-inc/phonefix/internal/application/address/usecases"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/common"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/middleware"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

// Manager is the address book service consumed by the handler.
type Manager interface {
	List(ctx context.Context, a actor.Actor) ([]*dto.AddressDTO, error)
	Create(ctx context.Context, cmd usecases.CreateAddressCommand) (*dto.AddressDTO, error)
	Update(ctx context.Context, cmd usecases.UpdateAddressCommand) (*dto.AddressDTO, error)
	SetDefault(ctx context.Context, id uint, a actor.Actor) (*dto.AddressDTO, error)
	Delete(ctx context.Context, id uint, a actor.Actor) error
}

// SaveAddressRequest is shared by create and update.
type SaveAddressRequest struct {
	Type       string  `json:"type,omitempty" validate:"omitempty,max=10"`
	IsDefault  bool    `json:"is_default"`
	FullName   string  `json:"full_name" validate:"required,max=100"`
	Line1      string  `json:"line1" validate:"required,max=200"`
	Line2      *string `json:"line2,omitempty" validate:"omitempty,max=200"`
	City       string  `json:"city" validate:"required,max=100"`
	State      string  `json:"state" validate:"required,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,max=20"`
	Country    string  `json:"country,omitempty" validate:"omitempty,len=2"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

func (r *SaveAddressRequest) postal() common.AddressRequest {
	return common.AddressRequest{
		FullName:   r.FullName,
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Phone:      r.Phone,
	}
}

type Handler struct {
	manager Manager
	logger  logger.Interface
}

func NewHandler(manager Manager, logger logger.Interface) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// List handles GET /api/user/addresses
func (h *Handler) List(c *gin.Context) {
	result, err := h.manager.List(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create handles POST /api/user/addresses
func (h *Handler) Create(c *gin.Context) {
	var req SaveAddressRequest
	if err := common.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.manager.Create(c.Request.Context(), usecases.CreateAddressCommand{
		Actor:     middleware.GetActor(c),
		Type:      req.Type,
		Address:   req.postal().ToPostal(),
		IsDefault: req.IsDefault,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Address saved")
}

// Update handles PUT /api/user/addresses/:id
func (h *Handler) Update(c *gin.Context) {
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SaveAddressRequest
	if err := common.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.manager.Update(c.Request.Context(), usecases.UpdateAddressCommand{
		AddressID: id,
		Actor:     middleware.GetActor(c),
		Type:      req.Type,
		Address:   req.postal().ToPostal(),
		IsDefault: req.IsDefault,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Address updated", result)
}

// SetDefault handles POST /api/user/addresses/:id/default
func (h *Handler) SetDefault(c *gin.Context) {
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.manager.SetDefault(c.Request.Context(), id, middleware.GetActor(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Default address updated", result)
}

// Delete handles DELETE /api/user/addresses/:id
func (h *Handler) Delete(c *gin.Context) {
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manager.Delete(c.Request.Context(), id, middleware.GetActor(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
