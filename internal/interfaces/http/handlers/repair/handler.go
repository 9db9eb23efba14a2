package repair

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/application/repair/usecases"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/common"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/middleware"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

type Handler struct {
	submitUC SubmitTicketExecutor
	updateUC UpdateTicketExecutor
	getUC    GetTicketExecutor
	trackUC  TrackTicketExecutor
	listUC   ListTicketsExecutor
	logger   logger.Interface
}

func NewHandler(
	submitUC SubmitTicketExecutor,
	updateUC UpdateTicketExecutor,
	getUC GetTicketExecutor,
	trackUC TrackTicketExecutor,
	listUC ListTicketsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		submitUC: submitUC,
		updateUC: updateUC,
		getUC:    getUC,
		trackUC:  trackUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// SubmitTicket handles POST /api/repairs. Guests may submit.
func (h *Handler) SubmitTicket(c *gin.Context) {
	var req SubmitTicketRequest
	if err := common.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), req.ToCommand(middleware.GetActor(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Repair request submitted successfully")
}

// ListTickets handles GET /api/repairs and GET /api/admin/repairs
func (h *Handler) ListTickets(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Actor:  middleware.GetActor(c),
		Status: c.Query("status"),
		Page:   p.Page,
		Limit:  p.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.Limit)
}

// TrackTicket handles GET /api/repairs/track?ticket_number=&email=
func (h *Handler) TrackTicket(c *gin.Context) {
	var req TrackTicketRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid query parameters"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.trackUC.Execute(c.Request.Context(), usecases.TrackTicketQuery{
		TicketNumber: req.TicketNumber,
		Email:        req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicket handles GET /api/repairs/:id and GET /api/admin/repairs/:id
func (h *Handler) GetTicket(c *gin.Context) {
	ticketID, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
		Actor:    middleware.GetActor(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicket handles PUT /api/admin/repairs/:id
func (h *Handler) UpdateTicket(c *gin.Context) {
	ticketID, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := common.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(ticketID, middleware.GetActor(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Repair ticket updated successfully", result)
}
