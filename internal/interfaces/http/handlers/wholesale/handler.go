package wholesale

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phonefix-inc/phonefix/internal/application/wholesale/usecases"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/handlers/common"
	"github.com/phonefix-inc/phonefix/internal/interfaces/http/middleware"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/utils"
)

type Handler struct {
	submitUC SubmitApplicationExecutor
	getMyUC  GetMyApplicationExecutor
	listUC   ListApplicationsExecutor
	getUC    GetApplicationExecutor
	reviewUC ReviewApplicationExecutor
	logger   logger.Interface
}

func NewHandler(
	submitUC SubmitApplicationExecutor,
	getMyUC GetMyApplicationExecutor,
	listUC ListApplicationsExecutor,
	getUC GetApplicationExecutor,
	reviewUC ReviewApplicationExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		submitUC: submitUC,
		getMyUC:  getMyUC,
		listUC:   listUC,
		getUC:    getUC,
		reviewUC: reviewUC,
		logger:   logger,
	}
}

// Apply handles POST /api/wholesale/apply
func (h *Handler) Apply(c *gin.Context) {
	var req ApplyRequest
	if err := common.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), req.ToCommand(middleware.GetActor(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Wholesale application submitted")
}

// GetMyApplication handles GET /api/wholesale/apply
func (h *Handler) GetMyApplication(c *gin.Context) {
	result, err := h.getMyUC.Execute(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListApplications handles GET /api/admin/wholesale
func (h *Handler) ListApplications(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListApplicationsQuery{
		Actor:  middleware.GetActor(c),
		Status: c.Query("status"),
		Page:   p.Page,
		Limit:  p.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Applications, result.Total, result.Page, result.Limit)
}

// GetApplication handles GET /api/admin/wholesale/:id
func (h *Handler) GetApplication(c *gin.Context) {
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id, middleware.GetActor(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ReviewApplication handles PUT /api/admin/wholesale/:id
func (h *Handler) ReviewApplication(c *gin.Context) {
	id, err := common.ParseID(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReviewRequest
	if err := common.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.reviewUC.Execute(c.Request.Context(), req.ToCommand(id, middleware.GetActor(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Application reviewed", result)
}
