package v1

import (
	"net/http"

	"github.com/Heman1223/bhuvik-enterprises/internal/domain"
	"github.com/Heman1223/bhuvik-enterprises/internal/service"
	"github.com/Heman1223/bhuvik-enterprises/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initLeadRoutes(api *gin.RouterGroup) {
	leads := api.Group("/leads")
	leads.POST("", h.createLead)
	leads.GET("", h.adminIdentityMiddleware, h.listLeads)
}

type createLeadRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required,phonenumber"`
	Message string `json:"message" binding:"max=2000"`
}

// @Summary Create lead
// @Tags Leads
// @Description Stores a landing-page contact request
// @Accept  json
// @Produce  json
// @Success 201 {object} domain.Lead
// @Failure 400 {object} ValidationErrorStruct
// @Router /leads [post]
func (h *Handler) createLead(c *gin.Context) {
	var req createLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, http.StatusBadRequest, err)
		return
	}

	lead, err := h.services.Leads.Create(c.Request.Context(), service.LeadInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		logger.Error("create lead failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
		return
	}

	c.JSON(http.StatusCreated, lead)
}

type leadListResponse struct {
	Count int           `json:"count"`
	Data  []domain.Lead `json:"data"`
}

// @Summary List leads
// @Tags Leads
// @Description All leads, newest first
// @Produce  json
// @Success 200 {object} leadListResponse
// @Failure 401
// @Security AdminAuth
// @Router /leads [get]
func (h *Handler) listLeads(c *gin.Context) {
	leads, err := h.services.Leads.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("list leads failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
		return
	}

	c.JSON(http.StatusOK, leadListResponse{
		Count: len(leads),
		Data:  leads,
	})
}
