package v1

import (
	"github.com/Heman1223/bhuvik-enterprises/internal/config"
	"github.com/Heman1223/bhuvik-enterprises/internal/service"
	"github.com/Heman1223/bhuvik-enterprises/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title Registration Backend API
// @version 1.0
// @description Paid event registration API

// @BasePath /api/v1

// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization

type Handler struct {
	services     *service.Services
	tokenManager auth.TokenManager
	config       *config.Config
}

func NewHandler(
	services *service.Services,
	tokenManager auth.TokenManager,
	config *config.Config,
) *Handler {
	return &Handler{
		services:     services,
		tokenManager: tokenManager,
		config:       config,
	}
}

func (h *Handler) Init(api *gin.RouterGroup) {
	v1 := api.Group("v1")

	h.initRegistrationRoutes(v1)
	h.initLeadRoutes(v1)
	h.initAdminRoutes(v1)
}
