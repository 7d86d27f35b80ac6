package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) initAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin")
	admin.POST("/login", h.adminLogin)
}

type adminLoginRequest struct {
	Password string `json:"password" binding:"required"`
	OtpCode  string `json:"otp_code"`
}

type adminLoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// @Summary Admin login
// @Tags Admin
// @Description Exchanges the admin password (and TOTP code when enabled) for a bearer token
// @Accept  json
// @Produce  json
// @Success 200 {object} adminLoginResponse
// @Failure 401 {object} ErrorStruct
// @Router /admin/login [post]
func (h *Handler) adminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationErrorResponse(c, http.StatusBadRequest, err)
		return
	}

	token, ttl, err := h.services.Admins.Login(req.Password, req.OtpCode)
	if err != nil {
		errorResponse(c, http.StatusUnauthorized, AdminInvalidCredentialsCode)
		return
	}

	c.JSON(http.StatusOK, adminLoginResponse{
		AccessToken: token,
		ExpiresIn:   int64(ttl.Seconds()),
	})
}
