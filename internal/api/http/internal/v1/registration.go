package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/Heman1223/bhuvik-enterprises/internal/domain"
	"github.com/Heman1223/bhuvik-enterprises/internal/service"
	"github.com/Heman1223/bhuvik-enterprises/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initRegistrationRoutes(api *gin.RouterGroup) {
	api.POST("/orders", h.createOrder)
	api.GET("/config", h.publicConfig)

	registrations := api.Group("/registrations")
	registrations.POST("", h.commitRegistration)
	registrations.GET("", h.adminIdentityMiddleware, h.listRegistrations)
	registrations.GET("/resume/:name", h.adminIdentityMiddleware, h.downloadResume)
	registrations.GET("/resume/:name/text", h.adminIdentityMiddleware, h.resumeText)
}

type orderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

// @Summary Create payment order
// @Tags Registrations
// @Description Registers a fixed-price order with the payment gateway
// @Accept  json
// @Produce  json
// @Success 200 {object} orderResponse
// @Failure 500 {object} ErrorStruct
// @Router /orders [post]
func (h *Handler) createOrder(c *gin.Context) {
	order, err := h.services.Registrations.CreateOrder(c.Request.Context())
	if err != nil {
		logger.Error("create order failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, PaymentSystemUnavailableCode)
		return
	}

	c.JSON(http.StatusOK, orderResponse{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    order.KeyID,
	})
}

type commitRegistrationRequest struct {
	OrderID   string `form:"orderId" binding:"required"`
	PaymentID string `form:"paymentId" binding:"required"`
	Signature string `form:"signature" binding:"required"`

	Name        string `form:"name" binding:"required,min=2,max=100"`
	Phone       string `form:"phone" binding:"required,phonenumber"`
	Email       string `form:"email" binding:"required,email"`
	Gender      string `form:"gender" binding:"required,oneof=Male Female Other"`
	DateOfBirth string `form:"dateOfBirth" binding:"required,datetime=2006-01-02"`

	CollegeName     string `form:"collegeName" binding:"required,max=200"`
	Course          string `form:"course" binding:"required,max=100"`
	Specialization  string `form:"specialization" binding:"required,max=100"`
	YearOfPassing   int    `form:"yearOfPassing" binding:"required,min=1980,max=2035"`
	CurrentSemester string `form:"currentSemester" binding:"required,max=50"`

	KeySkills         string `form:"keySkills" binding:"required"`
	InterestedJobRole string `form:"interestedJobRole" binding:"required"`
	PreferredLocation string `form:"preferredLocation" binding:"required"`
	HasExperience     bool   `form:"hasExperience"`

	// consent=false fails the required rule, which is exactly the contract:
	// a registration without consent never commits.
	Consent bool `form:"consent" binding:"required"`
}

type registrationCommittedResponse struct {
	SerialNumber string `json:"serial_number"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	WhatsappLink string `json:"whatsapp_link,omitempty"`
}

// @Summary Commit registration
// @Tags Registrations
// @Description Verifies the payment callback and persists the registration with its resume
// @Accept  mpfd
// @Produce  json
// @Success 201 {object} registrationCommittedResponse
// @Failure 400 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Router /registrations [post]
func (h *Handler) commitRegistration(c *gin.Context) {
	var req commitRegistrationRequest
	if err := c.ShouldBind(&req); err != nil {
		validationErrorResponse(c, http.StatusBadRequest, err)
		return
	}

	resume, err := c.FormFile("resume")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, InvalidResumeFileCode)
		return
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		validationErrorResponse(c, http.StatusBadRequest, err)
		return
	}

	input := service.CommitInput{
		Proof: service.PaymentProof{
			OrderID:   req.OrderID,
			PaymentID: req.PaymentID,
			Signature: req.Signature,
		},
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Gender:      domain.Gender(req.Gender),
		DateOfBirth: dob,

		CollegeName:     req.CollegeName,
		Course:          req.Course,
		Specialization:  req.Specialization,
		YearOfPassing:   req.YearOfPassing,
		CurrentSemester: req.CurrentSemester,

		KeySkills:         req.KeySkills,
		InterestedJobRole: req.InterestedJobRole,
		PreferredLocation: req.PreferredLocation,
		HasExperience:     req.HasExperience,

		Consent: req.Consent,
		Resume:  resume,
	}

	reg, err := h.services.Registrations.Commit(c.Request.Context(), input)
	if err != nil {
		h.commitErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, registrationCommittedResponse{
		SerialNumber: reg.SerialNumber,
		Name:         reg.Name,
		Email:        reg.Email,
		WhatsappLink: h.config.Registration.WhatsappLink,
	})
}

func (h *Handler) commitErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidFile):
		errorResponse(c, http.StatusBadRequest, InvalidResumeFileCode)
	case errors.Is(err, service.ErrConsentRequired):
		errorResponse(c, http.StatusBadRequest, ConsentRequiredCode)
	case errors.Is(err, service.ErrPaymentVerificationFailed):
		errorResponse(c, http.StatusBadRequest, PaymentVerificationFailedCode)
	case errors.Is(err, service.ErrPaymentSystemUnavailable):
		logger.Error("payment system unavailable", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, PaymentSystemUnavailableCode)
	case errors.Is(err, service.ErrAllocationFailed):
		logger.Error("serial allocation failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, SerialAllocationFailedCode)
	default:
		logger.Error("registration commit failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, PersistenceFailedCode)
	}
}

type registrationListResponse struct {
	Count int                   `json:"count"`
	Data  []domain.Registration `json:"data"`
}

// @Summary List registrations
// @Tags Registrations
// @Description All paid registrations, newest first. Payment signatures are never included.
// @Produce  json
// @Success 200 {object} registrationListResponse
// @Failure 401
// @Security AdminAuth
// @Router /registrations [get]
func (h *Handler) listRegistrations(c *gin.Context) {
	regs, err := h.services.Registrations.GetAllPaid(c.Request.Context())
	if err != nil {
		logger.Error("list registrations failed", zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
		return
	}

	c.JSON(http.StatusOK, registrationListResponse{
		Count: len(regs),
		Data:  regs,
	})
}

// @Summary Download resume
// @Tags Registrations
// @Description Streams a stored resume file
// @Produce  application/pdf
// @Param name path string true "Stored file name"
// @Success 200
// @Failure 404 {object} ErrorStruct
// @Security AdminAuth
// @Router /registrations/resume/{name} [get]
func (h *Handler) downloadResume(c *gin.Context) {
	name := c.Param("name")

	path, err := h.services.Registrations.ResumeFile(name)
	if err != nil {
		if errors.Is(err, service.ErrResumeNotFound) {
			errorResponse(c, http.StatusNotFound, ResumeNotFoundCode)
			return
		}
		logger.Error("resolve resume failed", zap.String("file", name), zap.Error(err))
		errorResponse(c, http.StatusInternalServerError, UnknownErrorCode)
		return
	}

	c.FileAttachment(path, name)
}

type resumeTextResponse struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// @Summary Resume text preview
// @Tags Registrations
// @Description Extracts the plain text of a stored resume for quick screening
// @Produce  json
// @Param name path string true "Stored file name"
// @Success 200 {object} resumeTextResponse
// @Failure 404 {object} ErrorStruct
// @Failure 422 {object} ErrorStruct
// @Security AdminAuth
// @Router /registrations/resume/{name}/text [get]
func (h *Handler) resumeText(c *gin.Context) {
	name := c.Param("name")

	text, err := h.services.Registrations.ResumeText(name)
	if err != nil {
		if errors.Is(err, service.ErrResumeNotFound) {
			errorResponse(c, http.StatusNotFound, ResumeNotFoundCode)
			return
		}
		errorResponse(c, http.StatusUnprocessableEntity, ResumeUnreadableCode)
		return
	}

	c.JSON(http.StatusOK, resumeTextResponse{Name: name, Text: text})
}

type publicConfigResponse struct {
	KeyID        string `json:"key_id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	WhatsappLink string `json:"whatsapp_link,omitempty"`
}

// @Summary Public configuration
// @Tags Registrations
// @Description Checkout configuration for the frontend. Never exposes the gateway secret.
// @Produce  json
// @Success 200 {object} publicConfigResponse
// @Router /config [get]
func (h *Handler) publicConfig(c *gin.Context) {
	cfg := h.services.Registrations.PublicConfig()

	c.JSON(http.StatusOK, publicConfigResponse{
		KeyID:        cfg.KeyID,
		Amount:       cfg.Amount,
		Currency:     cfg.Currency,
		WhatsappLink: cfg.WhatsappLink,
	})
}
