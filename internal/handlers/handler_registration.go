package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/dto"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// registrationHandler handles the public signup workflow.
type registrationHandler struct {
	registrationService portssvc.RegistrationSvcFacade
}

func newRegistrationHandler(rs portssvc.RegistrationSvcFacade) *registrationHandler {
	return &registrationHandler{registrationService: rs}
}

// registerRegistrationRoutes sets up the public signup routes with rate
// limiting on the commit endpoint.
func registerRegistrationRoutes(rg *gin.Engine, registrationService portssvc.RegistrationSvcFacade) {
	h := newRegistrationHandler(registrationService)

	// Define rate limit: 5 requests per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	register := rg.Group("/api/v1/register")
	{
		register.POST("", limitMiddleware, h.register)
		register.POST("/validate", h.validateStep)
	}
}

// register godoc
// @Summary Register a company
// @Description Creates the organization, its representative account and the trial billing entry in one step.
// @Tags registration
// @Accept json
// @Produce json
// @Param registration body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.RegistrationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Failure 500 {object} ErrorResponse
// @Router /register [post]
func (h *registrationHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.registrationService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// validateStep godoc
// @Summary Validate a signup step
// @Description Validates one step of the multi-step signup form so the client can advance.
// @Tags registration
// @Accept json
// @Produce json
// @Param step body dto.RegisterStepRequest true "Step fields"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Router /register/validate [post]
func (h *registrationHandler) validateStep(c *gin.Context) {
	var req dto.RegisterStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.registrationService.ValidateStep(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}
