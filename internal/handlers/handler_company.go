package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/dto"
)

// companyHandler handles HTTP requests related to company settings.
type companyHandler struct {
	organizationService portssvc.OrganizationSvcFacade
}

func newCompanyHandler(os portssvc.OrganizationSvcFacade) *companyHandler {
	return &companyHandler{organizationService: os}
}

// registerCompanyRoutes registers routes related to company settings.
func registerCompanyRoutes(rg *gin.RouterGroup, organizationService portssvc.OrganizationSvcFacade) {
	h := newCompanyHandler(organizationService)

	company := rg.Group("/company")
	{
		company.GET("/settings", h.getSettings)
		company.PUT("/settings", h.updateSettings)
	}
}

// getSettings godoc
// @Summary Company settings
// @Description Returns the organization, its current plan and a usage summary.
// @Tags company
// @Produce json
// @Success 200 {object} dto.CompanySettingsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /company/settings [get]
func (h *companyHandler) getSettings(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	resp, err := h.organizationService.GetSettings(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateSettings godoc
// @Summary Update company settings
// @Description Edits the organization name, forwarding email and domain.
// @Tags company
// @Accept json
// @Produce json
// @Param settings body dto.UpdateCompanySettingsRequest true "Settings"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /company/settings [put]
func (h *companyHandler) updateSettings(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.organizationService.UpdateSettings(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
