package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/dto"
)

// subscriptionHandler handles HTTP requests related to subscription management.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

func newSubscriptionHandler(ss portssvc.SubscriptionSvcFacade) *subscriptionHandler {
	return &subscriptionHandler{subscriptionService: ss}
}

// registerSubscriptionRoutes registers routes related to subscription management.
func registerSubscriptionRoutes(rg *gin.RouterGroup, subscriptionService portssvc.SubscriptionSvcFacade) {
	h := newSubscriptionHandler(subscriptionService)

	subscription := rg.Group("/subscription")
	{
		subscription.GET("/plans", h.listPlans)
		subscription.GET("/billing", h.getBillingHistory)
		subscription.POST("/change", h.changePlan)
		subscription.GET("/usage", h.getUsage)
	}
}

// listPlans godoc
// @Summary List subscription plans
// @Description Returns the active plan catalog.
// @Tags subscription
// @Produce json
// @Success 200 {object} dto.ListPlansResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscription/plans [get]
func (h *subscriptionHandler) listPlans(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	resp, err := h.subscriptionService.ListPlans(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getBillingHistory godoc
// @Summary Billing history
// @Description Returns the append-only billing log plus current plan and subscription state.
// @Tags subscription
// @Produce json
// @Success 200 {object} dto.BillingHistoryResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscription/billing [get]
func (h *subscriptionHandler) getBillingHistory(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	resp, err := h.subscriptionService.GetBillingHistory(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// changePlan godoc
// @Summary Change subscription plan
// @Description Switches the organization to the selected plan and records a billing entry.
// @Tags subscription
// @Accept json
// @Produce json
// @Param change body dto.ChangePlanRequest true "Target plan"
// @Success 200 {object} dto.ChangePlanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscription/change [post]
func (h *subscriptionHandler) changePlan(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.subscriptionService.ChangePlan(c.Request.Context(), accountID, req.PlanID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getUsage godoc
// @Summary Usage analytics
// @Description Returns staff/receipt/storage usage against plan quotas with a six-month series.
// @Tags subscription
// @Produce json
// @Success 200 {object} dto.UsageResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscription/usage [get]
func (h *subscriptionHandler) getUsage(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	resp, err := h.subscriptionService.GetUsage(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
