package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/dto"
	"github.com/receiptcapture/portal_backend/internal/middleware"
)

// staffHandler handles HTTP requests related to staff members.
type staffHandler struct {
	staffService portssvc.StaffSvcFacade
}

func newStaffHandler(ss portssvc.StaffSvcFacade) *staffHandler {
	return &staffHandler{staffService: ss}
}

// registerStaffRoutes registers routes related to staff management.
func registerStaffRoutes(rg *gin.RouterGroup, staffService portssvc.StaffSvcFacade) {
	h := newStaffHandler(staffService)

	staff := rg.Group("/staff")
	{
		staff.GET("", h.listStaff)
		staff.POST("", h.createStaff)
		staff.PUT("/:staff_id", h.updateStaff)
		staff.DELETE("/:staff_id", h.deleteStaff)
	}
}

// listStaff godoc
// @Summary List staff members
// @Description Lists staff scoped by role: representatives see their own organization, portal admins see all or filter by organizationId.
// @Tags staff
// @Produce json
// @Param organizationId query string false "Organization filter (portal admins only)"
// @Success 200 {object} dto.ListStaffResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff [get]
func (h *staffHandler) listStaff(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var params dto.ListStaffParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	staff, err := h.staffService.ListStaff(c.Request.Context(), accountID, params.OrganizationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListStaffResponse(staff))
}

// createStaff godoc
// @Summary Add a staff member
// @Description Creates a staff member in the representative's organization.
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body dto.CreateStaffRequest true "Staff details"
// @Success 201 {object} dto.StaffResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /staff [post]
func (h *staffHandler) createStaff(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	staff, err := h.staffService.CreateStaff(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Staff member created via API", slog.String("staff_id", staff.StaffID))
	c.JSON(http.StatusCreated, dto.ToStaffResponse(staff))
}

// updateStaff godoc
// @Summary Update a staff member
// @Description Applies a partial update to a staff member.
// @Tags staff
// @Accept json
// @Produce json
// @Param staff_id path string true "Staff ID"
// @Param staff body dto.UpdateStaffRequest true "Fields to update"
// @Success 200 {object} dto.StaffResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /staff/{staff_id} [put]
func (h *staffHandler) updateStaff(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	staff, err := h.staffService.UpdateStaff(c.Request.Context(), accountID, c.Param("staff_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStaffResponse(staff))
}

// deleteStaff godoc
// @Summary Remove a staff member
// @Description Deletes a staff member. Their receipts remain and show as submitted by "Unknown Staff".
// @Tags staff
// @Produce json
// @Param staff_id path string true "Staff ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{staff_id} [delete]
func (h *staffHandler) deleteStaff(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	if err := h.staffService.DeleteStaff(c.Request.Context(), accountID, c.Param("staff_id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
