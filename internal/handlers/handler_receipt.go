package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/dto"
)

// receiptHandler handles HTTP requests related to receipt review.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// registerReceiptRoutes registers routes related to receipt review.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.GET("", h.listReceipts)
		receipts.GET("/:receipt_id", h.getReceipt)
		receipts.PUT("/:receipt_id", h.updateReceipt)
	}
}

// listReceipts godoc
// @Summary List receipts
// @Description Filtered, paginated listing of the organization's receipts, newest first, with status stats.
// @Tags receipts
// @Produce json
// @Param status query string false "Status filter (pending|processed|sent|all)"
// @Param startDate query string false "Inclusive lower bound (RFC3339 or YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (RFC3339 or YYYY-MM-DD)"
// @Param minAmount query string false "Inclusive minimum amount"
// @Param maxAmount query string false "Inclusive maximum amount"
// @Param search query string false "Substring match on merchant, notes or category"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var params dto.ListReceiptsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.receiptService.ListReceipts(c.Request.Context(), accountID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getReceipt godoc
// @Summary Get a receipt
// @Description Returns one receipt with submitter info. Other organizations' receipts read as not found.
// @Tags receipts
// @Produce json
// @Param receipt_id path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{receipt_id} [get]
func (h *receiptHandler) getReceipt(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	resp, err := h.receiptService.GetReceipt(c.Request.Context(), accountID, c.Param("receipt_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// updateReceipt godoc
// @Summary Update a receipt
// @Description Updates status and/or notes. Marking a receipt sent stamps the forwarding time.
// @Tags receipts
// @Accept json
// @Produce json
// @Param receipt_id path string true "Receipt ID"
// @Param receipt body dto.UpdateReceiptRequest true "Fields to update"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{receipt_id} [put]
func (h *receiptHandler) updateReceipt(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.receiptService.UpdateReceipt(c.Request.Context(), accountID, c.Param("receipt_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
