package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billsense/internal/export"
	"billsense/internal/service"
)

// HistoryHandler serves the admin view of past classifications.
type HistoryHandler struct {
	historyService service.HistoryService
	now            func() time.Time
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService, now: time.Now}
}

// GetStats handles GET /api/v1/admin/stats
// @Summary Get classification statistics
// @Description Aggregate counts of classifications by outcome, analyzable count, average confidence, and cache hits.
// @Tags admin
// @Produce json
// @Success 200 {object} Response{data=domain.ClassificationStats} "Aggregate statistics"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 503 {object} ErrorResponseBody "History not configured"
// @Security AdminPassword
// @Router /admin/stats [get]
func (h *HistoryHandler) GetStats(c *gin.Context) {
	stats, err := h.historyService.GetStats(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

// List handles GET /api/v1/admin/classifications
// @Summary List classifications
// @Description Most recent classifications first. Raw text is never stored; rows carry a SHA-256 of it.
// @Tags admin
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.ClassificationRecord,meta=PagMeta} "Classification history"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 503 {object} ErrorResponseBody "History not configured"
// @Security AdminPassword
// @Router /admin/classifications [get]
func (h *HistoryHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	recs, total, err := h.historyService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, recs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/admin/classifications/:id
// @Summary Get a classification
// @Tags admin
// @Produce json
// @Param id path string true "Classification ID"
// @Success 200 {object} Response{data=domain.ClassificationRecord} "Classification record"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Not found"
// @Security AdminPassword
// @Router /admin/classifications/{id} [get]
func (h *HistoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid classification ID")
		return
	}

	rec, err := h.historyService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// Export handles GET /api/v1/admin/classifications/export
// @Summary Export classification history
// @Description Download the most recent classifications as an XLSX workbook or a CSV file.
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param format query string false "xlsx or csv" default(xlsx)
// @Success 200 {file} file "Export file"
// @Failure 400 {object} ErrorResponseBody "Unsupported format"
// @Failure 503 {object} ErrorResponseBody "History not configured"
// @Security AdminPassword
// @Router /admin/classifications/export [get]
func (h *HistoryHandler) Export(c *gin.Context) {
	format, ok := export.ParseFormat(c.Query("format"))
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be xlsx or csv")
		return
	}

	var buf bytes.Buffer
	if err := h.historyService.Export(c.Request.Context(), &buf, format); err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.BuildFilename(format, h.now())))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
