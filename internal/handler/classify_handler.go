package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"billsense/internal/middleware"
	"billsense/internal/service"
)

// ClassifyHandler handles document classification requests.
type ClassifyHandler struct {
	classificationService service.ClassificationService
	includeDebug          bool
	maxBodyBytes          int64
}

// NewClassifyHandler creates a new ClassifyHandler. maxBodyBytes of zero
// leaves the request body unbounded.
func NewClassifyHandler(classificationService service.ClassificationService, includeDebug bool, maxBodyBytes int64) *ClassifyHandler {
	return &ClassifyHandler{
		classificationService: classificationService,
		includeDebug:          includeDebug,
		maxBodyBytes:          maxBodyBytes,
	}
}

// Classify handles POST /api/v1/classify
// @Summary Classify extracted document text
// @Description Decide whether text extracted from an upload is a medical bill, an insurance EOB, or not a medical billing document. Only can_analyze should drive downstream branching; _debug is diagnostic.
// @Tags classification
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Extracted document text"
// @Success 200 {object} Response{data=ClassificationResponse} "Classification result"
// @Failure 400 {object} ErrorResponseBody "Empty text or malformed body"
// @Failure 413 {object} ErrorResponseBody "Text too large"
// @Router /classify [post]
func (h *ClassifyHandler) Classify(c *gin.Context) {
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			RespondError(c, http.StatusRequestEntityTooLarge, "TEXT_TOO_LARGE", "request body exceeds maximum allowed size")
			return
		}
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "request body must be a JSON object with extracted_text")
		return
	}

	out, err := h.classificationService.Classify(c.Request.Context(), service.ClassifyInput{
		Text:       req.ExtractedText,
		HeaderText: req.DocumentHeaderText,
		RequestID:  middleware.GetRequestID(c),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	result := out.Result
	if !h.includeDebug {
		result.Debug = nil
	}
	RespondOK(c, result)
}
