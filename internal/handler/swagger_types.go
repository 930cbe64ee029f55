package handler

import (
	"billsense/internal/classifier"
	"billsense/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// ClassifyRequest represents the classify request body.
type ClassifyRequest struct {
	ExtractedText      string `json:"extracted_text" example:"PATIENT STATEMENT\nPatient Name: Jane Doe\nProvider: Springfield Clinic\nCPT 99214 Office visit\nAmount Due: $125.00"`
	DocumentHeaderText string `json:"document_header_text,omitempty" example:"Springfield Clinic Billing Office"`
}

// --- Response Types ---

// ClassificationResponse documents the classify payload.
type ClassificationResponse struct {
	Type        domain.DocumentType   `json:"type" example:"MEDICAL_BILL"`
	Confidence  int                   `json:"confidence" example:"77"`
	CanAnalyze  bool                  `json:"can_analyze" example:"true"`
	UserMessage string                `json:"user_message" example:"Medical bill detected. Proceeding with analysis..."`
	Debug       *classifier.DebugInfo `json:"_debug,omitempty"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status" example:"ok"`
	Checks map[string]string `json:"checks,omitempty"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
