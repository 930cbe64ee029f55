package classifier

import "billsense/internal/domain"

// User-facing messages, one per outcome.
const (
	MessageDisqualified = "This does not appear to be a medical document. Please upload a medical bill or statement from your healthcare provider."
	MessageInsufficient = "This document does not contain enough medical billing information. Please upload a complete medical bill or statement."
	MessageEOB          = "This appears to be an Explanation of Benefits (EOB) from your insurance company. For best results, upload the actual medical bill from your provider. You can continue with this EOB, but analysis may be less accurate."
	MessageMedicalBill  = "Medical bill detected. Proceeding with analysis..."
)

// DebugInfo carries diagnostic scores. Consumers may log or display it but
// must only branch on Result.CanAnalyze.
type DebugInfo struct {
	BillScore          int    `json:"bill_score"`
	EOBScore           int    `json:"eob_score"`
	RequiredCategories int    `json:"required_categories"`
	Reasoning          string `json:"reasoning"`
}

// Result is the classification outcome handed to downstream analysis.
type Result struct {
	Type        domain.DocumentType `json:"type"`
	Confidence  int                 `json:"confidence"`
	CanAnalyze  bool                `json:"can_analyze"`
	UserMessage string              `json:"user_message"`
	Debug       *DebugInfo          `json:"_debug,omitempty"`
	Matrix      *Matrix             `json:"-"`
}

// Translate maps a finished matrix onto a Result.
func Translate(m *Matrix) Result {
	res := Result{
		Type:       m.FinalType,
		Confidence: m.Confidence,
		Debug: &DebugInfo{
			BillScore:          m.BillScore.Total,
			EOBScore:           m.EOBScore.Total,
			RequiredCategories: m.RequiredCategoriesScore,
			Reasoning:          m.Reasoning,
		},
		Matrix: m,
	}

	switch m.FinalType {
	case domain.DocumentTypeInvalid:
		res.CanAnalyze = false
		if m.Disqualified {
			res.UserMessage = MessageDisqualified
		} else {
			res.UserMessage = MessageInsufficient
		}
	case domain.DocumentTypeEOB:
		res.CanAnalyze = true
		res.UserMessage = MessageEOB
	default:
		res.CanAnalyze = true
		res.UserMessage = MessageMedicalBill
	}
	return res
}
