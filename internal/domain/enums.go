package domain

// DocumentType is the classified kind of an uploaded document.
type DocumentType string

const (
	DocumentTypeMedicalBill DocumentType = "MEDICAL_BILL"
	DocumentTypeEOB         DocumentType = "EOB"
	DocumentTypeInvalid     DocumentType = "INVALID"
)

// Valid reports whether t is one of the known document types.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeMedicalBill, DocumentTypeEOB, DocumentTypeInvalid:
		return true
	}
	return false
}
