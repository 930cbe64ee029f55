package classifier

// Tier groups indicator terms by evidential strength.
type Tier string

const (
	TierStrong Tier = "strong"
	TierMedium Tier = "medium"
	TierWeak   Tier = "weak"
)

// Required-element category keys. The order of RequiredCategoryKeys is the
// order categories are evaluated and reported in.
const (
	CategoryPatientInfo     = "patient_info"
	CategoryProviderInfo    = "provider_info"
	CategoryMedicalServices = "medical_services"
	CategoryFinancialInfo   = "financial_info"
)

// RequiredCategoryKeys lists the four required-element categories in evaluation order.
var RequiredCategoryKeys = []string{
	CategoryPatientInfo,
	CategoryProviderInfo,
	CategoryMedicalServices,
	CategoryFinancialInfo,
}

// Indicator is a single matched term together with the weight it contributed.
type Indicator struct {
	Term   string `json:"indicator"`
	Weight int    `json:"weight"`
	Tier   Tier   `json:"category"`
}

// IndicatorTable holds the strong/medium/weak term lists for one document type.
// Weights are not stored here; they come from Thresholds so they can be retuned.
type IndicatorTable struct {
	Strong []string
	Medium []string
	Weak   []string
}

// RequiredCategory is one of the four minimum-content categories.
type RequiredCategory struct {
	Key   string
	Terms []string
}

// Tables is the full static vocabulary the classifier matches against.
// Tables are never mutated after construction.
type Tables struct {
	Bill            IndicatorTable
	EOB             IndicatorTable
	Negative        []string
	Required        []RequiredCategory
	NotABillPhrases []string
}

// DefaultTables returns the English billing/insurance vocabulary.
func DefaultTables() *Tables {
	return &Tables{
		Bill: IndicatorTable{
			Strong: []string{
				"amount due",
				"payment due",
				"please remit",
				"billing statement",
				"patient statement",
				"account balance",
				"pay this amount",
				"minimum payment",
				"payment options",
				"make a payment",
			},
			Medium: []string{
				"statement",
				"invoice",
				"charges",
				"balance forward",
				"account summary",
				"statement date",
				"due date",
				"total due",
				"current balance",
			},
			Weak: []string{"total", "subtotal", "amount", "date of service", "service date"},
		},
		EOB: IndicatorTable{
			Strong: []string{
				"explanation of benefits",
				"this is not a bill",
				"not a bill",
				"eob",
				"claim summary",
				"claims processed",
				"insurance summary",
				"benefit explanation",
			},
			Medium: []string{
				"allowed amount",
				"plan paid",
				"insurance paid",
				"member responsibility",
				"what you owe",
				"claim number",
				"processed date",
				"amount covered",
				"coinsurance",
				"copay applied",
				"deductible applied",
				"provider discount",
				"network discount",
			},
			Weak: []string{"claim", "coverage", "benefit", "network", "in-network", "out-of-network"},
		},
		Negative: []string{
			"construction",
			"contractor",
			"chapter",
			"isbn",
			"copyright",
			"restaurant",
			"menu",
			"mortgage",
			"lease agreement",
			"rental agreement",
			"plumbing",
			"electrical",
			"roofing",
			"automotive",
			"car repair",
			"home improvement",
			"landscaping",
			"real estate",
			"property tax",
			"utility bill",
			"phone bill",
			"internet bill",
			"cable bill",
		},
		Required: []RequiredCategory{
			{
				Key: CategoryPatientInfo,
				Terms: []string{
					"patient name",
					"patient:",
					"member id",
					"account number",
					"medical record",
					"mrn",
					"dob",
					"date of birth",
					"subscriber",
					"dependent",
					"insured",
				},
			},
			{
				Key: CategoryProviderInfo,
				Terms: []string{
					"provider",
					"physician",
					"doctor",
					"clinic",
					"hospital",
					"npi",
					"tax id",
					"facility",
					"medical center",
					"healthcare",
					"health system",
				},
			},
			{
				Key: CategoryMedicalServices,
				Terms: []string{
					"service date",
					"date of service",
					"procedure",
					"diagnosis",
					"cpt",
					"icd",
					"office visit",
					"exam",
					"treatment",
					"lab",
					"x-ray",
					"radiology",
					"surgery",
				},
			},
			{
				Key: CategoryFinancialInfo,
				Terms: []string{
					"charge",
					"amount",
					"total",
					"balance",
					"payment",
					"insurance",
					"copay",
					"deductible",
					"billed",
					"cost",
					"fee",
				},
			},
		},
		NotABillPhrases: []string{"this is not a bill", "not a bill"},
	}
}
