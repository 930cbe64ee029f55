package classifier

import (
	"fmt"

	"billsense/internal/domain"
)

// Thresholds carries every tunable number the decision pipeline uses.
// DefaultThresholds reproduces the hand-tuned production values.
type Thresholds struct {
	StrongWeight int
	MediumWeight int
	WeakWeight   int

	RequiredCategoryBonus int
	NotABillBonus         int

	DisqualificationNegativeCount int
	RequiredCategoriesMin         int
	MedicalBillMinScore           int
	EOBMinScore                   int

	DisqualifiedConfidence int
	InsufficientConfidence int
	ExplicitEOBConfidence  int
	EOBBaseConfidence      int
	EOBMaxConfidence       int
	BillBaseConfidence     int
	BillMaxConfidence      int
	BillScoreDivisor       int
	DefaultBillConfidence  int
}

// DefaultThresholds returns the production tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		StrongWeight: 10,
		MediumWeight: 5,
		WeakWeight:   2,

		RequiredCategoryBonus: 15,
		NotABillBonus:         15,

		DisqualificationNegativeCount: 2,
		RequiredCategoriesMin:         3,
		MedicalBillMinScore:           30,
		EOBMinScore:                   25,

		DisqualifiedConfidence: 90,
		InsufficientConfidence: 80,
		ExplicitEOBConfidence:  90,
		EOBBaseConfidence:      60,
		EOBMaxConfidence:       85,
		BillBaseConfidence:     70,
		BillMaxConfidence:      95,
		BillScoreDivisor:       10,
		DefaultBillConfidence:  70,
	}
}

// WeightFor returns the point weight of a tier.
func (t *Thresholds) WeightFor(tier Tier) int {
	switch tier {
	case TierStrong:
		return t.StrongWeight
	case TierMedium:
		return t.MediumWeight
	default:
		return t.WeakWeight
	}
}

// Validate rejects tunings the pipeline cannot interpret. requiredCategories is
// the number of required-element categories in the tables the thresholds will
// be paired with.
func (t *Thresholds) Validate(requiredCategories int) error {
	if t.StrongWeight <= 0 || t.MediumWeight <= 0 || t.WeakWeight <= 0 {
		return fmt.Errorf("%w: tier weights must be positive", domain.ErrInvalidThresholds)
	}
	if t.RequiredCategoryBonus < 0 || t.NotABillBonus < 0 {
		return fmt.Errorf("%w: bonuses must not be negative", domain.ErrInvalidThresholds)
	}
	if t.DisqualificationNegativeCount < 1 {
		return fmt.Errorf("%w: disqualification_negative_count must be at least 1", domain.ErrInvalidThresholds)
	}
	if t.RequiredCategoriesMin < 0 || t.RequiredCategoriesMin > requiredCategories {
		return fmt.Errorf("%w: required_categories_min must be between 0 and %d",
			domain.ErrInvalidThresholds, requiredCategories)
	}
	if t.MedicalBillMinScore < 0 || t.EOBMinScore < 0 {
		return fmt.Errorf("%w: score thresholds must not be negative", domain.ErrInvalidThresholds)
	}
	if t.BillScoreDivisor <= 0 {
		return fmt.Errorf("%w: bill_score_divisor must be positive", domain.ErrInvalidThresholds)
	}

	confidences := []struct {
		name  string
		value int
	}{
		{"disqualified_confidence", t.DisqualifiedConfidence},
		{"insufficient_confidence", t.InsufficientConfidence},
		{"explicit_eob_confidence", t.ExplicitEOBConfidence},
		{"eob_base_confidence", t.EOBBaseConfidence},
		{"eob_max_confidence", t.EOBMaxConfidence},
		{"bill_base_confidence", t.BillBaseConfidence},
		{"bill_max_confidence", t.BillMaxConfidence},
		{"default_bill_confidence", t.DefaultBillConfidence},
	}
	for _, c := range confidences {
		if c.value < 0 || c.value > 100 {
			return fmt.Errorf("%w: %s must be between 0 and 100", domain.ErrInvalidThresholds, c.name)
		}
	}
	return nil
}
