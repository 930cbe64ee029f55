package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"billsense/internal/classifier"
	"billsense/internal/domain"
)

func TestDefaultThresholds_Valid(t *testing.T) {
	th := classifier.DefaultThresholds()
	assert.NoError(t, th.Validate(4))
	assert.Equal(t, 10, th.WeightFor(classifier.TierStrong))
	assert.Equal(t, 5, th.WeightFor(classifier.TierMedium))
	assert.Equal(t, 2, th.WeightFor(classifier.TierWeak))
}

func TestThresholds_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*classifier.Thresholds)
	}{
		{"zero weak weight", func(th *classifier.Thresholds) { th.WeakWeight = 0 }},
		{"negative bonus", func(th *classifier.Thresholds) { th.RequiredCategoryBonus = -1 }},
		{"zero disqualification count", func(th *classifier.Thresholds) { th.DisqualificationNegativeCount = 0 }},
		{"required min above categories", func(th *classifier.Thresholds) { th.RequiredCategoriesMin = 5 }},
		{"negative eob min", func(th *classifier.Thresholds) { th.EOBMinScore = -5 }},
		{"zero divisor", func(th *classifier.Thresholds) { th.BillScoreDivisor = 0 }},
		{"confidence above 100", func(th *classifier.Thresholds) { th.EOBMaxConfidence = 101 }},
		{"negative confidence", func(th *classifier.Thresholds) { th.DefaultBillConfidence = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := classifier.DefaultThresholds()
			tt.mutate(&th)
			assert.ErrorIs(t, th.Validate(4), domain.ErrInvalidThresholds)
		})
	}
}
