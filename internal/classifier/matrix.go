package classifier

import (
	"fmt"
	"strings"

	"billsense/internal/domain"
)

// CategoryResult records whether a required-element category was present.
type CategoryResult struct {
	Key     string   `json:"category"`
	Found   bool     `json:"found"`
	Matches []string `json:"matches"`
}

// TypeScore holds the per-tier matches for one document type and their total.
type TypeScore struct {
	StrongMatches []Indicator `json:"strong_matches"`
	MediumMatches []Indicator `json:"medium_matches"`
	WeakMatches   []Indicator `json:"weak_matches"`
	Total         int         `json:"total"`
}

// EOBScore is the EOB TypeScore plus the explicit "not a bill" signal.
type EOBScore struct {
	TypeScore
	HasNotABillPhrase bool   `json:"has_not_a_bill_phrase"`
	NotABillPhrase    string `json:"not_a_bill_phrase,omitempty"`
}

// PhaseTrace is the structured diagnostic record of one pipeline phase.
type PhaseTrace struct {
	Phase   int      `json:"phase"`
	Name    string   `json:"name"`
	Outcome string   `json:"outcome"`
	Details []string `json:"details,omitempty"`
}

// Matrix is the complete record of one classification. It is built fresh
// for every call and never mutated afterwards.
type Matrix struct {
	NegativeIndicatorsFound []string `json:"negative_indicators_found"`
	Disqualified            bool     `json:"disqualified"`

	RequiredCategories      []CategoryResult `json:"required_categories"`
	RequiredCategoriesScore int              `json:"required_categories_score"`
	HasMinimumRequired      bool             `json:"has_minimum_required"`

	BillScore TypeScore `json:"bill_score"`
	EOBScore  EOBScore  `json:"eob_score"`

	FinalType  domain.DocumentType `json:"final_type"`
	Confidence int                 `json:"confidence"`
	Reasoning  string              `json:"reasoning"`

	Trace []PhaseTrace `json:"trace"`
}

// Category returns the result for a required-element category key.
func (m *Matrix) Category(key string) (CategoryResult, bool) {
	for _, c := range m.RequiredCategories {
		if c.Key == key {
			return c, true
		}
	}
	return CategoryResult{}, false
}

func newMatrix(tables *Tables) *Matrix {
	m := &Matrix{
		NegativeIndicatorsFound: []string{},
		RequiredCategories:      make([]CategoryResult, 0, len(tables.Required)),
		BillScore:               emptyTypeScore(),
		EOBScore:                EOBScore{TypeScore: emptyTypeScore()},
		FinalType:               domain.DocumentTypeInvalid,
	}
	for _, cat := range tables.Required {
		m.RequiredCategories = append(m.RequiredCategories, CategoryResult{Key: cat.Key, Matches: []string{}})
	}
	return m
}

func emptyTypeScore() TypeScore {
	return TypeScore{
		StrongMatches: []Indicator{},
		MediumMatches: []Indicator{},
		WeakMatches:   []Indicator{},
	}
}

// BuildMatrix runs the four-phase pipeline over text. Phases 1 and 2 may end
// the pipeline early with an INVALID determination.
func (c *Classifier) BuildMatrix(text string) *Matrix {
	lowered := strings.ToLower(text)
	m := newMatrix(c.tables)

	if c.disqualify(lowered, m) {
		return m
	}
	if !c.checkRequired(lowered, m) {
		return m
	}
	c.scoreTypes(lowered, m)
	c.determine(m)
	return m
}

// disqualify is phase 1. It reports true when the document was rejected.
func (c *Classifier) disqualify(text string, m *Matrix) bool {
	m.NegativeIndicatorsFound = FindMatches(text, c.tables.Negative)
	m.Disqualified = len(m.NegativeIndicatorsFound) >= c.thresholds.DisqualificationNegativeCount

	trace := PhaseTrace{Phase: 1, Name: "disqualification", Outcome: "passed"}
	if len(m.NegativeIndicatorsFound) > 0 {
		trace.Details = []string{"negative indicators: " + strings.Join(m.NegativeIndicatorsFound, ", ")}
	}

	if m.Disqualified {
		m.FinalType = domain.DocumentTypeInvalid
		m.Confidence = clampConfidence(c.thresholds.DisqualifiedConfidence)
		m.Reasoning = fmt.Sprintf("Disqualified: %d strong negative indicators found (%s)",
			len(m.NegativeIndicatorsFound), strings.Join(m.NegativeIndicatorsFound, ", "))
		trace.Outcome = "disqualified"
	}
	m.Trace = append(m.Trace, trace)
	return m.Disqualified
}

// checkRequired is phase 2. It reports true when the gate was passed.
func (c *Classifier) checkRequired(text string, m *Matrix) bool {
	trace := PhaseTrace{Phase: 2, Name: "required_elements"}
	score := 0
	for i, cat := range c.tables.Required {
		matches := FindMatches(text, cat.Terms)
		found := len(matches) > 0
		m.RequiredCategories[i] = CategoryResult{Key: cat.Key, Found: found, Matches: matches}
		if found {
			score++
			trace.Details = append(trace.Details, fmt.Sprintf("%s: %s", cat.Key, strings.Join(matches, ", ")))
		} else {
			trace.Details = append(trace.Details, cat.Key+": no matches")
		}
	}
	m.RequiredCategoriesScore = score
	m.HasMinimumRequired = score >= c.thresholds.RequiredCategoriesMin

	if !m.HasMinimumRequired {
		m.FinalType = domain.DocumentTypeInvalid
		m.Confidence = clampConfidence(c.thresholds.InsufficientConfidence)
		m.Reasoning = fmt.Sprintf("Insufficient medical content: only %d/%d required categories found",
			score, len(c.tables.Required))
		trace.Outcome = "insufficient"
		m.Trace = append(m.Trace, trace)
		return false
	}
	trace.Outcome = fmt.Sprintf("passed (%d/%d)", score, len(c.tables.Required))
	m.Trace = append(m.Trace, trace)
	return true
}

// scoreTypes is phase 3. Both scores are always computed so the reasoning
// and diagnostics can cite them.
func (c *Classifier) scoreTypes(text string, m *Matrix) {
	m.BillScore = c.scoreTable(text, &c.tables.Bill)
	for _, cat := range m.RequiredCategories {
		if cat.Found {
			m.BillScore.Total += c.thresholds.RequiredCategoryBonus
		}
	}

	m.EOBScore = EOBScore{TypeScore: c.scoreTable(text, &c.tables.EOB)}
	m.EOBScore.NotABillPhrase, m.EOBScore.HasNotABillPhrase = containsAny(text, c.tables.NotABillPhrases)
	if m.EOBScore.HasNotABillPhrase {
		m.EOBScore.Total += c.thresholds.NotABillBonus
	}

	m.Trace = append(m.Trace, PhaseTrace{
		Phase:   3,
		Name:    "type_scoring",
		Outcome: fmt.Sprintf("bill=%d eob=%d", m.BillScore.Total, m.EOBScore.Total),
		Details: []string{
			fmt.Sprintf("bill matches: strong=%d medium=%d weak=%d",
				len(m.BillScore.StrongMatches), len(m.BillScore.MediumMatches), len(m.BillScore.WeakMatches)),
			fmt.Sprintf("eob matches: strong=%d medium=%d weak=%d not_a_bill=%t",
				len(m.EOBScore.StrongMatches), len(m.EOBScore.MediumMatches), len(m.EOBScore.WeakMatches),
				m.EOBScore.HasNotABillPhrase),
		},
	})
}

func (c *Classifier) scoreTable(text string, table *IndicatorTable) TypeScore {
	score := TypeScore{
		StrongMatches: c.indicators(text, table.Strong, TierStrong),
		MediumMatches: c.indicators(text, table.Medium, TierMedium),
		WeakMatches:   c.indicators(text, table.Weak, TierWeak),
	}
	for _, tier := range [][]Indicator{score.StrongMatches, score.MediumMatches, score.WeakMatches} {
		for _, ind := range tier {
			score.Total += ind.Weight
		}
	}
	return score
}

func (c *Classifier) indicators(text string, terms []string, tier Tier) []Indicator {
	matches := FindMatches(text, terms)
	out := make([]Indicator, 0, len(matches))
	weight := c.thresholds.WeightFor(tier)
	for _, term := range matches {
		out = append(out, Indicator{Term: term, Weight: weight, Tier: tier})
	}
	return out
}

// determine is phase 4. Rules are evaluated in priority order; the first
// that applies wins.
func (c *Classifier) determine(m *Matrix) {
	t := &c.thresholds
	bill := m.BillScore.Total
	eob := m.EOBScore.Total
	var rule string

	switch {
	case m.EOBScore.HasNotABillPhrase || len(m.EOBScore.StrongMatches) > 0:
		rule = "explicit_eob"
		m.FinalType = domain.DocumentTypeEOB
		m.Confidence = t.ExplicitEOBConfidence
		if m.EOBScore.HasNotABillPhrase {
			m.Reasoning = fmt.Sprintf("Document explicitly states %q", m.EOBScore.NotABillPhrase)
		} else {
			m.Reasoning = "Strong EOB indicator found: " + m.EOBScore.StrongMatches[0].Term
		}
	case eob > bill && eob >= t.EOBMinScore:
		rule = "eob_score"
		m.FinalType = domain.DocumentTypeEOB
		m.Confidence = min(t.EOBMaxConfidence, t.EOBBaseConfidence+(eob-bill)/2)
		m.Reasoning = fmt.Sprintf("EOB score (%d) > Bill score (%d)", eob, bill)
	case bill >= t.MedicalBillMinScore:
		rule = "bill_score"
		m.FinalType = domain.DocumentTypeMedicalBill
		m.Confidence = min(t.BillMaxConfidence, t.BillBaseConfidence+bill/t.BillScoreDivisor)
		m.Reasoning = fmt.Sprintf("Bill score (%d) meets threshold (%d)", bill, t.MedicalBillMinScore)
	default:
		rule = "default_bill"
		m.FinalType = domain.DocumentTypeMedicalBill
		m.Confidence = t.DefaultBillConfidence
		m.Reasoning = fmt.Sprintf("Required medical elements present (%d/%d), defaulting to medical bill",
			m.RequiredCategoriesScore, len(m.RequiredCategories))
	}
	m.Confidence = clampConfidence(m.Confidence)

	m.Trace = append(m.Trace, PhaseTrace{
		Phase:   4,
		Name:    "final_determination",
		Outcome: fmt.Sprintf("%s (%d%%)", m.FinalType, m.Confidence),
		Details: []string{"rule: " + rule, "reasoning: " + m.Reasoning},
	})
}

func clampConfidence(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
