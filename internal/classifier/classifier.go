// Package classifier decides whether extracted document text is a medical
// bill, an insurance Explanation of Benefits, or not a medical billing
// document at all. Classification is a pure function of the text and the
// static indicator tables; a Classifier is safe for concurrent use.
package classifier

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Classifier pairs an immutable vocabulary with its tuning.
type Classifier struct {
	tables     *Tables
	thresholds Thresholds
}

// New builds a Classifier after validating the thresholds against the tables.
// The tables are copied so later changes by the caller cannot leak in.
func New(tables *Tables, thresholds Thresholds) (*Classifier, error) {
	if tables == nil {
		tables = DefaultTables()
	}
	if err := thresholds.Validate(len(tables.Required)); err != nil {
		return nil, fmt.Errorf("classifier.New: %w", err)
	}
	return &Classifier{tables: tables.clone(), thresholds: thresholds}, nil
}

// Default returns a Classifier with the production tables and thresholds.
func Default() *Classifier {
	return &Classifier{tables: DefaultTables(), thresholds: DefaultThresholds()}
}

// Fingerprint identifies the vocabulary and tuning. Two classifiers with the
// same fingerprint build identical matrices for the same text.
func (c *Classifier) Fingerprint() string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%+v\x00%+v", *c.tables, c.thresholds)))
	return hex.EncodeToString(sum[:])
}

// Classify builds the matrix for text and translates it into a Result.
func (c *Classifier) Classify(text string) Result {
	return Translate(c.BuildMatrix(text))
}

func (t *Tables) clone() *Tables {
	out := &Tables{
		Bill:            t.Bill.clone(),
		EOB:             t.EOB.clone(),
		Negative:        lowerAll(t.Negative),
		Required:        make([]RequiredCategory, 0, len(t.Required)),
		NotABillPhrases: lowerAll(t.NotABillPhrases),
	}
	for _, cat := range t.Required {
		out.Required = append(out.Required, RequiredCategory{Key: cat.Key, Terms: lowerAll(cat.Terms)})
	}
	return out
}

func (it IndicatorTable) clone() IndicatorTable {
	return IndicatorTable{
		Strong: lowerAll(it.Strong),
		Medium: lowerAll(it.Medium),
		Weak:   lowerAll(it.Weak),
	}
}

func lowerAll(terms []string) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = strings.ToLower(t)
	}
	return out
}
