package clean

import (
	"fmt"
	"strings"

	"github.com/ooiea/DataExtraction/internal/model"
)

// Condition requires one attribute to render exactly as Value.
// The pseudo-attribute "Format" compares the file extension.
type Condition struct {
	Attribute model.Attribute
	Value     string
}

// ParseCondition parses "Attribute=Value"
func ParseCondition(term string) (Condition, error) {
	attr, value, ok := strings.Cut(term, "=")
	attr = strings.TrimSpace(attr)
	if !ok || attr == "" {
		return Condition{}, fmt.Errorf("invalid condition %q: expected Attribute=Value", term)
	}
	return Condition{Attribute: model.Attribute(attr), Value: strings.TrimSpace(value)}, nil
}

// formatAttribute addresses PathRecord.Format in conditions
const formatAttribute model.Attribute = "Format"

func (c Condition) matches(rec model.FileRecord) bool {
	if c.Attribute == formatAttribute {
		return rec.Path.Format == c.Value
	}
	return rec.Get(c.Attribute).String() == c.Value
}

// Selection picks the rows to copy
type Selection struct {
	Conditions []Condition
	MinSizeGB  float64 // Exclusive lower bound; 0 disables it
	MaxSizeGB  float64 // Exclusive upper bound; 0 disables it
}

// NewSelection parses condition terms into a Selection
func NewSelection(terms []string, minGB, maxGB float64) (*Selection, error) {
	sel := &Selection{MinSizeGB: minGB, MaxSizeGB: maxGB}
	for _, term := range terms {
		cond, err := ParseCondition(term)
		if err != nil {
			return nil, err
		}
		sel.Conditions = append(sel.Conditions, cond)
	}
	if minGB > 0 && maxGB > 0 && minGB >= maxGB {
		return nil, fmt.Errorf("invalid size bounds: min %.3f GB >= max %.3f GB", minGB, maxGB)
	}
	return sel, nil
}

// Matches reports whether one row satisfies every condition
func (s *Selection) Matches(rec model.FileRecord) bool {
	for _, c := range s.Conditions {
		if !c.matches(rec) {
			return false
		}
	}
	size := rec.Path.SizeGB()
	if s.MinSizeGB > 0 && size <= s.MinSizeGB {
		return false
	}
	if s.MaxSizeGB > 0 && size >= s.MaxSizeGB {
		return false
	}
	return true
}

// Select returns the matching rows in order. Indices are kept so the
// subset can be traced back to the full report.
func (s *Selection) Select(records []model.FileRecord) []model.FileRecord {
	var out []model.FileRecord
	for _, rec := range records {
		if s.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}
