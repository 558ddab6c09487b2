// Package score measures how much of the catalog the path vocabulary could
// actually infer and raises signals for attributes that are rarely filled.
package score

import (
	"fmt"
	"math"
	"sort"

	"github.com/ooiea/DataExtraction/internal/model"
)

// SignalType identifies a diagnostic signal
type SignalType string

const (
	SignalCoverage   SignalType = "attribute_coverage"
	SignalNeverSeen  SignalType = "attribute_never_inferred"
	SignalDropRate   SignalType = "drop_rate"
	SignalEmptyInput SignalType = "empty_catalog"
)

// Severity grades a signal
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Signal is one diagnostic finding about a catalog run
type Signal struct {
	Type        SignalType             `json:"type"`
	Severity    Severity               `json:"severity"`
	Attribute   model.Attribute        `json:"attribute,omitempty"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// AttributeCoverage counts the records with a known value for one attribute
type AttributeCoverage struct {
	Attribute model.Attribute
	Known     int
	Total     int
	Distinct  int
	Top       string
}

// Ratio returns Known/Total, 0 for an empty catalog
func (c AttributeCoverage) Ratio() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Known) / float64(c.Total)
}

// Report is the coverage summary of a catalog
type Report struct {
	Records    int
	Attributes []AttributeCoverage
	// Index is the mean attribute coverage scaled to 0-100
	Index   int
	Signals []Signal
}

// Scorer calculates coverage and generates signals
type Scorer struct {
	threshold float64
}

// NewScorer creates a scorer; attributes below threshold coverage get a warning
func NewScorer(threshold float64) *Scorer {
	if threshold < 0 {
		threshold = 0
	}
	return &Scorer{threshold: threshold}
}

// Calculate computes per-attribute coverage over records in column order
func (s *Scorer) Calculate(columns []model.Attribute, records []model.FileRecord) Report {
	report := Report{Records: len(records)}

	if len(records) == 0 {
		report.Signals = append(report.Signals, Signal{
			Type:        SignalEmptyInput,
			Severity:    SeverityCritical,
			Description: "No recordings left after cleaning",
		})
		for _, col := range columns {
			report.Attributes = append(report.Attributes, AttributeCoverage{Attribute: col})
		}
		return report
	}

	var sum float64
	for _, col := range columns {
		cov := coverage(col, records)
		report.Attributes = append(report.Attributes, cov)
		sum += cov.Ratio()

		if signal, ok := s.coverageSignal(cov); ok {
			report.Signals = append(report.Signals, signal)
		}
	}

	if len(columns) > 0 {
		report.Index = int(math.Round(sum / float64(len(columns)) * 100))
	}

	return report
}

// DropSignal grades the share of walked files removed by cleaning
func (s *Scorer) DropSignal(input, kept int) Signal {
	dropped := input - kept
	ratio := 0.0
	if input > 0 {
		ratio = float64(dropped) / float64(input)
	}

	severity := SeverityInfo
	if ratio > 0.9 {
		severity = SeverityWarning
	}

	return Signal{
		Type:        SignalDropRate,
		Severity:    severity,
		Description: fmt.Sprintf("Cleaning dropped %d of %d files (%.0f%%)", dropped, input, ratio*100),
		Data: map[string]interface{}{
			"input":   input,
			"kept":    kept,
			"dropped": dropped,
			"ratio":   ratio,
		},
	}
}

func (s *Scorer) coverageSignal(cov AttributeCoverage) (Signal, bool) {
	ratio := cov.Ratio()

	switch {
	case cov.Known == 0:
		return Signal{
			Type:        SignalNeverSeen,
			Severity:    SeverityInfo,
			Attribute:   cov.Attribute,
			Description: fmt.Sprintf("%s was not inferred for any recording", cov.Attribute),
			Data:        map[string]interface{}{"total": cov.Total},
		}, true
	case ratio < s.threshold:
		return Signal{
			Type:        SignalCoverage,
			Severity:    SeverityWarning,
			Attribute:   cov.Attribute,
			Description: fmt.Sprintf("%s known for %d of %d recordings (%.1f%%)", cov.Attribute, cov.Known, cov.Total, ratio*100),
			Data: map[string]interface{}{
				"known":     cov.Known,
				"total":     cov.Total,
				"ratio":     ratio,
				"threshold": s.threshold,
			},
		}, true
	}
	return Signal{}, false
}

func coverage(attr model.Attribute, records []model.FileRecord) AttributeCoverage {
	cov := AttributeCoverage{Attribute: attr, Total: len(records)}
	counts := make(map[string]int)

	for _, rec := range records {
		v := rec.Get(attr)
		if v.IsUnknown() {
			continue
		}
		cov.Known++
		counts[v.String()]++
	}

	cov.Distinct = len(counts)
	cov.Top = mostCommon(counts)
	return cov
}

// mostCommon returns the most frequent value, the smallest on ties
func mostCommon(counts map[string]int) string {
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Strings(values)

	best, bestCount := "", 0
	for _, v := range values {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

// Warnings returns the signals at warning severity or above
func (r Report) Warnings() []Signal {
	var out []Signal
	for _, s := range r.Signals {
		if s.Severity != SeverityInfo {
			out = append(out, s)
		}
	}
	return out
}
