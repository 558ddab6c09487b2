// Package clean removes report rows that are not genuine recordings and
// selects the subset of rows to copy.
package clean

import (
	"strings"

	"github.com/ooiea/DataExtraction/internal/extract"
	"github.com/ooiea/DataExtraction/internal/model"
)

// Reason explains why a row was dropped
type Reason string

const (
	ReasonDenylisted Reason = "denylisted"
	ReasonEmpty      Reason = "empty_file"
	ReasonNoHardware Reason = "unknown_recording_system"
)

// Stats counts the rows removed per reason
type Stats struct {
	Input   int
	Kept    int
	Dropped map[Reason]int
}

// Cleaner filters rows after extraction
type Cleaner struct {
	denylist []string
}

// NewCleaner creates a cleaner; a nil denylist uses the built-in one
func NewCleaner(denylist []string) *Cleaner {
	if denylist == nil {
		denylist = extract.DefaultDenylist
	}
	return &Cleaner{denylist: denylist}
}

// Clean returns the surviving rows in input order, re-indexed from 0
func (c *Cleaner) Clean(records []model.FileRecord) ([]model.FileRecord, Stats) {
	stats := Stats{
		Input:   len(records),
		Dropped: make(map[Reason]int),
	}

	kept := make([]model.FileRecord, 0, len(records))
	for _, rec := range records {
		if reason, drop := c.reason(rec); drop {
			stats.Dropped[reason]++
			continue
		}
		kept = append(kept, rec.WithIndex(len(kept)))
	}

	stats.Kept = len(kept)
	return kept, stats
}

// reason returns the first rule that rejects the row
func (c *Cleaner) reason(rec model.FileRecord) (Reason, bool) {
	for _, s := range c.denylist {
		if s != "" && strings.Contains(rec.Path.Location, s) {
			return ReasonDenylisted, true
		}
	}
	if rec.Path.Size == 0 {
		return ReasonEmpty, true
	}
	if rec.Get(model.AttrRecordingSystem).IsUnknown() {
		return ReasonNoHardware, true
	}
	return "", false
}
