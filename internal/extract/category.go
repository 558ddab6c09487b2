// Package extract infers report attributes from recording file paths.
//
// Two resolvers do all the work: Vocabulary maps a path to at most one
// categorical label, NumericRule finds the number that belongs to a unit
// keyword. The catalog wires static vocabularies into them per attribute.
package extract

import (
	"strings"

	"github.com/ooiea/DataExtraction/internal/model"
)

// Category is one canonical label and the literal substrings that imply it.
// Matching is case-sensitive: every spelling to be matched must be listed.
type Category struct {
	Label    string
	Triggers []string
}

// Vocabulary is an ordered set of mutually exclusive categories.
// When several categories match, the one defined first wins.
type Vocabulary []Category

// Flag builds a one-category vocabulary: triggered yields label,
// not triggered yields Unknown.
func Flag(label string, triggers ...string) Vocabulary {
	return Vocabulary{{Label: label, Triggers: triggers}}
}

// Resolve returns the label of the first category whose trigger occurs in path
func (v Vocabulary) Resolve(path string) model.Value {
	for _, c := range v {
		if c.matches(path) {
			return model.Label(c.Label)
		}
	}
	return model.Unknown()
}

// Matches returns every matching label in vocabulary order
func (v Vocabulary) Matches(path string) []string {
	var labels []string
	for _, c := range v {
		if c.matches(path) {
			labels = append(labels, c.Label)
		}
	}
	return labels
}

func (c Category) matches(path string) bool {
	for _, t := range c.Triggers {
		// An empty trigger would match every path
		if t != "" && strings.Contains(path, t) {
			return true
		}
	}
	return false
}

// FormatTable maps lower-case file extensions to a label (recording hardware)
type FormatTable map[string]string

// Resolve returns the label for an extension, or Unknown
func (t FormatTable) Resolve(format string) model.Value {
	if label, ok := t[strings.ToLower(format)]; ok {
		return model.Label(label)
	}
	return model.Unknown()
}
