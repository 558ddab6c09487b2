package extract

import (
	"golang.org/x/text/unicode/norm"

	"github.com/ooiea/DataExtraction/internal/model"
)

// Resolver maps a path string to at most one value. Implementations are
// total: any string yields a value or Unknown, never an error.
type Resolver interface {
	Resolve(path string) model.Value
}

// ResolverFunc adapts a plain function to Resolver
type ResolverFunc func(path string) model.Value

// Resolve calls f(path)
func (f ResolverFunc) Resolve(path string) model.Value {
	return f(path)
}

// matcher is implemented by resolvers that can list every candidate
type matcher interface {
	Matches(path string) []string
}

// Source selects which part of the PathRecord an extractor reads
type Source int

const (
	SourcePath   Source = iota // Normalized location string
	SourceFormat               // File extension
)

// Extractor binds one attribute to its resolver
type Extractor struct {
	Attribute model.Attribute
	Resolver  Resolver
	Source    Source
}

// Enricher runs after every extractor and may fill attributes from others
type Enricher func(rec model.FileRecord) model.FileRecord

// Catalog is the ordered set of attribute extractors applied to every path
type Catalog struct {
	extractors []Extractor
	enrichers  []Enricher
}

// NewCatalog creates a catalog with the built-in attributes
func NewCatalog() *Catalog {
	c := &Catalog{}
	dt := NewDateTimeExtractor()

	c.Register(Extractor{Attribute: model.AttrRecordingSystem, Resolver: recordingSystems, Source: SourceFormat})
	c.Register(Extractor{Attribute: model.AttrCultureType, Resolver: cultureTypes})
	c.Register(Extractor{Attribute: model.AttrCellKind, Resolver: cellKinds})
	c.Register(Extractor{Attribute: model.AttrLab, Resolver: labs})
	c.Register(Extractor{Attribute: model.AttrPerformer, Resolver: performers})
	c.Register(Extractor{Attribute: model.AttrDrugApplication, Resolver: drugs})
	c.Register(Extractor{Attribute: model.AttrDrugDose, Resolver: drugDoseRules})
	c.Register(Extractor{Attribute: model.AttrRadiation, Resolver: radiationFlag})
	c.Register(Extractor{Attribute: model.AttrRadiationType, Resolver: radiationTypes})
	c.Register(Extractor{Attribute: model.AttrRadiationDose, Resolver: radiationDoseRule})
	c.Register(Extractor{Attribute: model.AttrStimulation, Resolver: stimulationFlag})
	c.Register(Extractor{Attribute: model.AttrControl, Resolver: controlFlag})
	c.Register(Extractor{Attribute: model.AttrNanoparticles, Resolver: nanoparticleFlag})
	c.Register(Extractor{Attribute: model.AttrLaser, Resolver: laserFlag})
	c.Register(Extractor{Attribute: model.AttrPitch, Resolver: pitchRules})
	c.Register(Extractor{Attribute: model.AttrSamplingRate, Resolver: samplingRateRules})
	c.Register(Extractor{Attribute: model.AttrElectrodes, Resolver: electrodeRule})
	c.Register(Extractor{Attribute: model.AttrDIV, Resolver: divRule})
	c.Register(Extractor{Attribute: model.AttrDAP, Resolver: dapRule})
	c.Register(Extractor{Attribute: model.AttrTimeBeforeTreatment, Resolver: timeBeforeRule})
	c.Register(Extractor{Attribute: model.AttrTimeAfterTreatment, Resolver: timeAfterRule})
	c.Register(Extractor{Attribute: model.AttrDate, Resolver: ResolverFunc(func(path string) model.Value {
		date, _ := dt.Extract(path)
		return date
	})})
	c.Register(Extractor{Attribute: model.AttrTime, Resolver: ResolverFunc(func(path string) model.Value {
		_, clock := dt.Extract(path)
		return clock
	})})

	// Performer must be known before the lab fallback can run
	c.Enrich(PerformerLabEnricher(performerLabs))

	return c
}

// Register appends an extractor; column order follows registration order
func (c *Catalog) Register(e Extractor) {
	c.extractors = append(c.extractors, e)
}

// Enrich appends a second-pass enricher
func (c *Catalog) Enrich(e Enricher) {
	c.enrichers = append(c.enrichers, e)
}

// Columns returns the attribute columns in report order
func (c *Catalog) Columns() []model.Attribute {
	cols := make([]model.Attribute, 0, len(c.extractors))
	for _, e := range c.extractors {
		cols = append(cols, e.Attribute)
	}
	return cols
}

// Extract builds the report row for one path
func (c *Catalog) Extract(p model.PathRecord) model.FileRecord {
	path := NormalizePath(p.Location)

	attrs := make(map[model.Attribute]model.Value, len(c.extractors))
	for _, e := range c.extractors {
		attrs[e.Attribute] = e.Resolver.Resolve(input(e.Source, p, path))
	}

	rec := model.FileRecord{Path: p, Attributes: attrs}
	for _, enrich := range c.enrichers {
		rec = enrich(rec)
	}
	return rec
}

// ExtractAll builds one row per path, indexed in input order
func (c *Catalog) ExtractAll(paths []model.PathRecord) []model.FileRecord {
	records := make([]model.FileRecord, 0, len(paths))
	for i, p := range paths {
		records = append(records, c.Extract(p).WithIndex(i))
	}
	return records
}

// Explanation shows how one attribute was inferred
type Explanation struct {
	Attribute  model.Attribute
	Value      model.Value // Final value, after enrichment
	Candidates []string    // Every matching category, in precedence order
}

// Explain reports every attribute of a path together with conflicting candidates
func (c *Catalog) Explain(p model.PathRecord) []Explanation {
	path := NormalizePath(p.Location)
	rec := c.Extract(p)

	out := make([]Explanation, 0, len(c.extractors))
	for _, e := range c.extractors {
		exp := Explanation{Attribute: e.Attribute, Value: rec.Get(e.Attribute)}
		if m, ok := e.Resolver.(matcher); ok {
			exp.Candidates = m.Matches(input(e.Source, p, path))
		}
		out = append(out, exp)
	}
	return out
}

// NormalizePath brings a path to NFC so decomposed umlauts (as written by
// macOS clients) match the composed spellings in the vocabularies
func NormalizePath(path string) string {
	return norm.NFC.String(path)
}

func input(src Source, p model.PathRecord, normalized string) string {
	if src == SourceFormat {
		return p.Format
	}
	return normalized
}
