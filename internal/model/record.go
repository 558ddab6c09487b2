package model

import (
	"path/filepath"
)

// Attribute names one inferred column of the report
type Attribute string

const (
	AttrRecordingSystem     Attribute = "Recording system"
	AttrCultureType         Attribute = "Culture type"
	AttrCellKind            Attribute = "Cell's kind"
	AttrLab                 Attribute = "Labor"
	AttrPerformer           Attribute = "Performer"
	AttrDrugApplication     Attribute = "Drug application"
	AttrDrugDose            Attribute = "Drug dose"
	AttrRadiation           Attribute = "Radiation"
	AttrRadiationType       Attribute = "Radiation type"
	AttrRadiationDose       Attribute = "Radiation dose"
	AttrStimulation         Attribute = "Stimulation"
	AttrControl             Attribute = "Control"
	AttrNanoparticles       Attribute = "Nanoparticles"
	AttrLaser               Attribute = "Laser"
	AttrPitch               Attribute = "Pitch"
	AttrSamplingRate        Attribute = "Sampling rate"
	AttrElectrodes          Attribute = "Electrodes"
	AttrDIV                 Attribute = "DIV"
	AttrDAP                 Attribute = "DAP"
	AttrTimeBeforeTreatment Attribute = "Time before treatment"
	AttrTimeAfterTreatment  Attribute = "Time after treatment"
	AttrDate                Attribute = "Date"
	AttrTime                Attribute = "Time"
)

// bytesPerGB converts byte sizes to the GB column (1024^3, as the share reports it)
const bytesPerGB = 1024 * 1024 * 1024

// PathRecord is one discovered file: the unit of analysis for every extractor
type PathRecord struct {
	Location string `json:"location"` // Full path as found on the share
	Format   string `json:"format"`   // Extension including the dot (e.g., ".dat")
	Size     int64  `json:"size"`     // Size in bytes
}

// NewPathRecord builds a PathRecord, deriving the format from the path
func NewPathRecord(location string, size int64) PathRecord {
	return PathRecord{
		Location: location,
		Format:   filepath.Ext(location),
		Size:     size,
	}
}

// SizeGB returns the size in gigabytes
func (p PathRecord) SizeGB() float64 {
	return float64(p.Size) / bytesPerGB
}

// FileRecord is one report row: the path plus every extracted attribute
type FileRecord struct {
	Index      int
	Path       PathRecord
	Attributes map[Attribute]Value
}

// Get returns the value of an attribute, or Unknown if absent
func (r FileRecord) Get(attr Attribute) Value {
	if r.Attributes == nil {
		return Unknown()
	}
	return r.Attributes[attr]
}

// With returns a copy of the record with one attribute replaced
func (r FileRecord) With(attr Attribute, v Value) FileRecord {
	attrs := make(map[Attribute]Value, len(r.Attributes)+1)
	for k, val := range r.Attributes {
		attrs[k] = val
	}
	attrs[attr] = v
	r.Attributes = attrs
	return r
}

// WithIndex returns a copy of the record with a new row index
func (r FileRecord) WithIndex(i int) FileRecord {
	r.Index = i
	return r
}
