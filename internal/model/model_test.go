package model

import "testing"

func TestValue_String(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
	}{
		{Unknown(), ""},
		{Label(""), ""},
		{Label("Neuro"), "Neuro"},
		{Float(2.5), "2.5"},
		{Float(3), "3"},
		{Int(14), "14"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}

func TestValue_UnknownIsDistinct(t *testing.T) {
	var zero Value
	if !zero.IsUnknown() {
		t.Error("Expected zero value to be Unknown")
	}
	if !Label("").IsUnknown() {
		t.Error("Expected empty label to be Unknown")
	}
	if Label("x").Equal(Unknown()) {
		t.Error("Expected a label to differ from Unknown")
	}
	if Int(2).Equal(Float(2)) {
		t.Error("Expected kinds to be compared")
	}
	if !Int(2).Equal(Int(2)) {
		t.Error("Expected equal ints to compare equal")
	}
}

func TestPathRecord(t *testing.T) {
	p := NewPathRecord("C:/data/exp/file.DAT", 3*1024*1024*1024/2)
	if p.Format != ".DAT" {
		t.Errorf("Expected format .DAT, got %s", p.Format)
	}
	if p.SizeGB() != 1.5 {
		t.Errorf("Expected 1.5 GB, got %v", p.SizeGB())
	}
	if f := NewPathRecord("/share/README", 1).Format; f != "" {
		t.Errorf("Expected empty format, got %q", f)
	}
}

func TestFileRecord_WithDoesNotMutate(t *testing.T) {
	orig := FileRecord{Attributes: map[Attribute]Value{AttrDIV: Int(7)}}
	next := orig.With(AttrLab, Label("BioMEMS"))

	if !orig.Get(AttrLab).IsUnknown() {
		t.Error("Expected original record to stay unchanged")
	}
	if next.Get(AttrLab).String() != "BioMEMS" || next.Get(AttrDIV).Int64() != 7 {
		t.Errorf("Unexpected copy: %+v", next.Attributes)
	}
	if !(FileRecord{}).Get(AttrDIV).IsUnknown() {
		t.Error("Expected nil attributes to read as Unknown")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Copy.Workers != 1 {
		t.Errorf("Expected sequential copies by default, got %d workers", cfg.Copy.Workers)
	}
	if cfg.Cache.Enabled {
		t.Error("Expected stat cache to be off by default")
	}
	if cfg.Output.CSVPath != "list_of_files.csv" {
		t.Errorf("Unexpected CSV path %s", cfg.Output.CSVPath)
	}
}
