package extract

import (
	"testing"

	"github.com/ooiea/DataExtraction/internal/model"
)

func TestCatalog_EndToEnd(t *testing.T) {
	catalog := NewCatalog()
	path := model.NewPathRecord("C:/data/BioMEMS/Bicuculline_10microM/Neuro_rat_14DIV/file.dat", 1024)

	rec := catalog.Extract(path)

	expected := map[model.Attribute]model.Value{
		model.AttrDrugApplication: model.Label("Bicuculline"),
		model.AttrDrugDose:        model.Label("10 microM"),
		model.AttrCultureType:     model.Label("Neuro"),
		model.AttrCellKind:        model.Label("rat"),
		model.AttrDIV:             model.Int(14),
		model.AttrLab:             model.Label("BioMEMS"),
		model.AttrRecordingSystem: model.Label("MEA"),
		model.AttrPerformer:       model.Unknown(),
		model.AttrRadiation:       model.Unknown(),
		model.AttrSamplingRate:    model.Unknown(),
	}

	for attr, want := range expected {
		if got := rec.Get(attr); !got.Equal(want) {
			t.Errorf("%s: expected %q, got %q", attr, want, got)
		}
	}

	if rec.Path.Format != ".dat" {
		t.Errorf("Expected format .dat, got %q", rec.Path.Format)
	}
}

func TestCatalog_EveryColumnPresent(t *testing.T) {
	catalog := NewCatalog()
	rec := catalog.Extract(model.NewPathRecord("nothing/to/see.txt", 1))

	for _, col := range catalog.Columns() {
		if _, ok := rec.Attributes[col]; !ok {
			t.Errorf("Expected column %s in record", col)
		}
		if !rec.Get(col).IsUnknown() {
			t.Errorf("Expected %s to be Unknown, got %q", col, rec.Get(col))
		}
	}
}

func TestCatalog_PerformerImpliesLab(t *testing.T) {
	catalog := NewCatalog()

	rec := catalog.Extract(model.NewPathRecord("D:/share/Daus/recording_12DIV.brw", 10))
	if got := rec.Get(model.AttrPerformer); got.Label != "Andreas Daus" {
		t.Fatalf("Expected performer Andreas Daus, got %q", got)
	}
	if got := rec.Get(model.AttrLab); got.Label != "BioMEMS" {
		t.Errorf("Expected lab inferred from performer, got %q", got)
	}

	rec = catalog.Extract(model.NewPathRecord("D:/GSI/Daus/recording.brw", 10))
	if got := rec.Get(model.AttrLab); got.Label != "GSI" {
		t.Errorf("Expected explicit lab to win over performer default, got %q", got)
	}
}

func TestCatalog_DIVIsWholeNumber(t *testing.T) {
	catalog := NewCatalog()

	tests := []struct {
		path     string
		expected model.Value
	}{
		{"exp_14,5DIV/x.dat", model.Unknown()},
		{"rec_1.14DIV/x.dat", model.Int(14)},
		{"2021.14DIV/x.dat", model.Int(14)},
	}

	for _, tt := range tests {
		rec := catalog.Extract(model.NewPathRecord(tt.path, 1))
		if got := rec.Get(model.AttrDIV); !got.Equal(tt.expected) {
			t.Errorf("Expected DIV %q for %s, got %q", tt.expected, tt.path, got)
		}
	}
}

func TestCatalog_DecomposedUmlauts(t *testing.T) {
	catalog := NewCatalog()

	// "Ko" + combining diaeresis, as written by macOS clients
	rec := catalog.Extract(model.NewPathRecord("D:/share/Ko\u0308hler/rec.brw", 10))
	if got := rec.Get(model.AttrPerformer); got.Label != "Tim Köhler" {
		t.Errorf("Expected Tim Köhler, got %q", got)
	}
	if rec.Path.Location != "D:/share/Ko\u0308hler/rec.brw" {
		t.Error("Expected location to be kept as found")
	}
}

func TestCatalog_ExtractAllIndexes(t *testing.T) {
	catalog := NewCatalog()
	paths := []model.PathRecord{
		model.NewPathRecord("a/1.dat", 1),
		model.NewPathRecord("b/2.brw", 2),
		model.NewPathRecord("c/3.dat", 3),
	}

	records := catalog.ExtractAll(paths)
	if len(records) != len(paths) {
		t.Fatalf("Expected %d records, got %d", len(paths), len(records))
	}
	for i, rec := range records {
		if rec.Index != i {
			t.Errorf("Expected index %d, got %d", i, rec.Index)
		}
		if rec.Path != paths[i] {
			t.Errorf("Expected path %v at %d, got %v", paths[i], i, rec.Path)
		}
	}
}

func TestCatalog_Explain(t *testing.T) {
	catalog := NewCatalog()

	explanations := catalog.Explain(model.NewPathRecord("exp/Bic_LSD/rec.dat", 1))
	if len(explanations) != len(catalog.Columns()) {
		t.Fatalf("Expected one explanation per column, got %d", len(explanations))
	}

	for _, exp := range explanations {
		if exp.Attribute != model.AttrDrugApplication {
			continue
		}
		if exp.Value.Label != "Bicuculline" {
			t.Errorf("Expected Bicuculline to win, got %q", exp.Value)
		}
		if len(exp.Candidates) != 2 || exp.Candidates[1] != "LSD" {
			t.Errorf("Expected both drugs as candidates, got %v", exp.Candidates)
		}
		return
	}
	t.Error("Drug application missing from explanation")
}
