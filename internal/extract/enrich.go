package extract

import "github.com/ooiea/DataExtraction/internal/model"

// PerformerLabEnricher fills an unknown lab from the performer's home lab.
// A lab named in the path always takes precedence.
func PerformerLabEnricher(homeLabs map[string]string) Enricher {
	return func(rec model.FileRecord) model.FileRecord {
		if !rec.Get(model.AttrLab).IsUnknown() {
			return rec
		}
		performer := rec.Get(model.AttrPerformer)
		if performer.IsUnknown() {
			return rec
		}
		lab, ok := homeLabs[performer.Label]
		if !ok {
			return rec
		}
		return rec.With(model.AttrLab, model.Label(lab))
	}
}
