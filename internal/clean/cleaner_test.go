package clean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ooiea/DataExtraction/internal/extract"
	"github.com/ooiea/DataExtraction/internal/model"
)

func records(t *testing.T, paths map[string]int64, order []string) []model.FileRecord {
	t.Helper()
	catalog := extract.NewCatalog()
	var in []model.PathRecord
	for _, p := range order {
		in = append(in, model.NewPathRecord(p, paths[p]))
	}
	return catalog.ExtractAll(in)
}

func TestCleaner_Clean(t *testing.T) {
	order := []string{
		"share/exp1/rec.dat",
		"share/$RECYCLE.BIN/rec.dat",
		"share/exp2/empty.brw",
		"share/exp3/notes.txt",
		"share/Fehler/rec.brw",
		"share/exp4/rec.brw",
	}
	sizes := map[string]int64{
		"share/exp1/rec.dat":         100,
		"share/$RECYCLE.BIN/rec.dat": 100,
		"share/exp2/empty.brw":       0,
		"share/exp3/notes.txt":       100,
		"share/Fehler/rec.brw":       100,
		"share/exp4/rec.brw":         100,
	}

	kept, stats := NewCleaner(nil).Clean(records(t, sizes, order))

	require.Len(t, kept, 2)
	assert.Equal(t, "share/exp1/rec.dat", kept[0].Path.Location)
	assert.Equal(t, "share/exp4/rec.brw", kept[1].Path.Location)
	assert.Equal(t, 0, kept[0].Index)
	assert.Equal(t, 1, kept[1].Index)

	assert.Equal(t, 6, stats.Input)
	assert.Equal(t, 2, stats.Kept)
	assert.Equal(t, 2, stats.Dropped[ReasonDenylisted])
	assert.Equal(t, 1, stats.Dropped[ReasonEmpty])
	assert.Equal(t, 1, stats.Dropped[ReasonNoHardware])
}

func TestCleaner_SurvivorsSatisfyEveryRule(t *testing.T) {
	var order []string
	sizes := map[string]int64{}
	for i, p := range []string{
		"a/Trash/x.dat", "a/b/x.dat", "a/b/y.brw", "a/b/z.csv", "a/error_run/x.brw",
		"a/b/~$lock.dat", "a/b/w.dat", "a/Papierkorb/v.brw",
	} {
		order = append(order, p)
		sizes[p] = int64(i % 3)
	}

	kept, _ := NewCleaner(nil).Clean(records(t, sizes, order))

	for i, rec := range kept {
		assert.Equal(t, i, rec.Index)
		assert.NotZero(t, rec.Path.Size, rec.Path.Location)
		assert.False(t, rec.Get(model.AttrRecordingSystem).IsUnknown(), rec.Path.Location)
		for _, s := range extract.DefaultDenylist {
			assert.False(t, strings.Contains(rec.Path.Location, s), "%s contains %s", rec.Path.Location, s)
		}
	}
}

func TestCleaner_CustomDenylist(t *testing.T) {
	order := []string{"lab/old/rec.dat", "lab/new/rec.dat"}
	sizes := map[string]int64{"lab/old/rec.dat": 1, "lab/new/rec.dat": 1}

	kept, stats := NewCleaner([]string{"old"}).Clean(records(t, sizes, order))

	require.Len(t, kept, 1)
	assert.Equal(t, "lab/new/rec.dat", kept[0].Path.Location)
	assert.Equal(t, 1, stats.Dropped[ReasonDenylisted])
}

func TestCleaner_Empty(t *testing.T) {
	kept, stats := NewCleaner(nil).Clean(nil)
	assert.Empty(t, kept)
	assert.Equal(t, 0, stats.Input)
}
