package pipeline

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ooiea/DataExtraction/internal/model"
	"github.com/ooiea/DataExtraction/internal/score"
)

func testShare(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "share")
	writeFile(t, root, "BioMEMS/Bicuculline_10microM/Neuro_rat_14DIV/rec1.dat", 64)
	writeFile(t, root, "BioMEMS/Bicuculline_5microM/Neuro_rat_14DIV/rec2.dat", 64)
	writeFile(t, root, "Tokyo/Cardio_iPSC/2021-03-04/rec3.brw", 32)
	writeFile(t, root, "Papierkorb/old.dat", 64)
	writeFile(t, root, "BioMEMS/empty.dat", 0)
	writeFile(t, root, "BioMEMS/notes.txt", 10)
	return root
}

func testConfig(t *testing.T) *model.Config {
	cfg := model.DefaultConfig()
	cfg.Output.CSVPath = filepath.Join(t.TempDir(), "list_of_files.csv")
	return cfg
}

func TestPipeline_Run(t *testing.T) {
	root := testShare(t)
	cfg := testConfig(t)

	p := NewPipeline(cfg, nil)
	result, err := p.Run(context.Background(), root)
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 5, result.Walked, ".txt is filtered by extension")
	assert.Equal(t, 3, result.Clean.Kept)
	assert.Equal(t, 1, result.Clean.Dropped["denylisted"])
	assert.Equal(t, 1, result.Clean.Dropped["empty_file"])
	assert.Nil(t, result.Copy)

	for i, rec := range result.Records {
		assert.Equal(t, i, rec.Index)
	}

	first := result.Records[0]
	assert.Equal(t, model.Label("Bicuculline"), first.Get(model.AttrDrugApplication))
	assert.Equal(t, model.Label("10 microM"), first.Get(model.AttrDrugDose))
	assert.Equal(t, model.Label("Neuro"), first.Get(model.AttrCultureType))
	assert.Equal(t, model.Label("BioMEMS"), first.Get(model.AttrLab))
	assert.Equal(t, model.Int(14), first.Get(model.AttrDIV))

	third := result.Records[2]
	assert.Equal(t, model.Label("HDMEA"), third.Get(model.AttrRecordingSystem))
	assert.Equal(t, model.Label("2021-03-04"), third.Get(model.AttrDate))

	data, err := os.ReadFile(cfg.Output.CSVPath)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, Header(p.Columns()), rows[0])
}

func TestPipeline_CopySubset(t *testing.T) {
	root := testShare(t)
	cfg := testConfig(t)
	cfg.Copy.Destination = filepath.Join(t.TempDir(), "copy_test")
	cfg.Copy.Where = []string{
		"Drug application=Bicuculline",
		"Recording system=MEA",
		"Format=.dat",
		"Drug dose=10 microM",
	}

	result, err := NewPipeline(cfg, nil).Run(context.Background(), root)
	require.NoError(t, err)
	require.NotNil(t, result.Copy)

	assert.Equal(t, 1, result.Copy.Selected)
	assert.Equal(t, 1, result.Copy.Copied)
	assert.Equal(t, int64(64), result.Copy.Bytes)

	_, err = os.Stat(filepath.Join(cfg.Copy.Destination, "rec1.dat"))
	assert.NoError(t, err)

	info, err := os.ReadFile(filepath.Join(cfg.Copy.Destination, InfoFileName))
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(info)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, strings.HasSuffix(rows[1][1], "rec1.dat"))
	assert.Equal(t, "0", rows[1][0], "info.csv keeps the report index")
}

func TestPipeline_CopyNothingSelected(t *testing.T) {
	root := testShare(t)
	cfg := testConfig(t)
	cfg.Copy.Destination = filepath.Join(t.TempDir(), "never")
	cfg.Copy.Where = []string{"Drug application=LSD"}

	result, err := NewPipeline(cfg, nil).Run(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Copy.Selected)

	_, err = os.Stat(cfg.Copy.Destination)
	assert.True(t, os.IsNotExist(err))
}

func TestPipeline_InvalidCondition(t *testing.T) {
	cfg := testConfig(t)
	cfg.Copy.Destination = t.TempDir()
	cfg.Copy.Where = []string{"no equals sign"}

	_, err := NewPipeline(cfg, nil).Run(context.Background(), testShare(t))
	assert.Error(t, err)
}

func TestPipeline_BuildWritesNothing(t *testing.T) {
	cfg := testConfig(t)

	result, err := NewPipeline(cfg, nil).Build(context.Background(), testShare(t))
	require.NoError(t, err)
	assert.Len(t, result.Records, 3)

	_, err = os.Stat(cfg.Output.CSVPath)
	assert.True(t, os.IsNotExist(err))
}

func TestRenderSummary(t *testing.T) {
	result, err := NewPipeline(testConfig(t), nil).Build(context.Background(), testShare(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	RenderSummary(&buf, result, false)
	out := buf.String()

	assert.Contains(t, out, result.RunID)
	assert.Contains(t, out, "Kept:      3")
	assert.Contains(t, out, "Drug application")
	assert.NotContains(t, out, "\x1b[", "no escape codes without color")
}

func TestRenderSummary_HighDropRate(t *testing.T) {
	root := filepath.Join(t.TempDir(), "share")
	writeFile(t, root, "BioMEMS/Neuro_rat_14DIV/rec.dat", 64)
	for i := 0; i < 10; i++ {
		writeFile(t, root, filepath.Join("Papierkorb", "old"+strconv.Itoa(i)+".dat"), 64)
	}

	result, err := NewPipeline(testConfig(t), nil).Build(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, score.SeverityWarning, result.DropSignal.Severity)

	var buf bytes.Buffer
	RenderSummary(&buf, result, false)
	assert.Contains(t, buf.String(), "[warning] Cleaning dropped 10 of 11 files (91%)")
}

func TestRenderSummary_LowDropRateStaysQuiet(t *testing.T) {
	result, err := NewPipeline(testConfig(t), nil).Build(context.Background(), testShare(t))
	require.NoError(t, err)
	assert.Equal(t, score.SeverityInfo, result.DropSignal.Severity)

	var buf bytes.Buffer
	RenderSummary(&buf, result, false)
	assert.NotContains(t, buf.String(), "Cleaning dropped")
}
