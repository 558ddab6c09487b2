package pipeline

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"

	"github.com/ooiea/DataExtraction/internal/model"
)

// Fixed leading columns of every report
var baseColumns = []string{"Index", "Location", "Format", "Size"}

// Header returns the report header for the given attribute columns
func Header(columns []model.Attribute) []string {
	header := make([]string, 0, len(baseColumns)+len(columns))
	header = append(header, baseColumns...)
	for _, c := range columns {
		header = append(header, string(c))
	}
	return header
}

// Row renders one record; Unknown values are empty cells
func Row(columns []model.Attribute, rec model.FileRecord) []string {
	row := make([]string, 0, len(baseColumns)+len(columns))
	row = append(row,
		strconv.Itoa(rec.Index),
		rec.Path.Location,
		rec.Path.Format,
		strconv.FormatFloat(rec.Path.SizeGB(), 'f', -1, 64),
	)
	for _, c := range columns {
		row = append(row, rec.Get(c).String())
	}
	return row
}

// Renderer writes catalog reports
type Renderer struct {
	columns []model.Attribute
}

// NewRenderer creates a renderer for the given attribute columns
func NewRenderer(columns []model.Attribute) *Renderer {
	return &Renderer{columns: columns}
}

// WriteCSV writes the header and one row per record
func (r *Renderer) WriteCSV(w io.Writer, records []model.FileRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header(r.columns)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		if err := cw.Write(Row(r.columns, rec)); err != nil {
			return fmt.Errorf("write row %d: %w", rec.Index, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// RenderCSV writes the report to path. Concurrent writers are serialized
// through a lock file next to the report and readers never see a partial file.
func (r *Renderer) RenderCSV(records []model.FileRecord, path string) error {
	var buf bytes.Buffer
	if err := r.WriteCSV(&buf, records); err != nil {
		return err
	}
	return lockAndWrite(path, buf.Bytes())
}

func lockAndWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer func() { _ = lock.Unlock() }()

	return atomicWrite(path, data)
}

func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(fmt.Errorf("write temp file: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(fmt.Errorf("sync temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
