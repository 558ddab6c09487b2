package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/ooiea/DataExtraction/internal/model"
)

// CopyJob copies one recording into the destination folder
type CopyJob struct {
	Record    model.FileRecord
	Target    string
	Overwrite bool
	Limiter   *Limiter
}

// Execute executes the copy job
func (j *CopyJob) Execute(ctx context.Context) Result {
	result := &CopyResult{Record: j.Record, Target: j.Target}

	if err := ctx.Err(); err != nil {
		result.Error = err
		return result
	}

	if !j.Overwrite {
		if _, err := os.Stat(j.Target); err == nil {
			result.Skipped = true
			return result
		}
	}

	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Target); err != nil {
			result.Error = fmt.Errorf("wait for %s: %w", Volume(j.Target), err)
			return result
		}
	}

	n, err := copyFile(j.Record.Path.Location, j.Target)
	result.Bytes = n
	result.Error = err
	return result
}

// CopyResult represents the result of a copy job
type CopyResult struct {
	Record  model.FileRecord
	Target  string
	Bytes   int64
	Skipped bool
	Error   error
}

// GetError returns the error from the copy result
func (r *CopyResult) GetError() error {
	return r.Error
}

// Copier copies record subsets with a bounded number of workers
type Copier struct {
	workers   int
	limiter   *Limiter
	overwrite bool
	logger    *zap.Logger
}

// NewCopier creates a copier; workers <= 0 copies sequentially
func NewCopier(workers int, limiter *Limiter, overwrite bool, logger *zap.Logger) *Copier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Copier{
		workers:   workers,
		limiter:   limiter,
		overwrite: overwrite,
		logger:    logger,
	}
}

// CopyAll copies records into destination and returns one result per record,
// in record order. The returned error covers setup failures only; per-file
// failures are reported in the results.
func (c *Copier) CopyAll(ctx context.Context, records []model.FileRecord, destination string) ([]*CopyResult, error) {
	if len(records) == 0 {
		return []*CopyResult{}, nil
	}

	if err := os.MkdirAll(destination, 0755); err != nil {
		return nil, fmt.Errorf("create destination: %w", err)
	}

	targets := TargetNames(records)

	pool := NewPool(ctx, c.workers)
	pool.Start()

	for i, rec := range records {
		if !pool.Submit(&CopyJob{
			Record:    rec,
			Target:    filepath.Join(destination, targets[i]),
			Overwrite: c.overwrite,
			Limiter:   c.limiter,
		}) {
			break
		}
	}

	results := pool.Wait()

	copyResults := make([]*CopyResult, len(results))
	for i, result := range results {
		r := result.(*CopyResult)
		copyResults[i] = r

		switch {
		case r.Error != nil:
			c.logger.Warn("copy failed",
				zap.String("source", r.Record.Path.Location),
				zap.Error(r.Error))
		case r.Skipped:
			c.logger.Debug("target exists, skipped", zap.String("target", r.Target))
		default:
			c.logger.Debug("copied",
				zap.String("source", r.Record.Path.Location),
				zap.String("target", r.Target),
				zap.Int64("bytes", r.Bytes))
		}
	}

	if err := ctx.Err(); err != nil && len(copyResults) < len(records) {
		return copyResults, fmt.Errorf("copy interrupted: %w", err)
	}

	return copyResults, nil
}

// TargetNames returns the destination file name for each record. Files are
// copied by base name; a name already taken in the batch is prefixed with
// the record index, repeatedly, until it is unique.
func TargetNames(records []model.FileRecord) []string {
	names := make([]string, len(records))
	seen := make(map[string]bool, len(records))

	for i, rec := range records {
		name := filepath.Base(rec.Path.Location)
		prefix := strconv.Itoa(rec.Index) + "_"
		for seen[name] {
			name = prefix + name
		}
		seen[name] = true
		names[i] = name
	}

	return names
}

// copyFile writes src to a temporary file next to dst and renames it into
// place, so an interrupted copy never leaves a truncated recording behind.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = in.Close() }()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".part-*")
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	n, copyErr := io.Copy(tmp, in)
	closeErr := tmp.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(tmpName)
		return n, fmt.Errorf("copy %s: %w", filepath.Base(src), err)
	}

	if err := os.Rename(tmpName, dst); err != nil {
		_ = os.Remove(tmpName)
		return n, fmt.Errorf("rename into place: %w", err)
	}

	if info, err := os.Stat(src); err == nil {
		_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	} else if !errors.Is(err, fs.ErrNotExist) {
		return n, fmt.Errorf("stat source: %w", err)
	}

	return n, nil
}
