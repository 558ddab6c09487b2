package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ooiea/DataExtraction/internal/cache"
	"github.com/ooiea/DataExtraction/internal/model"
)

// Walker discovers candidate recordings under a root directory
type Walker struct {
	logger         *zap.Logger
	stats          *cache.StatCache
	followSymlinks bool
}

// NewWalker creates a walker; stats may be nil to always stat the share
func NewWalker(logger *zap.Logger, stats *cache.StatCache, followSymlinks bool) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{
		logger:         logger,
		stats:          stats,
		followSymlinks: followSymlinks,
	}
}

// Walk returns every file under root whose extension is listed, sorted by
// location. Extensions compare case-insensitively, with or without the
// leading dot; an empty list keeps every file. A root that is a file yields
// itself. Unreadable subtrees are logged and skipped.
func (w *Walker) Walk(ctx context.Context, root string, extensions []string) ([]model.PathRecord, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return []model.PathRecord{model.NewPathRecord(root, info.Size())}, nil
	}

	// WalkDir does not descend into a symlinked root
	if linfo, err := os.Lstat(root); err == nil && linfo.Mode()&fs.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			root = resolved
		}
	}

	keep := extensionFilter(extensions)
	var records []model.PathRecord
	skipped := 0

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if path == root {
				return walkErr
			}
			skipped++
			w.logger.Warn("skipping unreadable entry", zap.String("path", path), zap.Error(walkErr))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if d.Type()&fs.ModeSymlink != 0 && !w.followSymlinks {
			return nil
		}

		if !keep(path) {
			return nil
		}

		size, err := w.size(path, d)
		if err != nil {
			skipped++
			w.logger.Warn("skipping file without size", zap.String("path", path), zap.Error(err))
			return nil
		}
		if size < 0 {
			// Symlink to a directory
			return nil
		}

		records = append(records, model.NewPathRecord(path, size))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Location < records[j].Location })

	w.logger.Debug("walk complete",
		zap.String("root", root),
		zap.Int("files", len(records)),
		zap.Int("skipped", skipped))

	return records, nil
}

// size returns the byte size of a walked file, or -1 for a symlinked directory
func (w *Walker) size(path string, d fs.DirEntry) (int64, error) {
	stat := func(p string) (cache.FileInfo, error) {
		var info fs.FileInfo
		var err error
		if d.Type()&fs.ModeSymlink != 0 {
			info, err = os.Stat(p)
		} else {
			info, err = d.Info()
		}
		if err != nil {
			return cache.FileInfo{}, err
		}
		if info.IsDir() {
			return cache.FileInfo{Size: -1}, nil
		}
		return cache.FileInfo{Size: info.Size(), ModTime: info.ModTime()}, nil
	}

	if w.stats == nil {
		info, err := stat(path)
		return info.Size, err
	}

	info, _, err := w.stats.Stat(path, stat)
	return info.Size, err
}

func extensionFilter(extensions []string) func(string) bool {
	if len(extensions) == 0 {
		return func(string) bool { return true }
	}

	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[NormalizeExtension(ext)] = true
	}

	return func(path string) bool {
		return wanted[strings.ToLower(filepath.Ext(path))]
	}
}

// NormalizeExtension lowercases ext and adds the leading dot
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// ExtensionCount is one distinct extension found on a share
type ExtensionCount struct {
	Extension string
	Count     int
	Bytes     int64
}

// Extensions counts the distinct extensions of records (lowercased),
// most frequent first, ties by name
func Extensions(records []model.PathRecord) []ExtensionCount {
	byExt := make(map[string]*ExtensionCount)
	for _, r := range records {
		ext := strings.ToLower(r.Format)
		c, ok := byExt[ext]
		if !ok {
			c = &ExtensionCount{Extension: ext}
			byExt[ext] = c
		}
		c.Count++
		c.Bytes += r.Size
	}

	out := make([]ExtensionCount, 0, len(byExt))
	for _, c := range byExt {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Extension < out[j].Extension
	})
	return out
}
