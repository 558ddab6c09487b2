// Package pipeline runs a catalog scan end to end: walk the share, infer
// attributes from every path, clean, score, write the CSV report and
// optionally copy a selected subset.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ooiea/DataExtraction/internal/cache"
	"github.com/ooiea/DataExtraction/internal/clean"
	"github.com/ooiea/DataExtraction/internal/extract"
	"github.com/ooiea/DataExtraction/internal/model"
	"github.com/ooiea/DataExtraction/internal/score"
	"github.com/ooiea/DataExtraction/internal/worker"
)

// InfoFileName is the report written next to a copied subset
const InfoFileName = "info.csv"

// Pipeline orchestrates the complete scan process
type Pipeline struct {
	walker   *Walker
	catalog  *extract.Catalog
	cleaner  *clean.Cleaner
	scorer   *score.Scorer
	renderer *Renderer
	copier   *worker.Copier
	config   *model.Config
	logger   *zap.Logger
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	var stats *cache.StatCache
	if cfg.Cache.Enabled {
		layered := cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		stats = cache.NewStatCache(layered, cfg.Cache.DiskTTL)
	}

	catalog := extract.NewCatalog()
	limiter := worker.NewLimiter(cfg.Copy.FilesPerSecond, cfg.Copy.Burst)

	return &Pipeline{
		walker:   NewWalker(logger.Named("walk"), stats, cfg.Scan.FollowSymlinks),
		catalog:  catalog,
		cleaner:  clean.NewCleaner(nil),
		scorer:   score.NewScorer(cfg.Output.CoverageThreshold),
		renderer: NewRenderer(catalog.Columns()),
		copier:   worker.NewCopier(cfg.Copy.Workers, limiter, cfg.Copy.Overwrite, logger.Named("copy")),
		config:   cfg,
		logger:   logger,
	}
}

// Result contains the outcome of one catalog run
type Result struct {
	RunID       string
	Root        string
	Walked      int
	WalkedBytes int64
	Records     []model.FileRecord
	Clean       clean.Stats
	Coverage    score.Report
	DropSignal  score.Signal
	ReportPath  string
	Copy        *CopySummary
	Duration    time.Duration
}

// CopySummary describes the copied subset
type CopySummary struct {
	Destination string
	InfoPath    string
	Selected    int
	Copied      int
	Skipped     int
	Failed      int
	Bytes       int64
	Results     []*worker.CopyResult
}

// Columns returns the attribute columns of the report
func (p *Pipeline) Columns() []model.Attribute {
	return p.catalog.Columns()
}

// Walk lists the candidate files under root
func (p *Pipeline) Walk(ctx context.Context, root string) ([]model.PathRecord, error) {
	return p.walker.Walk(ctx, root, p.config.Scan.Extensions)
}

// Build walks root, extracts every attribute and cleans the result
// without writing anything
func (p *Pipeline) Build(ctx context.Context, root string) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: uuid.NewString(), Root: root}
	log := p.logger.With(zap.String("run_id", result.RunID))

	paths, err := p.Walk(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}
	result.Walked = len(paths)
	for _, path := range paths {
		result.WalkedBytes += path.Size
	}
	log.Info("walked share", zap.String("root", root), zap.Int("files", len(paths)))

	records := p.catalog.ExtractAll(paths)
	kept, stats := p.cleaner.Clean(records)
	result.Records = kept
	result.Clean = stats
	log.Info("cleaned catalog",
		zap.Int("kept", stats.Kept),
		zap.Int("denylisted", stats.Dropped[clean.ReasonDenylisted]),
		zap.Int("empty", stats.Dropped[clean.ReasonEmpty]),
		zap.Int("unknown_recording_system", stats.Dropped[clean.ReasonNoHardware]))

	result.Coverage = p.scorer.Calculate(p.catalog.Columns(), kept)
	result.DropSignal = p.scorer.DropSignal(stats.Input, stats.Kept)
	if result.DropSignal.Severity != score.SeverityInfo {
		log.Warn("most files dropped by cleaning", zap.String("description", result.DropSignal.Description))
	}
	for _, s := range result.Coverage.Warnings() {
		log.Debug("coverage signal", zap.String("attribute", string(s.Attribute)), zap.String("description", s.Description))
	}

	result.Duration = time.Since(start)
	return result, nil
}

// Run builds the catalog, writes the CSV report and copies the selected
// subset when a destination is configured
func (p *Pipeline) Run(ctx context.Context, root string) (*Result, error) {
	result, err := p.Build(ctx, root)
	if err != nil {
		return nil, err
	}
	start := time.Now().Add(-result.Duration)
	log := p.logger.With(zap.String("run_id", result.RunID))

	if path := p.config.Output.CSVPath; path != "" {
		if err := p.renderer.RenderCSV(result.Records, path); err != nil {
			return nil, fmt.Errorf("render report: %w", err)
		}
		result.ReportPath = path
		log.Info("wrote report", zap.String("path", path), zap.Int("rows", len(result.Records)))
	}

	if p.config.Copy.Destination != "" {
		summary, err := p.CopySubset(ctx, result.Records)
		if err != nil {
			return nil, fmt.Errorf("copy subset: %w", err)
		}
		result.Copy = summary
	}

	result.Duration = time.Since(start)
	return result, nil
}

// CopySubset copies the records matching the copy conditions into the
// destination and writes info.csv describing them
func (p *Pipeline) CopySubset(ctx context.Context, records []model.FileRecord) (*CopySummary, error) {
	cfg := p.config.Copy

	selection, err := clean.NewSelection(cfg.Where, cfg.MinSizeGB, cfg.MaxSizeGB)
	if err != nil {
		return nil, err
	}

	subset := selection.Select(records)
	summary := &CopySummary{Destination: cfg.Destination, Selected: len(subset)}
	p.logger.Info("selected subset", zap.Strings("where", cfg.Where), zap.Int("records", len(subset)))

	if len(subset) == 0 {
		return summary, nil
	}

	results, err := p.copier.CopyAll(ctx, subset, cfg.Destination)
	if err != nil {
		return nil, err
	}
	summary.Results = results

	for _, r := range results {
		switch {
		case r.Error != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
		default:
			summary.Copied++
			summary.Bytes += r.Bytes
		}
	}

	summary.InfoPath = filepath.Join(cfg.Destination, InfoFileName)
	if err := p.renderer.RenderCSV(subset, summary.InfoPath); err != nil {
		return nil, fmt.Errorf("write %s: %w", InfoFileName, err)
	}

	return summary, nil
}

// Explain returns the per-attribute diagnostics for one path
func (p *Pipeline) Explain(path string, size int64) []extract.Explanation {
	return p.catalog.Explain(model.NewPathRecord(path, size))
}
