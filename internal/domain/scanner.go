package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/VoidbreakDev/AFL-Coach-Sim/internal/adapter"
	"github.com/VoidbreakDev/AFL-Coach-Sim/internal/controller"
	m "github.com/VoidbreakDev/AFL-Coach-Sim/internal/model"
)

// excludedPathParts name directories the engine generates; anything
// whose path contains one of them is build output, not project source.
var excludedPathParts = []string{"Library", "Temp"}

// ScanArgs holds the inputs for one scan run.
type ScanArgs struct {
	Root         m.Path
	Out          m.Path
	Format       string
	Exclude      []string
	Threads      int
	MaxFileBytes int64
}

// ListArgs holds the inputs for a list run.
type ListArgs struct {
	Root         m.Path
	Exclude      []string
	Threads      int
	MaxFileBytes int64
}

// ReportStoreFactory resolves a report format to the store that writes it.
type ReportStoreFactory func(format string) (adapter.ReportStore, error)

// Scanner coordinates file discovery, the per-file locate/evaluate core
// and report emission.
type Scanner interface {
	Scan(ctx context.Context, args ScanArgs) error
	List(ctx context.Context, args ListArgs) error
}

type scanner struct {
	adapter.SourceFSAdapter
	controller.UI
	locator  MethodBodyLocator
	engine   RuleEngine
	newStore ReportStoreFactory
}

// NewScanner creates a Scanner with the provided dependencies.
func NewScanner(
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	locator MethodBodyLocator,
	engine RuleEngine,
	newStore ReportStoreFactory,
) Scanner {
	return &scanner{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
		locator:         locator,
		engine:          engine,
		newStore:        newStore,
	}
}

// Scan discovers source files under args.Root, evaluates them and
// writes the finding sequence to args.Out. Files are processed in
// parallel; findings are reassembled into discovery order so identical
// trees always produce identical reports.
func (s *scanner) Scan(ctx context.Context, args ScanArgs) error {
	store, err := s.newStore(args.Format)
	if err != nil {
		return err
	}

	files, err := s.discover(args.Root, args.Exclude, args.MaxFileBytes)
	if err != nil {
		slog.Error("Failed to discover source files", "root", args.Root, "error", err)
		return fmt.Errorf("discover sources: %w", err)
	}

	s.DisplayScanInfo(ctx, len(files), normalizeThreads(args.Threads))

	findings, err := s.evaluateAll(ctx, files, args.Threads)
	if err != nil {
		return fmt.Errorf("evaluate sources: %w", err)
	}

	if err := store.SaveFindings(args.Out, findings); err != nil {
		slog.Error("Failed to save report", "path", args.Out, "error", err)
		return fmt.Errorf("save report: %w", err)
	}

	slog.Info("Scan finished", "root", args.Root, "files", len(files), "findings", len(findings), "report", args.Out)

	return s.DisplayScanSummary(ctx, findings, args.Out)
}

// List evaluates the tree like Scan but renders per-file finding counts
// instead of writing a report.
func (s *scanner) List(ctx context.Context, args ListArgs) error {
	files, err := s.discover(args.Root, args.Exclude, args.MaxFileBytes)
	if err != nil {
		slog.Error("Failed to discover source files", "root", args.Root, "error", err)
		return fmt.Errorf("discover sources: %w", err)
	}

	findings, err := s.evaluateAll(ctx, files, args.Threads)
	if err != nil {
		return fmt.Errorf("evaluate sources: %w", err)
	}

	return s.DisplayFileCounts(ctx, controller.CountBySeverity(findings))
}

// sourceFile pairs a file's on-disk location with the root-relative
// identifier used in findings.
type sourceFile struct {
	abs m.Path
	rel m.Path
}

// discover walks the root and returns all eligible source files in walk
// order: .cs extension, not under an engine-generated directory, not
// matched by a user exclude and not above the size cap. Unreadable
// directory entries are logged and skipped, never fatal.
func (s *scanner) discover(root m.Path, exclude []string, maxFileBytes int64) ([]sourceFile, error) {
	if _, err := s.FileInfo(root); err != nil {
		return nil, fmt.Errorf("root path error: %w", err)
	}

	excludeREs, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	var files []sourceFile

	err = s.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			slog.Warn("Skipping unreadable path", "path", path, "error", err)
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() || filepath.Ext(path) != ".cs" {
			return nil
		}

		if isExcluded(path, excludeREs) {
			return nil
		}

		if maxFileBytes > 0 && info.Size() > maxFileBytes {
			slog.Warn("Skipping oversized file", "path", path, "size", info.Size(), "cap", maxFileBytes)
			return nil
		}

		rel, relErr := filepath.Rel(string(root), path)
		if relErr != nil {
			rel = path
		}

		files = append(files, sourceFile{abs: m.Path(path), rel: m.Path(rel)})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// evaluateAll runs the locate/evaluate core for every file on a bounded
// worker pool and flattens the per-file results back into discovery
// order. An unreadable file is logged and contributes no findings; the
// rest of the run continues.
func (s *scanner) evaluateAll(ctx context.Context, files []sourceFile, threads int) ([]m.Finding, error) {
	results := make([][]m.Finding, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(normalizeThreads(threads))

	for i, file := range files {
		i, file := i, file
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			content, err := s.ReadFile(file.abs)
			if err != nil {
				slog.Warn("Skipping unreadable file", "path", file.abs, "error", err)
				return nil
			}

			unit := m.SourceUnit{Path: file.rel, Text: string(content)}
			results[i] = s.engine.Evaluate(unit, s.locator.Locate(unit.Text))

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	findings := make([]m.Finding, 0)
	for _, result := range results {
		findings = append(findings, result...)
	}

	return findings, nil
}

func normalizeThreads(threads int) int {
	if threads <= 0 {
		return 1
	}

	return threads
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func isExcluded(path string, excludeREs []*regexp.Regexp) bool {
	for _, part := range excludedPathParts {
		if strings.Contains(path, part) {
			return true
		}
	}

	for _, re := range excludeREs {
		if re.MatchString(path) {
			return true
		}
	}

	return false
}
