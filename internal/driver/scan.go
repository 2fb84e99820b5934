// Package driver coordinates running the lexical diagnostic engine across
// many files: discovering sources, scanning them concurrently, and keeping
// a disk-backed cache of known-clean results between runs.
package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"rebuildlex/internal/diag"
	"rebuildlex/internal/lexer"
	"rebuildlex/internal/pipeline"
	"rebuildlex/internal/source"
	"rebuildlex/internal/token"
)

// ScanResult is one file's outcome from a directory scan.
type ScanResult struct {
	Path   string
	FileID source.FileID
	Bag    *diag.Bag
	Err    error
}

// ListSourceFiles returns a sorted list of every .rb file under dir, for a
// deterministic, reproducible scan order. Exported so callers can build a
// file list (e.g. to seed a progress display) before ScanDir runs.
func ListSourceFiles(dir string) ([]string, error) {
	return listSourceFiles(dir)
}

// listSourceFiles returns a sorted list of every .rb file under dir, for a
// deterministic, reproducible scan order.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".rb") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// emit sends a pipeline event, silently dropping it if events is nil or the
// consumer has stopped listening — progress reporting is best-effort and
// must never block or fail a scan.
func emit(events chan<- pipeline.Event, ev pipeline.Event) {
	if events == nil {
		return
	}
	select {
	case events <- ev:
	default:
	}
}

// ScanDir runs the raw byte scanner (package lexer) over every source file
// in dir concurrently, collecting one diag.Bag per file. jobs caps the
// number of files processed at once; jobs <= 0 uses GOMAXPROCS.
//
// This only exercises the scan-level diagnostics (diag.CategoryScan): the
// nester pass that groups a file's tokens into nester.BlockLines for the
// block-line diagnostic engine (package lexreport) is an external
// collaborator this driver does not construct, so BlockLine-level
// diagnostics are driven from fixtures in lexreport's own tests rather
// than from a directory of files.
func ScanDir(ctx context.Context, dir string, jobs int, cache *DiskCache, events chan<- pipeline.Event) (*source.FileSet, []ScanResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))

	for i, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			continue
		}
		fileIDs[i] = id
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]ScanResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			emit(events, pipeline.Event{File: path, Stage: pipeline.StageRead, Status: pipeline.StatusWorking})

			if loadErrors[i] != nil {
				results[i] = ScanResult{Path: path, Err: loadErrors[i]}
				emit(events, pipeline.Event{File: path, Stage: pipeline.StageRead, Status: pipeline.StatusError})
				return nil
			}

			fileID := fileIDs[i]
			file := fileSet.Get(fileID)

			if cache != nil {
				if p, ok := cache.lookup(file.Hash); ok && p.DiagnosticCount == 0 {
					results[i] = ScanResult{Path: path, FileID: fileID, Bag: diag.NewBag()}
					emit(events, pipeline.Event{File: path, Stage: pipeline.StageDone, Status: pipeline.StatusDone})
					return nil
				}
			}

			emit(events, pipeline.Event{File: path, Stage: pipeline.StageScan, Status: pipeline.StatusWorking})

			bag := diag.NewBag()
			reporter := &lexer.SinkReporter{Sink: bag}
			lx := lexer.New(file, lexer.Options{Reporter: reporter})
			for {
				tok := lx.Next()
				if tok.Kind == token.EOF {
					break
				}
			}

			results[i] = ScanResult{Path: path, FileID: fileID, Bag: bag}
			emit(events, pipeline.Event{File: path, Stage: pipeline.StageDone, Status: pipeline.StatusDone})

			if cache != nil {
				_ = cache.record(file.Hash, bag.Len())
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
