// Command cwrbatch converts every .cwr file in a directory in parallel,
// one goroutine per file, using golang.org/x/sync/errgroup the way
// solidcoredata-dca's internal/start package brings up independent subsystems
// concurrently and collects the first error (SPEC_FULL.md §12.2). Per
// spec.md §5, parallelism is strictly file-level: a single Session is
// never shared across goroutines.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/leengari/cwrkit/internal/cwr/cwrversion"
	"github.com/leengari/cwrkit/internal/cwr/field"
	"github.com/leengari/cwrkit/internal/cwr/session"
	"github.com/leengari/cwrkit/internal/cwrlog"
)

// fileReport summarizes one converted file for the closing tally.
type fileReport struct {
	path          string
	warningCount  int
	criticalCount int
	err           error
}

func main() {
	versionFlag := flag.String("version", "", "override CWR version detection: 2.0, 2.1, or 2.2")
	outDir := flag.String("out", "", "directory to write re-serialized copies into (required)")
	concurrency := flag.Int("concurrency", 4, "maximum number of files converted at once")
	seqEndpoint := flag.String("seq", "", "optional Seq structured-log endpoint")
	flag.Parse()

	logger, closeFn := cwrlog.Setup(*seqEndpoint)
	defer closeFn()
	slog.SetDefault(logger)

	if flag.NArg() != 1 || *outDir == "" {
		fmt.Fprintln(os.Stderr, "usage: cwrbatch -out <dir> [flags] <input-dir>")
		os.Exit(2)
	}
	inDir := flag.Arg(0)

	var override *cwrversion.Version
	if *versionFlag != "" {
		v, err := cwrversion.ParseVersionOverride(*versionFlag)
		if err != nil {
			slog.Error("invalid --version", "error", err)
			os.Exit(1)
		}
		override = &v
	}

	entries, err := os.ReadDir(inDir)
	if err != nil {
		slog.Error("failed to read input directory", "path", inDir, "error", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		slog.Error("failed to create output directory", "path", *outDir, "error", err)
		os.Exit(1)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".cwr" {
			continue
		}
		paths = append(paths, filepath.Join(inDir, e.Name()))
	}

	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(*concurrency)

	reports := make([]fileReport, len(paths))
	var mu sync.Mutex
	var filesOK atomic.Int64

	for i, p := range paths {
		i, p := i, p
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			report := convertOne(p, *outDir, override, logger)
			mu.Lock()
			reports[i] = report
			mu.Unlock()
			if report.err == nil {
				filesOK.Add(1)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("batch conversion aborted", "error", err)
		os.Exit(1)
	}

	totalWarnings, totalCritical, failed := 0, 0, 0
	for _, r := range reports {
		if r.err != nil {
			failed++
			slog.Error("conversion failed", "path", r.path, "error", r.err)
			continue
		}
		totalWarnings += r.warningCount
		totalCritical += r.criticalCount
	}
	fmt.Printf("converted %d/%d files, %d warning(s), %d critical, %d failed\n",
		filesOK.Load(), len(paths), totalWarnings, totalCritical, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// convertOne parses path in its own Session and writes the re-serialized
// copy into outDir, returning an accumulated per-file report instead of
// logging directly — logging in the caller keeps output ordering
// deterministic regardless of which goroutine finishes first.
func convertOne(path, outDir string, override *cwrversion.Version, logger *slog.Logger) fileReport {
	report := fileReport{path: path}

	in, err := os.Open(path)
	if err != nil {
		report.err = err
		return report
	}
	defer in.Close()

	opts := []session.Option{session.WithObserver(session.NewLoggingObserver(logger))}
	if override != nil {
		opts = append(opts, session.WithVersionOverride(*override))
	}
	s := session.New(opts...)
	defer s.Close()

	outPath := filepath.Join(outDir, filepath.Base(path))
	out, err := os.Create(outPath)
	if err != nil {
		report.err = err
		return report
	}
	defer out.Close()

	w := s.NewWriter(out)
	err = s.ParseStream(in, func(lr session.LineResult) error {
		for _, warn := range lr.Warnings {
			if warn.Severity == field.Critical {
				report.criticalCount++
			} else {
				report.warningCount++
			}
		}
		return w.WriteRecord(lr.Record)
	})
	if err != nil {
		report.err = err
		return report
	}
	if err := w.Flush(); err != nil {
		report.err = err
	}
	return report
}
