// Command cwrcat reads a CWR file, runs it through a cwrkit session, and
// either prints a human-readable record-by-record dump (tag, sequence
// numbers, decoded fields, warnings) or re-serializes it with --write,
// matching the flag-driven, no-REPL-framework style of the teacher's
// cmd/rdbms/main.go (SPEC_FULL.md §12.1). It is a host-layer collaborator:
// it imports internal/cwr/... but nothing in internal/cwr/... imports it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/leengari/cwrkit/internal/cwr/cwrversion"
	"github.com/leengari/cwrkit/internal/cwr/field"
	"github.com/leengari/cwrkit/internal/cwr/session"
	"github.com/leengari/cwrkit/internal/cwrlog"
)

// Profile is an optional named output profile loaded from TOML
// (--profile), the way holo-build's package generator loads a build
// definition from TOML (SPEC_FULL.md §11). Only Version is applied: it
// sets the target CWR version when --version is not given.
// PopulateCharacterSet and PopulateSoftwareInfo are decoded but have no
// effect on what is written.
type Profile struct {
	Version              string `toml:"version"`
	PopulateCharacterSet bool   `toml:"populate_character_set"`
	PopulateSoftwareInfo bool   `toml:"populate_software_info"`
}

func main() {
	versionFlag := flag.String("version", "", "override CWR version detection: 2.0, 2.1, or 2.2")
	writeOut := flag.String("write", "", "re-serialize the input to this path instead of dumping it")
	profilePath := flag.String("profile", "", "optional TOML output profile")
	seqEndpoint := flag.String("seq", "", "optional Seq structured-log endpoint (e.g. http://localhost:5341)")
	flag.Parse()

	logger, closeFn := cwrlog.Setup(*seqEndpoint)
	defer closeFn()
	slog.SetDefault(logger)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cwrcat [flags] <file.cwr>")
		os.Exit(2)
	}
	inputPath := flag.Arg(0)

	var profile Profile
	if *profilePath != "" {
		if _, err := toml.DecodeFile(*profilePath, &profile); err != nil {
			slog.Error("failed to load profile", "path", *profilePath, "error", err)
			os.Exit(1)
		}
	}
	if *versionFlag == "" && profile.Version != "" {
		*versionFlag = profile.Version
	}

	opts := []session.Option{session.WithObserver(session.NewLoggingObserver(logger))}
	if *versionFlag != "" {
		v, err := cwrversion.ParseVersionOverride(*versionFlag)
		if err != nil {
			slog.Error("invalid --version", "error", err)
			os.Exit(1)
		}
		opts = append(opts, session.WithVersionOverride(v))
	}

	in, err := os.Open(inputPath)
	if err != nil {
		slog.Error("failed to open input", "path", inputPath, "error", err)
		os.Exit(1)
	}
	defer in.Close()

	s := session.New(opts...)
	defer s.Close()

	if *writeOut != "" {
		if err := rewrite(s, in, *writeOut); err != nil {
			slog.Error("rewrite failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := dump(s, in, os.Stdout); err != nil {
		slog.Error("dump failed", "error", err)
		os.Exit(1)
	}
}

// dump prints one line per record: its tag, sequence numbers, and any
// warnings collected while parsing it.
func dump(s *session.Session, in *os.File, out *os.File) error {
	criticalCount, warningCount := 0, 0
	err := s.ParseStream(in, func(lr session.LineResult) error {
		fmt.Fprintf(out, "%6d  %-3s  txn=%08d rec=%08d\n", lr.LineNumber, lr.Record.Tag, lr.Record.TransactionSeq, lr.Record.RecordSeq)
		for _, w := range lr.Warnings {
			fmt.Fprintf(out, "           [%s] %s: %s\n", w.Severity, w.Field, w.Description)
			if w.Severity == field.Critical {
				criticalCount++
			} else {
				warningCount++
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "-- %d warning(s), %d critical\n", warningCount, criticalCount)
	return nil
}

// rewrite re-serializes every parsed record to outPath at the session's
// resolved version.
func rewrite(s *session.Session, in *os.File, outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	// The writer is opened at the first record, after the HDR has already
	// been dispatched, so it uses the version resolved from that HDR.
	var w *session.SessionWriter
	err = s.ParseStream(in, func(lr session.LineResult) error {
		if w == nil {
			w = s.NewWriter(out)
		}
		return w.WriteRecord(lr.Record)
	})
	if err != nil {
		return err
	}
	if w == nil {
		return nil
	}
	return w.Flush()
}
