package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rebuildlex/internal/diagfmt"
	"rebuildlex/internal/driver"
	"rebuildlex/internal/pipeline"
	"rebuildlex/internal/source"
	"rebuildlex/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] dir",
	Short: "Scan every source file under dir and report lexical defects",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("no-progress", false, "disable the interactive progress bar")
	checkCmd.Flags().Bool("no-cache", false, "ignore and do not update the on-disk scan cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := args[0]

	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}
	noProgress, err := cmd.Flags().GetBool("no-progress")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}
	if !cmd.Root().PersistentFlags().Changed("jobs") && cfg.Check.Jobs > 0 {
		jobs = cfg.Check.Jobs
	}
	if !cmd.Flags().Changed("no-cache") && cfg.Check.NoCache {
		noCache = true
	}
	if !cmd.Flags().Changed("no-progress") && !cfg.Check.Progress {
		noProgress = true
	}

	var cache *driver.DiskCache
	if !noCache {
		cache, err = driver.OpenDiskCache("rebuildlex")
		if err != nil {
			return fmt.Errorf("open scan cache: %w", err)
		}
	}

	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var fileSet *source.FileSet
	var results []driver.ScanResult

	if noProgress || !isTerminal(os.Stdout) {
		fileSet, results, err = driver.ScanDir(ctx, dir, jobs, cache, nil)
	} else {
		fileSet, results, err = runCheckWithUI(ctx, dir, jobs, cache, files)
	}
	if err != nil {
		return err
	}

	useColor := colorEnabled(cmd, os.Stdout, cfg.Output.Color)
	pathMode := diagfmt.PathModeAuto
	if mode, ok := diagfmt.ParsePathMode(cfg.Output.PathMode); ok {
		pathMode = mode
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			continue
		}
		if r.Bag == nil || r.Bag.Len() == 0 {
			continue
		}
		opts := diagfmt.PrettyOpts{Color: useColor, PathMode: pathMode}
		if err := diagfmt.Pretty(os.Stdout, fileSet, r.FileID, r.Bag, opts); err != nil {
			return err
		}
	}

	summary := driver.Summarize(results)
	fmt.Fprintf(os.Stdout, "%d file(s) scanned, %d diagnostic(s), %d load error(s)\n",
		summary.Files, summary.Diagnostics, summary.LoadErrors)

	if summary.Diagnostics > 0 || summary.LoadErrors > 0 {
		os.Exit(1)
	}
	return nil
}

func runCheckWithUI(ctx context.Context, dir string, jobs int, cache *driver.DiskCache, files []string) (*source.FileSet, []driver.ScanResult, error) {
	events := make(chan pipeline.Event, 256)
	type outcome struct {
		fileSet *source.FileSet
		results []driver.ScanResult
		err     error
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		fs, results, err := driver.ScanDir(ctx, dir, jobs, cache, events)
		outcomeCh <- outcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("checking "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	out := <-outcomeCh
	if uiErr != nil {
		return out.fileSet, out.results, uiErr
	}
	return out.fileSet, out.results, out.err
}
