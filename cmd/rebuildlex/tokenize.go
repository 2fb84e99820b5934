package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rebuildlex/internal/diagfmt"
	"rebuildlex/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.rb",
	Short: "Tokenize a source file and report scan-level defects",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "token output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(filepath.Dir(path))
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(path)
	if err != nil {
		return fmt.Errorf("tokenize %s: %w", path, err)
	}

	if result.Bag.Len() > 0 {
		pathMode := diagfmt.PathModeAuto
		if mode, ok := diagfmt.ParsePathMode(cfg.Output.PathMode); ok {
			pathMode = mode
		}
		opts := diagfmt.PrettyOpts{Color: colorEnabled(cmd, os.Stderr, cfg.Output.Color), PathMode: pathMode}
		if err := diagfmt.Pretty(os.Stderr, result.FileSet, result.FileID, result.Bag, opts); err != nil {
			return err
		}
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
