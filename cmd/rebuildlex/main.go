package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rebuildlex/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rebuildlex",
	Short: "Lexical diagnostic tooling for Rebuild source files",
	Long:  `rebuildlex scans Rebuild source files and reports lexical defects as human-readable diagnostics.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("jobs", 0, "maximum number of files scanned concurrently (0 = GOMAXPROCS)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func colorEnabled(cmd *cobra.Command, out *os.File, cfgColor string) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	if !cmd.Root().PersistentFlags().Changed("color") && cfgColor != "" {
		mode = cfgColor
	}
	return mode == "on" || (mode == "auto" && isTerminal(out))
}
