package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/suparena/enummeta"
	"github.com/suparena/enummeta/codegen"
)

var (
	flagTable   string
	flagDir     string
	flagOut     string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metagen",
		Short: "Generate variant metadata attachments from a YAML table",
		Long: `metagen turns a declarative metadata table into Go source.

It parses the target package to find the constants of the table's variant
type and fails when the table does not cover them exactly, so an incomplete
table can never compile. Eager tables become an exhaustive switch; lazy
tables become a process-wide enummeta store populated on first lookup.

Examples:
  # Generate colour_meta_gen.go next to the package source
  metagen -f colour_meta.yaml -d ./colour

  # Write to an explicit output file
  metagen -f colour_meta.yaml -d ./colour -o ./colour/meta.go`,
		SilenceUsage: true,
		RunE:         runGenerate,
	}

	cmd.Flags().StringVarP(&flagTable, "table", "f", "", "path to the YAML table file (required)")
	cmd.Flags().StringVarP(&flagDir, "dir", "d", ".", "directory of the package declaring the variant type")
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "output file (defaults to <type>_meta_gen.go in the package directory)")
	cmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "increase output verbosity")
	_ = cmd.MarkFlagRequired("table")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	logger.Debug("loading table", "file", flagTable, "dir", flagDir)
	out, err := codegen.Run(flagTable, flagDir, flagOut)
	if err != nil {
		return err
	}
	logger.Info("generated", "file", out)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			info := enummeta.GetVersionInfo()
			fmt.Printf("metagen version %s\n", info.Version)
			fmt.Printf("Git commit: %s\n", info.GitCommit)
			fmt.Printf("Build date: %s\n", info.BuildDate)
			fmt.Printf("Go version: %s\n", info.GoVersion)
		},
	}
}
