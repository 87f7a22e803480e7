package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportXLSX bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge employees from a CSV file",
	Long: `Parse a CSV file and append every named row whose full name is not already on the roster.

Nothing is written when the file is empty or contains no named rows.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the roster to a CSV (or XLSX) file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print dashboard counters and distributions as YAML",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	exportCmd.Flags().BoolVar(&exportXLSX, "xlsx", false, "write a spreadsheet instead of CSV")
	rootCmd.AddCommand(importCmd, exportCmd, summaryCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	summary, err := env.roster.Import(cmd.Context(), cliActor, data)
	if err != nil {
		return err
	}
	return yaml.NewEncoder(cmd.OutOrStdout()).Encode(summary)
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create %s: %w", args[0], err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if exportXLSX {
		err = env.roster.ExportXLSX(cmd.Context(), f)
	} else {
		err = env.roster.Export(cmd.Context(), f)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}

func runSummary(cmd *cobra.Command, _ []string) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(env.dashboard.Dashboard(cmd.Context()))
}
