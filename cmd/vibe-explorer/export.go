package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-explorer/internal/export"
)

func newExportCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the loaded dataset to a DuckDB database",
		Long: `Load the configured dataset and write it to a DuckDB database file for
ad-hoc SQL analysis. The database holds patients, phenotypes, genes,
variants, and the relationship tables between them.`,
		Args: cobra.NoArgs,
		Example: `  vibe-explorer export --output dataset.duckdb
  vibe-explorer export -o cohort.duckdb --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return fmt.Errorf("--output is required")
			}
			if filepath.Ext(outputPath) != ".duckdb" && filepath.Ext(outputPath) != ".db" {
				outputPath = outputPath + ".duckdb"
			}

			// Start from a clean file so reruns don't hit primary keys.
			if _, err := os.Stat(outputPath); err == nil {
				if err := os.Remove(outputPath); err != nil {
					return fmt.Errorf("remove existing file: %w", err)
				}
			}

			s, err := loadStore()
			if err != nil {
				return err
			}

			w, err := export.NewWriter(outputPath)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.CreateSchema(); err != nil {
				return fmt.Errorf("create schema: %w", err)
			}
			if err := w.WriteStore(s); err != nil {
				return err
			}

			count, err := w.VariantCount()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d patients, %d phenotypes, %d genes, %d variants to %s\n",
				s.PatientCount(), s.PhenotypeCount(), s.GeneCount(), count, outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output DuckDB file path")

	return cmd
}
