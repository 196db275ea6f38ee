package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-explorer/internal/output"
	"github.com/inodb/vibe-explorer/internal/query"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "summary <patients|genes|phenotypes>",
		Short:     "Print a tab-delimited dataset listing",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"patients", "genes", "phenotypes"},
		Example: `  vibe-explorer summary patients
  vibe-explorer summary genes | column -t
  vibe-explorer summary phenotypes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			engine := query.NewEngine(s)
			out := cmd.OutOrStdout()

			switch args[0] {
			case "patients":
				summaries, err := engine.PatientSummaries()
				if err != nil {
					return err
				}
				w := output.NewPatientsWriter(out)
				if err := w.WriteHeader(); err != nil {
					return err
				}
				for _, summary := range summaries {
					if err := w.Write(summary); err != nil {
						return err
					}
				}
				return w.Flush()
			case "genes":
				summaries, err := engine.GeneSummaries()
				if err != nil {
					return err
				}
				w := output.NewGenesWriter(out)
				if err := w.WriteHeader(); err != nil {
					return err
				}
				for _, summary := range summaries {
					if err := w.Write(summary); err != nil {
						return err
					}
				}
				return w.Flush()
			case "phenotypes":
				w := output.NewPhenotypesWriter(out)
				if err := w.WriteHeader(); err != nil {
					return err
				}
				for _, summary := range engine.PhenotypeSummaries() {
					if err := w.Write(summary); err != nil {
						return err
					}
				}
				return w.Flush()
			default:
				return fmt.Errorf("unknown listing %q (want patients, genes, or phenotypes)", args[0])
			}
		},
	}
}
