package main

import (
	"github.com/spf13/cobra"

	"github.com/inodb/vibe-explorer/internal/output"
	"github.com/inodb/vibe-explorer/internal/query"
)

func newRecommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend <patient-id>",
		Short: "Recommend variants relevant to a patient's phenotypes",
		Long: `Print the cohort's variants located on genes associated with any of the
patient's phenotypes, excluding the patient's own records. Candidates for
further review, not a diagnosis.`,
		Args:    cobra.ExactArgs(1),
		Example: `  vibe-explorer recommend PAC01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}

			variants, err := query.NewEngine(s).RecommendVariants(args[0])
			if err != nil {
				return err
			}

			w := output.NewVariantsWriter(cmd.OutOrStdout())
			if err := w.WriteHeader(); err != nil {
				return err
			}
			for _, v := range variants {
				if err := w.Write(v); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}
