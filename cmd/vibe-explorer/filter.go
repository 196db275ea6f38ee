package main

import (
	"github.com/spf13/cobra"

	"github.com/inodb/vibe-explorer/internal/output"
	"github.com/inodb/vibe-explorer/internal/query"
)

func newFilterCmd() *cobra.Command {
	var (
		patientID  string
		geneSymbol string
		chrom      string
		pos        int64
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Search variants by patient, gene, chromosome, and position",
		Long:  "Print the variants matching every supplied criterion. With no flags, prints the full variant set in load order.",
		Args:  cobra.NoArgs,
		Example: `  vibe-explorer filter --patient PAC01
  vibe-explorer filter --gene KRAS --chrom 12
  vibe-explorer filter --chrom chr1 --pos 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}

			var f query.Filter
			if cmd.Flags().Changed("patient") {
				f.PatientID = &patientID
			}
			if cmd.Flags().Changed("gene") {
				f.GeneSymbol = &geneSymbol
			}
			if cmd.Flags().Changed("chrom") {
				f.Chrom = &chrom
			}
			if cmd.Flags().Changed("pos") {
				f.Pos = &pos
			}

			variants, err := query.NewEngine(s).FilterVariants(f)
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

	cmd.Flags().StringVar(&patientID, "patient", "", "Patient record number")
	cmd.Flags().StringVar(&geneSymbol, "gene", "", "Gene symbol")
	cmd.Flags().StringVar(&chrom, "chrom", "", "Chromosome name (\"chr\" prefix optional)")
	cmd.Flags().Int64Var(&pos, "pos", 0, "Exact start position")

	return cmd
}
