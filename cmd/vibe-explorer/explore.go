package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inodb/vibe-explorer/internal/output"
	"github.com/inodb/vibe-explorer/internal/query"
	"github.com/inodb/vibe-explorer/internal/store"
)

func newExploreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Start an interactive exploration session",
		Long:  "Load the configured dataset and browse it through a menu: patient, gene, and phenotype listings, variant search, and phenotype-driven recommendation.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore()
			if err != nil {
				return err
			}
			sess := &session{
				engine: query.NewEngine(s),
				in:     bufio.NewScanner(os.Stdin),
				out:    cmd.OutOrStdout(),
			}
			sess.run()
			return nil
		},
	}
}

// session drives the interactive menu over one loaded dataset.
type session struct {
	engine *query.Engine
	in     *bufio.Scanner
	out    io.Writer
}

func (s *session) run() {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, output.Styles.Title.Render("vibe-explorer"))
		fmt.Fprintln(s.out, "1. List patients")
		fmt.Fprintln(s.out, "2. List genes")
		fmt.Fprintln(s.out, "3. List phenotypes")
		fmt.Fprintln(s.out, "4. Exit")

		choice, ok := s.prompt("Choose an option (1-4): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.listPatients()
			s.patientMenu()
		case "2":
			s.listGenes()
		case "3":
			s.listPhenotypes()
		case "4":
			return
		default:
			fmt.Fprintln(s.out, output.Styles.Error.Render("Enter a number between 1 and 4."))
		}
	}
}

// patientMenu is the submenu shown after the patient listing.
func (s *session) patientMenu() {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "1. Search variants")
		fmt.Fprintln(s.out, "2. Recommend variants")
		fmt.Fprintln(s.out, "3. Back")

		choice, ok := s.prompt("Choose an option (1-3): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.searchVariants()
		case "2":
			s.recommendVariants()
		case "3":
			return
		default:
			fmt.Fprintln(s.out, output.Styles.Error.Render("Enter a number between 1 and 3."))
		}
	}
}

func (s *session) listPatients() {
	summaries, err := s.engine.PatientSummaries()
	if err != nil {
		s.renderError(err)
		return
	}
	for _, p := range summaries {
		header := fmt.Sprintf("%s (Variants: %d)", p.ID, p.VariantCount)
		if p.Name != "" {
			header = fmt.Sprintf("%s (%s) (Variants: %d)", p.ID, p.Name, p.VariantCount)
		}
		fmt.Fprintln(s.out, output.Styles.Header.Render(header))
		for _, ref := range p.Phenotypes {
			fmt.Fprintf(s.out, "  - %s (%s) [Gene Count: %d]\n", ref.Label, ref.Code, ref.GeneCount)
		}
		fmt.Fprintln(s.out)
	}
}

func (s *session) listGenes() {
	summaries, err := s.engine.GeneSummaries()
	if err != nil {
		s.renderError(err)
		return
	}
	for _, g := range summaries {
		fmt.Fprintln(s.out, output.Styles.Header.Render(fmt.Sprintf("%s (%d)", g.Symbol, len(g.Variants))))
		for _, d := range g.Variants {
			fmt.Fprintf(s.out, "  %s:%d-%d [%s]\n", d.Chrom, d.PosStart, d.PosEnd, d.PatientID)
		}
	}
}

func (s *session) listPhenotypes() {
	for _, f := range s.engine.PhenotypeSummaries() {
		fmt.Fprintf(s.out, "%s (%s) [Gene Count: %d]\n", f.Label, f.Code, f.GeneCount)
	}
}

func (s *session) searchVariants() {
	var f query.Filter

	if v, ok := s.prompt("Patient code (empty for any): "); ok && v != "" {
		f.PatientID = &v
	}
	if v, ok := s.prompt("Gene (empty for any): "); ok && v != "" {
		f.GeneSymbol = &v
	}
	if v, ok := s.prompt("Chromosome (empty for any): "); ok && v != "" {
		f.Chrom = &v
	}
	if v, ok := s.prompt("Position (empty for any): "); ok && v != "" {
		pos, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			fmt.Fprintln(s.out, output.Styles.Error.Render("Position must be an integer."))
			return
		}
		f.Pos = &pos
	}

	if f.IsEmpty() {
		fmt.Fprintln(s.out, output.Styles.Muted.Render("No criteria given; showing all variants."))
	}

	variants, err := s.engine.FilterVariants(f)
	if err != nil {
		s.renderError(err)
		return
	}
	if len(variants) == 0 {
		fmt.Fprintln(s.out, output.Styles.Muted.Render("No variants match."))
		return
	}
	for _, v := range variants {
		fmt.Fprintln(s.out, v.String())
	}
}

func (s *session) recommendVariants() {
	id, ok := s.prompt("Patient code: ")
	if !ok {
		return
	}

	variants, err := s.engine.RecommendVariants(id)
	if err != nil {
		s.renderError(err)
		return
	}
	if len(variants) == 0 {
		fmt.Fprintln(s.out, output.Styles.Muted.Render("No candidate variants for this patient's phenotypes."))
		return
	}
	for _, v := range variants {
		fmt.Fprintf(s.out, "%s [%s]\n", v.String(), v.PatientID)
	}
}

// prompt reads one trimmed input line; ok is false on EOF.
func (s *session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// renderError surfaces query errors with distinct messages so a bad query
// is not mistaken for a corrupt dataset.
func (s *session) renderError(err error) {
	var notFound *store.NotFoundError
	var integrity *store.IntegrityError
	switch {
	case errors.As(err, &notFound):
		fmt.Fprintln(s.out, output.Styles.Warn.Render(fmt.Sprintf("Unknown %s: %s", notFound.Kind, notFound.ID)))
	case errors.As(err, &integrity):
		fmt.Fprintln(s.out, output.Styles.Error.Render(fmt.Sprintf("Corrupt dataset: %v", err)))
	default:
		fmt.Fprintln(s.out, output.Styles.Error.Render(err.Error()))
	}
}
