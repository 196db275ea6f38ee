// Package output renders query results as text.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/inodb/vibe-explorer/internal/model"
	"github.com/inodb/vibe-explorer/internal/query"
)

// PatientsWriter writes patient summaries in tab-delimited format.
type PatientsWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewPatientsWriter creates a new tab-delimited patient summary writer.
func NewPatientsWriter(w io.Writer) *PatientsWriter {
	return &PatientsWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Patient",
			"Name",
			"Phenotypes",
			"Variant_Count",
		},
	}
}

// WriteHeader writes the header line.
func (pw *PatientsWriter) WriteHeader() error {
	_, err := pw.w.WriteString(strings.Join(pw.columns, "\t") + "\n")
	return err
}

// Write writes a single patient summary.
func (pw *PatientsWriter) Write(s query.PatientSummary) error {
	name := s.Name
	if name == "" {
		name = "-"
	}

	phenotypes := "-"
	if len(s.Phenotypes) > 0 {
		codes := make([]string, 0, len(s.Phenotypes))
		for _, ref := range s.Phenotypes {
			codes = append(codes, ref.Code)
		}
		phenotypes = strings.Join(codes, ",")
	}

	_, err := fmt.Fprintf(pw.w, "%s\t%s\t%s\t%d\n", s.ID, name, phenotypes, s.VariantCount)
	return err
}

// Flush flushes buffered output.
func (pw *PatientsWriter) Flush() error {
	return pw.w.Flush()
}

// GenesWriter writes gene summaries in tab-delimited format, one row per
// variant. Genes without variants get a single row with empty fields.
type GenesWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewGenesWriter creates a new tab-delimited gene summary writer.
func NewGenesWriter(w io.Writer) *GenesWriter {
	return &GenesWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Gene",
			"Location",
			"Patient",
		},
	}
}

// WriteHeader writes the header line.
func (gw *GenesWriter) WriteHeader() error {
	_, err := gw.w.WriteString(strings.Join(gw.columns, "\t") + "\n")
	return err
}

// Write writes all rows for a single gene summary.
func (gw *GenesWriter) Write(s query.GeneSummary) error {
	if len(s.Variants) == 0 {
		_, err := fmt.Fprintf(gw.w, "%s\t-\t-\n", s.Symbol)
		return err
	}
	for _, d := range s.Variants {
		location := fmt.Sprintf("%s:%d-%d", d.Chrom, d.PosStart, d.PosEnd)
		if _, err := fmt.Fprintf(gw.w, "%s\t%s\t%s\n", s.Symbol, location, d.PatientID); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes buffered output.
func (gw *GenesWriter) Flush() error {
	return gw.w.Flush()
}

// PhenotypesWriter writes phenotype summaries in tab-delimited format.
type PhenotypesWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewPhenotypesWriter creates a new tab-delimited phenotype summary writer.
func NewPhenotypesWriter(w io.Writer) *PhenotypesWriter {
	return &PhenotypesWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Phenotype",
			"Label",
			"URI",
			"Gene_Count",
		},
	}
}

// WriteHeader writes the header line.
func (fw *PhenotypesWriter) WriteHeader() error {
	_, err := fw.w.WriteString(strings.Join(fw.columns, "\t") + "\n")
	return err
}

// Write writes a single phenotype summary.
func (fw *PhenotypesWriter) Write(s query.PhenotypeSummary) error {
	uri := s.URI
	if uri == "" {
		uri = "-"
	}
	_, err := fmt.Fprintf(fw.w, "%s\t%s\t%s\t%d\n", s.Code, s.Label, uri, s.GeneCount)
	return err
}

// Flush flushes buffered output.
func (fw *PhenotypesWriter) Flush() error {
	return fw.w.Flush()
}

// VariantsWriter writes variants in tab-delimited format, used by the
// filter and recommend listings.
type VariantsWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewVariantsWriter creates a new tab-delimited variant writer.
func NewVariantsWriter(w io.Writer) *VariantsWriter {
	return &VariantsWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"#Patient",
			"Location",
			"Ref",
			"Genotype",
			"Gene",
		},
	}
}

// WriteHeader writes the header line.
func (vw *VariantsWriter) WriteHeader() error {
	_, err := vw.w.WriteString(strings.Join(vw.columns, "\t") + "\n")
	return err
}

// Write writes a single variant.
func (vw *VariantsWriter) Write(v *model.Variant) error {
	location := fmt.Sprintf("%s:%d-%d", v.Chrom, v.PosStart, v.PosEnd)
	_, err := fmt.Fprintf(vw.w, "%s\t%s\t%s\t%s\t%s\n", v.PatientID, location, v.Ref, v.Genotype, v.GeneSymbol)
	return err
}

// Flush flushes buffered output.
func (vw *VariantsWriter) Flush() error {
	return vw.w.Flush()
}
