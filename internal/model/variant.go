// Package model defines the entity records of the variant explorer.
package model

import "fmt"

// Variant represents a single observed genomic variant from one patient's data.
type Variant struct {
	ID         string // Unique variant identifier (e.g., "PAC01:12:25245351:25245351:C:C/A")
	PatientID  string // Record number of the patient carrying the variant
	GeneSymbol string // Symbol of the gene the variant is located on (e.g., KRAS)
	Chrom      string // Chromosome name (e.g., "12", "chr12")
	PosStart   int64  // 1-based start position
	PosEnd     int64  // 1-based end position, inclusive
	Ref        string // Reference allele
	Genotype   string // Observed genotype (e.g., "C/A")
}

// IsSNV returns true if the variant spans a single base.
func (v *Variant) IsSNV() bool {
	return v.PosStart == v.PosEnd && len(v.Ref) == 1
}

// NormalizeChrom returns the variant's chromosome name without "chr" prefix.
func (v *Variant) NormalizeChrom() string {
	return NormalizeChrom(v.Chrom)
}

// NormalizeChrom returns a chromosome name without "chr" prefix.
func NormalizeChrom(chrom string) string {
	if len(chrom) > 3 && chrom[:3] == "chr" {
		return chrom[3:]
	}
	return chrom
}

// String renders the variant in the explorer's display form.
func (v *Variant) String() string {
	return fmt.Sprintf("%s:%d:%d:%s:%s (%s)", v.Chrom, v.PosStart, v.PosEnd, v.Ref, v.Genotype, v.GeneSymbol)
}

// VariantID builds the canonical variant identifier from its fields.
func VariantID(patientID, chrom string, start, end int64, ref, genotype string) string {
	return fmt.Sprintf("%s:%s:%d:%d:%s:%s", patientID, chrom, start, end, ref, genotype)
}
