// Package query implements the read operations over a loaded store.
package query

import (
	"github.com/inodb/vibe-explorer/internal/model"
	"github.com/inodb/vibe-explorer/internal/store"
)

// Engine runs stateless read operations over a loaded store.
type Engine struct {
	store *store.Store
}

// NewEngine creates an engine over the given store.
func NewEngine(s *store.Store) *Engine {
	return &Engine{store: s}
}

// PhenotypeRef describes one phenotype assigned to a patient.
type PhenotypeRef struct {
	Code      string
	Label     string
	GeneCount int
}

// PatientSummary describes one patient with their phenotypes and variant count.
type PatientSummary struct {
	ID           string
	Name         string
	Phenotypes   []PhenotypeRef
	VariantCount int
}

// VariantDescriptor describes one variant within a gene listing.
type VariantDescriptor struct {
	Chrom     string
	PosStart  int64
	PosEnd    int64
	PatientID string
}

// GeneSummary describes one gene with the variants located on it.
type GeneSummary struct {
	Symbol   string
	Variants []VariantDescriptor
}

// PhenotypeSummary describes one phenotype with its distinct gene count.
type PhenotypeSummary struct {
	Code      string
	Label     string
	URI       string
	GeneCount int
}

// PatientSummaries lists every patient in load order with their assigned
// phenotypes and variant count. Load validated every assignment, so a store
// error here means the dataset is corrupt and is surfaced, not swallowed.
func (e *Engine) PatientSummaries() ([]PatientSummary, error) {
	patients := e.store.Patients()
	summaries := make([]PatientSummary, 0, len(patients))
	for _, p := range patients {
		refs := make([]PhenotypeRef, 0, len(p.Phenotypes))
		for _, code := range p.Phenotypes {
			f, err := e.store.Phenotype(code)
			if err != nil {
				return nil, err
			}
			refs = append(refs, PhenotypeRef{Code: f.Code, Label: f.Label, GeneCount: f.GeneCount()})
		}
		variants, err := e.store.VariantsOfPatient(p.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, PatientSummary{
			ID:           p.ID,
			Name:         p.Name,
			Phenotypes:   refs,
			VariantCount: len(variants),
		})
	}
	return summaries, nil
}

// GeneSummaries lists every gene in load order with the variants located on
// it. Genes with no variants are included with an empty list.
func (e *Engine) GeneSummaries() ([]GeneSummary, error) {
	genes := e.store.Genes()
	summaries := make([]GeneSummary, 0, len(genes))
	for _, g := range genes {
		variants, err := e.store.VariantsOfGene(g.Symbol)
		if err != nil {
			return nil, err
		}
		descriptors := make([]VariantDescriptor, 0, len(variants))
		for _, v := range variants {
			descriptors = append(descriptors, VariantDescriptor{
				Chrom:     v.Chrom,
				PosStart:  v.PosStart,
				PosEnd:    v.PosEnd,
				PatientID: v.PatientID,
			})
		}
		summaries = append(summaries, GeneSummary{Symbol: g.Symbol, Variants: descriptors})
	}
	return summaries, nil
}

// PhenotypeSummaries lists every phenotype in load order with its distinct
// gene count.
func (e *Engine) PhenotypeSummaries() []PhenotypeSummary {
	phenotypes := e.store.Phenotypes()
	summaries := make([]PhenotypeSummary, 0, len(phenotypes))
	for _, f := range phenotypes {
		summaries = append(summaries, PhenotypeSummary{
			Code:      f.Code,
			Label:     f.Label,
			URI:       f.URI,
			GeneCount: f.GeneCount(),
		})
	}
	return summaries
}

// RecommendVariants surfaces variants worth investigating given the
// patient's phenotype profile: every variant located on a gene associated
// with any of the patient's phenotypes, across the whole cohort, excluding
// the patient's own already-known variants. A patient with no phenotypes
// gets an empty result.
func (e *Engine) RecommendVariants(patientID string) ([]*model.Variant, error) {
	p, err := e.store.Patient(patientID)
	if err != nil {
		return nil, err
	}

	relevant := make(map[string]bool)
	for _, code := range p.Phenotypes {
		genes, err := e.store.GenesOfPhenotype(code)
		if err != nil {
			continue
		}
		for _, symbol := range genes {
			relevant[symbol] = true
		}
	}

	var result []*model.Variant
	seen := make(map[string]bool)
	for _, v := range e.store.Variants() {
		if !relevant[v.GeneSymbol] || v.PatientID == patientID || seen[v.ID] {
			continue
		}
		seen[v.ID] = true
		result = append(result, v)
	}
	return result, nil
}
