// Package store holds the loaded dataset in indexed in-memory collections.
package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/inodb/vibe-explorer/internal/model"
)

// Store owns the canonical entity collections and the derived
// cross-reference indices. It is loaded once and read-only afterwards.
type Store struct {
	patients   map[string]*model.Patient
	phenotypes map[string]*model.Phenotype
	genes      map[string]*model.Gene
	variants   map[string]*model.Variant

	// Insertion order of the original load.
	patientOrder   []*model.Patient
	phenotypeOrder []*model.Phenotype
	geneOrder      []*model.Gene
	variantOrder   []*model.Variant

	// Derived indices, built during Load.
	variantsByPatient map[string][]*model.Variant
	variantsByGene    map[string][]*model.Variant

	loaded bool
	logger *zap.Logger
}

// New creates a new empty store.
func New() *Store {
	return &Store{
		patients:          make(map[string]*model.Patient),
		phenotypes:        make(map[string]*model.Phenotype),
		genes:             make(map[string]*model.Gene),
		variants:          make(map[string]*model.Variant),
		variantsByPatient: make(map[string][]*model.Variant),
		variantsByGene:    make(map[string][]*model.Variant),
		logger:            zap.NewNop(),
	}
}

// SetLogger sets the logger for load diagnostics.
func (s *Store) SetLogger(l *zap.Logger) {
	s.logger = l
}

// Load populates the store from validated entity lists. The whole batch is
// rejected with an IntegrityError if any record duplicates an identifier or
// references an entity that is not part of the load. A rejected batch leaves
// the store untouched, so a corrected dataset can be loaded into the same
// store.
func (s *Store) Load(patients []*model.Patient, phenotypes []*model.Phenotype, genes []*model.Gene, variants []*model.Variant) error {
	if s.loaded {
		return fmt.Errorf("store already loaded")
	}

	geneMap := make(map[string]*model.Gene, len(genes))
	geneOrder := make([]*model.Gene, 0, len(genes))
	variantsByGene := make(map[string][]*model.Variant, len(genes))
	for _, g := range genes {
		if _, ok := geneMap[g.Symbol]; ok {
			return &IntegrityError{Kind: KindGene, ID: g.Symbol, Ref: g.Symbol, Message: "duplicate gene symbol"}
		}
		geneMap[g.Symbol] = g
		geneOrder = append(geneOrder, g)
		variantsByGene[g.Symbol] = nil
	}

	phenotypeMap := make(map[string]*model.Phenotype, len(phenotypes))
	phenotypeOrder := make([]*model.Phenotype, 0, len(phenotypes))
	for _, f := range phenotypes {
		if _, ok := phenotypeMap[f.Code]; ok {
			return &IntegrityError{Kind: KindPhenotype, ID: f.Code, Ref: f.Code, Message: "duplicate phenotype code"}
		}
		for _, symbol := range f.Genes {
			if _, ok := geneMap[symbol]; !ok {
				return &IntegrityError{Kind: KindPhenotype, ID: f.Code, Ref: symbol, Message: "references unknown gene"}
			}
		}
		phenotypeMap[f.Code] = f
		phenotypeOrder = append(phenotypeOrder, f)
	}

	patientMap := make(map[string]*model.Patient, len(patients))
	patientOrder := make([]*model.Patient, 0, len(patients))
	variantsByPatient := make(map[string][]*model.Variant, len(patients))
	for _, p := range patients {
		if _, ok := patientMap[p.ID]; ok {
			return &IntegrityError{Kind: KindPatient, ID: p.ID, Ref: p.ID, Message: "duplicate patient id"}
		}
		for _, code := range p.Phenotypes {
			if _, ok := phenotypeMap[code]; !ok {
				return &IntegrityError{Kind: KindPatient, ID: p.ID, Ref: code, Message: "references unknown phenotype"}
			}
		}
		patientMap[p.ID] = p
		patientOrder = append(patientOrder, p)
		variantsByPatient[p.ID] = nil
	}

	variantMap := make(map[string]*model.Variant, len(variants))
	variantOrder := make([]*model.Variant, 0, len(variants))
	for _, v := range variants {
		if _, ok := variantMap[v.ID]; ok {
			return &IntegrityError{Kind: KindVariant, ID: v.ID, Ref: v.ID, Message: "duplicate variant id"}
		}
		if _, ok := patientMap[v.PatientID]; !ok {
			return &IntegrityError{Kind: KindVariant, ID: v.ID, Ref: v.PatientID, Message: "references unknown patient"}
		}
		if _, ok := geneMap[v.GeneSymbol]; !ok {
			return &IntegrityError{Kind: KindVariant, ID: v.ID, Ref: v.GeneSymbol, Message: "references unknown gene"}
		}
		variantMap[v.ID] = v
		variantOrder = append(variantOrder, v)
		variantsByPatient[v.PatientID] = append(variantsByPatient[v.PatientID], v)
		variantsByGene[v.GeneSymbol] = append(variantsByGene[v.GeneSymbol], v)
	}

	// Commit only once the whole batch checked out.
	s.genes = geneMap
	s.geneOrder = geneOrder
	s.phenotypes = phenotypeMap
	s.phenotypeOrder = phenotypeOrder
	s.patients = patientMap
	s.patientOrder = patientOrder
	s.variants = variantMap
	s.variantOrder = variantOrder
	s.variantsByPatient = variantsByPatient
	s.variantsByGene = variantsByGene
	s.loaded = true
	s.logger.Info("dataset loaded",
		zap.Int("patients", len(s.patientOrder)),
		zap.Int("phenotypes", len(s.phenotypeOrder)),
		zap.Int("genes", len(s.geneOrder)),
		zap.Int("variants", len(s.variantOrder)))
	return nil
}

// Patient returns the patient with the given record number.
func (s *Store) Patient(id string) (*model.Patient, error) {
	p, ok := s.patients[id]
	if !ok {
		return nil, &NotFoundError{Kind: KindPatient, ID: id}
	}
	return p, nil
}

// Phenotype returns the phenotype with the given code.
func (s *Store) Phenotype(code string) (*model.Phenotype, error) {
	f, ok := s.phenotypes[code]
	if !ok {
		return nil, &NotFoundError{Kind: KindPhenotype, ID: code}
	}
	return f, nil
}

// Gene returns the gene with the given symbol.
func (s *Store) Gene(symbol string) (*model.Gene, error) {
	g, ok := s.genes[symbol]
	if !ok {
		return nil, &NotFoundError{Kind: KindGene, ID: symbol}
	}
	return g, nil
}

// Patients returns all patients in load order.
func (s *Store) Patients() []*model.Patient {
	return s.patientOrder
}

// Phenotypes returns all phenotypes in load order.
func (s *Store) Phenotypes() []*model.Phenotype {
	return s.phenotypeOrder
}

// Genes returns all genes in load order.
func (s *Store) Genes() []*model.Gene {
	return s.geneOrder
}

// Variants returns all variants in load order.
func (s *Store) Variants() []*model.Variant {
	return s.variantOrder
}

// VariantsOfPatient returns the patient's variants in load order.
func (s *Store) VariantsOfPatient(id string) ([]*model.Variant, error) {
	if _, ok := s.patients[id]; !ok {
		return nil, &NotFoundError{Kind: KindPatient, ID: id}
	}
	return s.variantsByPatient[id], nil
}

// VariantsOfGene returns the variants located on the gene in load order.
func (s *Store) VariantsOfGene(symbol string) ([]*model.Variant, error) {
	if _, ok := s.genes[symbol]; !ok {
		return nil, &NotFoundError{Kind: KindGene, ID: symbol}
	}
	return s.variantsByGene[symbol], nil
}

// GenesOfPhenotype returns the distinct gene symbols associated with the
// phenotype, in association order.
func (s *Store) GenesOfPhenotype(code string) ([]string, error) {
	f, ok := s.phenotypes[code]
	if !ok {
		return nil, &NotFoundError{Kind: KindPhenotype, ID: code}
	}
	return f.Genes, nil
}

// PatientCount returns the number of loaded patients.
func (s *Store) PatientCount() int {
	return len(s.patientOrder)
}

// PhenotypeCount returns the number of loaded phenotypes.
func (s *Store) PhenotypeCount() int {
	return len(s.phenotypeOrder)
}

// GeneCount returns the number of loaded genes.
func (s *Store) GeneCount() int {
	return len(s.geneOrder)
}

// VariantCount returns the number of loaded variants.
func (s *Store) VariantCount() int {
	return len(s.variantOrder)
}
