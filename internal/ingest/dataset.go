package ingest

import (
	"go.uber.org/zap"

	"github.com/inodb/vibe-explorer/internal/model"
)

// Dataset holds the four entity lists produced by one ingestion pass.
type Dataset struct {
	Patients   []*model.Patient
	Phenotypes []*model.Phenotype
	Genes      []*model.Gene
	Variants   []*model.Variant
}

// LoadDataset reads the three source locations and assembles a complete
// dataset. The source files carry no gene list of their own, so the gene
// universe is derived as the first-seen union of gene symbols from the
// phenotype associations and the variant records.
func LoadDataset(phenotypesPath, patientsPath, variantsDir string, logger *zap.Logger) (*Dataset, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	phenotypes, err := LoadPhenotypes(phenotypesPath)
	if err != nil {
		return nil, err
	}
	patients, err := LoadPatients(patientsPath)
	if err != nil {
		return nil, err
	}
	variants, err := LoadVariants(variantsDir, logger)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Patients:   patients,
		Phenotypes: phenotypes,
		Genes:      DeriveGenes(phenotypes, variants),
		Variants:   variants,
	}, nil
}

// DeriveGenes builds the gene list from phenotype associations and variant
// records, keeping first-seen order.
func DeriveGenes(phenotypes []*model.Phenotype, variants []*model.Variant) []*model.Gene {
	seen := make(map[string]bool)
	var genes []*model.Gene
	add := func(symbol string) {
		if symbol == "" || seen[symbol] {
			return
		}
		seen[symbol] = true
		genes = append(genes, &model.Gene{Symbol: symbol})
	}

	for _, f := range phenotypes {
		for _, symbol := range f.Genes {
			add(symbol)
		}
	}
	for _, v := range variants {
		add(v.GeneSymbol)
	}
	return genes
}
