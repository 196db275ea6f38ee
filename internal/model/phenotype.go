package model

// Phenotype represents an observable trait associated with a set of genes.
type Phenotype struct {
	Code  string   // Unique phenotype code (e.g., HP:0001631)
	Label string   // Human-readable label
	URI   string   // Ontology URI
	Genes []string // Associated gene symbols, in association order, deduplicated
}

// HasGene returns true if the gene symbol is associated with the phenotype.
func (f *Phenotype) HasGene(symbol string) bool {
	for _, g := range f.Genes {
		if g == symbol {
			return true
		}
	}
	return false
}

// AddGene appends a gene symbol, ignoring repeats.
func (f *Phenotype) AddGene(symbol string) {
	if !f.HasGene(symbol) {
		f.Genes = append(f.Genes, symbol)
	}
}

// GeneCount returns the number of distinct genes associated with the phenotype.
func (f *Phenotype) GeneCount() int {
	return len(f.Genes)
}
