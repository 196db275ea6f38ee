package model

// Patient represents a patient identified by their record number.
type Patient struct {
	ID         string   // Record number (e.g., PAC01)
	Name       string   // Optional display name
	Phenotypes []string // Assigned phenotype codes, in assignment order, deduplicated
}

// HasPhenotype returns true if the phenotype code is assigned to the patient.
func (p *Patient) HasPhenotype(code string) bool {
	for _, c := range p.Phenotypes {
		if c == code {
			return true
		}
	}
	return false
}

// AddPhenotype appends a phenotype code, ignoring repeats.
func (p *Patient) AddPhenotype(code string) {
	if !p.HasPhenotype(code) {
		p.Phenotypes = append(p.Phenotypes, code)
	}
}
