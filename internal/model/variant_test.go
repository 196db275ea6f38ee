package model

import "testing"

func TestVariant_IsSNV(t *testing.T) {
	snv := &Variant{Chrom: "12", PosStart: 25245351, PosEnd: 25245351, Ref: "C"}
	if !snv.IsSNV() {
		t.Error("Single-base variant should be an SNV")
	}

	deletion := &Variant{Chrom: "1", PosStart: 100, PosEnd: 102, Ref: "CTA"}
	if deletion.IsSNV() {
		t.Error("Multi-base variant should not be an SNV")
	}
}

func TestVariant_NormalizeChrom(t *testing.T) {
	tests := []struct {
		chrom string
		want  string
	}{
		{"chr12", "12"},
		{"12", "12"},
		{"chrX", "X"},
		{"chr", "chr"},
	}

	for _, tt := range tests {
		v := &Variant{Chrom: tt.chrom}
		if got := v.NormalizeChrom(); got != tt.want {
			t.Errorf("NormalizeChrom(%q) = %q, want %q", tt.chrom, got, tt.want)
		}
	}
}

func TestVariant_String(t *testing.T) {
	v := &Variant{
		Chrom:      "chr14",
		PosStart:   23412740,
		PosEnd:     23412740,
		Ref:        "G",
		Genotype:   "G/A",
		GeneSymbol: "MYH7",
	}
	want := "chr14:23412740:23412740:G:G/A (MYH7)"
	if got := v.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestVariantID(t *testing.T) {
	got := VariantID("PAC01", "chr14", 23412740, 23412740, "G", "G/A")
	want := "PAC01:chr14:23412740:23412740:G:G/A"
	if got != want {
		t.Errorf("VariantID = %q, want %q", got, want)
	}
}

func TestPatient_AddPhenotype(t *testing.T) {
	p := &Patient{ID: "PAC01"}
	p.AddPhenotype("H1")
	p.AddPhenotype("H2")
	p.AddPhenotype("H1")

	if len(p.Phenotypes) != 2 {
		t.Fatalf("Expected 2 phenotypes, got %v", p.Phenotypes)
	}
	if p.Phenotypes[0] != "H1" || p.Phenotypes[1] != "H2" {
		t.Errorf("Expected assignment order preserved, got %v", p.Phenotypes)
	}
}

func TestPhenotype_AddGene(t *testing.T) {
	f := &Phenotype{Code: "H1"}
	f.AddGene("G1")
	f.AddGene("G1")
	f.AddGene("G2")

	if f.GeneCount() != 2 {
		t.Fatalf("Expected 2 distinct genes, got %d", f.GeneCount())
	}
	if !f.HasGene("G1") || !f.HasGene("G2") || f.HasGene("G3") {
		t.Errorf("Unexpected gene membership: %v", f.Genes)
	}
}
