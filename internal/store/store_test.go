package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-explorer/internal/model"
)

// testEntities builds a small consistent dataset:
// P1 has phenotype H1 (genes G1, G2) and no variants;
// P2 has no phenotypes and one variant V1 on G1 at chr1:100.
func testEntities() ([]*model.Patient, []*model.Phenotype, []*model.Gene, []*model.Variant) {
	patients := []*model.Patient{
		{ID: "P1", Phenotypes: []string{"H1"}},
		{ID: "P2"},
	}
	phenotypes := []*model.Phenotype{
		{Code: "H1", Label: "Test phenotype", Genes: []string{"G1", "G2"}},
	}
	genes := []*model.Gene{
		{Symbol: "G1"},
		{Symbol: "G2"},
	}
	variants := []*model.Variant{
		{ID: "V1", PatientID: "P2", GeneSymbol: "G1", Chrom: "chr1", PosStart: 100, PosEnd: 100, Ref: "C", Genotype: "C/A"},
	}
	return patients, phenotypes, genes, variants
}

func loadedStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	patients, phenotypes, genes, variants := testEntities()
	require.NoError(t, s.Load(patients, phenotypes, genes, variants))
	return s
}

func TestStore_Load(t *testing.T) {
	s := loadedStore(t)

	assert.Equal(t, 2, s.PatientCount())
	assert.Equal(t, 1, s.PhenotypeCount())
	assert.Equal(t, 2, s.GeneCount())
	assert.Equal(t, 1, s.VariantCount())
}

func TestStore_LoadTwiceFails(t *testing.T) {
	s := loadedStore(t)
	err := s.Load(nil, nil, nil, nil)
	require.Error(t, err)
}

func TestStore_Lookups(t *testing.T) {
	s := loadedStore(t)

	p, err := s.Patient("P1")
	require.NoError(t, err)
	assert.Equal(t, []string{"H1"}, p.Phenotypes)

	f, err := s.Phenotype("H1")
	require.NoError(t, err)
	assert.Equal(t, 2, f.GeneCount())

	g, err := s.Gene("G2")
	require.NoError(t, err)
	assert.Equal(t, "G2", g.Symbol)
}

func TestStore_NotFound(t *testing.T) {
	s := loadedStore(t)

	_, err := s.Patient("unknown")
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, KindPatient, notFound.Kind)
	assert.Equal(t, "unknown", notFound.ID)

	_, err = s.Gene("nope")
	assert.True(t, errors.As(err, &notFound))

	_, err = s.VariantsOfPatient("unknown")
	assert.True(t, errors.As(err, &notFound))

	_, err = s.VariantsOfGene("nope")
	assert.True(t, errors.As(err, &notFound))

	_, err = s.GenesOfPhenotype("nope")
	assert.True(t, errors.As(err, &notFound))
}

func TestStore_Relations(t *testing.T) {
	s := loadedStore(t)

	// P1 has no variants; a known patient gets an empty, error-free result.
	variants, err := s.VariantsOfPatient("P1")
	require.NoError(t, err)
	assert.Empty(t, variants)

	variants, err = s.VariantsOfPatient("P2")
	require.NoError(t, err)
	require.Len(t, variants, 1)
	assert.Equal(t, "V1", variants[0].ID)

	// G2 has no variants but is a known gene.
	variants, err = s.VariantsOfGene("G2")
	require.NoError(t, err)
	assert.Empty(t, variants)

	genes, err := s.GenesOfPhenotype("H1")
	require.NoError(t, err)
	assert.Equal(t, []string{"G1", "G2"}, genes)
}

func TestStore_VariantAttribution(t *testing.T) {
	s := loadedStore(t)

	// Every variant is attributed to exactly one patient.
	total := 0
	for _, p := range s.Patients() {
		variants, err := s.VariantsOfPatient(p.ID)
		require.NoError(t, err)
		total += len(variants)
	}
	assert.Equal(t, s.VariantCount(), total)
}

func TestStore_LoadRejectsDanglingVariantGene(t *testing.T) {
	patients, phenotypes, genes, variants := testEntities()
	variants = append(variants, &model.Variant{
		ID: "V2", PatientID: "P1", GeneSymbol: "MISSING", Chrom: "chr2", PosStart: 5, PosEnd: 5,
	})

	err := New().Load(patients, phenotypes, genes, variants)
	require.Error(t, err)

	var integrity *IntegrityError
	require.True(t, errors.As(err, &integrity))
	assert.Equal(t, KindVariant, integrity.Kind)
	assert.Equal(t, "MISSING", integrity.Ref)
}

func TestStore_RejectedLoadLeavesStoreEmpty(t *testing.T) {
	patients, phenotypes, genes, variants := testEntities()
	bad := append([]*model.Variant{}, variants...)
	bad = append(bad, &model.Variant{
		ID: "V2", PatientID: "P1", GeneSymbol: "MISSING", Chrom: "chr2", PosStart: 5, PosEnd: 5,
	})

	s := New()
	err := s.Load(patients, phenotypes, genes, bad)
	var integrity *IntegrityError
	require.True(t, errors.As(err, &integrity))

	// Nothing admitted before the bad record is visible.
	assert.Equal(t, 0, s.PatientCount())
	assert.Equal(t, 0, s.PhenotypeCount())
	assert.Equal(t, 0, s.GeneCount())
	assert.Equal(t, 0, s.VariantCount())
	assert.Empty(t, s.Patients())
	assert.Empty(t, s.Variants())

	var notFound *NotFoundError
	_, err = s.Patient("P1")
	require.True(t, errors.As(err, &notFound))
	_, err = s.Gene("G1")
	require.True(t, errors.As(err, &notFound))

	// The corrected dataset loads into the same store.
	require.NoError(t, s.Load(patients, phenotypes, genes, variants))
	assert.Equal(t, 2, s.PatientCount())
	assert.Equal(t, 1, s.VariantCount())
}

func TestStore_LoadRejectsDanglingVariantPatient(t *testing.T) {
	patients, phenotypes, genes, variants := testEntities()
	variants = append(variants, &model.Variant{
		ID: "V2", PatientID: "GHOST", GeneSymbol: "G1", Chrom: "chr2", PosStart: 5, PosEnd: 5,
	})

	err := New().Load(patients, phenotypes, genes, variants)
	var integrity *IntegrityError
	require.True(t, errors.As(err, &integrity))
	assert.Equal(t, "GHOST", integrity.Ref)
}

func TestStore_LoadRejectsDanglingPhenotypeGene(t *testing.T) {
	patients, phenotypes, genes, variants := testEntities()
	phenotypes[0].Genes = append(phenotypes[0].Genes, "MISSING")

	err := New().Load(patients, phenotypes, genes, variants)
	var integrity *IntegrityError
	require.True(t, errors.As(err, &integrity))
	assert.Equal(t, KindPhenotype, integrity.Kind)
}

func TestStore_LoadRejectsDanglingPatientPhenotype(t *testing.T) {
	patients, phenotypes, genes, variants := testEntities()
	patients[1].Phenotypes = []string{"H9"}

	err := New().Load(patients, phenotypes, genes, variants)
	var integrity *IntegrityError
	require.True(t, errors.As(err, &integrity))
	assert.Equal(t, KindPatient, integrity.Kind)
	assert.Equal(t, "H9", integrity.Ref)
}

func TestStore_LoadRejectsDuplicateVariantID(t *testing.T) {
	patients, phenotypes, genes, variants := testEntities()
	dup := *variants[0]
	variants = append(variants, &dup)

	err := New().Load(patients, phenotypes, genes, variants)
	var integrity *IntegrityError
	require.True(t, errors.As(err, &integrity))
	assert.Equal(t, KindVariant, integrity.Kind)
	assert.Contains(t, integrity.Message, "duplicate")
}

func TestStore_LoadRejectsDuplicatePatientID(t *testing.T) {
	patients, phenotypes, genes, variants := testEntities()
	patients = append(patients, &model.Patient{ID: "P1"})

	err := New().Load(patients, phenotypes, genes, variants)
	var integrity *IntegrityError
	require.True(t, errors.As(err, &integrity))
	assert.Equal(t, KindPatient, integrity.Kind)
}

func TestStore_OrderPreserved(t *testing.T) {
	patients := []*model.Patient{{ID: "B"}, {ID: "A"}, {ID: "C"}}
	genes := []*model.Gene{{Symbol: "Z"}, {Symbol: "Y"}}
	variants := []*model.Variant{
		{ID: "v1", PatientID: "B", GeneSymbol: "Z", Chrom: "1", PosStart: 2, PosEnd: 2},
		{ID: "v2", PatientID: "A", GeneSymbol: "Z", Chrom: "1", PosStart: 1, PosEnd: 1},
		{ID: "v3", PatientID: "B", GeneSymbol: "Y", Chrom: "2", PosStart: 9, PosEnd: 9},
	}

	s := New()
	require.NoError(t, s.Load(patients, nil, genes, variants))

	ids := make([]string, 0, 3)
	for _, p := range s.Patients() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"B", "A", "C"}, ids)

	got := make([]string, 0, 3)
	for _, v := range s.Variants() {
		got = append(got, v.ID)
	}
	assert.Equal(t, []string{"v1", "v2", "v3"}, got)

	// Per-patient index keeps variant load order.
	bVariants, err := s.VariantsOfPatient("B")
	require.NoError(t, err)
	require.Len(t, bVariants, 2)
	assert.Equal(t, "v1", bVariants[0].ID)
	assert.Equal(t, "v3", bVariants[1].ID)
}
