package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-explorer/internal/model"
	"github.com/inodb/vibe-explorer/internal/query"
)

func TestPatientsWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewPatientsWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(query.PatientSummary{
		ID:           "PAC01",
		Phenotypes:   []query.PhenotypeRef{{Code: "HP:0001638", Label: "Cardiomyopathy", GeneCount: 2}},
		VariantCount: 3,
	}))
	require.NoError(t, w.Write(query.PatientSummary{ID: "PAC02"}))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "#Patient\t"), "unexpected header: %s", lines[0])
	assert.Equal(t, "PAC01\t-\tHP:0001638\t3", lines[1])
	assert.Equal(t, "PAC02\t-\t-\t0", lines[2], "empty patient gets placeholder fields")
}

func TestGenesWriter_EmptyGene(t *testing.T) {
	var buf bytes.Buffer
	w := NewGenesWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(query.GeneSummary{Symbol: "TNNT2"}))
	require.NoError(t, w.Write(query.GeneSummary{
		Symbol: "MYH7",
		Variants: []query.VariantDescriptor{
			{Chrom: "chr14", PosStart: 23412740, PosEnd: 23412740, PatientID: "PAC01"},
			{Chrom: "chr14", PosStart: 23412793, PosEnd: 23412793, PatientID: "PAC02"},
		},
	}))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	// A gene with no variants still gets a row.
	assert.Equal(t, "TNNT2\t-\t-", lines[1])
	assert.Equal(t, "MYH7\tchr14:23412740-23412740\tPAC01", lines[2])
	assert.Equal(t, "MYH7\tchr14:23412793-23412793\tPAC02", lines[3])
}

func TestPhenotypesWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewPhenotypesWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(query.PhenotypeSummary{
		Code:      "HP:0001638",
		Label:     "Cardiomyopathy",
		URI:       "http://purl.obolibrary.org/obo/HP_0001638",
		GeneCount: 2,
	}))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "HP:0001638\tCardiomyopathy\thttp://purl.obolibrary.org/obo/HP_0001638\t2", lines[1])
}

func TestVariantsWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewVariantsWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Write(&model.Variant{
		ID:         "PAC01:chr14:23412740:23412740:G:G/A",
		PatientID:  "PAC01",
		GeneSymbol: "MYH7",
		Chrom:      "chr14",
		PosStart:   23412740,
		PosEnd:     23412740,
		Ref:        "G",
		Genotype:   "G/A",
	}))
	require.NoError(t, w.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "PAC01\tchr14:23412740-23412740\tG\tG/A\tMYH7", lines[1])
}
