package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/inodb/vibe-explorer/internal/model"
)

// Variant file column names.
const (
	ColChrom      = "chr"
	ColPosStart   = "pos_start"
	ColPosEnd     = "pos_end"
	ColReference  = "reference"
	ColGenotype   = "genotype"
	ColGeneSymbol = "gene_symbol"
)

// VariantFilePattern matches the per-patient variant files in a dataset
// directory. The file stem is the patient record number.
const VariantFilePattern = "PAC*.csv"

// LoadVariants reads every per-patient variant file in the directory, in
// lexical filename order so repeated loads see the same variant order.
func LoadVariants(dir string, logger *zap.Logger) ([]*model.Variant, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	paths, err := filepath.Glob(filepath.Join(dir, VariantFilePattern))
	if err != nil {
		return nil, fmt.Errorf("scan variant directory: %w", err)
	}
	sort.Strings(paths)

	var variants []*model.Variant
	for _, path := range paths {
		patientID := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		fileVariants, err := loadVariantFile(path, patientID)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded variant file",
			zap.String("file", filepath.Base(path)),
			zap.String("patient", patientID),
			zap.Int("variants", len(fileVariants)))
		variants = append(variants, fileVariants...)
	}
	return variants, nil
}

// loadVariantFile reads one patient's variant file.
func loadVariantFile(path, patientID string) ([]*model.Variant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open variant file: %w", err)
	}
	defer f.Close()

	r := newRecordReader(f)

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &ValidationError{File: path, Line: 1, Message: "no header line found"}
		}
		return nil, fmt.Errorf("read variant header: %w", err)
	}

	cols, err := columnIndices(path, header,
		ColChrom, ColPosStart, ColPosEnd, ColReference, ColGenotype, ColGeneSymbol)
	if err != nil {
		return nil, err
	}

	var variants []*model.Variant
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ValidationError{File: path, Line: line, Message: err.Error()}
		}

		posStart, err := strconv.ParseInt(record[cols[ColPosStart]], 10, 64)
		if err != nil {
			return nil, &ValidationError{File: path, Line: line, Field: ColPosStart,
				Message: fmt.Sprintf("invalid position: %s", record[cols[ColPosStart]])}
		}
		posEnd, err := strconv.ParseInt(record[cols[ColPosEnd]], 10, 64)
		if err != nil {
			return nil, &ValidationError{File: path, Line: line, Field: ColPosEnd,
				Message: fmt.Sprintf("invalid position: %s", record[cols[ColPosEnd]])}
		}

		chrom := record[cols[ColChrom]]
		if chrom == "" {
			return nil, &ValidationError{File: path, Line: line, Field: ColChrom, Message: "empty chromosome"}
		}
		gene := record[cols[ColGeneSymbol]]
		if gene == "" {
			return nil, &ValidationError{File: path, Line: line, Field: ColGeneSymbol, Message: "empty gene symbol"}
		}

		ref := record[cols[ColReference]]
		genotype := record[cols[ColGenotype]]

		variants = append(variants, &model.Variant{
			ID:         model.VariantID(patientID, chrom, posStart, posEnd, ref, genotype),
			PatientID:  patientID,
			GeneSymbol: gene,
			Chrom:      chrom,
			PosStart:   posStart,
			PosEnd:     posEnd,
			Ref:        ref,
			Genotype:   genotype,
		})
	}
	return variants, nil
}
