// Package ingest parses the explorer's semicolon-delimited source files into
// validated entity records.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/inodb/vibe-explorer/internal/model"
)

// Phenotype metadata column names.
const (
	ColCodigo = "codigo"
	ColLabel  = "label"
	ColURI    = "uri"
	ColGene   = "gene"
)

// newRecordReader opens a semicolon-delimited CSV reader over the file.
func newRecordReader(f *os.File) *csv.Reader {
	r := csv.NewReader(f)
	r.Comma = ';'
	r.TrimLeadingSpace = true
	return r
}

// columnIndices resolves required column names to their header positions.
func columnIndices(file string, header []string, required ...string) (map[string]int, error) {
	indices := make(map[string]int, len(required))
	for i, col := range header {
		indices[col] = i
	}
	for _, name := range required {
		if _, ok := indices[name]; !ok {
			return nil, &ValidationError{
				File:    file,
				Line:    1,
				Field:   name,
				Message: "required column not found in header",
			}
		}
	}
	return indices, nil
}

// LoadPhenotypes reads the phenotype metadata file. Each row is one
// phenotype-gene association; rows repeating a code accumulate genes on the
// same phenotype. Returns phenotypes in first-seen order.
func LoadPhenotypes(path string) ([]*model.Phenotype, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open phenotype file: %w", err)
	}
	defer f.Close()

	r := newRecordReader(f)

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &ValidationError{File: path, Line: 1, Message: "no header line found"}
		}
		return nil, fmt.Errorf("read phenotype header: %w", err)
	}

	cols, err := columnIndices(path, header, ColCodigo, ColLabel, ColURI, ColGene)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]*model.Phenotype)
	var order []*model.Phenotype

	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ValidationError{File: path, Line: line, Message: err.Error()}
		}

		code := record[cols[ColCodigo]]
		if code == "" {
			return nil, &ValidationError{File: path, Line: line, Field: ColCodigo, Message: "empty phenotype code"}
		}

		ph, ok := byCode[code]
		if !ok {
			ph = &model.Phenotype{
				Code:  code,
				Label: record[cols[ColLabel]],
				URI:   record[cols[ColURI]],
			}
			byCode[code] = ph
			order = append(order, ph)
		}

		gene := record[cols[ColGene]]
		if gene == "" {
			return nil, &ValidationError{File: path, Line: line, Field: ColGene, Message: "empty gene symbol"}
		}
		ph.AddGene(gene)
	}

	return order, nil
}
