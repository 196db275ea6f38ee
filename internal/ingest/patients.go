package ingest

import (
	"fmt"
	"io"
	"os"

	"github.com/inodb/vibe-explorer/internal/model"
)

// Patient metadata column names.
const (
	ColExpediente = "expediente"
	ColFenotipo   = "fenotipo"
	ColNombre     = "nombre"
)

// LoadPatients reads the patient metadata file. Each row assigns one
// phenotype code to one patient record number; rows repeating a record
// number accumulate phenotypes. The optional "nombre" column fills the
// patient display name. Returns patients in first-seen order.
func LoadPatients(path string) ([]*model.Patient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open patient file: %w", err)
	}
	defer f.Close()

	r := newRecordReader(f)
	// Rows may omit trailing optional columns.
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &ValidationError{File: path, Line: 1, Message: "no header line found"}
		}
		return nil, fmt.Errorf("read patient header: %w", err)
	}

	cols, err := columnIndices(path, header, ColExpediente, ColFenotipo)
	if err != nil {
		return nil, err
	}
	nameCol, hasName := indexOf(header, ColNombre)

	byID := make(map[string]*model.Patient)
	var order []*model.Patient

	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ValidationError{File: path, Line: line, Message: err.Error()}
		}
		need := cols[ColExpediente]
		if cols[ColFenotipo] > need {
			need = cols[ColFenotipo]
		}
		if len(record) <= need {
			return nil, &ValidationError{File: path, Line: line, Field: ColFenotipo, Message: "missing value"}
		}

		id := record[cols[ColExpediente]]
		if id == "" {
			return nil, &ValidationError{File: path, Line: line, Field: ColExpediente, Message: "empty patient record number"}
		}

		p, ok := byID[id]
		if !ok {
			p = &model.Patient{ID: id}
			byID[id] = p
			order = append(order, p)
		}
		if hasName && nameCol < len(record) && p.Name == "" {
			p.Name = record[nameCol]
		}

		code := record[cols[ColFenotipo]]
		if code == "" {
			return nil, &ValidationError{File: path, Line: line, Field: ColFenotipo, Message: "empty phenotype code"}
		}
		p.AddPhenotype(code)
	}

	return order, nil
}

// indexOf returns the position of a column name in the header.
func indexOf(header []string, name string) (int, bool) {
	for i, col := range header {
		if col == name {
			return i, true
		}
	}
	return -1, false
}
