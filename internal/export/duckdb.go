// Package export writes a loaded dataset to a DuckDB database.
package export

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/inodb/vibe-explorer/internal/store"
)

// Writer writes dataset entities to a DuckDB database file.
type Writer struct {
	db   *sql.DB
	path string
}

// NewWriter opens (or creates) a DuckDB database at the given path.
func NewWriter(path string) (*Writer, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	return &Writer{db: db, path: path}, nil
}

// Close closes the database connection.
func (w *Writer) Close() error {
	return w.db.Close()
}

// CreateSchema creates the database schema for storing the dataset.
func (w *Writer) CreateSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS patients (
			id VARCHAR PRIMARY KEY,
			name VARCHAR
		);

		CREATE TABLE IF NOT EXISTS phenotypes (
			code VARCHAR PRIMARY KEY,
			label VARCHAR,
			uri VARCHAR
		);

		CREATE TABLE IF NOT EXISTS genes (
			symbol VARCHAR PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS patient_phenotypes (
			patient_id VARCHAR,
			phenotype_code VARCHAR,
			PRIMARY KEY (patient_id, phenotype_code)
		);

		CREATE TABLE IF NOT EXISTS phenotype_genes (
			phenotype_code VARCHAR,
			gene_symbol VARCHAR,
			PRIMARY KEY (phenotype_code, gene_symbol)
		);

		CREATE TABLE IF NOT EXISTS variants (
			id VARCHAR PRIMARY KEY,
			patient_id VARCHAR,
			gene_symbol VARCHAR,
			chrom VARCHAR,
			pos_start BIGINT,
			pos_end BIGINT,
			ref VARCHAR,
			genotype VARCHAR
		);

		CREATE INDEX IF NOT EXISTS idx_variants_patient ON variants(patient_id);
		CREATE INDEX IF NOT EXISTS idx_variants_gene ON variants(gene_symbol);
		CREATE INDEX IF NOT EXISTS idx_variants_pos ON variants(chrom, pos_start, pos_end);
	`
	_, err := w.db.Exec(schema)
	return err
}

// WriteStore inserts every entity and relationship from the store.
func (w *Writer) WriteStore(s *store.Store) error {
	for _, p := range s.Patients() {
		if _, err := w.db.Exec(`INSERT INTO patients (id, name) VALUES (?, ?)`, p.ID, nullString(p.Name)); err != nil {
			return fmt.Errorf("insert patient: %w", err)
		}
		for _, code := range p.Phenotypes {
			_, err := w.db.Exec(`INSERT INTO patient_phenotypes (patient_id, phenotype_code) VALUES (?, ?)`, p.ID, code)
			if err != nil {
				return fmt.Errorf("insert patient phenotype: %w", err)
			}
		}
	}

	for _, f := range s.Phenotypes() {
		if _, err := w.db.Exec(`INSERT INTO phenotypes (code, label, uri) VALUES (?, ?, ?)`,
			f.Code, f.Label, nullString(f.URI)); err != nil {
			return fmt.Errorf("insert phenotype: %w", err)
		}
		for _, symbol := range f.Genes {
			_, err := w.db.Exec(`INSERT INTO phenotype_genes (phenotype_code, gene_symbol) VALUES (?, ?)`, f.Code, symbol)
			if err != nil {
				return fmt.Errorf("insert phenotype gene: %w", err)
			}
		}
	}

	for _, g := range s.Genes() {
		if _, err := w.db.Exec(`INSERT INTO genes (symbol) VALUES (?)`, g.Symbol); err != nil {
			return fmt.Errorf("insert gene: %w", err)
		}
	}

	for _, v := range s.Variants() {
		_, err := w.db.Exec(`
			INSERT INTO variants (id, patient_id, gene_symbol, chrom, pos_start, pos_end, ref, genotype)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, v.ID, v.PatientID, v.GeneSymbol, v.Chrom, v.PosStart, v.PosEnd, v.Ref, v.Genotype)
		if err != nil {
			return fmt.Errorf("insert variant: %w", err)
		}
	}

	return nil
}

// VariantCount returns the total number of variants in the database.
func (w *Writer) VariantCount() (int, error) {
	var count int
	err := w.db.QueryRow("SELECT COUNT(*) FROM variants").Scan(&count)
	return count, err
}

// PatientCount returns the total number of patients in the database.
func (w *Writer) PatientCount() (int, error) {
	var count int
	err := w.db.QueryRow("SELECT COUNT(*) FROM patients").Scan(&count)
	return count, err
}

// nullString converts an empty string to NULL for insertion.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
