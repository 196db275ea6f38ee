package store

import "fmt"

// Entity kinds used in error reporting.
const (
	KindPatient   = "patient"
	KindPhenotype = "phenotype"
	KindGene      = "gene"
	KindVariant   = "variant"
)

// NotFoundError reports a query for an identifier absent from the loaded dataset.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// IntegrityError reports a dataset that references an entity that does not
// exist, or carries duplicate identifiers. Raised at load time; the load
// attempt is rejected as a whole.
type IntegrityError struct {
	Kind    string // Entity kind carrying the bad reference
	ID      string // Identifier of the offending record
	Ref     string // The dangling or duplicated identifier
	Message string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity error in %s %q: %s %q", e.Kind, e.ID, e.Message, e.Ref)
}
