package query

import (
	"github.com/inodb/vibe-explorer/internal/model"
)

// Filter holds the recognized variant search criteria. A nil field means
// the criterion is not applied; supplied fields combine conjunctively.
type Filter struct {
	PatientID  *string
	GeneSymbol *string
	Chrom      *string // chromosome name, "chr" prefix optional
	Pos        *int64  // exact match against PosStart
}

// IsEmpty returns true if no criterion is set.
func (f Filter) IsEmpty() bool {
	return f.PatientID == nil && f.GeneSymbol == nil && f.Chrom == nil && f.Pos == nil
}

// matches reports whether the variant satisfies every supplied criterion.
func (f Filter) matches(v *model.Variant) bool {
	if f.PatientID != nil && v.PatientID != *f.PatientID {
		return false
	}
	if f.GeneSymbol != nil && v.GeneSymbol != *f.GeneSymbol {
		return false
	}
	if f.Chrom != nil && v.NormalizeChrom() != model.NormalizeChrom(*f.Chrom) {
		return false
	}
	if f.Pos != nil && v.PosStart != *f.Pos {
		return false
	}
	return true
}

// FilterVariants returns the variants matching every supplied criterion, in
// load order. A supplied patient or gene identifier that does not resolve
// fails with a NotFoundError so "no matches" is distinguishable from a bad
// query. An empty filter returns all variants.
func (e *Engine) FilterVariants(f Filter) ([]*model.Variant, error) {
	if f.PatientID != nil {
		if _, err := e.store.Patient(*f.PatientID); err != nil {
			return nil, err
		}
	}
	if f.GeneSymbol != nil {
		if _, err := e.store.Gene(*f.GeneSymbol); err != nil {
			return nil, err
		}
	}

	var result []*model.Variant
	for _, v := range e.store.Variants() {
		if f.matches(v) {
			result = append(result, v)
		}
	}
	return result, nil
}
