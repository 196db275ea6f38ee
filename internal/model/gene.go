package model

// Gene represents a gene known to the dataset. Variants located on the
// gene are reachable through the store's gene index, not stored here.
type Gene struct {
	Symbol string // Unique gene symbol (e.g., KRAS)
}
