package models

// Kit is a named, predefined ordered list of line-item templates used to
// pre-fill a submission (e.g. "Residencial 5kWp"). Kits are loaded once at
// startup from a read-only file and never persisted; expanded kit rows go
// through the same collection path as manually entered rows, with no
// provenance attached.
type Kit struct {
	Name  string     `json:"name"`
	Items []LineItem `json:"items"`
}

// CatalogEntry is one material in the read-only catalog the entry form is
// built from. Quantity is chosen per submission, so the catalog carries
// only the descriptive fields.
type CatalogEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}
