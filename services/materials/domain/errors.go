package domain

import "errors"

// Sentinel errors for the materials domain. Use errors.Is() to check these.
var (
	// ErrNoItemsSelected indicates a submission contained no line item with a
	// positive quantity. Recoverable: the caller redirects back to the entry
	// form and no record is created.
	ErrNoItemsSelected = errors.New("no items selected")

	// ErrMissingClient indicates the submission had no client name.
	ErrMissingClient = errors.New("client is required")

	// ErrMissingTechnician indicates the submission had no technician name.
	ErrMissingTechnician = errors.New("technician is required")

	// ErrListNotFound indicates the requested material list does not exist.
	ErrListNotFound = errors.New("material list not found")

	// ErrDocumentNotFound indicates a list exists but its rendered document
	// file is missing from storage.
	ErrDocumentNotFound = errors.New("document file not found")

	// ErrUnsupportedLogoType indicates an uploaded logo has a file extension
	// outside the allow-list (png, jpg, jpeg, gif).
	ErrUnsupportedLogoType = errors.New("unsupported logo file type")
)
