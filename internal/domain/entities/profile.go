package entities

import "financiamento_xpto/internal/domain/document"

// CustomerProfile is the read-only pre-fill source for the wizard's personal
// step. Profiles are owned by the accounts service; this service never writes
// them.
type CustomerProfile struct {
	UserID        string        `json:"user_id"`
	FullName      string        `json:"full_name"`
	TaxIdentifier string        `json:"tax_identifier"`
	DocumentKind  document.Kind `json:"document_kind"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
}
