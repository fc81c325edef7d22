package models

// Outcome tags the result of a mutation
type Outcome string

const (
	// OutcomeApplied means the mutation was persisted in full
	OutcomeApplied Outcome = "applied"
	// OutcomeDenied means the actor does not own the target; nothing was written
	OutcomeDenied Outcome = "denied"
	// OutcomeNotFound means the target entity does not exist
	OutcomeNotFound Outcome = "not_found"
	// OutcomeInvalid means the payload failed validation; nothing was written
	OutcomeInvalid Outcome = "invalid"
)

// MutationResult is the single decision a mutation resolves to. It is
// plain data; dispatching it (redirect, 404, form re-render) belongs to
// the transport layer.
type MutationResult struct {
	Outcome     Outcome      `json:"outcome"`
	RedirectTo  string       `json:"redirect_to,omitempty"`
	FieldErrors []FieldError `json:"field_errors,omitempty"`
	EntityID    string       `json:"entity_id,omitempty"`
}

// Claims is the actor identity carried in an access token
type Claims struct {
	UserID   string
	Username string
}
