package models

// SessionSummary is the listing view of a stored design session.
type SessionSummary struct {
	SessionID string `json:"sessionId"`
	Ident     string `json:"ident"`
	Name      string `json:"name"`
	Preset    string `json:"preset"`
}
