package models

// NotificationDraft is the final copy-paste payload: a subject line and a
// plain-text body. Purely derived, no independent lifecycle.
type NotificationDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`

	// CalculatedDowntime is the humanized computed duration, independent of
	// any override the operator typed. Empty when no window was computed.
	CalculatedDowntime string `json:"calculatedDowntime,omitempty"`
}
