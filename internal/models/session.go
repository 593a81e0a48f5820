package models

import "time"

// PreviewSession accumulates pasted TSV blocks, uploaded file references and
// form fields for one operator's draft. Sessions are keyed state owned by the
// session manager; nothing in the core composer touches them.
type PreviewSession struct {
	ID           string       `json:"id"`
	Blocks       []string     `json:"-"`
	FileIDs      []string     `json:"fileIds"`
	Fields       NoticeFields `json:"fields"`
	CreatedAt    time.Time    `json:"createdAt"`
	LastAccessed time.Time    `json:"lastAccessed"`
}

// NoticeFields are the free-form form values a draft is composed from.
type NoticeFields struct {
	JiraRef          string   `json:"jiraRef"`
	PoP              string   `json:"pop"`
	Equipment        string   `json:"equipment"`
	Line             string   `json:"line"`
	StartDate        string   `json:"startDate"`
	StartTime        string   `json:"startTime"`
	EndDate          string   `json:"endDate"`
	EndTime          string   `json:"endTime"`
	UTCOffset        string   `json:"utcOffset"`
	OverrideDowntime string   `json:"overrideDowntime"`
	PurposePresets   []string `json:"purposePresets"`
	PurposeFree      string   `json:"purposeFree"`
	IncludeOther     bool     `json:"includeOther"`
}
