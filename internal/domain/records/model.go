package records

import "time"

// Type classifies a record within the agency's case files.
type Type string

const (
	TypeCase       Type = "case"
	TypeAssessment Type = "assessment"
	TypeReport     Type = "report"
	TypeDocument   Type = "document"
)

// Status represents the workflow status of a record.
type Status string

const (
	StatusActive   Status = "active"
	StatusClosed   Status = "closed"
	StatusPending  Status = "pending"
	StatusArchived Status = "archived"
)

// Priority is an optional urgency marker; the empty string means unset.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Compliance is an optional compliance marker; the empty string means unset.
type Compliance string

const (
	ComplianceComplete   Compliance = "complete"
	ComplianceIncomplete Compliance = "incomplete"
	ComplianceOverdue    Compliance = "overdue"
)

// UnassignedOwner is the display name used when a record has no owner.
const UnassignedOwner = "Unassigned"

// Record is a case/assessment/report/document entity managed by the agency.
// The engine never creates, mutates, or destroys records; a source supplies
// the collection and every derived view is a fresh slice.
type Record struct {
	ID             string     `json:"id" yaml:"id"`
	Title          string     `json:"title" yaml:"title"`
	Type           Type       `json:"type" yaml:"type"`
	Client         string     `json:"client" yaml:"client"`
	CreatedAt      time.Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" yaml:"updated_at"`
	Status         Status     `json:"status" yaml:"status"`
	Tags           []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
	Priority       Priority   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Completeness   *int       `json:"completeness,omitempty" yaml:"completeness,omitempty"`
	Owner          string     `json:"owner,omitempty" yaml:"owner,omitempty"`
	LastAccessed   *time.Time `json:"last_accessed,omitempty" yaml:"last_accessed,omitempty"`
	RelatedRecords []string   `json:"related_records,omitempty" yaml:"related_records,omitempty"`
	Compliance     Compliance `json:"compliance,omitempty" yaml:"compliance,omitempty"`
	Favorite       bool       `json:"favorite,omitempty" yaml:"favorite,omitempty"`
}

// Linked reports whether the record references any other records.
// Dangling references are tolerated; no integrity check is performed.
func (r Record) Linked() bool {
	return len(r.RelatedRecords) > 0
}

// OwnerName returns the assignee display name, or UnassignedOwner when the
// record has no owner.
func (r Record) OwnerName() string {
	if r.Owner == "" {
		return UnassignedOwner
	}
	return r.Owner
}
