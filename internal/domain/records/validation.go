package records

import (
	"fmt"
	"strings"
)

// Validate checks a source-supplied record against the field semantics the
// engine assumes. The engine itself never validates; sources call this at the
// boundary so every downstream computation can be total.
func Validate(r Record) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: record %q has empty title", ErrInvalidRecord, r.ID)
	}
	switch r.Type {
	case TypeCase, TypeAssessment, TypeReport, TypeDocument:
	default:
		return fmt.Errorf("%w: record %q has unknown type %q", ErrInvalidRecord, r.ID, r.Type)
	}
	switch r.Status {
	case StatusActive, StatusClosed, StatusPending, StatusArchived:
	default:
		return fmt.Errorf("%w: record %q has unknown status %q", ErrInvalidRecord, r.ID, r.Status)
	}
	switch r.Priority {
	case "", PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
	default:
		return fmt.Errorf("%w: record %q has unknown priority %q", ErrInvalidRecord, r.ID, r.Priority)
	}
	switch r.Compliance {
	case "", ComplianceComplete, ComplianceIncomplete, ComplianceOverdue:
	default:
		return fmt.Errorf("%w: record %q has unknown compliance %q", ErrInvalidRecord, r.ID, r.Compliance)
	}
	if r.CreatedAt.IsZero() {
		return fmt.Errorf("%w: record %q has no creation time", ErrInvalidRecord, r.ID)
	}
	if r.UpdatedAt.Before(r.CreatedAt) {
		return fmt.Errorf("%w: record %q updated before created", ErrInvalidRecord, r.ID)
	}
	if r.Completeness != nil && (*r.Completeness < 0 || *r.Completeness > 100) {
		return fmt.Errorf("%w: record %q completeness %d out of range", ErrInvalidRecord, r.ID, *r.Completeness)
	}
	return nil
}
