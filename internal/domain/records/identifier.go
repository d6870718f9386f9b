package records

import (
	"fmt"
	"strings"
)

// FormatIdentifier derives the canonical human-facing identifier shown on
// case paperwork. It is a display convenience recomputed on demand, never a
// key: two records of the same type created the same day with the same digit
// sequence produce the same identifier, and the opaque ID stays the only
// stable handle.
//
// Cases, reports, and documents use a day-month-year token
// (CAS-150123-001); assessments use the creation year (ASS-2023-042).
func FormatIdentifier(r Record) string {
	seq := sequenceToken(r.ID)
	switch r.Type {
	case TypeAssessment:
		return fmt.Sprintf("ASS-%04d-%s", r.CreatedAt.Year(), seq)
	case TypeCase:
		return fmt.Sprintf("CAS-%s-%s", r.CreatedAt.Format("020106"), seq)
	case TypeReport:
		return fmt.Sprintf("REP-%s-%s", r.CreatedAt.Format("020106"), seq)
	case TypeDocument:
		return fmt.Sprintf("DOC-%s-%s", r.CreatedAt.Format("020106"), seq)
	default:
		return fmt.Sprintf("REC-%s-%s", r.CreatedAt.Format("020106"), seq)
	}
}

// sequenceToken extracts a 3-digit sequence from the last digit run in the
// opaque ID, defaulting to 001 when the ID carries no digits.
func sequenceToken(id string) string {
	var runs []string
	var cur strings.Builder
	for _, c := range id {
		if c >= '0' && c <= '9' {
			cur.WriteRune(c)
			continue
		}
		if cur.Len() > 0 {
			runs = append(runs, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		runs = append(runs, cur.String())
	}
	if len(runs) == 0 {
		return "001"
	}
	run := runs[len(runs)-1]
	if len(run) > 3 {
		run = run[len(run)-3:]
	}
	for len(run) < 3 {
		run = "0" + run
	}
	return run
}
