package records_test

import (
	"time"

	"github.com/oakfield/casedesk/internal/domain/records"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(n int) *int { return &n }

// sampleRecords is the six-record collection the listing screens are
// developed against.
func sampleRecords() []records.Record {
	johnsonAccessed := date(2023, time.May, 12)
	return []records.Record{
		{
			ID:             "CAS-2023-001",
			Title:          "Johnson Family Case",
			Type:           records.TypeCase,
			Client:         "Johnson, Sarah",
			CreatedAt:      date(2023, time.January, 15),
			UpdatedAt:      date(2023, time.May, 10),
			Status:         records.StatusActive,
			Tags:           []string{"fostering", "annual-review"},
			Priority:       records.PriorityHigh,
			Completeness:   intPtr(75),
			Owner:          "Emma Clarke",
			LastAccessed:   &johnsonAccessed,
			RelatedRecords: []string{"ASS-2023-042"},
			Compliance:     records.ComplianceIncomplete,
			Favorite:       true,
		},
		{
			ID:        "CAS-2023-014",
			Title:     "Smith Placement Case",
			Type:      records.TypeCase,
			Client:    "Smith, John",
			CreatedAt: date(2023, time.March, 2),
			UpdatedAt: date(2023, time.April, 21),
			Status:    records.StatusActive,
			Owner:     "Daniel Reyes",
			Priority:  records.PriorityMedium,
		},
		{
			ID:           "CAS-2022-087",
			Title:        "Brown Family Case",
			Type:         records.TypeCase,
			Client:       "Brown, Lisa",
			CreatedAt:    date(2022, time.June, 14),
			UpdatedAt:    date(2022, time.November, 30),
			Status:       records.StatusClosed,
			Completeness: intPtr(100),
			Compliance:   records.ComplianceComplete,
		},
		{
			ID:        "ASS-2023-042",
			Title:     "Initial Home Assessment",
			Type:      records.TypeAssessment,
			Client:    "Johnson, Sarah",
			CreatedAt: date(2023, time.February, 1),
			UpdatedAt: date(2023, time.March, 15),
			Status:    records.StatusPending,
			Priority:  records.PriorityMedium,
			Owner:     "Emma Clarke",
		},
		{
			ID:        "REP-2023-007",
			Title:     "Quarterly Placement Report",
			Type:      records.TypeReport,
			Client:    "Smith, John",
			CreatedAt: date(2023, time.April, 2),
			UpdatedAt: date(2023, time.April, 5),
			Status:    records.StatusActive,
			Owner:     "Emma Clarke",
			Favorite:  true,
		},
		{
			ID:        "DOC-2023-113",
			Title:     "Medical Consent Form",
			Type:      records.TypeDocument,
			Client:    "Brown, Lisa",
			CreatedAt: date(2023, time.February, 10),
			UpdatedAt: date(2023, time.February, 18),
			Status:    records.StatusArchived,
		},
	}
}

func recordIDs(recs []records.Record) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return ids
}
