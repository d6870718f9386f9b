package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/oakfield/casedesk/internal/domain/records"
)

// Source implements records.Source over a SQLite database. It never writes.
type Source struct {
	db *DB
}

// NewSource creates a source reading from db.
func NewSource(db *DB) *Source {
	return &Source{db: db}
}

// Load reads every record in insertion order, resolves its links, and
// validates it at the boundary.
func (s *Source) Load(ctx context.Context) ([]records.Record, error) {
	query := `
		SELECT
			id, title, type, client, created_at, updated_at, status,
			tags, priority, completeness, owner, last_accessed,
			compliance, favorite
		FROM records
		ORDER BY rowid
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var recs []records.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	links, err := s.loadLinks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		recs[i].RelatedRecords = links[recs[i].ID]
		if err := records.Validate(recs[i]); err != nil {
			return nil, fmt.Errorf("stored record: %w", err)
		}
	}

	return recs, nil
}

func scanRecord(rows *sql.Rows) (records.Record, error) {
	var (
		rec          records.Record
		tags         string
		priority     sql.NullString
		completeness sql.NullInt64
		owner        sql.NullString
		lastAccessed sql.NullTime
		compliance   sql.NullString
	)

	err := rows.Scan(
		&rec.ID,
		&rec.Title,
		&rec.Type,
		&rec.Client,
		&rec.CreatedAt,
		&rec.UpdatedAt,
		&rec.Status,
		&tags,
		&priority,
		&completeness,
		&owner,
		&lastAccessed,
		&compliance,
		&rec.Favorite,
	)
	if err != nil {
		return records.Record{}, fmt.Errorf("scan record: %w", err)
	}

	if tags != "" {
		rec.Tags = strings.Split(tags, ",")
	}
	if priority.Valid {
		rec.Priority = records.Priority(priority.String)
	}
	if completeness.Valid {
		n := int(completeness.Int64)
		rec.Completeness = &n
	}
	if owner.Valid {
		rec.Owner = owner.String
	}
	if lastAccessed.Valid {
		t := lastAccessed.Time
		rec.LastAccessed = &t
	}
	if compliance.Valid {
		rec.Compliance = records.Compliance(compliance.String)
	}

	return rec, nil
}

func (s *Source) loadLinks(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT record_id, related_id
		FROM record_links
		ORDER BY record_id, position
	`)
	if err != nil {
		return nil, fmt.Errorf("query record links: %w", err)
	}
	defer rows.Close()

	links := make(map[string][]string)
	for rows.Next() {
		var recordID, relatedID string
		if err := rows.Scan(&recordID, &relatedID); err != nil {
			return nil, fmt.Errorf("scan record link: %w", err)
		}
		links[recordID] = append(links[recordID], relatedID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate record links: %w", err)
	}
	return links, nil
}
