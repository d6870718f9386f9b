package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/oakfield/casedesk/internal/config"
	"github.com/oakfield/casedesk/internal/domain/records"
	"github.com/oakfield/casedesk/internal/fixtures"
	"github.com/oakfield/casedesk/internal/sqlite"
)

func main() {
	var (
		search    = flag.String("search", "", "match title, client, or id (case-insensitive)")
		typeName  = flag.String("type", "", "filter by type: case, assessment, report, document")
		statusStr = flag.String("status", "", "filter by status: active, closed, pending, archived")
		favorites = flag.Bool("favorites", false, "favorites only")
		sortField = flag.String("sort", "updatedAt", "sort field: title, client, owner, createdAt, updatedAt, lastAccessed")
		sortDir   = flag.String("dir", "desc", "sort direction: asc, desc")
		page      = flag.Int("page", 1, "page number (1-based)")
		selectID  = flag.String("select", "", "mark a record id as selected")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	ctx := context.Background()
	recs, err := loadRecords(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to load records", "error", err)
		os.Exit(1)
	}

	criteria := records.Criteria{
		Filter: records.Filter{
			Search:        *search,
			FavoritesOnly: *favorites,
		},
		SortField: records.SortField(*sortField),
		Direction: records.Direction(*sortDir),
		Page:      *page,
	}
	if *typeName != "" {
		ty := records.Type(*typeName)
		criteria.Filter.Type = &ty
	}
	if *statusStr != "" {
		st := records.Status(*statusStr)
		criteria.Filter.Status = &st
	}

	engine := records.NewEngine(records.Options{
		Collation: cfg.View.Collation,
		PageSize:  cfg.View.PageSize,
	}, logger)

	selection := records.NewSelection()
	if *selectID != "" {
		selection.Select(*selectID)
	}

	view := engine.Query(recs, criteria)
	printView(os.Stdout, view, selection)

	if !selection.Empty() && !engine.IsSelectedVisible(recs, criteria.Filter, selection) {
		fmt.Println("note: the selected record is hidden by the current filters")
	}
}

func loadRecords(ctx context.Context, cfg config.Config, logger *slog.Logger) ([]records.Record, error) {
	switch cfg.Source.Driver {
	case "sqlite":
		db, err := sqlite.New(cfg.Source.Path)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		logger.Info("loading records", "driver", "sqlite", "path", cfg.Source.Path)
		return sqlite.NewSource(db).Load(ctx)
	default:
		if cfg.Source.Path == "" {
			logger.Info("loading bundled sample records")
			return fixtures.Sample()
		}
		logger.Info("loading records", "driver", "fixture", "path", cfg.Source.Path)
		return fixtures.NewSource(cfg.Source.Path).Load(ctx)
	}
}

func printView(out io.Writer, view records.View, selection *records.Selection) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, " \tIDENTIFIER\tTITLE\tTYPE\tSTATUS\tCLIENT\tOWNER\tUPDATED")
	for _, r := range view.Visible {
		mark := " "
		if selection.Has(r.ID) {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			mark,
			records.FormatIdentifier(r),
			r.Title,
			r.Type,
			r.Status,
			r.Client,
			r.OwnerName(),
			r.UpdatedAt.Format("2006-01-02"),
		)
	}
	w.Flush()

	fmt.Fprintf(out, "\npage %d of %d (%d matching)", view.Page, view.TotalPages, view.Total)
	if view.HasPrev {
		fmt.Fprint(out, "  [prev]")
	}
	if view.HasNext {
		fmt.Fprint(out, "  [next]")
	}
	fmt.Fprintln(out)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
