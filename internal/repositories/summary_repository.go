package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intconfig "guidance-portal/internal/config"
	intdb "guidance-portal/internal/db"
	"guidance-portal/internal/domain/models"
)

type SummaryRepository struct {
	DB *sql.DB
}

func (r SummaryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Counts aggregates portal totals. Missing tables count as zero.
func (r SummaryRepository) Counts(ctx context.Context) (models.SummaryCounts, error) {
	var out models.SummaryCounts
	db := r.db()
	if db == nil {
		return out, errNoDB
	}

	targets := []struct {
		table string
		where string
		dst   *int
	}{
		{"guidance", "", &out.Guidances},
		{"school", "", &out.Schools},
		{"school", "WHERE is_approved = 1", &out.ApprovedSchools},
		{"booking", "", &out.Bookings},
		{"teacher", "", &out.Teachers},
	}
	for _, t := range targets {
		if !intdb.HasTable(ctx, db, t.table) {
			continue
		}
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.table+" "+t.where).Scan(t.dst); err != nil {
			return out, fmt.Errorf("count %s: %w", t.table, err)
		}
	}
	return out, nil
}
