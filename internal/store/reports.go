package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

type Reports struct {
	pool *pgxpool.Pool
}

func NewReports(pool *pgxpool.Pool) *Reports {
	return &Reports{pool: pool}
}

var _ forum.ReportRepo = (*Reports)(nil)

func (r *Reports) ReasonByText(ctx context.Context, reason string) (*forum.ReportReason, error) {
	var rr forum.ReportReason
	err := r.pool.QueryRow(ctx,
		`SELECT id, index, reason FROM report_reason WHERE reason = $1`,
		reason,
	).Scan(&rr.ID, &rr.Index, &rr.Reason)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, forum.ErrNotFound
		}
		return nil, fmt.Errorf("get report reason: %w", err)
	}
	return &rr, nil
}

func (r *Reports) Reasons(ctx context.Context) ([]forum.ReportReason, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, index, reason FROM report_reason ORDER BY index`)
	if err != nil {
		return nil, fmt.Errorf("query report reasons: %w", err)
	}
	defer rows.Close()

	var out []forum.ReportReason
	for rows.Next() {
		var rr forum.ReportReason
		if err := rows.Scan(&rr.ID, &rr.Index, &rr.Reason); err != nil {
			return nil, fmt.Errorf("scan report reason: %w", err)
		}
		out = append(out, rr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate report reasons: %w", err)
	}
	return out, nil
}

// Create relies on the unique index over
// (complainant_id, target_type, target_number, reason_id, md5(content));
// a duplicate report is swallowed by ON CONFLICT and reported as created=false.
func (r *Reports) Create(ctx context.Context, report *forum.Report) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO report (complainant_id, defendant_id, reason_id, status, target_type, target_number, content)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (complainant_id, target_type, target_number, reason_id, md5(content)) DO NOTHING
	`, report.ComplainantID, report.DefendantID, report.ReasonID,
		report.Status, report.TargetType, report.TargetNumber, report.Content)
	if err != nil {
		return false, fmt.Errorf("insert report: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
