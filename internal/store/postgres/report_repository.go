package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/lineagecheck/core/lineage"
)

const reportTable = "verification_reports"

var reportColumns = []string{
	"id", "source_id", "source_fqn", "target_id", "target_fqn", "edge_found", "matching_edges",
	"expected_count", "actual_count", "missing", "extra", "passed", "created_at",
}

type ReportFilter struct {
	TargetFQN string
	Size      int
}

type ReportRepository struct {
	client *Client
}

// NewReportRepository initializes verification report repository
func NewReportRepository(client *Client) (*ReportRepository, error) {
	if client == nil {
		return nil, errNilPostgresClient
	}
	return &ReportRepository{
		client: client,
	}, nil
}

// Insert stores a verification report.
func (r *ReportRepository) Insert(ctx context.Context, report lineage.Report) error {
	if report.ID == "" {
		return errors.New("report does not have ID")
	}
	m := newReportModel(report)

	query, args, err := sq.Insert(reportTable).Columns(reportColumns...).
		Values(m.ID, m.SourceID, m.SourceFQN, m.TargetID, m.TargetFQN, m.EdgeFound, m.MatchingEdges,
			m.ExpectedCount, m.ActualCount, m.Missing, m.Extra, m.Passed, m.CreatedAt).
		PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("build insert report query: %w", err)
	}

	if _, err := r.client.db.ExecContext(ctx, query, args...); err != nil {
		err = checkPostgresError(err)
		if errors.Is(err, errDuplicateKey) {
			return fmt.Errorf("report %q already exists: %w", report.ID, err)
		}
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// List returns the latest reports first.
func (r *ReportRepository) List(ctx context.Context, flt ReportFilter) ([]lineage.Report, error) {
	size := flt.Size
	if size <= 0 || size > DefaultMaxResultSize {
		size = DefaultMaxResultSize
	}

	builder := sq.Select(reportColumns...).From(reportTable).
		OrderBy(columnNameCreatedAt + " DESC").
		Limit(uint64(size))
	if flt.TargetFQN != "" {
		builder = builder.Where(sq.Eq{"target_fqn": flt.TargetFQN})
	}

	query, args, err := builder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reports query: %w", err)
	}

	var models []ReportModel
	if err := r.client.db.SelectContext(ctx, &models, query, args...); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	reports := make([]lineage.Report, 0, len(models))
	for _, m := range models {
		reports = append(reports, m.toReport())
	}
	return reports, nil
}
