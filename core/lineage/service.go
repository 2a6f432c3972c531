package lineage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goto/lineagecheck/core/catalog"
	"github.com/goto/lineagecheck/core/validator"
	"github.com/goto/lineagecheck/pkg/statsd"
	"github.com/goto/lineagecheck/pkg/telemetry"
	"github.com/goto/salt/log"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockery --name=Catalog -r --case underscore --with-expecter --structname=Catalog --filename=catalog.go --output=./mocks
type Catalog interface {
	GetLineageByName(ctx context.Context, entity catalog.EntityType, fqn string, upstreamDepth, downstreamDepth int) (json.RawMessage, error)
	AddLineage(ctx context.Context, req AddLineageRequest) error
}

//go:generate mockery --name=ReportRepository -r --case underscore --with-expecter --structname=ReportRepository --filename=report_repository.go --output=./mocks
type ReportRepository interface {
	Insert(ctx context.Context, report Report) error
}

type Config struct {
	UpstreamDepth   int `yaml:"upstream_depth" mapstructure:"upstream_depth" default:"1" validate:"gte=0"`
	DownstreamDepth int `yaml:"downstream_depth" mapstructure:"downstream_depth" default:"1" validate:"gte=0"`
}

type ServiceDeps struct {
	Config  Config
	Logger  log.Logger
	Catalog Catalog
	// Reports is optional; reports are not persisted when nil.
	Reports ReportRepository
	StatsD  *statsd.Reporter
	Now     func() time.Time
}

type Service struct {
	cfg     Config
	logger  log.Logger
	catalog Catalog
	reports ReportRepository
	statsd  *statsd.Reporter
	now     func() time.Time

	tracer              trace.Tracer
	verificationCounter metric.Int64Counter
}

func NewService(deps ServiceDeps) *Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		cfg:     deps.Config,
		logger:  deps.Logger,
		catalog: deps.Catalog,
		reports: deps.Reports,
		statsd:  deps.StatsD,
		now:     now,

		tracer:              otel.Tracer("github.com/goto/lineagecheck/core/lineage"),
		verificationCounter: telemetry.GlobalInstruments().Verifications,
	}
}

// Submit registers a table level edge from source to target carrying the
// given column mappings.
func (s *Service) Submit(ctx context.Context, source, target catalog.Table, mappings []ColumnLineage, sqlQuery, description string) error {
	ctx, span := s.tracer.Start(ctx, "lineage.Submit", trace.WithAttributes(
		attribute.String("lineage.source", source.FQN()),
		attribute.String("lineage.target", target.FQN()),
	))
	defer span.End()

	req := AddLineageRequest{
		Edge: EntitiesEdge{
			FromEntity:  source.Reference(),
			ToEntity:    target.Reference(),
			Description: description,
			LineageDetails: &LineageDetails{
				SQLQuery:       sqlQuery,
				ColumnsLineage: mappings,
			},
		},
	}
	if err := validator.ValidateStruct(req); err != nil {
		recordSpanError(span, err)
		return fmt.Errorf("invalid lineage request: %w", err)
	}

	if err := s.catalog.AddLineage(ctx, req); err != nil {
		recordSpanError(span, err)
		return fmt.Errorf("add lineage %s -> %s: %w", source.FQN(), target.FQN(), err)
	}

	s.logger.Info("lineage submitted",
		"source", source.FQN(),
		"target", target.FQN(),
		"column_mappings", len(mappings),
	)
	return nil
}

// Verify reads the lineage graph of target back from the catalog and checks
// that the edge from source holds every expected column pair.
func (s *Service) Verify(ctx context.Context, source, target catalog.Table, expected PairSet) (Report, error) {
	ctx, span := s.tracer.Start(ctx, "lineage.Verify", trace.WithAttributes(
		attribute.String("lineage.source", source.FQN()),
		attribute.String("lineage.target", target.FQN()),
	))
	defer span.End()

	raw, err := s.catalog.GetLineageByName(ctx, catalog.EntityTypeTable, target.FQN(), s.cfg.UpstreamDepth, s.cfg.DownstreamDepth)
	if err != nil {
		recordSpanError(span, err)
		return Report{}, fmt.Errorf("fetch lineage graph of %s: %w", target.FQN(), err)
	}
	s.logger.Debug("read-back lineage graph", "fqn", target.FQN(), "graph", indent(raw))

	return s.VerifyGraph(ctx, source, target, raw, expected)
}

// VerifyGraph verifies an already fetched lineage graph.
func (s *Service) VerifyGraph(ctx context.Context, source, target catalog.Table, graph interface{}, expected PairSet) (Report, error) {
	report, verifyErr := Verify(source.Reference(), target.Reference(), graph, expected)
	report.ID = ulid.Make().String()
	report.CreatedAt = s.now().UTC()

	if report.MatchingEdges > 1 {
		s.logger.Warn("multiple lineage edges match, only the first one was inspected",
			"source", source.FQN(),
			"target", target.FQN(),
			"matching_edges", report.MatchingEdges,
		)
	}

	s.instrument(ctx, report)

	if s.reports != nil {
		if err := s.reports.Insert(ctx, report); err != nil {
			s.logger.Warn("failed to store verification report", "id", report.ID, "err", err)
		}
	}

	return report, verifyErr
}

func (s *Service) instrument(ctx context.Context, report Report) {
	outcome := report.Outcome()

	s.statsd.Incr("lineage_verification").
		Tag("outcome", outcome).
		Publish()
	s.statsd.Gauge("lineage_verification_missing", float64(len(report.Missing))).
		Tag("target", report.Target.FullyQualifiedName.String()).
		Publish()

	if s.verificationCounter != nil {
		s.verificationCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("lineagecheck.outcome", outcome),
			attribute.Bool("verification.passed", report.Passed()),
		))
	}

	if span := trace.SpanFromContext(ctx); !report.Passed() {
		span.SetStatus(codes.Error, outcome)
	}
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func indent(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// IsVerificationFailure reports whether err is one of the two verification
// outcomes rather than an infrastructure failure.
func IsVerificationFailure(err error) bool {
	return errors.As(err, new(EdgeNotFoundError)) || errors.As(err, new(IncompleteError))
}
