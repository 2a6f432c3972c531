package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/goto/lineagecheck/core/validator"
	"github.com/goto/salt/log"
	"github.com/r3labs/diff/v2"
)

type ServicePlan struct {
	Name     string `json:"name" validate:"required"`
	HostPort string `json:"host_port" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}

type TablePlan struct {
	Name    string   `json:"name" validate:"required"`
	Columns []Column `json:"columns" validate:"required,min=1,dive"`
}

// Plan describes the entities Provision creates or updates.
type Plan struct {
	Service  ServicePlan `json:"service"`
	Database string      `json:"database" validate:"required"`
	Schema   string      `json:"schema" validate:"required"`
	Source   TablePlan   `json:"source"`
	Target   TablePlan   `json:"target"`
}

type Provisioned struct {
	Service  DatabaseService
	Database Database
	Schema   DatabaseSchema
	Source   Table
	Target   Table
}

type Service struct {
	logger log.Logger
	repo   Repository
}

func NewService(logger log.Logger, repo Repository) *Service {
	return &Service{
		logger: logger,
		repo:   repo,
	}
}

// Provision creates or updates the database service, database, schema and
// both tables of the plan, in that order.
func (s *Service) Provision(ctx context.Context, plan Plan) (Provisioned, error) {
	var out Provisioned
	if err := validator.ValidateStruct(plan); err != nil {
		return out, fmt.Errorf("invalid provisioning plan: %w", err)
	}

	svc, err := s.repo.CreateOrUpdateDatabaseService(ctx, CreateDatabaseServiceRequest{
		Name:        plan.Service.Name,
		ServiceType: ServiceTypeMysql,
		Connection: DatabaseConnection{
			Config: MysqlConnection{
				Type:     ServiceTypeMysql,
				Username: plan.Service.Username,
				AuthType: BasicAuth{Password: plan.Service.Password},
				HostPort: plan.Service.HostPort,
			},
		},
	})
	if err != nil {
		return out, fmt.Errorf("create database service %q: %w", plan.Service.Name, err)
	}
	s.logger.Info("database service ready", "fqn", svc.FullyQualifiedName.String())
	out.Service = svc

	db, err := s.repo.CreateOrUpdateDatabase(ctx, CreateDatabaseRequest{
		Name:    plan.Database,
		Service: svc.FullyQualifiedName.String(),
	})
	if err != nil {
		return out, fmt.Errorf("create database %q: %w", plan.Database, err)
	}
	s.logger.Info("database ready", "fqn", db.FullyQualifiedName.String())
	out.Database = db

	schema, err := s.repo.CreateOrUpdateDatabaseSchema(ctx, CreateDatabaseSchemaRequest{
		Name:     plan.Schema,
		Database: db.FullyQualifiedName.String(),
	})
	if err != nil {
		return out, fmt.Errorf("create schema %q: %w", plan.Schema, err)
	}
	s.logger.Info("schema ready", "fqn", schema.FullyQualifiedName.String())
	out.Schema = schema

	if out.Source, err = s.provisionTable(ctx, schema, plan.Source); err != nil {
		return out, err
	}
	if out.Target, err = s.provisionTable(ctx, schema, plan.Target); err != nil {
		return out, err
	}

	return out, nil
}

func (s *Service) provisionTable(ctx context.Context, schema DatabaseSchema, plan TablePlan) (Table, error) {
	schemaFQN := schema.FullyQualifiedName.String()
	fqn := schemaFQN + "." + plan.Name

	existing, err := s.repo.GetTableByName(ctx, fqn)
	switch {
	case err == nil:
		s.logColumnDrift(fqn, existing.Columns, plan.Columns)
	case errors.As(err, new(NotFoundError)):
	default:
		return Table{}, fmt.Errorf("lookup table %q: %w", fqn, err)
	}

	table, err := s.repo.CreateOrUpdateTable(ctx, CreateTableRequest{
		Name:           plan.Name,
		DatabaseSchema: schemaFQN,
		Columns:        plan.Columns,
	})
	if err != nil {
		return Table{}, fmt.Errorf("create table %q: %w", fqn, err)
	}
	s.logger.Info("table ready", "fqn", table.FQN(), "id", table.ID)

	return table, nil
}

func (s *Service) logColumnDrift(fqn string, existing, desired []Column) {
	changelog, err := diff.Diff(existing, desired)
	if err != nil {
		s.logger.Warn("failed to diff table columns", "fqn", fqn, "err", err)
		return
	}
	for _, change := range changelog {
		s.logger.Info("table column change", "fqn", fqn, "type", change.Type, "path", change.Path, "from", change.From, "to", change.To)
	}
}
