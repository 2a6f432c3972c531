package catalog

import (
	"context"
	"encoding/json"
)

//go:generate mockery --name=Repository -r --case underscore --with-expecter --structname=CatalogRepository --filename=catalog_repository.go --output=./mocks
type Repository interface {
	CreateOrUpdateDatabaseService(ctx context.Context, req CreateDatabaseServiceRequest) (DatabaseService, error)
	CreateOrUpdateDatabase(ctx context.Context, req CreateDatabaseRequest) (Database, error)
	CreateOrUpdateDatabaseSchema(ctx context.Context, req CreateDatabaseSchemaRequest) (DatabaseSchema, error)
	CreateOrUpdateTable(ctx context.Context, req CreateTableRequest) (Table, error)
	GetTableByName(ctx context.Context, fqn string) (Table, error)
}

type EntityType string

const (
	EntityTypeTable          EntityType = "table"
	EntityTypeDatabase       EntityType = "database"
	EntityTypeDatabaseSchema EntityType = "databaseSchema"
)

func (t EntityType) String() string {
	return string(t)
}

type DataType string

const (
	DataTypeBigInt    DataType = "BIGINT"
	DataTypeInt       DataType = "INT"
	DataTypeDecimal   DataType = "DECIMAL"
	DataTypeTimestamp DataType = "TIMESTAMP"
	DataTypeVarchar   DataType = "VARCHAR"
)

type ServiceType string

const ServiceTypeMysql ServiceType = "Mysql"

// EntityReference points at a catalog entity by its id.
type EntityReference struct {
	ID                 string     `json:"id" validate:"required,uuid"`
	Type               EntityType `json:"type" validate:"required"`
	Name               string     `json:"name,omitempty"`
	FullyQualifiedName Name       `json:"fullyQualifiedName,omitempty"`
}

type Column struct {
	Name               string   `json:"name" diff:"name,identifier" validate:"required"`
	DataType           DataType `json:"dataType" diff:"dataType" validate:"required"`
	DataLength         int      `json:"dataLength,omitempty" diff:"dataLength"`
	Description        string   `json:"description,omitempty" diff:"description"`
	FullyQualifiedName Name     `json:"fullyQualifiedName,omitempty" diff:"-"`
}

type Table struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	FullyQualifiedName Name            `json:"fullyQualifiedName"`
	Columns            []Column        `json:"columns"`
	DatabaseSchema     EntityReference `json:"databaseSchema"`
}

func (t Table) FQN() string {
	return t.FullyQualifiedName.String()
}

// Reference returns a table-typed entity reference to t.
func (t Table) Reference() EntityReference {
	return EntityReference{
		ID:                 t.ID,
		Type:               EntityTypeTable,
		Name:               t.Name,
		FullyQualifiedName: t.FullyQualifiedName,
	}
}

// ColumnFQN names a column of the table following the <table-fqn>.<column> convention.
func (t Table) ColumnFQN(column string) string {
	return ColumnFQN(t.FQN(), column)
}

func ColumnFQN(tableFQN, column string) string {
	return tableFQN + "." + column
}

type DatabaseService struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	FullyQualifiedName Name        `json:"fullyQualifiedName"`
	ServiceType        ServiceType `json:"serviceType"`
}

type Database struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	FullyQualifiedName Name   `json:"fullyQualifiedName"`
}

type DatabaseSchema struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	FullyQualifiedName Name   `json:"fullyQualifiedName"`
}

type BasicAuth struct {
	Password string `json:"password,omitempty"`
}

type MysqlConnection struct {
	Type     ServiceType `json:"type"`
	Username string      `json:"username" validate:"required"`
	AuthType BasicAuth   `json:"authType"`
	HostPort string      `json:"hostPort" validate:"required"`
}

type DatabaseConnection struct {
	Config MysqlConnection `json:"config"`
}

type CreateDatabaseServiceRequest struct {
	Name        string             `json:"name" validate:"required"`
	ServiceType ServiceType        `json:"serviceType" validate:"required"`
	Connection  DatabaseConnection `json:"connection"`
}

type CreateDatabaseRequest struct {
	Name    string `json:"name" validate:"required"`
	Service string `json:"service" validate:"required"`
}

type CreateDatabaseSchemaRequest struct {
	Name     string `json:"name" validate:"required"`
	Database string `json:"database" validate:"required"`
}

type CreateTableRequest struct {
	Name           string   `json:"name" validate:"required"`
	DatabaseSchema string   `json:"databaseSchema" validate:"required"`
	Columns        []Column `json:"columns" validate:"required,min=1,dive"`
}

// Name is a fully-qualified name that tolerates both the plain string form
// and the {"root": "..."} container form on decode.
type Name string

func (n Name) String() string {
	return string(n)
}

func (n *Name) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*n = Name(PlainString(raw))
	return nil
}
