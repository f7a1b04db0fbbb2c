package pull

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/evgeniyblinov/modelgen"
)

// MySQLExtractor reads base tables and their columns from MySQL
type MySQLExtractor struct{}

// NewMySQLExtractor creates a new MySQL extractor
func NewMySQLExtractor() *MySQLExtractor {
	return &MySQLExtractor{}
}

// ExtractSchema reads every base table of schemaName together with its columns.
func (e *MySQLExtractor) ExtractSchema(ctx context.Context, db *sql.DB, schemaName string) (*modelgen.Schema, error) {
	names, err := e.ExtractTableNames(ctx, db, schemaName)
	if err != nil {
		return nil, err
	}

	schema := &modelgen.Schema{
		Name:   schemaName,
		Tables: make([]modelgen.TableMetadata, 0, len(names)),
	}

	for _, name := range names {
		columns, err := e.ExtractColumns(ctx, db, name)
		if err != nil {
			return nil, err
		}

		schema.Tables = append(schema.Tables, modelgen.TableMetadata{
			Name:    name,
			Columns: columns,
		})
	}

	return schema, nil
}

// ExtractTableNames lists base tables in the order the server returns them
func (e *MySQLExtractor) ExtractTableNames(ctx context.Context, db *sql.DB, schemaName string) ([]string, error) {
	rows, err := db.QueryContext(ctx, e.BuildTablesQuery(), schemaName)
	if err != nil {
		return nil, e.HandleDatabaseError(err)
	}
	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrResultScanFailed, err)
		}

		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, e.HandleDatabaseError(err)
	}

	return names, nil
}

// ExtractColumns runs SHOW COLUMNS for one table, keeping definition order.
func (e *MySQLExtractor) ExtractColumns(ctx context.Context, db *sql.DB, tableName string) ([]modelgen.Column, error) {
	rows, err := db.QueryContext(ctx, e.BuildColumnsQuery(tableName))
	if err != nil {
		return nil, e.HandleDatabaseError(err)
	}
	defer rows.Close()

	columns := []modelgen.Column{}

	for rows.Next() {
		var field, columnType, null, key, extra string
		var columnDefault sql.NullString

		if err := rows.Scan(&field, &columnType, &null, &key, &columnDefault, &extra); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrResultScanFailed, err)
		}

		columns = append(columns, e.newColumn(field, columnType, null, key, columnDefault, extra))
	}

	if err := rows.Err(); err != nil {
		return nil, e.HandleDatabaseError(err)
	}

	return columns, nil
}

// GetDatabaseVersion returns the server version string
func (e *MySQLExtractor) GetDatabaseVersion(ctx context.Context, db *sql.DB) (string, error) {
	var version string
	if err := db.QueryRowContext(ctx, "SELECT VERSION()").Scan(&version); err != nil {
		return "", e.HandleDatabaseError(err)
	}

	return version, nil
}

func (e *MySQLExtractor) newColumn(field, columnType, null, key string, columnDefault sql.NullString, extra string) modelgen.Column {
	col := modelgen.Column{
		Name:  field,
		Type:  columnType,
		Null:  null == "YES",
		Key:   key,
		Extra: extra,
	}

	if columnDefault.Valid {
		v := columnDefault.String
		col.Default = &v
	}

	return col
}

// BuildTablesQuery builds the query for base table names; the schema is bound as the only argument
func (e *MySQLExtractor) BuildTablesQuery() string {
	return `
		SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_TYPE = 'BASE TABLE' AND TABLE_SCHEMA = ?`
}

// BuildColumnsQuery builds SHOW COLUMNS for a table
func (e *MySQLExtractor) BuildColumnsQuery(tableName string) string {
	return "SHOW COLUMNS FROM " + QuoteIdentifier(tableName)
}

// HandleDatabaseError wraps a driver error, keeping its message
func (e *MySQLExtractor) HandleDatabaseError(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrQueryExecutionFailed, err)
}

// QuoteIdentifier wraps name in backticks, doubling embedded ones.
func QuoteIdentifier(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
