package pull

import "errors"

// Connection errors
var (
	ErrConnectionFailed  = errors.New("failed to connect to database")
	ErrEmptyDatabaseName = errors.New("database name cannot be empty")
)

// Query execution errors
var (
	ErrQueryExecutionFailed = errors.New("query execution failed")
	ErrResultScanFailed     = errors.New("result scan failed")
)

// Schema artefact errors
var (
	ErrSchemaWriteFailed = errors.New("failed to write schema file")
	ErrSchemaDecode      = errors.New("failed to decode schema JSON")
	ErrSchemaPayloadNil  = errors.New("schema payload is empty")
)
