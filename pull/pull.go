package pull

import (
	"context"
	"time"

	"github.com/evgeniyblinov/modelgen"
)

// PullConfig contains configuration for the pull operation
type PullConfig struct {
	Connection ConnectionInfo
}

// PullResult contains the result of a pull operation
type PullResult struct {
	Schema        *modelgen.Schema
	ServerVersion string
	ExtractedAt   time.Time
}

// PullOperation represents a complete pull operation
type PullOperation struct {
	Config    PullConfig
	connector *DatabaseConnector
	extractor *MySQLExtractor
}

// NewPullOperation creates a new pull operation
func NewPullOperation(config PullConfig) *PullOperation {
	return &PullOperation{
		Config:    config,
		connector: NewDatabaseConnector(),
		extractor: NewMySQLExtractor(),
	}
}

// Execute connects, reads the schema and disconnects.
func (p *PullOperation) Execute(ctx context.Context) (*PullResult, error) {
	db, err := p.connector.Connect(ctx, p.Config.Connection)
	if err != nil {
		return nil, err
	}
	defer p.connector.Close(db)

	version, err := p.extractor.GetDatabaseVersion(ctx, db)
	if err != nil {
		return nil, err
	}

	schema, err := p.extractor.ExtractSchema(ctx, db, p.Config.Connection.Database)
	if err != nil {
		return nil, err
	}

	return &PullResult{
		Schema:        schema,
		ServerVersion: version,
		ExtractedAt:   time.Now(),
	}, nil
}

// ExecutePull is a convenience function that performs a complete pull operation
func ExecutePull(ctx context.Context, config PullConfig) (*PullResult, error) {
	return NewPullOperation(config).Execute(ctx)
}
