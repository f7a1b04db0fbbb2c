package pull

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/evgeniyblinov/modelgen"
)

// driverName is the database/sql driver registered by go-sql-driver/mysql.
const driverName = "mysql"

// DatabaseConnector opens the single connection a run works with
type DatabaseConnector struct {
	poolSettings ConnectionPoolSettings
}

// ConnectionPoolSettings defines database connection pool configuration
type ConnectionPoolSettings struct {
	MaxOpenConns    int // Maximum number of open connections
	MaxIdleConns    int // Maximum number of idle connections
	ConnMaxLifetime int // Maximum lifetime of connections in seconds, 0 keeps them forever
}

// ConnectionInfo contains the MySQL connection parameters
type ConnectionInfo struct {
	Host     string
	Port     string
	Database string
	Username string
	Password string
}

// ConnectionInfoFromConfig picks the connection parameters out of the run configuration.
func ConnectionInfoFromConfig(config modelgen.Config) ConnectionInfo {
	return ConnectionInfo{
		Host:     config.Host,
		Port:     config.Port,
		Database: config.DatabaseName,
		Username: config.User,
		Password: config.Password,
	}
}

// DSN formats the connection info as a go-sql-driver/mysql data source name.
func (i ConnectionInfo) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = i.Username
	cfg.Passwd = i.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(i.Host, i.Port)
	cfg.DBName = i.Database

	return cfg.FormatDSN()
}

// ConnectionInfoFromDSN parses a go-sql-driver/mysql DSN back into its parts.
func ConnectionInfoFromDSN(dsn string) (ConnectionInfo, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return ConnectionInfo{}, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	host, port, err := net.SplitHostPort(cfg.Addr)
	if err != nil {
		return ConnectionInfo{}, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	return ConnectionInfo{
		Host:     host,
		Port:     port,
		Database: cfg.DBName,
		Username: cfg.User,
		Password: cfg.Passwd,
	}, nil
}

// NewDatabaseConnector creates a connector holding at most one connection
func NewDatabaseConnector() *DatabaseConnector {
	return &DatabaseConnector{
		poolSettings: ConnectionPoolSettings{
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
	}
}

// SetPoolSettings configures connection pool settings
func (c *DatabaseConnector) SetPoolSettings(settings ConnectionPoolSettings) {
	c.poolSettings = settings
}

// GetPoolSettings returns current connection pool settings
func (c *DatabaseConnector) GetPoolSettings() ConnectionPoolSettings {
	return c.poolSettings
}

// Connect opens the database and verifies it answers.
func (c *DatabaseConnector) Connect(ctx context.Context, info ConnectionInfo) (*sql.DB, error) {
	if info.Database == "" {
		return nil, ErrEmptyDatabaseName
	}

	db, err := sql.Open(driverName, info.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	db.SetMaxOpenConns(c.poolSettings.MaxOpenConns)
	db.SetMaxIdleConns(c.poolSettings.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(c.poolSettings.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	return db, nil
}

// Close closes a database connection
func (c *DatabaseConnector) Close(db *sql.DB) error {
	if db == nil {
		return nil
	}

	return db.Close()
}
