// Package bootstrap runs the startup pipeline shared by bot binaries:
// logger, database connection, schema migrations, and seed data.
package bootstrap

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	coreconfig "github.com/candylab/sweetbot/core/config"
	coredatabase "github.com/candylab/sweetbot/core/database"
	"github.com/candylab/sweetbot/core/logger"
)

// Options control the generic bootstrap pipeline.
type Options struct {
	Config   *coreconfig.Config
	Database coredatabase.Config

	LoggerInit func(*coreconfig.Config) error
	Connect    func(coredatabase.Config) (*sqlx.DB, error)
	Migrate    func(coredatabase.Config) error

	// Seed runs after migrations, with the open connection.
	// It should be a no-op when data is already present.
	Seed func(db *sqlx.DB) error
}

// DatabaseFromConfig maps the config file's database section onto the
// connection settings core/database understands. The two structs are kept
// separate so the config package never imports database code.
func DatabaseFromConfig(cfg *coreconfig.Config) coredatabase.Config {
	return coredatabase.Config{
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		User:           cfg.Database.User,
		Password:       cfg.Database.Password,
		Name:           cfg.Database.Name,
		SSLMode:        cfg.Database.SSLMode,
		MaxConnections: cfg.Database.MaxConnections,
	}
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result struct {
	DB *sqlx.DB
}

// Run initializes the logger, connects to the database, applies migrations,
// and seeds initial data.
func Run(opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	connect := opts.Connect
	if connect == nil {
		connect = coredatabase.Connect
	}
	db, err := connect(opts.Database)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: database initialization failed: %w", err)
	}

	migrate := opts.Migrate
	if migrate == nil {
		migrate = coredatabase.RunMigrations
	}
	if err := migrate(opts.Database); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap: migrations failed: %w", err)
	}

	if opts.Seed != nil {
		if err := opts.Seed(db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap: seed failed: %w", err)
		}
	}

	return &Result{DB: db}, nil
}
