package main

import (
	"context"
	"errors"
	"io"
	"maps"
	"slices"

	"github.com/evgeniyblinov/modelgen"
	"github.com/evgeniyblinov/modelgen/generator"
	"github.com/evgeniyblinov/modelgen/pull"
)

// SchemaReader loads the schema the generator works from.
type SchemaReader func(ctx context.Context, config modelgen.Config) (*pull.PullResult, error)

// App is one invocation of the generator. All output goes to Stdout.
type App struct {
	Name       string
	Stdout     io.Writer
	ReadSchema SchemaReader
	// EnvFiles are loaded before the options are read, so ${VAR}
	// references in connection options can point at them.
	EnvFiles []string
}

// NewApp creates an app reading the schema from MySQL.
func NewApp(stdout io.Writer) *App {
	return &App{
		Name:       "modelgen",
		Stdout:     stdout,
		ReadSchema: readMySQLSchema,
		EnvFiles:   []string{".env"},
	}
}

func readMySQLSchema(ctx context.Context, config modelgen.Config) (*pull.PullResult, error) {
	return pull.ExecutePull(ctx, pull.PullConfig{
		Connection: pull.ConnectionInfoFromConfig(config),
	})
}

// Run executes the whole pipeline and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	quiet := modelgen.NewReporter(a.Stdout, false)

	if err := modelgen.LoadEnvFiles(a.EnvFiles...); err != nil {
		quiet.Warnf("Warning: %v", err)
	}

	config, err := modelgen.BuildConfig(args)
	if err != nil {
		if !errors.Is(err, modelgen.ErrMissingRequiredParams) {
			quiet.Errorf("Error: %v", err)
		}

		a.usage(quiet)

		return ExitMissingParams
	}

	reporter := modelgen.NewReporter(a.Stdout, config.Verbose)

	for _, name := range slices.Sorted(maps.Keys(config.Extra())) {
		reporter.VerboseWarnf("Ignoring unknown option --%s", name)
	}

	result, err := a.ReadSchema(ctx, config)
	if err != nil {
		reporter.Errorf("Error!: %v", err)
		return ExitDatabase
	}

	if result == nil {
		result = &pull.PullResult{}
	}

	reporter.VerboseInfof("MySQL %s: %d tables in %s", result.ServerVersion, len(result.Schema.TableNames()), config.DatabaseName)

	if config.SchemaJSON != "" {
		if err := pull.WriteTblsSchemaFile(config.SchemaJSON, result); err != nil {
			reporter.Errorf("Error!: %v", err)
			return ExitDatabase
		}

		reporter.VerboseSuccessf("Schema written to %s", config.SchemaJSON)
	}

	jobs, err := generator.ParseJobs(config.GeneratorConfig)
	if err != nil {
		reporter.Errorf("Error: option --config should be JSON string!")
		reporter.VerboseWarnf("%v", err)
		a.usage(reporter)

		return ExitInvalidConfig
	}

	emitter := generator.NewEmitter(generator.Options{
		FileMode: config.FileMode,
		Reporter: reporter,
	})

	if _, err := emitter.Emit(jobs, result.Schema); err != nil {
		return a.emitFailure(reporter, err)
	}

	reporter.Successf("All operations done.")

	return ExitOK
}

func (a *App) emitFailure(reporter *modelgen.Reporter, err error) int {
	var tmplErr *generator.TemplateError

	switch {
	case errors.Is(err, generator.ErrTemplateNotFound) && errors.As(err, &tmplErr):
		reporter.Errorf("Error: Template file %s not found!", tmplErr.Path)
		a.usage(reporter)

		return ExitTemplateNotFound
	default:
		reporter.Errorf("Error: %v", err)
		return ExitTemplateRender
	}
}

func (a *App) usage(reporter *modelgen.Reporter) {
	if err := modelgen.Usage(a.Stdout, a.Name); err != nil {
		reporter.Errorf("Error: %v", err)
	}
}
