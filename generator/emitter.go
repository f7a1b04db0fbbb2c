package generator

import (
	"io"
	"os"

	"github.com/evgeniyblinov/modelgen"
)

// Options configures an Emitter
type Options struct {
	// FileMode is used by jobs that do not set their own mode.
	FileMode string
	Reporter *modelgen.Reporter
}

// Result counts what a run produced
type Result struct {
	Rendered int
	Written  []string
	Skipped  []string
}

// Emitter renders every job's template for every table and writes the files.
type Emitter struct {
	fileMode string
	reporter *modelgen.Reporter
}

// NewEmitter creates an emitter. An empty FileMode means create-exclusive.
func NewEmitter(opts Options) *Emitter {
	mode := opts.FileMode
	if mode == "" {
		mode = modelgen.DefaultFileMode
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = modelgen.NewReporter(io.Discard, false)
	}

	return &Emitter{
		fileMode: mode,
		reporter: reporter,
	}
}

// Emit processes the jobs in order. A missing or broken template stops the
// whole run; files already written stay in place. Files that cannot be
// opened are skipped.
func (e *Emitter) Emit(jobs []Job, schema *modelgen.Schema) (*Result, error) {
	result := &Result{}

	var tables []modelgen.TableMetadata
	if schema != nil {
		tables = schema.Tables
	}

	for _, job := range jobs {
		if err := e.emitJob(job, tables, result); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (e *Emitter) emitJob(job Job, tables []modelgen.TableMetadata, result *Result) error {
	if !isDirectory(job.Output) {
		if err := os.MkdirAll(job.Output, 0o777); err != nil {
			e.reporter.Warnf("Warning: failed to create directory %s: %v", job.Output, err)
		}
	}

	if err := CheckTemplate(job.Template); err != nil {
		return err
	}

	if len(tables) == 0 {
		return nil
	}

	tmpl, err := LoadTemplate(job.Template)
	if err != nil {
		return err
	}

	mode := job.Mode
	if mode == "" {
		mode = e.fileMode
	}

	for _, table := range tables {
		content, err := tmpl.Render(table)
		if err != nil {
			return err
		}

		result.Rendered++

		path := OutputFileName(job, table.Name)

		if err := writeFile(path, mode, content); err != nil {
			result.Skipped = append(result.Skipped, path)
			e.reporter.VerboseWarnf("File %s not created.", path)

			continue
		}

		result.Written = append(result.Written, path)
		e.reporter.VerboseSuccessf("File %s successfully created.", path)
	}

	return nil
}

// writeFile opens path with the given mode and writes content.
func writeFile(path, mode string, content []byte) error {
	flags, err := OpenFlags(mode)
	if err != nil {
		return err
	}

	dest, err := os.OpenFile(path, flags, 0o666)
	if err != nil {
		return err
	}
	defer dest.Close()

	if _, err := dest.Write(content); err != nil {
		return err
	}

	return dest.Sync()
}

// isDirectory checks if a path is a directory
func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}
