package generator

import "errors"

// Sentinel errors
var (
	ErrInvalidJobConfig = errors.New("option --config should be JSON string")
	ErrNoValidJobs      = errors.New("no generation job has both template and output")
	ErrJobFileRead      = errors.New("failed to read job file")
	ErrTemplateNotFound = errors.New("template file not found")
	ErrTemplateRender   = errors.New("failed to render template")
	ErrUnknownFileMode  = errors.New("unknown file mode")
)

// TemplateError ties a template failure to the template path.
type TemplateError struct {
	Path string
	Err  error
}

func (e *TemplateError) Error() string {
	return e.Err.Error() + ": " + e.Path
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}
