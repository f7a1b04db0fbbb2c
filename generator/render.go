package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/evgeniyblinov/modelgen"
)

// Template is a parsed template file ready to render per table.
type Template struct {
	path string
	tmpl *template.Template
}

// CheckTemplate verifies the template file exists.
func CheckTemplate(path string) error {
	if _, err := os.Stat(path); err != nil {
		return &TemplateError{Path: path, Err: ErrTemplateNotFound}
	}

	return nil
}

// LoadTemplate parses the template file. Missing keys in the data are errors.
func LoadTemplate(path string) (*Template, error) {
	if err := CheckTemplate(path); err != nil {
		return nil, err
	}

	tmpl, err := template.New(filepath.Base(path)).
		Funcs(FuncMap()).
		Option("missingkey=error").
		ParseFiles(path)
	if err != nil {
		return nil, &TemplateError{Path: path, Err: fmt.Errorf("%w: %w", ErrTemplateRender, err)}
	}

	return &Template{path: path, tmpl: tmpl}, nil
}

// Path returns the template file the template was parsed from.
func (t *Template) Path() string {
	return t.path
}

// Render executes the template with tableName and tableData in scope.
func (t *Template) Render(table modelgen.TableMetadata) ([]byte, error) {
	data := map[string]any{
		"tableName": table.Name,
		"tableData": table,
	}

	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, data); err != nil {
		return nil, &TemplateError{Path: t.path, Err: fmt.Errorf("%w: %w", ErrTemplateRender, err)}
	}

	return buf.Bytes(), nil
}
