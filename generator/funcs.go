package generator

import (
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/evgeniyblinov/modelgen"
)

// FuncMap returns the helpers available inside every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"camel":      CamelCase,
		"lowerCamel": strcase.ToLowerCamel,
		"snake":      strcase.ToSnake,
		"kebab":      strcase.ToKebab,
		"title":      cases.Title(language.English).String,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"join":       strings.Join,
		"hasPrefix":  strings.HasPrefix,
		"contains":   strings.Contains,
		"trimSuffix": strings.TrimSuffix,
		"backtick":   func() string { return "`" },
		"columnNames": func(table modelgen.TableMetadata) []string {
			names := make([]string, 0, len(table.Columns))
			for _, c := range table.Columns {
				names = append(names, c.Name)
			}

			return names
		},
		"primaryKey": func(table modelgen.TableMetadata) []modelgen.Column {
			var pk []modelgen.Column

			for _, c := range table.Columns {
				if c.IsPrimaryKey() {
					pk = append(pk, c)
				}
			}

			return pk
		},
	}
}
