package generator

import (
	"path/filepath"
	"strings"
	"unicode"
)

// CamelCase upper-cases the first character, then drops every underscore
// that is followed by a letter and upper-cases that letter:
// "user_account" becomes "UserAccount". Other underscores are kept.
func CamelCase(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}

	runes[0] = unicode.ToUpper(runes[0])

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(runes); i++ {
		if runes[i] == '_' && i+1 < len(runes) && unicode.IsLetter(runes[i+1]) {
			b.WriteRune(unicode.ToUpper(runes[i+1]))
			i++

			continue
		}

		b.WriteRune(runes[i])
	}

	return b.String()
}

// TemplateBaseName is the template's file name without its final extension.
// Names without a usable extension ("model", ".model", "model.") are returned whole.
func TemplateBaseName(templatePath string) string {
	base := filepath.Base(templatePath)

	if i := strings.LastIndex(base, "."); i > 0 && i < len(base)-1 {
		return base[:i]
	}

	return base
}

// OutputFileName is where the job writes the file for one table.
func OutputFileName(job Job, tableName string) string {
	return filepath.Join(job.Output, CamelCase(tableName)+TemplateBaseName(job.Template)+job.FileExtension())
}
