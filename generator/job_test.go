package generator

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/evgeniyblinov/modelgen/testhelper"
)

func TestParseJobs(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []Job
	}{
		{
			name:     "SingleObject",
			raw:      `{"template":"t.tpl","output":"./out"}`,
			expected: []Job{{Template: "t.tpl", Output: "./out"}},
		},
		{
			name:     "ArrayDropsIncompleteEntries",
			raw:      `[{"template":"a"},{"template":"t.tpl","output":"./out"}]`,
			expected: []Job{{Template: "t.tpl", Output: "./out"}},
		},
		{
			name: "ArrayKeepsOrder",
			raw:  `[{"template":"b.tpl","output":"b"},{"template":"a.tpl","output":"a","mode":"overwrite"}]`,
			expected: []Job{
				{Template: "b.tpl", Output: "b"},
				{Template: "a.tpl", Output: "a", Mode: "overwrite"},
			},
		},
		{
			name: "ObjectOfObjectsKeepsDocumentOrder",
			raw:  `{"zeta":{"template":"z.tpl","output":"z"},"alpha":{"template":"a.tpl","output":"a"},"broken":{"output":"x"}}`,
			expected: []Job{
				{Template: "z.tpl", Output: "z"},
				{Template: "a.tpl", Output: "a"},
			},
		},
		{
			name:     "SingleObjectWinsOverCollection",
			raw:      `{"template":"t.tpl","output":"out","nested":{"template":"n.tpl","output":"n"}}`,
			expected: []Job{{Template: "t.tpl", Output: "out"}},
		},
		{
			name:     "ModeAndExtension",
			raw:      `{"template":"t.tpl","output":"out","mode":"w","extension":".go"}`,
			expected: []Job{{Template: "t.tpl", Output: "out", Mode: "w", Extension: ".go"}},
		},
		{
			name:     "ScalarValues",
			raw:      `{"template":42,"output":null}`,
			expected: []Job{{Template: "42", Output: ""}},
		},
		{
			name:     "NonObjectElementsIgnored",
			raw:      `[1,"x",null,[],{"template":"t.tpl","output":"out"}]`,
			expected: []Job{{Template: "t.tpl", Output: "out"}},
		},
		{
			name:     "DuplicateKeyLastWins",
			raw:      `{"template":"first.tpl","output":"out","template":"second.tpl"}`,
			expected: []Job{{Template: "second.tpl", Output: "out"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := ParseJobs(tt.raw)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, jobs)
		})
	}
}

func TestParseJobsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		noValid bool
	}{
		{name: "Empty", raw: ""},
		{name: "Whitespace", raw: "  \n"},
		{name: "NotJSON", raw: "template=t.tpl"},
		{name: "Truncated", raw: `{"template":"t.tpl"`},
		{name: "String", raw: `"t.tpl"`},
		{name: "Number", raw: `12`},
		{name: "Null", raw: `null`},
		{name: "EmptyArray", raw: `[]`, noValid: true},
		{name: "EmptyObject", raw: `{}`, noValid: true},
		{name: "OnlyIncomplete", raw: `[{"template":"a"},{"output":"b"}]`, noValid: true},
		{name: "ObjectValuedTemplate", raw: `{"template":{"x":1},"output":"out"}`, noValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := ParseJobs(tt.raw)
			assert.Zero(t, jobs)
			assert.IsError(t, err, ErrInvalidJobConfig)

			if tt.noValid {
				assert.IsError(t, err, ErrNoValidJobs)
			}
		})
	}
}

func TestParseJobsFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("JSON", func(t *testing.T) {
		path := testhelper.WriteFile(t, dir, "jobs.json", `[{"template":"t.tpl","output":"out"}]`)

		jobs, err := ParseJobs("@" + path)
		assert.NoError(t, err)
		assert.Equal(t, []Job{{Template: "t.tpl", Output: "out"}}, jobs)
	})

	t.Run("YAML", func(t *testing.T) {
		path := testhelper.WriteFile(t, dir, "jobs.yaml", testhelper.TrimIndent(t, `
			models:
			  template: templates/Model.tpl
			  output: out/models
			repositories:
			  template: templates/Repository.tpl
			  output: out/repositories
			  mode: overwrite
			  extension: .go
			`))

		jobs, err := ParseJobs("@" + path)
		assert.NoError(t, err)
		assert.Equal(t, []Job{
			{Template: "templates/Model.tpl", Output: "out/models"},
			{Template: "templates/Repository.tpl", Output: "out/repositories", Mode: "overwrite", Extension: ".go"},
		}, jobs)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := ParseJobs("@" + dir + "/missing.json")
		assert.IsError(t, err, ErrInvalidJobConfig)
		assert.IsError(t, err, ErrJobFileRead)
	})

	t.Run("EmptyPath", func(t *testing.T) {
		_, err := ParseJobs("@")
		assert.IsError(t, err, ErrJobFileRead)
	})
}

func TestJobFileExtension(t *testing.T) {
	assert.Equal(t, ".php", Job{}.FileExtension())
	assert.Equal(t, ".go", Job{Extension: ".go"}.FileExtension())
}
