package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultExtension is appended to every generated file name unless the job sets its own.
const DefaultExtension = ".php"

// Job keys as they appear in the --config JSON
const (
	keyTemplate  = "template"
	keyOutput    = "output"
	keyMode      = "mode"
	keyExtension = "extension"
)

// Job is one round of generation: a template rendered once per table into Output.
type Job struct {
	Template  string `json:"template" yaml:"template"`
	Output    string `json:"output" yaml:"output"`
	Mode      string `json:"mode,omitempty" yaml:"mode,omitempty"`
	Extension string `json:"extension,omitempty" yaml:"extension,omitempty"`
}

// FileExtension returns the extension for generated files.
func (j Job) FileExtension() string {
	if j.Extension == "" {
		return DefaultExtension
	}

	return j.Extension
}

type member struct {
	key   string
	value json.RawMessage
}

// ParseJobs validates the --config value. A value starting with '@' names
// a JSON or YAML file holding the document instead.
//
// A document that is itself a job (has template and output) yields one job.
// Otherwise its elements (array items or object member values, in document
// order) that are jobs are returned and the rest dropped. All errors wrap
// ErrInvalidJobConfig.
func ParseJobs(raw string) ([]Job, error) {
	data := []byte(raw)

	if path, ok := strings.CutPrefix(raw, "@"); ok {
		content, err := readJobFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidJobConfig, err)
		}

		data = content
	}

	return parseJobsJSON(data)
}

func parseJobsJSON(data []byte) ([]Job, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || !json.Valid(data) {
		return nil, ErrInvalidJobConfig
	}

	var candidates []json.RawMessage

	switch data[0] {
	case '{':
		members, err := decodeObject(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidJobConfig, err)
		}

		if job, ok := jobFromMembers(members); ok {
			return []Job{job}, nil
		}

		for _, m := range members {
			candidates = append(candidates, m.value)
		}
	case '[':
		if err := json.Unmarshal(data, &candidates); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidJobConfig, err)
		}
	default:
		return nil, ErrInvalidJobConfig
	}

	var jobs []Job

	for _, candidate := range candidates {
		candidate = bytes.TrimSpace(candidate)
		if len(candidate) == 0 || candidate[0] != '{' {
			continue
		}

		members, err := decodeObject(candidate)
		if err != nil {
			continue
		}

		if job, ok := jobFromMembers(members); ok {
			jobs = append(jobs, job)
		}
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJobConfig, ErrNoValidJobs)
	}

	return jobs, nil
}

// decodeObject reads a JSON object keeping member order.
func decodeObject(data []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	var members []member

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}

		members = append(members, member{key: key, value: value})
	}

	return members, nil
}

// jobFromMembers builds a job when both template and output keys are present.
// Later duplicate keys win.
func jobFromMembers(members []member) (Job, bool) {
	values := make(map[string]json.RawMessage, len(members))
	for _, m := range members {
		values[m.key] = m.value
	}

	templateRaw, hasTemplate := values[keyTemplate]
	outputRaw, hasOutput := values[keyOutput]

	if !hasTemplate || !hasOutput {
		return Job{}, false
	}

	template, ok := scalarString(templateRaw)
	if !ok {
		return Job{}, false
	}

	output, ok := scalarString(outputRaw)
	if !ok {
		return Job{}, false
	}

	job := Job{Template: template, Output: output}

	if raw, ok := values[keyMode]; ok {
		job.Mode, _ = scalarString(raw)
	}

	if raw, ok := values[keyExtension]; ok {
		job.Extension, _ = scalarString(raw)
	}

	return job, true
}

// scalarString turns a JSON scalar into a string: strings verbatim, null
// as "", numbers and booleans as their literal text. Objects and arrays fail.
func scalarString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}

		return s, true
	case '{', '[':
		return "", false
	}

	if string(raw) == "null" {
		return "", true
	}

	return string(raw), true
}
