package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/evgeniyblinov/modelgen"
	"github.com/evgeniyblinov/modelgen/testhelper"
)

func shopSchema() *modelgen.Schema {
	return &modelgen.Schema{
		Name: "shop",
		Tables: []modelgen.TableMetadata{
			userAccountTable(),
			{Name: "order_item", Columns: []modelgen.Column{{Name: "id", Type: "bigint", Key: "PRI"}}},
		},
	}
}

func TestEmitter(t *testing.T) {
	testhelper.NoColor(t)

	t.Run("WritesOneFilePerTable", func(t *testing.T) {
		dir := t.TempDir()
		tpl := testhelper.WriteFile(t, dir, "Model.tpl", `<?php // {{ .tableName }}`)
		out := filepath.Join(dir, "out", "models")

		var buf bytes.Buffer

		emitter := NewEmitter(Options{Reporter: modelgen.NewReporter(&buf, true)})
		result, err := emitter.Emit([]Job{{Template: tpl, Output: out}}, shopSchema())
		assert.NoError(t, err)

		first := filepath.Join(out, "UserAccountModel.php")
		second := filepath.Join(out, "OrderItemModel.php")

		assert.Equal(t, 2, result.Rendered)
		assert.Equal(t, []string{first, second}, result.Written)
		assert.Zero(t, result.Skipped)
		assert.Equal(t, "<?php // user_account", testhelper.ReadFile(t, first))
		assert.Equal(t, "<?php // order_item", testhelper.ReadFile(t, second))
		assert.Equal(t, "File "+first+" successfully created.\nFile "+second+" successfully created.\n", buf.String())
	})

	t.Run("ZeroTables", func(t *testing.T) {
		dir := t.TempDir()
		tpl := testhelper.WriteFile(t, dir, "Model.tpl", `{{ .tableName }}`)
		out := filepath.Join(dir, "out")

		result, err := NewEmitter(Options{}).Emit([]Job{{Template: tpl, Output: out}}, &modelgen.Schema{Name: "empty"})
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Rendered)
		assert.Zero(t, result.Written)

		entries, err := os.ReadDir(out)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(entries))
	})

	t.Run("NilSchema", func(t *testing.T) {
		dir := t.TempDir()
		tpl := testhelper.WriteFile(t, dir, "Model.tpl", `{{ .tableName }}`)

		result, err := NewEmitter(Options{}).Emit([]Job{{Template: tpl, Output: dir}}, nil)
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Rendered)
	})

	t.Run("CreateExclusiveSkipsExistingFile", func(t *testing.T) {
		dir := t.TempDir()
		tpl := testhelper.WriteFile(t, dir, "Model.tpl", `new {{ .tableName }}`)
		existing := testhelper.WriteFile(t, dir, "UserAccountModel.php", "hand written")

		var buf bytes.Buffer

		emitter := NewEmitter(Options{FileMode: ModeCreateExclusive, Reporter: modelgen.NewReporter(&buf, true)})
		result, err := emitter.Emit([]Job{{Template: tpl, Output: dir}}, shopSchema())
		assert.NoError(t, err)

		assert.Equal(t, []string{existing}, result.Skipped)
		assert.Equal(t, []string{filepath.Join(dir, "OrderItemModel.php")}, result.Written)
		assert.Equal(t, "hand written", testhelper.ReadFile(t, existing))
		assert.Contains(t, buf.String(), "File "+existing+" not created.\n")
	})

	t.Run("QuietSkip", func(t *testing.T) {
		dir := t.TempDir()
		tpl := testhelper.WriteFile(t, dir, "Model.tpl", `new`)
		testhelper.WriteFile(t, dir, "UserAccountModel.php", "old")

		var buf bytes.Buffer

		emitter := NewEmitter(Options{Reporter: modelgen.NewReporter(&buf, false)})
		result, err := emitter.Emit([]Job{{Template: tpl, Output: dir}}, shopSchema())
		assert.NoError(t, err)
		assert.Equal(t, 1, len(result.Skipped))
		assert.Equal(t, "", buf.String())
	})

	t.Run("OverwriteFromJobMode", func(t *testing.T) {
		dir := t.TempDir()
		tpl := testhelper.WriteFile(t, dir, "Model.tpl", `new {{ .tableName }}`)
		existing := testhelper.WriteFile(t, dir, "UserAccountModel.php", "old content that is longer")

		emitter := NewEmitter(Options{FileMode: ModeCreateExclusive})
		result, err := emitter.Emit([]Job{{Template: tpl, Output: dir, Mode: ModeOverwrite}}, shopSchema())
		assert.NoError(t, err)
		assert.Equal(t, 2, len(result.Written))
		assert.Equal(t, "new user_account", testhelper.ReadFile(t, existing))
	})

	t.Run("AppendFromGlobalMode", func(t *testing.T) {
		dir := t.TempDir()
		tpl := testhelper.WriteFile(t, dir, "Model.tpl", `+{{ .tableName }}`)
		existing := testhelper.WriteFile(t, dir, "UserAccountModel.php", "old")

		emitter := NewEmitter(Options{FileMode: "a"})
		_, err := emitter.Emit([]Job{{Template: tpl, Output: dir}}, shopSchema())
		assert.NoError(t, err)
		assert.Equal(t, "old+user_account", testhelper.ReadFile(t, existing))
	})

	t.Run("UnknownModeSkipsFiles", func(t *testing.T) {
		dir := t.TempDir()
		tpl := testhelper.WriteFile(t, dir, "Model.tpl", `x`)

		result, err := NewEmitter(Options{}).Emit([]Job{{Template: tpl, Output: dir, Mode: "r"}}, shopSchema())
		assert.NoError(t, err)
		assert.Equal(t, 2, len(result.Skipped))
		assert.Zero(t, result.Written)
	})

	t.Run("MissingTemplateStopsRun", func(t *testing.T) {
		dir := t.TempDir()
		tpl := testhelper.WriteFile(t, dir, "Model.tpl", `{{ .tableName }}`)
		first := filepath.Join(dir, "first")
		second := filepath.Join(dir, "second")
		third := filepath.Join(dir, "third")

		jobs := []Job{
			{Template: tpl, Output: first},
			{Template: filepath.Join(dir, "Missing.tpl"), Output: second},
			{Template: tpl, Output: third},
		}

		result, err := NewEmitter(Options{}).Emit(jobs, shopSchema())
		assert.IsError(t, err, ErrTemplateNotFound)
		assert.Equal(t, 2, len(result.Written))

		entries, err := os.ReadDir(first)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(entries))

		_, err = os.Stat(third)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("MissingTemplateWithoutTables", func(t *testing.T) {
		dir := t.TempDir()

		_, err := NewEmitter(Options{}).Emit([]Job{{Template: filepath.Join(dir, "Missing.tpl"), Output: dir}}, nil)
		assert.IsError(t, err, ErrTemplateNotFound)
	})

	t.Run("RenderErrorStopsRun", func(t *testing.T) {
		dir := t.TempDir()
		tpl := testhelper.WriteFile(t, dir, "Model.tpl", `{{ .missing }}`)

		result, err := NewEmitter(Options{}).Emit([]Job{{Template: tpl, Output: dir}}, shopSchema())
		assert.IsError(t, err, ErrTemplateRender)
		assert.Equal(t, 0, result.Rendered)
		assert.Zero(t, result.Written)
	})

	t.Run("UnwritableOutputDirectoryWarns", func(t *testing.T) {
		dir := t.TempDir()
		tpl := testhelper.WriteFile(t, dir, "Model.tpl", `x`)
		blocker := testhelper.WriteFile(t, dir, "blocker", "")

		var buf bytes.Buffer

		emitter := NewEmitter(Options{Reporter: modelgen.NewReporter(&buf, false)})
		result, err := emitter.Emit([]Job{{Template: tpl, Output: filepath.Join(blocker, "out")}}, shopSchema())
		assert.NoError(t, err)
		assert.Equal(t, 2, len(result.Skipped))
		assert.Contains(t, buf.String(), "Warning: failed to create directory")
	})
}
