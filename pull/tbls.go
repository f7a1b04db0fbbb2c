package pull

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	tblsschema "github.com/k1LoW/tbls/schema"

	"github.com/evgeniyblinov/modelgen"
)

const (
	tblsTableType      = "BASE TABLE"
	tblsPrimaryKeyType = "PRIMARY KEY"
)

// ToTblsSchema converts a pull result into tbls' schema model.
// Only primary keys survive from the column Key field, as a PRIMARY KEY constraint.
func ToTblsSchema(result *PullResult) *tblsschema.Schema {
	if result == nil || result.Schema == nil {
		return nil
	}

	s := &tblsschema.Schema{
		Name: result.Schema.Name,
		Driver: &tblsschema.Driver{
			Name:            driverName,
			DatabaseVersion: result.ServerVersion,
		},
		Tables: make([]*tblsschema.Table, 0, len(result.Schema.Tables)),
	}

	for _, t := range result.Schema.Tables {
		tbl := &tblsschema.Table{
			Name:    t.Name,
			Type:    tblsTableType,
			Columns: make([]*tblsschema.Column, 0, len(t.Columns)),
		}

		var pk []string

		for _, c := range t.Columns {
			col := &tblsschema.Column{
				Name:     c.Name,
				Type:     c.Type,
				Nullable: c.Null,
				ExtraDef: c.Extra,
				PK:       c.IsPrimaryKey(),
			}

			if c.Default != nil {
				col.Default = sql.NullString{String: *c.Default, Valid: true}
			}

			if c.IsPrimaryKey() {
				pk = append(pk, c.Name)
			}

			tbl.Columns = append(tbl.Columns, col)
		}

		if len(pk) > 0 {
			quoted := make([]string, len(pk))
			for i, name := range pk {
				quoted[i] = QuoteIdentifier(name)
			}

			tbl.Constraints = append(tbl.Constraints, &tblsschema.Constraint{
				Name:    "PRIMARY",
				Type:    tblsPrimaryKeyType,
				Def:     "PRIMARY KEY (" + strings.Join(quoted, ", ") + ")",
				Columns: pk,
			})
		}

		s.Tables = append(s.Tables, tbl)
	}

	return s
}

// FromTblsSchema converts a tbls schema back into modelgen's model. Views are skipped.
func FromTblsSchema(s *tblsschema.Schema) (*modelgen.Schema, error) {
	if s == nil {
		return nil, ErrSchemaPayloadNil
	}

	schema := &modelgen.Schema{
		Name:   s.Name,
		Tables: []modelgen.TableMetadata{},
	}

	for _, tbl := range s.Tables {
		if tbl == nil || (tbl.Type != "" && !strings.EqualFold(tbl.Type, tblsTableType)) {
			continue
		}

		primary := map[string]bool{}

		for _, c := range tbl.Constraints {
			if c == nil || !strings.EqualFold(c.Type, tblsPrimaryKeyType) {
				continue
			}

			for _, name := range c.Columns {
				primary[name] = true
			}
		}

		table := modelgen.TableMetadata{
			Name:    tbl.Name,
			Columns: make([]modelgen.Column, 0, len(tbl.Columns)),
		}

		for _, col := range tbl.Columns {
			if col == nil {
				continue
			}

			c := modelgen.Column{
				Name:  col.Name,
				Type:  col.Type,
				Null:  col.Nullable,
				Extra: col.ExtraDef,
			}

			if col.PK || primary[col.Name] {
				c.Key = "PRI"
			}

			if col.Default.Valid {
				v := col.Default.String
				c.Default = &v
			}

			table.Columns = append(table.Columns, c)
		}

		schema.Tables = append(schema.Tables, table)
	}

	return schema, nil
}

// WriteTblsSchema encodes the pull result as tbls schema JSON.
func WriteTblsSchema(w io.Writer, result *PullResult) error {
	s := ToTblsSchema(result)
	if s == nil {
		return ErrSchemaPayloadNil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("%w: %w", ErrSchemaWriteFailed, err)
	}

	return nil
}

// WriteTblsSchemaFile writes the tbls schema JSON to path, replacing any existing file.
func WriteTblsSchemaFile(path string, result *PullResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrSchemaWriteFailed, path, err)
	}
	defer f.Close()

	if err := WriteTblsSchema(f, result); err != nil {
		return err
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrSchemaWriteFailed, path, err)
	}

	return nil
}

// ReadTblsSchema decodes a tbls schema JSON document.
func ReadTblsSchema(r io.Reader) (*modelgen.Schema, error) {
	var s tblsschema.Schema
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaDecode, err)
	}

	return FromTblsSchema(&s)
}
