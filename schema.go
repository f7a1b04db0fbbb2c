package modelgen

// Column is a single column as reported by SHOW COLUMNS.
// Type is the raw declared type, e.g. "varchar(255)" or "int unsigned".
type Column struct {
	Name    string  `json:"name" yaml:"name"`
	Type    string  `json:"type" yaml:"type"`
	Null    bool    `json:"null" yaml:"null"`
	Key     string  `json:"key" yaml:"key"`
	Default *string `json:"default" yaml:"default"`
	Extra   string  `json:"extra" yaml:"extra"`
}

// IsPrimaryKey reports whether the column takes part in the primary key.
func (c Column) IsPrimaryKey() bool {
	return c.Key == "PRI"
}

// TableMetadata is a base table with its columns in definition order.
type TableMetadata struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []Column `json:"columns" yaml:"columns"`
}

// Schema is the introspected database. Tables keep the order the
// database returned them in.
type Schema struct {
	Name   string          `json:"name" yaml:"name"`
	Tables []TableMetadata `json:"tables" yaml:"tables"`
}

// Table looks a table up by name.
func (s *Schema) Table(name string) (TableMetadata, bool) {
	if s == nil {
		return TableMetadata{}, false
	}

	for _, t := range s.Tables {
		if t.Name == name {
			return t, true
		}
	}

	return TableMetadata{}, false
}

// TableNames returns the table names in schema order.
func (s *Schema) TableNames() []string {
	if s == nil {
		return nil
	}

	names := make([]string, 0, len(s.Tables))
	for _, t := range s.Tables {
		names = append(names, t.Name)
	}

	return names
}
