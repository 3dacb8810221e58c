package dynsql

import (
	"fmt"

	"github.com/zoobzio/dbml"
)

// Instance is a tree-construction front end bound to a DBML schema. Its
// constructors reject table and field names the schema doesn't know, so a
// statement built through an Instance can only reference real columns.
type Instance struct {
	project *dbml.Project
	tables  map[string]*dbml.Table
	fields  map[string]map[string]*dbml.Column
}

// NewFromDBML creates an Instance from a DBML project.
func NewFromDBML(project *dbml.Project) (*Instance, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	in := &Instance{
		project: project,
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
	}
	for _, table := range project.Tables {
		in.tables[table.Name] = table
		in.fields[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			in.fields[table.Name][col.Name] = col
		}
	}
	return in, nil
}

// TryT creates a schema-validated table reference.
func (in *Instance) TryT(name string, alias ...string) (*Table, error) {
	if _, ok := in.tables[name]; !ok {
		return nil, fmt.Errorf("table %q not found in schema", name)
	}
	return TryT(name, alias...)
}

// T creates a schema-validated table reference, panicking on unknown names.
func (in *Instance) T(name string, alias ...string) *Table {
	t, err := in.TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryF creates a schema-validated field reference. The field must exist in
// at least one table of the schema.
func (in *Instance) TryF(name string) (*Ident, error) {
	for _, cols := range in.fields {
		if _, ok := cols[name]; ok {
			return TryF(name)
		}
	}
	return nil, fmt.Errorf("field %q not found in schema", name)
}

// F creates a schema-validated field reference, panicking on unknown names.
func (in *Instance) F(name string) *Ident {
	f, err := in.TryF(name)
	if err != nil {
		panic(err)
	}
	return f
}

// P creates a parameter placeholder. Parameters are not schema entities;
// this is a convenience so instance-based call sites read uniformly.
func (in *Instance) P(name string) *Param {
	return P(name)
}

// C creates a condition; see the package-level C.
func (in *Instance) C(left Node, op Operator, right Node) *Binary {
	return C(left, op, right)
}
