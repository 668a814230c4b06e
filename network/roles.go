package network

import (
	"io"

	"github.com/katalvlaran/netomics/tabular"
)

// Default column names of a node-role table.
const (
	RoleNameColumn = "name"
	RoleTypeColumn = "type"
)

// RoleTable maps node names to roles as declared in a node-role file.
//
// Layout (header required):
//
//	name        type
//	viability   2
//	erlotinib   3
//	EGFR_pY1068 1
type RoleTable struct {
	order []string
	roles map[string]Role
}

// Len returns the number of declared nodes.
func (t *RoleTable) Len() int { return len(t.order) }

// Names returns the declared names in file order.
func (t *RoleTable) Names() []string { return append([]string(nil), t.order...) }

// Role returns the declared role of name.
func (t *RoleTable) Role(name string) (Role, bool) {
	r, ok := t.roles[name]

	return r, ok
}

// Sets splits the table into the phenotype and activity name sets used by
// Classify. Protein rows contribute to neither set.
func (t *RoleTable) Sets() (phenotypes, activities NameSet) {
	phenotypes, activities = make(NameSet), make(NameSet)
	for name, r := range t.roles {
		switch r {
		case RolePhenotype:
			phenotypes[name] = struct{}{}
		case RoleActivity:
			activities[name] = struct{}{}
		}
	}

	return phenotypes, activities
}

// Classifier returns a Classifier over the table's name sets.
func (t *RoleTable) Classifier() Classifier {
	return ClassifierFor(t.Sets())
}

// ReadRoles parses a node-role table.
//
// Failures (all *tabular.ParseError): missing header or columns, empty names
// (ErrEmptyNodeID), unknown role codes (ErrUnknownRole), repeated names
// (ErrDuplicateNode).
func ReadRoles(r io.Reader, source string) (*RoleTable, error) {
	rd := tabular.NewReader(r, source)
	hdr, err := tabular.ReadHeader(rd)
	if err != nil {
		return nil, err
	}
	pos, err := hdr.Require(RoleNameColumn, RoleTypeColumn)
	if err != nil {
		return nil, rd.Fail("%w", err)
	}

	t := &RoleTable{roles: make(map[string]Role)}
	for {
		fields, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if fields, err = hdr.Aligned(rd, fields); err != nil {
			return nil, err
		}

		name := fields[pos[0]]
		if name == "" {
			return nil, rd.Fail("%w", ErrEmptyNodeID)
		}
		role, err := ParseRole(fields[pos[1]])
		if err != nil {
			return nil, rd.Fail("node %q: %w", name, err)
		}
		if _, dup := t.roles[name]; dup {
			return nil, rd.Fail("%q: %w", name, ErrDuplicateNode)
		}
		t.roles[name] = role
		t.order = append(t.order, name)
	}

	return t, nil
}

// LoadRoles reads a node-role file from disk (gzip-aware).
func LoadRoles(path string) (*RoleTable, error) {
	return tabular.ReadFile(path, ReadRoles)
}
