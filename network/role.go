package network

import (
	"fmt"
	"strconv"
	"strings"
)

// Role classifies a node of a perturbation network.
// The numeric values match the node-role file encoding.
type Role int

const (
	// RoleProtein marks a measured protein / phosphosite (file code 1).
	RoleProtein Role = 1

	// RolePhenotype marks a phenotypic readout such as viability (file code 2).
	RolePhenotype Role = 2

	// RoleActivity marks a drug or activity node (file code 3).
	RoleActivity Role = 3

	// RoleGeneSet marks an enrichment-map node. It never appears in role files.
	RoleGeneSet Role = 4
)

// String returns the lower-case role name.
func (r Role) String() string {
	switch r {
	case RoleProtein:
		return "protein"
	case RolePhenotype:
		return "phenotype"
	case RoleActivity:
		return "activity"
	case RoleGeneSet:
		return "geneset"
	default:
		return "Role(" + strconv.Itoa(int(r)) + ")"
	}
}

// ParseRole accepts the file codes 1/2/3 or the names
// protein / phenotype / activity (also "drug" for activity), case-insensitive.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "protein":
		return RoleProtein, nil
	case "2", "phenotype":
		return RolePhenotype, nil
	case "3", "activity", "drug":
		return RoleActivity, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownRole)
	}
}

// NameSet is a lookup set of node names.
type NameSet map[string]struct{}

// NewNameSet builds a NameSet from names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}

	return s
}

// Has reports membership; a nil NameSet is empty.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]

	return ok
}

// Classify assigns a role to name from two name sets: phenotypes first, then
// activities; anything in neither is a protein. The function is pure, so the
// same inputs always give the same role.
func Classify(name string, phenotypes, activities NameSet) Role {
	switch {
	case phenotypes.Has(name):
		return RolePhenotype
	case activities.Has(name):
		return RoleActivity
	default:
		return RoleProtein
	}
}

// Classifier is the role function shape consumed by graph builders.
type Classifier func(name string) Role

// ClassifierFor binds Classify to fixed name sets.
func ClassifierFor(phenotypes, activities NameSet) Classifier {
	return func(name string) Role { return Classify(name, phenotypes, activities) }
}
