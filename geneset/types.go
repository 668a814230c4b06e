// Package geneset models gene-set collections (pathway databases such as
// Reactome, NetPath or MSigDB exports) and the pure transforms the
// enrichment workflow applies to them: size filtering, name shortening and
// pairwise set similarity.
//
// Data model:
//   - Set: name → unique member genes, in first-seen order.
//   - Collection: ordered list of Sets with unique names.
//
// A Collection is read once, filtered once, and then treated as read-only.
// Every function in this package returns a new value; inputs are never
// mutated.
//
// Errors:
//
//	ErrRange         - filter bounds violate 0 <= Lower < Upper.
//	ErrDuplicateSet  - two sets share a name within one collection.
//	ErrEmptySetName  - a record has no set name.
//	ErrNoFiles       - a glob matched no gene-set files.
package geneset

import (
	"errors"
	"fmt"
)

// Sentinel errors for gene-set handling.
var (
	// ErrRange indicates invalid size-filter bounds.
	ErrRange = errors.New("geneset: invalid size bounds")

	// ErrDuplicateSet indicates two sets with the same name in one collection.
	ErrDuplicateSet = errors.New("geneset: duplicate gene-set name")

	// ErrEmptySetName indicates a record without a set name.
	ErrEmptySetName = errors.New("geneset: empty gene-set name")

	// ErrNoFiles indicates that a glob pattern matched no input files.
	ErrNoFiles = errors.New("geneset: no gene-set files matched")
)

// Set is one named group of gene identifiers.
type Set struct {
	// Name identifies the set, e.g. "LEPTIN%NETPATH%LEPTIN".
	Name string

	// Description is the free-text second GMT column (often a URL); may be empty.
	Description string

	// Genes lists unique member identifiers in first-seen order.
	Genes []string
}

// Size returns the member count.
func (s Set) Size() int { return len(s.Genes) }

// Contains reports whether gene is a member of s.
// Complexity: O(|s|); use Members for repeated lookups.
func (s Set) Contains(gene string) bool {
	for _, g := range s.Genes {
		if g == gene {
			return true
		}
	}

	return false
}

// Members returns s as a lookup set.
func (s Set) Members() map[string]struct{} {
	m := make(map[string]struct{}, len(s.Genes))
	for _, g := range s.Genes {
		m[g] = struct{}{}
	}

	return m
}

// Collection is an ordered list of gene sets with unique names.
type Collection []Set

// Names returns the set names in collection order.
func (c Collection) Names() []string {
	out := make([]string, len(c))
	for i, s := range c {
		out[i] = s.Name
	}

	return out
}

// Lookup returns the set called name.
func (c Collection) Lookup(name string) (Set, bool) {
	for _, s := range c {
		if s.Name == name {
			return s, true
		}
	}

	return Set{}, false
}

// Merge concatenates collections in order. A name seen twice is
// ErrDuplicateSet; the error names the offending set.
func Merge(cs ...Collection) (Collection, error) {
	seen := make(map[string]struct{})
	var out Collection
	for _, c := range cs {
		for _, s := range c {
			if _, dup := seen[s.Name]; dup {
				return nil, fmt.Errorf("%q: %w", s.Name, ErrDuplicateSet)
			}
			seen[s.Name] = struct{}{}
			out = append(out, s)
		}
	}

	return out, nil
}

// Bounds is the exclusive size window (Lower, Upper) used by Filter.
type Bounds struct {
	Lower int `yaml:"lower" mapstructure:"lower"`
	Upper int `yaml:"upper" mapstructure:"upper"`
}

// DefaultBounds mirrors the usual GSEA minGSSize/maxGSSize window.
var DefaultBounds = Bounds{Lower: 3, Upper: 100}

// Validate reports ErrRange unless 0 <= Lower < Upper.
func (b Bounds) Validate() error {
	if b.Lower < 0 || b.Lower >= b.Upper {
		return fmt.Errorf("lower=%d upper=%d: %w", b.Lower, b.Upper, ErrRange)
	}

	return nil
}

// Admits reports whether a set of size n lies strictly inside the window.
func (b Bounds) Admits(n int) bool { return b.Lower < n && n < b.Upper }
