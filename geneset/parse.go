package geneset

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/katalvlaran/netomics/tabular"
)

// Long-format column names (clusterProfiler read.gmt output).
const (
	ColOnt  = "ont"
	ColGene = "gene"
)

// builder accumulates one collection while preserving first-seen order of
// sets and of genes inside each set.
type builder struct {
	order []string
	sets  map[string]*Set
	genes map[string]map[string]struct{}
}

func newBuilder() *builder {
	return &builder{sets: make(map[string]*Set), genes: make(map[string]map[string]struct{})}
}

// add appends gene to set name, creating the set on first use.
// Duplicate genes inside a set are collapsed.
func (b *builder) add(name, desc, gene string) {
	s, ok := b.sets[name]
	if !ok {
		s = &Set{Name: name, Description: desc}
		b.sets[name] = s
		b.genes[name] = make(map[string]struct{})
		b.order = append(b.order, name)
	}
	if gene == "" {
		return
	}
	if _, dup := b.genes[name][gene]; dup {
		return
	}
	b.genes[name][gene] = struct{}{}
	s.Genes = append(s.Genes, gene)
}

func (b *builder) collection() Collection {
	out := make(Collection, len(b.order))
	for i, name := range b.order {
		out[i] = *b.sets[name]
	}

	return out
}

// ReadGMT parses the GMT format: one set per line,
//
//	name <TAB> description <TAB> gene1 <TAB> gene2 ...
//
// The description may be empty. A name appearing on two lines is
// ErrDuplicateSet. All failures are *tabular.ParseError.
func ReadGMT(r io.Reader, source string) (Collection, error) {
	rd := tabular.NewReader(r, source, tabular.WithEmptyFields())
	b := newBuilder()
	for {
		fields, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(fields) < 2 {
			return nil, rd.Fail("GMT record needs name and description, got %d fields: %w", len(fields), tabular.ErrColumnCount)
		}
		name := fields[0]
		if name == "" {
			return nil, rd.Fail("%w", ErrEmptySetName)
		}
		if _, dup := b.sets[name]; dup {
			return nil, rd.Fail("%q: %w", name, ErrDuplicateSet)
		}
		b.add(name, fields[1], "")
		for _, g := range fields[2:] {
			b.add(name, fields[1], g)
		}
	}

	return b.collection(), nil
}

// ReadLong parses a long-format table with a header naming at least the
// columns "ont" (set name) and "gene". Rows of one set may be interleaved
// with rows of other sets; sets keep first-seen order.
func ReadLong(r io.Reader, source string) (Collection, error) {
	rd := tabular.NewReader(r, source)
	hdr, err := tabular.ReadHeader(rd)
	if err != nil {
		return nil, err
	}
	pos, err := hdr.Require(ColOnt, ColGene)
	if err != nil {
		return nil, rd.Fail("%w", err)
	}

	b := newBuilder()
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
		name, gene := fields[pos[0]], fields[pos[1]]
		if name == "" {
			return nil, rd.Fail("%w", ErrEmptySetName)
		}
		b.add(name, "", gene)
	}

	return b.collection(), nil
}

// Read dispatches on the file name: ".gmt" (optionally ".gz") is GMT,
// anything else is the long format.
func Read(r io.Reader, source string) (Collection, error) {
	if strings.HasSuffix(strings.TrimSuffix(strings.ToLower(source), ".gz"), ".gmt") {
		return ReadGMT(r, source)
	}

	return ReadLong(r, source)
}

// Load reads one gene-set file from disk (gzip-aware).
func Load(path string) (Collection, error) {
	return tabular.ReadFile(path, Read)
}

// Glob expands a doublestar pattern to the sorted list of matching regular
// files. No match is ErrNoFiles.
func Glob(pattern string) ([]string, error) {
	paths, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("geneset: glob %q: %w", pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("geneset: %q: %w", pattern, ErrNoFiles)
	}
	sort.Strings(paths)

	return paths, nil
}

// LoadGlob expands a doublestar pattern (e.g. "genesets/**/*.gmt"), loads
// every matched file in lexical order and merges the results. Set names must
// be unique across files.
func LoadGlob(pattern string) (Collection, error) {
	paths, err := Glob(pattern)
	if err != nil {
		return nil, err
	}

	parts := make([]Collection, 0, len(paths))
	for _, p := range paths {
		c, err := Load(p)
		if err != nil {
			return nil, err
		}
		parts = append(parts, c)
	}
	merged, err := Merge(parts...)
	if err != nil {
		return nil, fmt.Errorf("geneset: %q: %w", pattern, err)
	}

	return merged, nil
}
