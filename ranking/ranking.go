// Package ranking loads the ranked gene list consumed by enrichment
// analysis: a two-column table of gene identifier and numeric statistic
// (fold change, signed -log10 p, t statistic, ...).
//
// Input layout (whitespace or tab delimited, header required):
//
//	gene   rank
//	TP53   3.21
//	EGFR  -1.75
//
// Duplicate policy: a gene listed twice is rejected with ErrDuplicateGene
// unless the caller opts into WithLastWins, in which case the later row
// replaces the earlier one in place (the table keeps one entry per gene).
package ranking

import (
	"errors"
	"io"
	"sort"

	"github.com/katalvlaran/netomics/tabular"
)

// Default column names.
const (
	DefaultGeneColumn  = "gene"
	DefaultScoreColumn = "rank"
)

// ErrDuplicateGene indicates a gene identifier listed more than once.
var ErrDuplicateGene = errors.New("ranking: duplicate gene")

// ErrEmptyGene indicates a row with an empty gene identifier.
var ErrEmptyGene = errors.New("ranking: empty gene identifier")

// Entry is one ranked gene.
type Entry struct {
	Gene  string
	Score float64
}

// Table is the parsed ranking in file order.
type Table struct {
	Entries []Entry
}

// Len returns the number of genes.
func (t *Table) Len() int { return len(t.Entries) }

// Map returns gene → score.
func (t *Table) Map() map[string]float64 {
	m := make(map[string]float64, len(t.Entries))
	for _, e := range t.Entries {
		m[e.Gene] = e.Score
	}

	return m
}

// Sorted returns a copy ordered by descending score; ties keep file order.
func (t *Table) Sorted() []Entry {
	out := append([]Entry(nil), t.Entries...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	return out
}

// Genes returns the gene identifiers in file order.
func (t *Table) Genes() []string {
	out := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		out[i] = e.Gene
	}

	return out
}

// options holds Read configuration.
type options struct {
	geneCol, scoreCol string
	lastWins          bool
}

// Option configures Read.
type Option func(*options)

// WithColumns overrides the gene and score column names.
// Empty arguments keep the defaults.
func WithColumns(gene, score string) Option {
	return func(o *options) {
		if gene != "" {
			o.geneCol = gene
		}
		if score != "" {
			o.scoreCol = score
		}
	}
}

// WithLastWins accepts duplicate genes; the last row's score is kept.
func WithLastWins() Option {
	return func(o *options) { o.lastWins = true }
}

// Read parses a ranking table.
//
// Failures (all *tabular.ParseError): missing header (ErrMissingHeader),
// missing gene/score column (ErrMissingColumn), wrong field count
// (ErrColumnCount), non-numeric score (ErrNotNumeric), empty gene
// (ErrEmptyGene), duplicate gene under the default policy (ErrDuplicateGene).
func Read(r io.Reader, source string, opts ...Option) (*Table, error) {
	cfg := options{geneCol: DefaultGeneColumn, scoreCol: DefaultScoreColumn}
	for _, opt := range opts {
		opt(&cfg)
	}

	rd := tabular.NewReader(r, source)
	hdr, err := tabular.ReadHeader(rd)
	if err != nil {
		return nil, err
	}
	pos, err := hdr.Require(cfg.geneCol, cfg.scoreCol)
	if err != nil {
		return nil, rd.Fail("%w", err)
	}

	t := &Table{}
	seen := make(map[string]int)
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

		gene := fields[pos[0]]
		if gene == "" {
			return nil, rd.Fail("%w", ErrEmptyGene)
		}
		score, err := tabular.Float(fields[pos[1]])
		if err != nil {
			return nil, rd.Fail("gene %q: %w", gene, err)
		}

		if at, dup := seen[gene]; dup {
			if !cfg.lastWins {
				return nil, rd.Fail("%q: %w", gene, ErrDuplicateGene)
			}
			t.Entries[at].Score = score
			continue
		}
		seen[gene] = len(t.Entries)
		t.Entries = append(t.Entries, Entry{Gene: gene, Score: score})
	}

	return t, nil
}

// Load reads a ranking file from disk (gzip-aware).
func Load(path string, opts ...Option) (*Table, error) {
	return tabular.ReadFile(path, func(r io.Reader, src string) (*Table, error) {
		return Read(r, src, opts...)
	})
}
