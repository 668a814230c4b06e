// Package tabular is the shared parse layer for every flat-file input of the
// pipeline: gene-set files, ranking tables, node-role tables, labeled
// matrices, precomputed enrichment results and local-FDR vectors.
//
// A Reader yields one record (slice of fields) per non-blank, non-comment
// line. Fields are split on tabs when the line contains one, otherwise on
// runs of whitespace, which covers both R's write.table defaults and
// hand-written space-delimited files. Line numbers are tracked so callers
// can report *ParseError values pointing at the offending line.
package tabular

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line. GMT rows for large collections
// (e.g. GO biological process) can exceed bufio's 64 KiB default.
const maxLineBytes = 16 << 20

// Reader splits delimited text into records.
type Reader struct {
	source string
	sc     *bufio.Scanner
	line   int
	keep   bool // keep empty fields between consecutive tabs
	width  int  // data-row width fixed by Header.Aligned; 0 until decided
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithEmptyFields keeps empty fields produced by consecutive tabs instead of
// dropping them. GMT description columns are frequently empty.
func WithEmptyFields() ReaderOption {
	return func(r *Reader) { r.keep = true }
}

// NewReader wraps r. source labels the input in error messages.
func NewReader(r io.Reader, source string, opts ...ReaderOption) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	rd := &Reader{source: source, sc: sc}
	for _, opt := range opts {
		opt(rd)
	}

	return rd
}

// Source returns the label given to NewReader.
func (r *Reader) Source() string { return r.source }

// Line returns the 1-based number of the line most recently returned by Next.
func (r *Reader) Line() int { return r.line }

// Next returns the fields of the next record, or io.EOF at end of input.
// Blank lines and lines starting with '#' are skipped.
func (r *Reader) Next() ([]string, error) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimRight(r.sc.Text(), "\r")
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		return r.split(text), nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, &ParseError{Source: r.source, Line: r.line + 1, Err: err}
	}

	return nil, io.EOF
}

// Fail builds a *ParseError located at the current line.
func (r *Reader) Fail(format string, args ...any) *ParseError {
	return Errorf(r.source, r.line, format, args...)
}

// split tokenizes one line. Quotes written by R (write.table with
// quote=TRUE) are stripped from every field.
func (r *Reader) split(text string) []string {
	var fields []string
	if strings.Contains(text, "\t") {
		raw := strings.Split(text, "\t")
		fields = make([]string, 0, len(raw))
		for _, f := range raw {
			f = strings.TrimSpace(f)
			if f == "" && !r.keep {
				continue
			}
			fields = append(fields, f)
		}
	} else {
		fields = strings.Fields(text)
	}
	for i, f := range fields {
		fields[i] = unquote(f)
	}

	return fields
}

// unquote strips one level of matching double or single quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}

	return s
}

// Float parses s as a finite float64; NA/NaN/Inf and garbage yield ErrNotNumeric.
func Float(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumeric)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumeric)
	}

	return v, nil
}
