package tabular

import (
	"fmt"
	"io"
	"strings"
)

// Header maps column names to field positions.
// Lookups are case-insensitive; the original spelling is kept in Names.
type Header struct {
	Names []string
	index map[string]int
}

// NewHeader builds a Header from the fields of a header row.
func NewHeader(fields []string) Header {
	h := Header{Names: append([]string(nil), fields...), index: make(map[string]int, len(fields))}
	for i, f := range fields {
		key := strings.ToLower(f)
		if _, seen := h.index[key]; !seen { // first occurrence wins
			h.index[key] = i
		}
	}

	return h
}

// Len returns the number of header columns.
func (h Header) Len() int { return len(h.Names) }

// Index returns the position of column name.
func (h Header) Index(name string) (int, bool) {
	i, ok := h.index[strings.ToLower(name)]

	return i, ok
}

// Require returns the positions of all names in order, or ErrMissingColumn
// naming the first absent column.
func (h Header) Require(names ...string) ([]int, error) {
	pos := make([]int, len(names))
	for k, name := range names {
		i, ok := h.Index(name)
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrMissingColumn)
		}
		pos[k] = i
	}

	return pos, nil
}

// ReadHeader consumes the first record of r as a header row.
// An empty input is ErrMissingHeader.
func ReadHeader(r *Reader) (Header, error) {
	fields, err := r.Next()
	if err == io.EOF {
		return Header{}, Errorf(r.Source(), 0, "%w", ErrMissingHeader)
	}
	if err != nil {
		return Header{}, err
	}

	return NewHeader(fields), nil
}

// Aligned adjusts a data row against a header for the R row-name convention:
// write.table(row.names=TRUE) emits one field fewer in the header than in
// each data row. The layout is decided once, by the first data row read
// through r: h.Len() fields (plain) or h.Len()+1 (leading row name, dropped).
// Every later row must have the same width; any other count is
// ErrColumnCount.
func (h Header) Aligned(r *Reader, fields []string) ([]string, error) {
	if r.width == 0 && (len(fields) == h.Len() || len(fields) == h.Len()+1) {
		r.width = len(fields)
	}
	if r.width == 0 || len(fields) != r.width {
		want := r.width
		if want == 0 {
			want = h.Len()
		}
		return nil, r.Fail("got %d fields, want %d: %w", len(fields), want, ErrColumnCount)
	}

	return fields[len(fields)-h.Len():], nil
}
