package geneset

import "strings"

// Filter returns the sets of c whose member count n satisfies lo < n < hi.
//
// Invalid bounds (lo < 0 or lo >= hi) yield an empty collection rather than
// an error; callers that want a hard failure validate with Bounds.Validate at
// their configuration boundary. The result shares no slice storage with c.
// Complexity: O(|c|).
func Filter(c Collection, lo, hi int) Collection {
	b := Bounds{Lower: lo, Upper: hi}
	if b.Validate() != nil {
		return Collection{}
	}

	out := make(Collection, 0, len(c))
	for _, s := range c {
		if b.Admits(s.Size()) {
			out = append(out, Set{
				Name:        s.Name,
				Description: s.Description,
				Genes:       append([]string(nil), s.Genes...),
			})
		}
	}

	return out
}

// FilterBounds is Filter with a Bounds value.
func FilterBounds(c Collection, b Bounds) Collection { return Filter(c, b.Lower, b.Upper) }

// ShortName returns the part of name before the first occurrence of delim,
// or name unchanged when delim does not occur (or is empty).
//
//	ShortName("LEPTIN%NETPATH%LEPTIN", "%") == "LEPTIN"
//	ShortName("SINGLE", "%")                == "SINGLE"
func ShortName(name, delim string) string {
	if delim == "" {
		return name
	}
	if i := strings.Index(name, delim); i >= 0 {
		return name[:i]
	}

	return name
}

// DefaultDelimiter separates the components of Bader-lab style set names
// ("NAME%SOURCE%ID").
const DefaultDelimiter = "%"
