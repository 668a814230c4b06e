package geneset

// intersect counts genes present in both slices. Inputs are treated as sets.
func intersect(a, b []string) (inter, sizeA, sizeB int) {
	ma := make(map[string]struct{}, len(a))
	for _, g := range a {
		ma[g] = struct{}{}
	}
	mb := make(map[string]struct{}, len(b))
	for _, g := range b {
		if _, ok := ma[g]; ok {
			if _, counted := mb[g]; !counted {
				inter++
			}
		}
		mb[g] = struct{}{}
	}

	return inter, len(ma), len(mb)
}

// Jaccard returns |a ∩ b| / |a ∪ b|. Two empty inputs have similarity 0.
func Jaccard(a, b []string) float64 {
	inter, na, nb := intersect(a, b)
	union := na + nb - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}

// Overlap returns the overlap coefficient |a ∩ b| / min(|a|, |b|).
// An empty input has similarity 0.
func Overlap(a, b []string) float64 {
	inter, na, nb := intersect(a, b)
	m := na
	if nb < m {
		m = nb
	}
	if m == 0 {
		return 0
	}

	return float64(inter) / float64(m)
}
