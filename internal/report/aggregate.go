package report

// grouped accumulates per-key aggregates while remembering first-seen key
// order, so view rows come out deterministic without a post-sort.
type grouped[A any] struct {
	order  []string
	groups map[string]*A
}

// groupBy visits rows exactly once in document order. zero builds a fresh
// accumulator the first time a key appears; add folds the row into it.
func groupBy[R any, A any](rows []R, key func(R) string, zero func(R) *A, add func(*A, R)) *grouped[A] {
	g := &grouped[A]{groups: make(map[string]*A)}
	for _, row := range rows {
		k := key(row)
		acc, ok := g.groups[k]
		if !ok {
			acc = zero(row)
			g.groups[k] = acc
			g.order = append(g.order, k)
		}
		add(acc, row)
	}
	return g
}

// slice materializes the aggregates in first-seen-key order.
func (g *grouped[A]) slice() []*A {
	out := make([]*A, 0, len(g.order))
	for _, k := range g.order {
		out = append(out, g.groups[k])
	}
	return out
}

// safeRate guards the divide-by-zero cases in derived rates by substituting 0.
func safeRate(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
