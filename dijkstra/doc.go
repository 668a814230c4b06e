// Package dijkstra answers shortest-path queries on a perturbation network:
// "how does drug X reach phenotype Y through the measured proteins?".
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source node to
//     every node of an undirected network.Graph in O((V + E) log V).
//   - ShortestPath reconstructs one concrete route between two named nodes.
//   - Edge length is pluggable through CostFunc. Network weights are signed
//     correlations, so they are never used as lengths directly:
//   - HopCost (default): 1 per edge, fewest-hop paths.
//   - StrengthCost: 1-|w|, paths through strong correlations are short.
//   - AbsCost: |w|.
//
// Determinism:
//
//   - Nodes at equal distance are settled in ascending ID order and
//     neighbors are relaxed in ascending ID order; a predecessor is only
//     replaced by a strictly shorter route. Repeated queries on the same
//     graph return the same path.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:    Source not given.
//   - ErrNilGraph:       nil graph.
//   - ErrVertexNotFound: source or target absent.
//   - ErrNegativeWeight: the CostFunc produced a negative or NaN cost.
//   - ErrNoPath:         target unreachable (or beyond MaxDistance).
//   - ErrBadMaxDistance, ErrNilCost: raised via panic by option constructors.
//
// Thread safety:
//
//   - network.Graph is safe for concurrent reads; Dijkstra takes snapshots
//     through its read methods and keeps all run state local.
package dijkstra
