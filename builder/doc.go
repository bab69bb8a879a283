// Package builder provides deterministic, functional-options-style
// constructors for connected graphs on a core.Graph.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a graph, resolve options,
//     apply constructors in order.
//     – Constructor: func(g *core.Graph, cfg builderConfig) error.
//   - Configuration (BuilderOption):
//     – WithIDScheme:  vertex ID strategy (IDFn).
//     – WithSeed / WithRand: RNG for stochastic constructors.
//     – WithDrawer:    route stochastic choices through a draw.Drawer, so a
//     recording draw.Source can replay and shrink the topology.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:      decimal strings ("0","1",…).
//     – ExcelColumnIDFn:  spreadsheet columns ("A","Z","AA",…).
//     – SymbolNumberIDFn: prefix + decimal ("v0","v1",…).
//   - Connected constructors:
//     – Path(n), Star(n), Complete(n): fixed topologies on n ≥ 1.
//     – Cycle(n) on n ≥ 3, Wheel(n) on n ≥ 4: ring topologies.
//     – RandomConnected(n, p): random recursive tree plus extra edges with
//     probability p.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource and ErrConstructFailed.
//   - Same inputs, options and seed produce identical graphs.
package builder
