// Package graphgen is the module root of a constrained random graph generator
// for property-based tests. It holds no code; the work lives in subpackages.
//
// Layout:
//
//	partition/ - restricted integer partitions: enumeration, validation, memoizing Cache
//	draw/      - the Drawer capability, recording Source, replay and shrink candidates
//	core/      - thread-safe undirected Graph, Stats, DisjointUnion
//	bfs/       - breadth-first traversal and connected components
//	builder/   - deterministic and drawn topologies (Path, Star, Complete, Cycle, Wheel, RandomConnected)
//	graphgen/  - Constraints, Generator.Draw and the gopter adapter
//	cmd/graphgen - command-line front end over partition and graphgen
//
// Quick start:
//
//	gen, err := graphgen.New(graphgen.Constraints{
//		MinNodes:         10,
//		MaxComponentSize: graphgen.Int(4),
//	})
//	if err != nil { ... }
//	g, err := gen.Draw(draw.NewSeeded(1))
//
// Every random decision goes through a draw.Drawer, so a failing graph is
// reproduced from its recorded choices and shrunk by replaying smaller ones.
package graphgen
