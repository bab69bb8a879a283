// Package graphgen draws random undirected graphs whose node count, number of
// connected components and component sizes are constrained.
//
// A Generator is built once from Constraints, then asked for any number of
// graphs. Every random decision goes through a draw.Drawer, so a draw is
// replayable from its recorded choices and shrinkable by replaying simpler
// ones. A single draw proceeds as follows:
//
//  1. node count n ∈ [MinNodes, MaxNodes] (MaxNodes defaults to MinNodes+10);
//  2. component bounds resolved against n (see Constraints);
//  3. component count k in those bounds;
//  4. one restricted partition of n into k parts, picked by index from the
//     partition.Cache (index 0 is the most balanced split);
//  5. one connected subgraph per part from the ConnectedBuilder;
//  6. all subgraphs joined with core.DisjointUnion (IDs "0".."n-1").
//
// Shrinking (see Generator.Gen) therefore moves toward fewer nodes, fewer
// components and more balanced component sizes.
//
// Errors:
//
//	ErrInvalidArgument  – constraints rejected by New, before any draw
//	ErrOverConstrained  – a draw found no admissible component count or
//	                      partition; the partition sentinel stays matchable
//
// Constraining component counts and component sizes at the same time can
// leave nothing to draw for some node counts. That combination is not
// rejected up front; it surfaces as ErrOverConstrained.
package graphgen
