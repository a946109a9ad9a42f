// Package space provides the concrete topologies bundled with agentscape:
//
//   - Grid: a bounded two-dimensional area with Euclidean neighbor search
//   - Graph: an adjacency-list topology with hop-bounded neighbor search
//
// Both embed core.BaseSpace and are driven exclusively through the core
// space operations. New topologies follow the same recipe: embed
// core.BaseSpace, implement RandomPosition and Neighbors, and shadow Place
// when placement needs bookkeeping.
package space
