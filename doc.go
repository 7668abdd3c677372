// Package astar provides a generic A* shortest-path implementation.
//
// Callers describe a state space through the Problem interface (start state,
// goal test, heuristic and a neighbor iterator) and get back the cheapest
// path and its cost. It exposes these entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - SearchReusable: answer many start/goal queries against one ReusableProblem.
//   - SearchGrid: search a 2D Grid of cell costs with orthogonal and optional diagonal moves.
//
// A search keeps all of its nodes in an index-based arena that is dropped
// when the call returns. The frontier has no native decrease-key: when an
// open node gets a cheaper path the frontier is rebuilt, unless
// WithDecreaseKey selects the indexed variant. Closed nodes are never
// reopened, so paths are optimal only for consistent heuristics.
//
// Searches run synchronously on the calling goroutine and cannot be
// cancelled; a problem with an infinite reachable state space and no
// reachable goal never returns.
package astar
