/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver checks token-to-token references before emission.
package resolver

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/tokencss/token"
)

var (
	// ErrCircularReference indicates tokens that reference each other in a loop.
	ErrCircularReference = errors.New("circular token reference")

	// ErrUnresolvedReference indicates a reference to a token id absent from
	// the snapshot.
	ErrUnresolvedReference = errors.New("unresolved token reference")
)

// DependencyGraph represents a directed graph of token references, keyed by
// token id. Iteration follows snapshot order so results are deterministic.
type DependencyGraph struct {
	order        []string
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        map[string]bool
}

// BuildDependencyGraph builds a dependency graph from a list of tokens.
func BuildDependencyGraph(tokens []*token.Token) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	for _, tok := range tokens {
		if !graph.nodes[tok.ID] {
			graph.order = append(graph.order, tok.ID)
		}
		graph.nodes[tok.ID] = true
	}

	for _, tok := range tokens {
		deps := tok.References()
		if len(deps) > 0 {
			graph.dependencies[tok.ID] = deps
			for _, dep := range deps {
				graph.dependents[dep] = append(graph.dependents[dep], tok.ID)
			}
		}
	}

	return graph
}

// Dependencies returns the ids the given token references.
func (g *DependencyGraph) Dependencies(id string) []string {
	if deps, ok := g.dependencies[id]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the ids of tokens that reference the given token.
func (g *DependencyGraph) Dependents(id string) []string {
	if deps, ok := g.dependents[id]; ok {
		return deps
	}
	return []string{}
}

// Missing returns referenced ids that are not in the graph, in first-seen
// order, each once.
func (g *DependencyGraph) Missing() []string {
	seen := make(map[string]bool)
	var missing []string
	for _, id := range g.order {
		for _, dep := range g.dependencies[id] {
			if !g.nodes[dep] && !seen[dep] {
				seen[dep] = true
				missing = append(missing, dep)
			}
		}
	}
	return missing
}

// HasCycle returns true if the graph contains a circular dependency.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the cycle path if one exists, or nil if no cycle.
// The path starts and ends with the same id.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.order {
		if cycle := g.findCycleDFS(node, visited, recStack, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		for i, n := range path {
			if n == node {
				cycle := append([]string{}, path[i:]...)
				return append(cycle, node)
			}
		}
		panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns token ids in dependency order (dependencies first).
// Returns error if graph contains a cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %s", ErrCircularReference, strings.Join(cycle, " -> "))
	}

	visited := make(map[string]bool)
	result := []string{}

	for _, node := range g.order {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] && g.nodes[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}

// Check reports the first unresolved reference or reference cycle.
func (g *DependencyGraph) Check() error {
	if missing := g.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrUnresolvedReference, strings.Join(missing, ", "))
	}
	if cycle := g.FindCycle(); cycle != nil {
		return fmt.Errorf("%w: %s", ErrCircularReference, strings.Join(cycle, " -> "))
	}
	return nil
}

// Check builds the reference graph for tokens and checks it.
func Check(tokens []*token.Token) error {
	return BuildDependencyGraph(tokens).Check()
}
