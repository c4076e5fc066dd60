// Package yamlsys loads a graph.GraphEquationSystem over algebra.Flat[string]
// from a YAML file, the same configuration-by-YAML approach the teacher
// uses for its rule sets (lint/lint.go's parseConfigurationFile /
// gopkg.in/yaml.v3), generalized from "which lint rules are enabled" to
// "which unknowns and edges make up an equation system".
package yamlsys

import (
	"fmt"
	"os"

	"github.com/gnolang/fixsolve/algebra"
	"github.com/gnolang/fixsolve/assign"
	"github.com/gnolang/fixsolve/graph"
	"gopkg.in/yaml.v3"
)

// EdgeSpec is one hyperedge: target <- kind(sources...). Two kinds are
// supported: "const" (ignores sources, always yields Value) and "copy"
// (requires exactly one source and reads it through unchanged). Parallel
// ingoing edges of one target are combined by the graph's Domain.Join.
type EdgeSpec struct {
	Target  string   `yaml:"target"`
	Sources []string `yaml:"sources"`
	Kind    string   `yaml:"kind"`
	Value   string   `yaml:"value"`
}

// Config is the top-level YAML document: a named equation system over a
// flat string lattice.
type Config struct {
	Name     string     `yaml:"name"`
	Unknowns []string   `yaml:"unknowns"`
	Edges    []EdgeSpec `yaml:"edges"`
}

// LoadFile reads and parses path, then builds the GraphEquationSystem it
// describes.
func LoadFile(path string) (graph.GraphEquationSystem[string, algebra.Flat[string]], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("yamlsys: decoding %s: %w", path, err)
	}
	return Build(cfg)
}

// Build constructs a GraphEquationSystem from an already-parsed Config.
func Build(cfg Config) (graph.GraphEquationSystem[string, algebra.Flat[string]], error) {
	specs := make([]EdgeSpec, len(cfg.Edges))
	copy(specs, cfg.Edges)

	taggedEdges := make([]taggedEdge, 0, len(specs))
	for _, spec := range specs {
		e := graph.NewEdge[string](spec.Target, spec.Sources...)
		switch spec.Kind {
		case "const":
			taggedEdges = append(taggedEdges, taggedEdge{HyperEdge: e, spec: spec})
		case "copy":
			if len(spec.Sources) != 1 {
				return nil, fmt.Errorf("yamlsys: edge targeting %q: kind copy requires exactly one source", spec.Target)
			}
			taggedEdges = append(taggedEdges, taggedEdge{HyperEdge: e, spec: spec})
		default:
			return nil, fmt.Errorf("yamlsys: edge targeting %q: unknown kind %q", spec.Target, spec.Kind)
		}
	}

	edges := make([]graph.HyperEdge[string], len(taggedEdges))
	for i, te := range taggedEdges {
		edges[i] = te
	}

	action := func(rho assign.ReadOnly[string, algebra.Flat[string]], e graph.HyperEdge[string]) algebra.Flat[string] {
		te := e.(taggedEdge)
		switch te.spec.Kind {
		case "const":
			return algebra.FlatValue(te.spec.Value)
		case "copy":
			return rho.Get(te.spec.Sources[0])
		default:
			return algebra.FlatBottom[string]()
		}
	}

	return graph.New[string, algebra.Flat[string]](
		cfg.Unknowns,
		func(string) bool { return false },
		edges,
		action,
		assign.Const[string, algebra.Flat[string]](algebra.FlatBottom[string]()),
		algebra.FlatDomain[string]{},
	), nil
}

type taggedEdge struct {
	graph.HyperEdge[string]
	spec EdgeSpec
}
