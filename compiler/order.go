package compiler

import (
	"fmt"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/schema"
)

// Order returns the compile order of a registry: every base precedes its
// derived classes, ties keep declaration order. Exposed for tooling that
// wants the plan without running a compilation.
func Order(reg *schema.Registry) ([]string, error) {
	return compileOrder(reg)
}

// compileOrder sorts classes so every base precedes its derived classes.
// Ties keep declaration order. A base cycle fails the whole run: no valid
// emission order exists.
func compileOrder(reg *schema.Registry) ([]string, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int)
	var order []string

	var visit func(name string, trail []string) error
	visit = func(name string, trail []string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return errors.NewSchemaError(name,
				fmt.Errorf("base chain %v: %w", append(trail, name), errors.ErrBaseCycle))
		}
		state[name] = visiting
		cs, err := reg.Get(name)
		if err != nil {
			return err
		}
		if cs.Bound() {
			for _, base := range cs.Bases {
				if err := visit(base.Name, append(trail, name)); err != nil {
					return err
				}
			}
		}
		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, name := range reg.Names() {
		if err := visit(name, nil); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// propagatePolymorphism spreads the polymorphic flag across base/derived
// hierarchies: marking any class polymorphic marks every class connected
// to it through a base edge, in both directions. Dispatch strategy
// selection then sees a consistent hierarchy.
func propagatePolymorphism(reg *schema.Registry) {
	adj := make(map[string][]string)
	for _, name := range reg.Names() {
		cs, err := reg.Get(name)
		if err != nil || !cs.Bound() {
			continue
		}
		for _, base := range cs.Bases {
			adj[name] = append(adj[name], base.Name)
			adj[base.Name] = append(adj[base.Name], name)
		}
	}

	seen := make(map[string]bool)
	for _, name := range reg.Names() {
		if seen[name] {
			continue
		}
		var component []string
		poly := false
		stack := []string{name}
		seen[name] = true
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, n)
			if cs, err := reg.Get(n); err == nil && cs.Bound() && cs.Polymorphic {
				poly = true
			}
			for _, next := range adj[n] {
				if !seen[next] {
					seen[next] = true
					stack = append(stack, next)
				}
			}
		}
		if !poly {
			continue
		}
		for _, n := range component {
			if cs, err := reg.Get(n); err == nil && cs.Bound() {
				cs.Polymorphic = true
			}
		}
	}
}
