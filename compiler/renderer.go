package compiler

import (
	"github.com/BMBF-ARVIDA/arivda-preprocessor/config"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/mapping"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/schema"
)

// RunInfo describes one compilation run to the renderer.
type RunInfo struct {
	// ID is the run correlation identifier.
	ID string

	// Hooks carries the configured prolog/epilog material.
	Hooks config.Hooks
}

// Renderer consumes compiled classes. Turning operations and schemas into
// a target notation is entirely the renderer's business; the compiler
// only guarantees base-before-derived delivery order.
type Renderer interface {
	// BeginRun is called once before the first class.
	BeginRun(info RunInfo) error

	// RenderClass is called once per successfully compiled class.
	RenderClass(cs *schema.ClassSchema, ops *mapping.Ops) error

	// EndRun is called once after the last class, with the run result.
	// It is called even when the run failed partway.
	EndRun(result *Result) error
}

// Result summarizes one compilation run.
type Result struct {
	RunID string

	// Compiled lists successfully compiled classes in delivery order.
	Compiled []string

	// Failed maps each failed class to its compile error. Classes skipped
	// because a dependency failed are included.
	Failed map[string]error
}

// Complete reports whether every class compiled.
func (r *Result) Complete() bool {
	return len(r.Failed) == 0
}
