package compiler

import (
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/BMBF-ARVIDA/arivda-preprocessor/config"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/errors"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/graph"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/mapping"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/metric"
	"github.com/BMBF-ARVIDA/arivda-preprocessor/schema"
)

// Compiler compiles a bound schema registry into mapping operations.
type Compiler struct {
	registry *schema.Registry
	cfg      *config.Config
	logger   *slog.Logger
	metrics  *metric.Metrics

	runID    string
	compiled map[string]*mapping.Ops
	byType   map[reflect.Type]*mapping.Ops
	failed   map[string]error
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) { c.logger = logger }
}

// WithMetrics attaches run metrics.
func WithMetrics(m *metric.Metrics) Option {
	return func(c *Compiler) { c.metrics = m }
}

// New creates a compiler for one run over a bound registry.
func New(reg *schema.Registry, cfg *config.Config, opts ...Option) (*Compiler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Compiler{
		registry: reg,
		cfg:      cfg,
		logger:   slog.Default(),
		runID:    uuid.NewString(),
		compiled: make(map[string]*mapping.Ops),
		byType:   make(map[reflect.Type]*mapping.Ops),
		failed:   make(map[string]error),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("run_id", c.runID)
	return c, nil
}

// RunID returns the run correlation identifier.
func (c *Compiler) RunID() string {
	return c.runID
}

// OpsFor resolves compiled operations by class name. Part of the
// mapping.Lookup interface; generated operations call this during
// execution, after Run has finished.
func (c *Compiler) OpsFor(class string) (*mapping.Ops, error) {
	ops, ok := c.compiled[class]
	if !ok {
		if err, failed := c.failed[class]; failed {
			return nil, err
		}
		return nil, errors.NewSchemaError(class, errors.ErrUnknownClass)
	}
	return ops, nil
}

// OpsForType resolves compiled operations by run-time type identity. With
// static dispatch configured the table is empty and resolution always
// falls back to the declared class.
func (c *Compiler) OpsForType(v any) (*mapping.Ops, bool) {
	ops, ok := c.byType[reflect.TypeOf(v)]
	return ops, ok
}

// NewContext builds a run-scoped graph context over a store.
func (c *Compiler) NewContext(store graph.Store) *graph.Context {
	return &graph.Context{
		Store:      store,
		Namespaces: c.cfg.Namespaces(),
		Base:       c.cfg.BaseURI,
		Path:       c.cfg.Root(),
	}
}

// Run compiles every declared class in base-before-derived order and
// streams the results to the renderer. A nil renderer compiles without
// rendering. Without partial-run mode the first failing class aborts the
// run; with it, independent classes continue and the result reports every
// failure.
func (c *Compiler) Run(renderer Renderer) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: c.runID, Failed: c.failed}

	order, err := compileOrder(c.registry)
	if err != nil {
		c.logger.Error("Run aborted: no valid compile order", "error", err)
		return nil, err
	}
	c.applyDispatch()

	if renderer != nil {
		if err := renderer.BeginRun(RunInfo{ID: c.runID, Hooks: c.cfg.Hooks}); err != nil {
			return nil, errors.Wrap(err, "Compiler", "Run", "beginning render run")
		}
	}

	gen := mapping.NewGenerator(c)
	for _, name := range order {
		if err := c.compileClass(gen, name, renderer, result); err != nil {
			if c.cfg.PartialRun {
				continue
			}
			c.recordRunStatus(0)
			if renderer != nil {
				if endErr := renderer.EndRun(result); endErr != nil {
					c.logger.Error("EndRun failed after aborted run", "error", endErr)
				}
			}
			return result, err
		}
	}

	status := 1
	if len(c.failed) > 0 {
		status = 2
	}
	c.recordRunStatus(status)

	if renderer != nil {
		if err := renderer.EndRun(result); err != nil {
			return result, errors.Wrap(err, "Compiler", "Run", "ending render run")
		}
	}

	c.logger.Info("Run finished",
		"classes", len(result.Compiled),
		"failed", len(c.failed),
		"duration", time.Since(start))
	return result, nil
}

func (c *Compiler) compileClass(gen *mapping.Generator, name string, renderer Renderer, result *Result) error {
	log := c.logger.With("class", name)

	cs, err := c.registry.Get(name)
	if err != nil {
		return c.failClass(name, err)
	}
	if !cs.Bound() {
		return c.failClass(name, errors.NewSchemaError(name,
			fmt.Errorf("class declared but never bound: %w", errors.ErrUnknownClass)))
	}
	for _, base := range cs.Bases {
		if depErr, failed := c.failed[base.Name]; failed {
			return c.failClass(name, errors.NewSchemaError(name,
				fmt.Errorf("base %q failed: %w", base.Name, depErr)))
		}
	}

	start := time.Now()
	ops, err := gen.Compile(cs)
	if c.metrics != nil {
		c.metrics.RecordCompileDuration(c.runID, time.Since(start))
	}
	if err != nil {
		return c.failClass(name, err)
	}

	c.instrument(ops)
	c.compiled[name] = ops
	if cs.Type != nil {
		c.byType[cs.Type] = ops
	}
	if c.metrics != nil {
		c.metrics.RecordClassCompiled(c.runID, "ok")
	}
	log.Debug("Class compiled", "bindings", len(cs.Bindings), "bases", len(cs.Bases))

	if renderer != nil {
		if err := renderer.RenderClass(cs, ops); err != nil {
			return c.failClass(name, errors.Wrap(err, "Compiler", "compileClass", "rendering class"))
		}
	}

	// Delivery order mirrors compile order, so renderers see bases first.
	result.Compiled = append(result.Compiled, name)
	return nil
}

// failClass records a class failure for metrics and partial-run reporting.
func (c *Compiler) failClass(name string, err error) error {
	c.failed[name] = err
	if c.metrics != nil {
		c.metrics.RecordClassCompiled(c.runID, "failed")
		c.metrics.RecordCompileError(c.runID, errors.Classify(err).String())
	}
	c.logger.Warn("Class failed to compile", "class", name, "error", err)
	return err
}

// instrument wraps the generated operations with usage metrics.
func (c *Compiler) instrument(ops *mapping.Ops) {
	if c.metrics == nil {
		return
	}
	class := ops.Class.Name
	toRDF := ops.ToRDF
	ops.ToRDF = func(ctx *graph.Context, this graph.Node, v any) (graph.Node, error) {
		c.metrics.RecordWrite(class)
		return toRDF(ctx, this, v)
	}
	fromRDF := ops.FromRDF
	ops.FromRDF = func(ctx *graph.Context, this graph.Node, v any) error {
		err := fromRDF(ctx, this, v)
		if err != nil {
			c.metrics.RecordReadFailure(class)
		}
		return err
	}
}

// applyDispatch realizes the configured dispatch strategy on the
// hierarchy before compilation.
func (c *Compiler) applyDispatch() {
	switch c.cfg.Dispatch {
	case config.DispatchStatic:
		for _, name := range c.registry.Names() {
			if cs, err := c.registry.Get(name); err == nil && cs.Bound() {
				cs.Polymorphic = false
			}
		}
	case config.DispatchTable:
		for _, name := range c.registry.Names() {
			if cs, err := c.registry.Get(name); err == nil && cs.Bound() {
				cs.Polymorphic = true
			}
		}
	default:
		propagatePolymorphism(c.registry)
	}
}

func (c *Compiler) recordRunStatus(status int) {
	if c.metrics != nil {
		c.metrics.RecordRunStatus(c.runID, status)
	}
}
