package reconcile

import (
	"reflect"
	"sort"
	"sync"

	"param-host/core/parameter"
	"param-host/core/plug"

	"go.uber.org/zap"
)

// Creator builds an adapter for p, creating or adopting its plug under plugParent.
// It returns nil when it cannot handle p.
type Creator func(f *Factory, p parameter.Parameter, plugParent *plug.CompoundPlug) Adapter

// Registry maps dynamic parameter types to creators.
type Registry struct {
	mu       sync.RWMutex
	creators map[reflect.Type]Creator
}

// NewRegistry returns a registry that already knows how to adapt
// *parameter.CompoundParameter, so nested compounds recurse.
func NewRegistry() *Registry {
	r := &Registry{creators: make(map[reflect.Type]Creator)}
	r.Register(reflect.TypeFor[*parameter.CompoundParameter](), createCompound)
	return r
}

// Register associates a parameter type with a creator, replacing any previous one.
func (r *Registry) Register(t reflect.Type, c Creator) {
	if c == nil {
		panic("reconcile: nil creator for " + t.String())
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creators[t] = c
}

// Lookup returns the creator registered for t.
func (r *Registry) Lookup(t reflect.Type) (Creator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.creators[t]
	return c, ok
}

// Types returns the registered type names, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.creators))
	for t := range r.creators {
		out = append(out, t.String())
	}
	sort.Strings(out)
	return out
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide registry, creating it on first use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds a creator for parameters of type P to the default registry.
// It is meant to be called from init().
func Register[P parameter.Parameter](fn func(f *Factory, p P, plugParent *plug.CompoundPlug) Adapter) {
	RegisterIn(DefaultRegistry(), fn)
}

// RegisterIn adds a creator for parameters of type P to r.
func RegisterIn[P parameter.Parameter](r *Registry, fn func(f *Factory, p P, plugParent *plug.CompoundPlug) Adapter) {
	r.Register(reflect.TypeFor[P](), func(f *Factory, p parameter.Parameter, plugParent *plug.CompoundPlug) Adapter {
		typed, ok := p.(P)
		if !ok {
			return nil
		}
		return fn(f, typed, plugParent)
	})
}

// Factory creates adapters through a Registry and carries the settings and
// logger that compound adapters pass down to their children.
type Factory struct {
	registry *Registry
	logger   *zap.Logger
	cfg      Config
}

// NewFactory creates a factory. A nil registry means DefaultRegistry and a nil
// logger discards warnings.
func NewFactory(cfg Config, logger *zap.Logger, registry *Registry) *Factory {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factory{registry: registry, logger: logger, cfg: cfg.withDefaults()}
}

// Create returns an adapter for p, or nil if no creator matches its dynamic type.
func (f *Factory) Create(p parameter.Parameter, plugParent *plug.CompoundPlug) Adapter {
	creator, ok := f.registry.Lookup(reflect.TypeOf(p))
	if !ok {
		return nil
	}
	return creator(f, p, plugParent)
}

// Config returns the effective configuration.
func (f *Factory) Config() Config {
	return f.cfg
}

// Logger returns the logger used for warnings.
func (f *Factory) Logger() *zap.Logger {
	return f.logger
}

// Registry returns the registry creators are looked up in.
func (f *Factory) Registry() *Registry {
	return f.registry
}

// createCompound is the Creator for *parameter.CompoundParameter.
func createCompound(f *Factory, p parameter.Parameter, plugParent *plug.CompoundPlug) Adapter {
	compound, ok := p.(*parameter.CompoundParameter)
	if !ok {
		return nil
	}
	return NewCompound(f, compound, plugParent)
}
