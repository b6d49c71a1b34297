// Package registry builds polymorphic components from declarative configuration.
//
// A Registry maps a kind name (ComponentConfig.ClassName) to a factory function.
// Defaults are merged into the configuration before lookup, and every failure is
// reported as a *types.ClassInstantiationError carrying the attempted kind and module.
package registry

import (
	"fmt"
	"slices"

	"github.com/mitchellh/mapstructure"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/dataconn/types"
)

// Factory constructs a component from its configuration and runtime environment.
type Factory[T any] func(cfg types.ComponentConfig, env types.RuntimeEnvironment) (T, error)

// Registry is a concurrent-safe, process-wide table of factories for one component family.
type Registry[T any] struct {
	module       string
	defaultClass string
	factories    *xsync.Map[string, Factory[T]]
}

// New creates an empty registry.
//
// Parameters:
//   - module: Module name used when a configuration names none
//   - defaultClass: Kind used when a configuration names none ("" means kind is required)
//
// Returns:
//   - *Registry[T]: Empty registry
func New[T any](module, defaultClass string) *Registry[T] {
	return &Registry[T]{
		module:       module,
		defaultClass: defaultClass,
		factories:    xsync.NewMap[string, Factory[T]](),
	}
}

// Module returns the registry's module name.
func (r *Registry[T]) Module() string {
	return r.module
}

// Register adds a factory for kind.
//
// Panics if kind is empty, factory is nil or kind is already registered, since all
// three are programming errors detected at init time.
func (r *Registry[T]) Register(kind string, factory Factory[T]) {
	if kind == "" || factory == nil {
		panic("registry: kind and factory are required")
	}
	if _, loaded := r.factories.LoadOrStore(kind, factory); loaded {
		panic(fmt.Sprintf("registry: kind already registered: %s/%s", r.module, kind))
	}
}

// Kinds returns the registered kinds in lexicographic order.
func (r *Registry[T]) Kinds() []string {
	kinds := make([]string, 0, r.factories.Size())
	r.factories.Range(func(kind string, _ Factory[T]) bool {
		kinds = append(kinds, kind)
		return true
	})
	slices.Sort(kinds)

	return kinds
}

// ApplyDefaults returns a copy of cfg with ClassName and ModuleName filled in.
func (r *Registry[T]) ApplyDefaults(cfg types.ComponentConfig) types.ComponentConfig {
	cfg = cfg.Clone()
	if cfg.ClassName == "" {
		cfg.ClassName = r.defaultClass
	}
	if cfg.ModuleName == "" {
		cfg.ModuleName = r.module
	}

	return cfg
}

// Build constructs a component from cfg.
//
// Parameters:
//   - cfg: Component configuration (not modified)
//   - env: Runtime environment forwarded to the factory
//
// Returns:
//   - T: Constructed component
//   - error: *types.ClassInstantiationError when the kind is unknown or the factory fails
func (r *Registry[T]) Build(cfg types.ComponentConfig, env types.RuntimeEnvironment) (T, error) {
	var zero T

	cfg = r.ApplyDefaults(cfg)
	if cfg.ModuleName != r.module {
		return zero, &types.ClassInstantiationError{
			ModuleName: cfg.ModuleName,
			ClassName:  cfg.ClassName,
			Err:        fmt.Errorf("%w: module %q is not served by registry %q", types.ErrConfiguration, cfg.ModuleName, r.module),
		}
	}

	factory, ok := r.factories.Load(cfg.ClassName)
	if !ok {
		return zero, &types.ClassInstantiationError{ModuleName: cfg.ModuleName, ClassName: cfg.ClassName}
	}

	component, err := factory(cfg, env)
	if err != nil {
		return zero, &types.ClassInstantiationError{ModuleName: cfg.ModuleName, ClassName: cfg.ClassName, Err: err}
	}

	return component, nil
}

// DecodeParams decodes component parameters into out.
//
// Decoding is strict: keys that do not map to a field of out are rejected so that
// typos in configuration files surface immediately.
//
// Parameters:
//   - params: Raw parameter map (nil decodes to the zero value)
//   - out: Pointer to the options struct, fields tagged with `mapstructure`
//
// Returns:
//   - error: Wrapped types.ErrConfiguration on decode failure
func DecodeParams(params map[string]any, out any) error {
	if len(params) == 0 {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrConfiguration, err)
	}

	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("%w: %w", types.ErrConfiguration, err)
	}

	return nil
}
