package types

// ComponentConfig is the declarative configuration of a polymorphic component.
//
// ClassName selects the registered kind and ModuleName the registry namespace; both
// may be left empty and filled from defaults by the builder. Every other key is kept
// in Params and decoded by the kind's factory.
//
// YAML example:
//
//	name: year
//	className: NumericSorter
//	orderBy: desc
type ComponentConfig struct {
	Name       string         `yaml:"name,omitempty"`
	ClassName  string         `yaml:"className,omitempty"`
	ModuleName string         `yaml:"moduleName,omitempty"`
	Params     map[string]any `yaml:",inline"`
}

// Clone returns a copy whose Params map can be mutated independently.
func (c ComponentConfig) Clone() ComponentConfig {
	if c.Params != nil {
		params := make(map[string]any, len(c.Params))
		for k, v := range c.Params {
			params[k] = v
		}
		c.Params = params
	}

	return c
}

// ExecutionEngine is an opaque handle to the execution backend.
//
// It is forwarded unmodified to asset and partitioner construction and never inspected.
type ExecutionEngine any

// RuntimeEnvironment bundles the values available to component factories.
type RuntimeEnvironment struct {
	ConnectorName            string
	ExecutionEnvironmentName string
	ExecutionEngine          ExecutionEngine
}
