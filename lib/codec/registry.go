package codec

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Type Registry
// --------------------------------------------------------------------------

// The registry maps wire type names to factories. It replaces reflective
// no-arg construction: the host application registers every record type it
// expects to decode, typically from init functions at startup.
var registry = xsync.NewMapOf[string, Factory]()

// Register adds a record type to the decoder registry. The type name and
// version token are taken from a probe instance produced by the factory.
// Registering the same name twice is an error.
func Register(factory Factory) error {
	if factory == nil {
		return NewError(RetCInstantiationFailed, "nil factory")
	}
	probe := factory()
	if probe == nil {
		return NewError(RetCInstantiationFailed, "factory returned nil probe instance")
	}
	name := probe.WireTypeID()
	if name == "" {
		return NewError(RetCInstantiationFailed, "probe instance has empty wire type id")
	}
	if _, loaded := registry.LoadOrStore(name, factory); loaded {
		return NewErrorf(RetCInstantiationFailed, "type %q already registered", name)
	}
	Logger.Debugf("registered wire type %q (version %d)", name, probe.WireVersion())
	return nil
}

// MustRegister is like Register but panics on error. Intended for use from
// package init functions.
func MustRegister(factory Factory) {
	if err := Register(factory); err != nil {
		panic(err)
	}
}

// lookupFactory resolves a wire type name to its registered factory
func lookupFactory(name string) (Factory, bool) {
	return registry.Load(name)
}
