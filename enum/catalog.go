package enum

import (
	"fmt"
	"sync"
)

// NamedValue is the type-erased view of a declared variant, used where a
// uniform shape is needed across sets of different value types.
type NamedValue struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value" yaml:"value"`
}

// Interface is the non-generic view of a declared set. Every *Set[T]
// implements it; the catalog and the CLI work in terms of it.
type Interface interface {
	Name() string
	Len() int
	Names() []string
	Variants() []NamedValue
	IsValue(candidate any) bool
}

// Variants returns the declared associations in declaration order with the
// values boxed, satisfying Interface.
func (s *Set[T]) Variants() []NamedValue {
	out := make([]NamedValue, len(s.variants))
	for i, v := range s.variants {
		out[i] = NamedValue{Name: v.Name, Value: v.Value}
	}
	return out
}

// Catalog is a read-only index of declared sets, keyed by set name. It
// indexes sets that already exist; it never adds variants to any of them.
type Catalog struct {
	mu    sync.RWMutex
	sets  map[string]Interface
	order []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{sets: make(map[string]Interface)}
}

// Register adds a declared set to the catalog. Registering a second set
// under the same name is an error.
func (c *Catalog) Register(set Interface) error {
	if set == nil {
		return fmt.Errorf("register: nil set")
	}
	name := set.Name()
	if name == "" {
		return fmt.Errorf("register: set has no name")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, dup := c.sets[name]; dup {
		return fmt.Errorf("register: set %q already registered", name)
	}
	c.sets[name] = set
	c.order = append(c.order, name)
	return nil
}

// Lookup returns the set registered under name.
func (c *Catalog) Lookup(name string) (Interface, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	set, ok := c.sets[name]
	return set, ok
}

// List returns the registered sets in registration order.
func (c *Catalog) List() []Interface {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Interface, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.sets[name])
	}
	return out
}

// defaultCatalog indexes the vocabularies registered via the package-level
// Register functions, normally from vocabulary package init().
var defaultCatalog = NewCatalog()

// Register adds a declared set to the default catalog.
func Register(set Interface) error {
	return defaultCatalog.Register(set)
}

// MustRegister adds a declared set to the default catalog and panics on
// error. Intended for init() in vocabulary packages, where a registration
// failure is a defect at the definition site.
func MustRegister(set Interface) {
	if err := Register(set); err != nil {
		panic(err)
	}
}

// Lookup returns the set registered under name in the default catalog.
func Lookup(name string) (Interface, bool) {
	return defaultCatalog.Lookup(name)
}

// Sets returns the default catalog's sets in registration order.
func Sets() []Interface {
	return defaultCatalog.List()
}
