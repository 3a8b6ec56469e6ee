package template

import (
	"sort"

	"github.com/arthur-debert/photosort/pkg/errors"
)

// PathVariable is the private variable holding the canonical source path.
// Private names start with the delimiter, so templates cannot reference them.
const PathVariable = ":file.path"

// Provider computes the value of one or more variables. The name argument
// selects the facet when a provider is registered under several names.
type Provider interface {
	Render(name string, ctx *Context) (string, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(name string, ctx *Context) (string, error)

func (f ProviderFunc) Render(name string, ctx *Context) (string, error) {
	return f(name, ctx)
}

// Value is a provider that always renders the same string.
type Value string

func (v Value) Render(string, *Context) (string, error) {
	return string(v), nil
}

type resolution struct {
	value string
	err   error
}

// Context binds variable names to providers for a single file. It is not
// safe for concurrent use and is never shared between files.
type Context struct {
	names     map[string]int
	providers []Provider
	memo      map[string]resolution
	resolving map[string]bool
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{}
}

// Insert registers p under every name in names. Calling it with no names
// is a programming error and panics.
func (c *Context) Insert(names []string, p Provider) {
	if len(names) == 0 {
		panic("template: Context.Insert called without variable names")
	}
	if c.names == nil {
		c.names = make(map[string]int)
	}

	index := len(c.providers)
	c.providers = append(c.providers, p)
	for _, name := range names {
		c.names[name] = index
		delete(c.memo, name)
	}
}

// Get returns the provider registered under name.
func (c *Context) Get(name string) (Provider, bool) {
	if c == nil {
		return nil, false
	}
	index, ok := c.names[name]
	if !ok {
		return nil, false
	}
	return c.providers[index], true
}

// GetOrFail is like Get but returns a MISSING_VARIABLE error.
func (c *Context) GetOrFail(name string) (Provider, error) {
	p, ok := c.Get(name)
	if !ok {
		return nil, errors.Newf(errors.ErrMissingVariable, "missing variable %q", name).
			WithDetail("variable", name)
	}
	return p, nil
}

// Resolve renders name through its provider. Values and failures are
// memoized for the lifetime of the context.
func (c *Context) Resolve(name string) (string, error) {
	if c == nil {
		return "", errors.Newf(errors.ErrMissingVariable, "missing variable %q", name).
			WithDetail("variable", name)
	}
	if r, ok := c.memo[name]; ok {
		return r.value, r.err
	}

	p, err := c.GetOrFail(name)
	if err != nil {
		return "", err
	}

	if c.resolving[name] {
		return "", errors.Newf(errors.ErrInternal, "variable %q depends on itself", name).
			WithDetail("variable", name)
	}
	if c.resolving == nil {
		c.resolving = make(map[string]bool)
	}
	c.resolving[name] = true
	value, err := p.Render(name, c)
	delete(c.resolving, name)

	if c.memo == nil {
		c.memo = make(map[string]resolution)
	}
	c.memo[name] = resolution{value: value, err: err}
	return value, err
}

// Names returns every registered name, private ones included, sorted.
func (c *Context) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.names))
	for name := range c.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
