// Package eval implements the Context (environment), function registry,
// reducer, and entry point described for the expression evaluator:
// bindings are forced lazily and memoized at most once, function calls
// are charged against a caller-supplied cost budget, and reduction that
// runs out of budget returns a residual expression instead of erroring.
package eval

import "github.com/ridelang/evalcore/internal/core"

// Binding is a lazily-forced let/function-argument binding: the unforced
// value expression, the environment captured at the point of binding
// (lexical closure), and whether forcing has already memoized a value.
type Binding struct {
	ValueExpr core.Node
	Captured  *Context
	Resolved  bool
}

// Context is the environment threaded through reduction: a name->binding
// table, a function-header->descriptor table, and the accumulated cost.
// Contexts are treated as values; every operation below returns a new
// Context rather than mutating the receiver. The lets/funcs maps are
// never written to after being attached to a Context, so sharing them
// between Contexts is safe and cheap.
type Context struct {
	lets  map[string]Binding
	funcs map[core.Header]FuncDesc
	cost  int
}

// NewContext returns an empty environment with zero cost.
func NewContext() *Context {
	return &Context{
		lets:  map[string]Binding{},
		funcs: map[core.Header]FuncDesc{},
		cost:  0,
	}
}

// Cost returns the accumulated cost.
func (c *Context) Cost() int { return c.cost }

// WithCost returns an environment with cost increased by k (k must be >= 0).
func (c *Context) WithCost(k int) *Context {
	return &Context{lets: c.lets, funcs: c.funcs, cost: c.cost + k}
}

// WithLet installs or replaces a binding. The captured environment is c
// itself, i.e. the environment at the moment WithLet is called; this is
// what makes Let non-recursive: name is not yet visible in the captured
// frame.
func (c *Context) WithLet(name string, valueExpr core.Node, resolved bool) *Context {
	lets := make(map[string]Binding, len(c.lets)+1)
	for k, v := range c.lets {
		lets[k] = v
	}
	lets[name] = Binding{ValueExpr: valueExpr, Captured: c, Resolved: resolved}
	return &Context{lets: lets, funcs: c.funcs, cost: c.cost}
}

// Lookup returns the binding for name, if any.
func (c *Context) Lookup(name string) (Binding, bool) {
	b, ok := c.lets[name]
	return b, ok
}

// WithFunction installs or replaces a function descriptor, keyed by its
// Header.
func (c *Context) WithFunction(desc FuncDesc) *Context {
	funcs := make(map[core.Header]FuncDesc, len(c.funcs)+1)
	for k, v := range c.funcs {
		funcs[k] = v
	}
	funcs[desc.Header()] = desc
	return &Context{lets: c.lets, funcs: funcs, cost: c.cost}
}

// LookupFunc returns the function descriptor for h, if any.
func (c *Context) LookupFunc(h core.Header) (FuncDesc, bool) {
	d, ok := c.funcs[h]
	return d, ok
}

// Combine restores a closure's captured frame for reference resolution:
// this.lets overridden by other.lets, this.funcs overridden by
// other.funcs, cost = max(this.cost, other.cost).
func (c *Context) Combine(other *Context) *Context {
	lets := make(map[string]Binding, len(c.lets)+len(other.lets))
	for k, v := range c.lets {
		lets[k] = v
	}
	for k, v := range other.lets {
		lets[k] = v
	}
	funcs := make(map[core.Header]FuncDesc, len(c.funcs)+len(other.funcs))
	for k, v := range c.funcs {
		funcs[k] = v
	}
	for k, v := range other.funcs {
		funcs[k] = v
	}
	cost := c.cost
	if other.cost > cost {
		cost = other.cost
	}
	return &Context{lets: lets, funcs: funcs, cost: cost}
}

// Exhausted reports whether cost has reached limit.
func (c *Context) Exhausted(limit int) bool { return c.cost >= limit }
