package eval

import "github.com/ridelang/evalcore/internal/core"

// NewInitialContext builds the environment a caller hands to Evaluate:
// predeclared is inserted as a set of already-resolved bindings (no
// forcing needed), and funcs populates the function registry with both
// native and user descriptors.
func NewInitialContext(predeclared map[string]core.Value, funcs []FuncDesc) *Context {
	env := NewContext()
	for name, v := range predeclared {
		env = env.WithLet(name, &core.Evaluated{Val: v}, true)
	}
	for _, f := range funcs {
		env = env.WithFunction(f)
	}
	return env
}
