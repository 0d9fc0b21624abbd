package eval

import "github.com/ridelang/evalcore/internal/core"

// Evaluate is the public entry point: it drives a single Reducer, built
// for limit and version, to a fixpoint or budget exhaustion, and returns
// the top-level residual (a value, if the budget allowed full reduction)
// together with the final cost. The reducer recurses to completion in
// one call; repeated calls are not required.
func Evaluate(expr core.Node, env *Context, limit int, version StdLibVersion) (core.Node, int, error) {
	r := NewReducer(limit, version)
	resultExpr, resultEnv, err := r.Reduce(expr, env)
	if err != nil {
		return nil, resultEnv.Cost(), err
	}
	return resultExpr, resultEnv.Cost(), nil
}

// IsValue reports whether expr is a fully reduced Evaluated node.
func IsValue(expr core.Node) bool {
	_, ok := expr.(*core.Evaluated)
	return ok
}
