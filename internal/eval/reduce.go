package eval

import (
	"github.com/ridelang/evalcore/internal/core"
	"github.com/ridelang/evalcore/internal/evalerr"
)

// Reducer is the recursive step function: it dispatches on the outermost
// constructor of an expression, honors a fixed cost budget, and produces
// a residual expression (possibly a fully reduced value) and the updated
// environment. A Reducer is immutable once constructed; Limit and Version
// never change across a reduction.
type Reducer struct {
	Limit   int
	Version StdLibVersion
}

// NewReducer returns a Reducer bounded by limit, charging native calls
// against version's cost table.
func NewReducer(limit int, version StdLibVersion) *Reducer {
	return &Reducer{Limit: limit, Version: version}
}

// Reduce implements the reducer's public contract (spec §4.2):
//  1. env'.cost >= env.cost, overshooting limit only by the single
//     largest native cost that could not be checked before commit.
//  2. Deterministic: equal inputs yield equal outputs.
//  3. Progress: an exhausted env, a non-reducible expr (Evaluated), or a
//     native call whose cost would take the total past limit (returned
//     unchanged, uncharged) are the only cases that make no progress.
//  4. Fidelity: env'.cost < limit implies expr' is Evaluated, except for
//     such a deferred native call, which is returned below limit.
func (r *Reducer) Reduce(expr core.Node, env *Context) (core.Node, *Context, error) {
	if env.Exhausted(r.Limit) {
		return expr, env, nil
	}

	switch n := expr.(type) {
	case *core.Evaluated:
		return n, env, nil

	case *core.Let:
		return r.reduceLetBlock(n.Name, n.Value, n.Body, env)

	case *core.Block:
		switch d := n.Decl.(type) {
		case *core.LetHead:
			return r.reduceLetBlock(d.Name, d.Value, n.Body, env)
		case *core.FuncDecl:
			return r.reduceFuncBlock(d, n.Body, env)
		default:
			return nil, env, evalerr.TypeMismatch("block", "block declaration must be a let or function", env.Cost())
		}

	case *core.Ref:
		return r.reduceRef(n, env)

	case *core.If:
		return r.reduceIf(n, env)

	case *core.Call:
		return r.reduceCall(n, env)

	case *core.Getter:
		return r.reduceGetter(n, env)

	default:
		return nil, env, evalerr.TypeMismatch("reduce", "unrecognized expression node", env.Cost())
	}
}

// reduceLetBlock implements spec §4.3 for Let and Block(LetHead, _).
func (r *Reducer) reduceLetBlock(name string, value, body core.Node, env *Context) (core.Node, *Context, error) {
	env1 := env.WithLet(name, value, false)
	body2, env2, err := r.Reduce(body, env1)
	if err != nil {
		return nil, env2, err
	}
	if ev, ok := body2.(*core.Evaluated); ok {
		return ev, env2, nil
	}
	binding, _ := env2.Lookup(name)
	return core.NewLet(name, binding.ValueExpr, body2), env2, nil
}

// reduceFuncBlock implements spec §4.3 for Block(FuncDecl, _).
func (r *Reducer) reduceFuncBlock(decl *core.FuncDecl, body core.Node, env *Context) (core.Node, *Context, error) {
	hdr := core.Header{Name: decl.Name, Arity: len(decl.Params)}
	env1 := env.WithFunction(&User{Hdr: hdr, Params: decl.Params, Body: decl.Body})
	body2, env2, err := r.Reduce(body, env1)
	if err != nil {
		return nil, env2, err
	}
	if ev, ok := body2.(*core.Evaluated); ok {
		return ev, env2, nil
	}
	return &core.Block{Decl: decl, Body: body2}, env2, nil
}

// reduceRef implements spec §4.4: lazy, at-most-once forcing with
// progress-preserving resumption.
func (r *Reducer) reduceRef(ref *core.Ref, env *Context) (core.Node, *Context, error) {
	binding, ok := env.Lookup(ref.Name)
	if !ok {
		return nil, env, evalerr.UnknownBinding(ref.Name, env.Cost())
	}
	if binding.Resolved {
		return binding.ValueExpr, env.WithCost(1), nil
	}

	combined := binding.Captured.Combine(env)
	// The binding being forced is not visible inside its own value
	// expression: there, the name keeps its captured-frame meaning (absent
	// for a fresh Let, so a self-reference is an unknown binding).
	if outer, had := binding.Captured.Lookup(ref.Name); had {
		combined.lets[ref.Name] = outer
	} else {
		delete(combined.lets, ref.Name)
	}
	vPrime, envR, err := r.Reduce(binding.ValueExpr, combined)
	if err != nil {
		return nil, envR, err
	}
	if envR.Exhausted(r.Limit) {
		return &core.Ref{Name: ref.Name}, envR.WithLet(ref.Name, vPrime, false), nil
	}
	return vPrime, envR.WithLet(ref.Name, vPrime, true).WithCost(1), nil
}

// reduceIf implements spec §4.5.
func (r *Reducer) reduceIf(n *core.If, env *Context) (core.Node, *Context, error) {
	cPrime, env1, err := r.Reduce(n.Cond, env)
	if err != nil {
		return nil, env1, err
	}
	if env1.Exhausted(r.Limit) {
		return &core.If{Cond: cPrime, Then: n.Then, Else: n.Else}, env1, nil
	}
	ev, ok := cPrime.(*core.Evaluated)
	if !ok {
		return nil, env1, evalerr.TypeMismatch("if", "condition did not reduce to a value", env1.Cost())
	}
	b, isBool := ev.Val.(*core.Bool)
	if !isBool {
		return nil, env1, evalerr.TypeMismatch("if", "condition is not a boolean", env1.Cost())
	}
	if b.B {
		return r.Reduce(n.Then, env1.WithCost(1))
	}
	return r.Reduce(n.Else, env1.WithCost(1))
}

// reduceGetter implements spec §4.7.
func (r *Reducer) reduceGetter(n *core.Getter, env *Context) (core.Node, *Context, error) {
	objPrime, env1, err := r.Reduce(n.Obj, env)
	if err != nil {
		return nil, env1, err
	}
	if env1.Exhausted(r.Limit) {
		return &core.Getter{Obj: objPrime, Field: n.Field}, env1, nil
	}
	ev, ok := objPrime.(*core.Evaluated)
	if !ok {
		return nil, env1, evalerr.TypeMismatch("getter", "target did not reduce to a value", env1.Cost())
	}
	obj, isRecord := ev.Val.(*core.CaseObj)
	if !isRecord {
		return nil, env1, evalerr.TypeMismatch("getter", "target is not a record", env1.Cost())
	}
	field, ok := obj.Fields[n.Field]
	if !ok {
		return nil, env1, evalerr.MissingField(obj.TypeName, n.Field, env1.Cost())
	}
	return &core.Evaluated{Val: field}, env1.WithCost(1), nil
}

// reduceCall implements spec §4.6: strict left-to-right argument
// evaluation, native calls checked-before-commit, user calls expanded
// into a Let-chain whose bindings do not leak into the caller's scope.
func (r *Reducer) reduceCall(n *core.Call, env *Context) (core.Node, *Context, error) {
	desc, ok := env.LookupFunc(n.Header)
	if !ok {
		return nil, env, evalerr.UnknownFunction(n.Header.String(), env.Cost())
	}

	reduced := make([]core.Node, len(n.Args))
	curEnv := env
	for i, arg := range n.Args {
		aPrime, envA, err := r.Reduce(arg, curEnv)
		if err != nil {
			return nil, envA, err
		}
		curEnv = envA
		reduced[i] = aPrime
		if curEnv.Exhausted(r.Limit) {
			for j := i + 1; j < len(n.Args); j++ {
				reduced[j] = n.Args[j]
			}
			return &core.Call{Header: n.Header, Args: reduced}, curEnv, nil
		}
	}

	argVals := make([]core.Value, len(reduced))
	for i, a := range reduced {
		ev, ok := a.(*core.Evaluated)
		if !ok {
			return nil, curEnv, evalerr.TypeMismatch("call", "argument did not reduce to a value", curEnv.Cost())
		}
		argVals[i] = ev.Val
	}

	switch f := desc.(type) {
	case *Native:
		return r.reduceNativeCall(n, f, reduced, argVals, curEnv)
	case *User:
		return r.reduceUserCall(f, reduced, curEnv)
	default:
		return nil, curEnv, evalerr.TypeMismatch("call", "unrecognized function descriptor", curEnv.Cost())
	}
}

func (r *Reducer) reduceNativeCall(n *core.Call, f *Native, reduced []core.Node, argVals []core.Value, curEnv *Context) (core.Node, *Context, error) {
	cost, ok := f.Cost(r.Version)
	if !ok {
		return nil, curEnv, evalerr.TypeMismatch("call", "native has no cost for this standard-library version", curEnv.Cost())
	}
	if curEnv.Cost()+cost > r.Limit {
		return &core.Call{Header: n.Header, Args: reduced}, curEnv, nil
	}
	result, err := f.Impl(argVals)
	nextEnv := curEnv.WithCost(cost)
	if err != nil {
		return nil, nextEnv, evalerr.Host(f.Hdr.String(), err.Error(), nextEnv.Cost())
	}
	return &core.Evaluated{Val: result}, nextEnv, nil
}

func (r *Reducer) reduceUserCall(f *User, reduced []core.Node, curEnv *Context) (core.Node, *Context, error) {
	body := expandCall(f, reduced)
	resBody, innerEnv, err := r.Reduce(body, curEnv)
	if err != nil {
		return nil, innerEnv, err
	}
	// Restore the caller's lets/funcs: a user-function body's bindings
	// never leak into the caller's scope, only the cost it spent does.
	restored := &Context{lets: curEnv.lets, funcs: curEnv.funcs, cost: innerEnv.Cost()}
	return resBody, restored, nil
}
