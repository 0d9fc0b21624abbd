// Package natives provides a small, illustrative standard library:
// arithmetic and comparison primitives with per-StdLibVersion
// cost tables, so the Function registry and Reducer can be exercised
// end-to-end in tests and the CLI demo. The real standard library is an
// external collaborator the evaluator only consumes the signatures,
// costs, and pure implementations of (spec.md §1); this package is not
// part of the evaluator's public contract.
package natives

import (
	"fmt"

	"github.com/ridelang/evalcore/internal/core"
	"github.com/ridelang/evalcore/internal/eval"
)

func header(name string, arity int) core.Header {
	return core.Header{Name: name, Arity: arity}
}

func asInt(v core.Value, pos int, fn string) (*core.Int, error) {
	n, ok := v.(*core.Int)
	if !ok {
		return nil, fmt.Errorf("%s: argument %d is not an Int", fn, pos)
	}
	return n, nil
}

func flatCost(c int) map[eval.StdLibVersion]int {
	return map[eval.StdLibVersion]int{eval.V1: c, eval.V2: c, eval.V3: c}
}

// Add is native "+"/2: Int addition, cost 1 at every standard-library
// version.
func Add() *eval.Native {
	return &eval.Native{
		Hdr:           header("+", 2),
		CostByVersion: flatCost(1),
		Impl: func(args []core.Value) (core.Value, error) {
			a, err := asInt(args[0], 1, "+")
			if err != nil {
				return nil, err
			}
			b, err := asInt(args[1], 2, "+")
			if err != nil {
				return nil, err
			}
			return &core.Int{N: a.N + b.N}, nil
		},
	}
}

// Sub is native "-"/2: Int subtraction, cost 1.
func Sub() *eval.Native {
	return &eval.Native{
		Hdr:           header("-", 2),
		CostByVersion: flatCost(1),
		Impl: func(args []core.Value) (core.Value, error) {
			a, err := asInt(args[0], 1, "-")
			if err != nil {
				return nil, err
			}
			b, err := asInt(args[1], 2, "-")
			if err != nil {
				return nil, err
			}
			return &core.Int{N: a.N - b.N}, nil
		},
	}
}

// Mul is native "*"/2: Int multiplication, cost 2.
func Mul() *eval.Native {
	return &eval.Native{
		Hdr:           header("*", 2),
		CostByVersion: flatCost(2),
		Impl: func(args []core.Value) (core.Value, error) {
			a, err := asInt(args[0], 1, "*")
			if err != nil {
				return nil, err
			}
			b, err := asInt(args[1], 2, "*")
			if err != nil {
				return nil, err
			}
			return &core.Int{N: a.N * b.N}, nil
		},
	}
}

// Div is native "/"/2: Int division, cost 2, reporting division by zero
// as a host error rather than panicking.
func Div() *eval.Native {
	return &eval.Native{
		Hdr:           header("/", 2),
		CostByVersion: flatCost(2),
		Impl: func(args []core.Value) (core.Value, error) {
			a, err := asInt(args[0], 1, "/")
			if err != nil {
				return nil, err
			}
			b, err := asInt(args[1], 2, "/")
			if err != nil {
				return nil, err
			}
			if b.N == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			return &core.Int{N: a.N / b.N}, nil
		},
	}
}

// Eq is native "=="/2: structural equality over Int, cost 1.
func Eq() *eval.Native {
	return &eval.Native{
		Hdr:           header("==", 2),
		CostByVersion: flatCost(1),
		Impl: func(args []core.Value) (core.Value, error) {
			a, err := asInt(args[0], 1, "==")
			if err != nil {
				return nil, err
			}
			b, err := asInt(args[1], 2, "==")
			if err != nil {
				return nil, err
			}
			return core.BoolOf(a.N == b.N), nil
		},
	}
}

// Gt is native ">"/2: Int comparison, cost 1.
func Gt() *eval.Native {
	return &eval.Native{
		Hdr:           header(">", 2),
		CostByVersion: flatCost(1),
		Impl: func(args []core.Value) (core.Value, error) {
			a, err := asInt(args[0], 1, ">")
			if err != nil {
				return nil, err
			}
			b, err := asInt(args[1], 2, ">")
			if err != nil {
				return nil, err
			}
			return core.BoolOf(a.N > b.N), nil
		},
	}
}

// Registry returns the full illustrative native set, wired with the
// cost tables above. V2 doubles comparison cost relative to V1/V3 to
// give the CLI demo something concrete to show when switching
// stdLibVersion.
func Registry() []eval.FuncDesc {
	gt := Gt()
	gt.CostByVersion[eval.V2] = 2
	eq := Eq()
	eq.CostByVersion[eval.V2] = 2
	return []eval.FuncDesc{Add(), Sub(), Mul(), Div(), eq, gt}
}
