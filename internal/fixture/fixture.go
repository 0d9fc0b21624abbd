// Package fixture loads YAML documents describing an expression, an
// initial set of predeclared bindings, a cost limit, and a standard
// library version: the on-disk format cmd/rideeval evaluates, in the
// spirit of the teacher's internal/eval_harness YAML benchmark specs.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ridelang/evalcore/internal/core"
	"github.com/ridelang/evalcore/internal/eval"
)

// Fixture is the top-level document a fixture file decodes into.
type Fixture struct {
	Name          string               `yaml:"name"`
	Limit         int                  `yaml:"limit"`
	StdLibVersion string               `yaml:"stdLibVersion"`
	Predeclared   map[string]ValueNode `yaml:"predeclared"`
	Expr          *ExprNode            `yaml:"expr"`
}

// ValueNode is a predeclared value's YAML shape: exactly one field set.
type ValueNode struct {
	Int  *int64  `yaml:"int,omitempty"`
	Bool *bool   `yaml:"bool,omitempty"`
	Text *string `yaml:"text,omitempty"`
}

// Build converts a ValueNode into the core.Value it names.
func (v ValueNode) Build() (core.Value, error) {
	switch {
	case v.Int != nil:
		return &core.Int{N: *v.Int}, nil
	case v.Bool != nil:
		return core.BoolOf(*v.Bool), nil
	case v.Text != nil:
		return &core.Text{S: *v.Text}, nil
	default:
		return nil, fmt.Errorf("predeclared value has no recognized field (int/bool/text)")
	}
}

// ExprNode is the YAML shape of one expression node; exactly one field
// should be set per node, mirroring core.Node's sum of shapes.
type ExprNode struct {
	Int    *int64      `yaml:"int,omitempty"`
	Bool   *bool       `yaml:"bool,omitempty"`
	Text   *string     `yaml:"text,omitempty"`
	Ref    *string     `yaml:"ref,omitempty"`
	Let    *LetNode    `yaml:"let,omitempty"`
	If     *IfNode     `yaml:"if,omitempty"`
	Call   *CallNode   `yaml:"call,omitempty"`
	Getter *GetterNode `yaml:"getter,omitempty"`
	Func   *FuncNode   `yaml:"func,omitempty"`
}

// LetNode is the YAML shape of a let binding: let Name = Value in Body.
type LetNode struct {
	Name  string    `yaml:"name"`
	Value *ExprNode `yaml:"value"`
	Body  *ExprNode `yaml:"body"`
}

// IfNode is the YAML shape of a conditional.
type IfNode struct {
	Cond *ExprNode `yaml:"cond"`
	Then *ExprNode `yaml:"then"`
	Else *ExprNode `yaml:"else"`
}

// CallNode is the YAML shape of a function call; Name plus the number of
// Args forms the core.Header used to look the function up.
type CallNode struct {
	Name string      `yaml:"name"`
	Args []*ExprNode `yaml:"args"`
}

// GetterNode is the YAML shape of a record field projection.
type GetterNode struct {
	Obj   *ExprNode `yaml:"obj"`
	Field string    `yaml:"field"`
}

// FuncNode is the YAML shape of a local function declaration scoped over
// In, mirroring core.Block{Decl: FuncDecl, Body: In}.
type FuncNode struct {
	Name   string    `yaml:"name"`
	Params []string  `yaml:"params"`
	Body   *ExprNode `yaml:"body"`
	In     *ExprNode `yaml:"in"`
}

// Build converts an ExprNode tree into the core.Node it names.
func (n *ExprNode) Build() (core.Node, error) {
	if n == nil {
		return nil, fmt.Errorf("expression node is empty")
	}
	switch {
	case n.Int != nil:
		return &core.Evaluated{Val: &core.Int{N: *n.Int}}, nil
	case n.Bool != nil:
		return &core.Evaluated{Val: core.BoolOf(*n.Bool)}, nil
	case n.Text != nil:
		return &core.Evaluated{Val: &core.Text{S: *n.Text}}, nil
	case n.Ref != nil:
		return &core.Ref{Name: *n.Ref}, nil
	case n.Let != nil:
		value, err := n.Let.Value.Build()
		if err != nil {
			return nil, fmt.Errorf("let %s: value: %w", n.Let.Name, err)
		}
		body, err := n.Let.Body.Build()
		if err != nil {
			return nil, fmt.Errorf("let %s: body: %w", n.Let.Name, err)
		}
		return core.NewLet(n.Let.Name, value, body), nil
	case n.If != nil:
		cond, err := n.If.Cond.Build()
		if err != nil {
			return nil, fmt.Errorf("if: cond: %w", err)
		}
		then, err := n.If.Then.Build()
		if err != nil {
			return nil, fmt.Errorf("if: then: %w", err)
		}
		els, err := n.If.Else.Build()
		if err != nil {
			return nil, fmt.Errorf("if: else: %w", err)
		}
		return &core.If{Cond: cond, Then: then, Else: els}, nil
	case n.Call != nil:
		args := make([]core.Node, len(n.Call.Args))
		for i, a := range n.Call.Args {
			built, err := a.Build()
			if err != nil {
				return nil, fmt.Errorf("call %s: arg %d: %w", n.Call.Name, i, err)
			}
			args[i] = built
		}
		hdr := core.Header{Name: n.Call.Name, Arity: len(args)}
		return &core.Call{Header: hdr, Args: args}, nil
	case n.Getter != nil:
		obj, err := n.Getter.Obj.Build()
		if err != nil {
			return nil, fmt.Errorf("getter .%s: obj: %w", n.Getter.Field, err)
		}
		return &core.Getter{Obj: obj, Field: n.Getter.Field}, nil
	case n.Func != nil:
		body, err := n.Func.Body.Build()
		if err != nil {
			return nil, fmt.Errorf("func %s: body: %w", n.Func.Name, err)
		}
		in, err := n.Func.In.Build()
		if err != nil {
			return nil, fmt.Errorf("func %s: in: %w", n.Func.Name, err)
		}
		decl := &core.FuncDecl{Name: n.Func.Name, Params: n.Func.Params, Body: body}
		return &core.Block{Decl: decl, Body: in}, nil
	default:
		return nil, fmt.Errorf("expression node has no recognized field")
	}
}

// Version parses the fixture's stdLibVersion field ("V1"/"V2"/"V3").
func (f *Fixture) Version() (eval.StdLibVersion, error) {
	switch f.StdLibVersion {
	case "", "V1":
		return eval.V1, nil
	case "V2":
		return eval.V2, nil
	case "V3":
		return eval.V3, nil
	default:
		return 0, fmt.Errorf("unrecognized stdLibVersion %q", f.StdLibVersion)
	}
}

// BuildEnv assembles the initial Context: the fixture's predeclared
// bindings plus the caller-supplied function registry.
func (f *Fixture) BuildEnv(funcs []eval.FuncDesc) (*eval.Context, error) {
	predeclared := make(map[string]core.Value, len(f.Predeclared))
	for name, v := range f.Predeclared {
		built, err := v.Build()
		if err != nil {
			return nil, fmt.Errorf("predeclared %s: %w", name, err)
		}
		predeclared[name] = built
	}
	return eval.NewInitialContext(predeclared, funcs), nil
}

// Load reads and decodes a fixture file from path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if f.Expr == nil {
		return nil, fmt.Errorf("fixture %s: missing top-level expr", path)
	}
	if f.Limit <= 0 {
		return nil, fmt.Errorf("fixture %s: limit must be positive", path)
	}
	return &f, nil
}
