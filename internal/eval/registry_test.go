package eval

import (
	"testing"

	"github.com/ridelang/evalcore/internal/core"
)

func TestNativeCostByVersion(t *testing.T) {
	n := &Native{
		Hdr:           core.Header{Name: "+", Arity: 2},
		CostByVersion: map[StdLibVersion]int{V1: 1, V2: 2},
	}
	if c, ok := n.Cost(V1); !ok || c != 1 {
		t.Fatalf("Cost(V1) = %d, %v", c, ok)
	}
	if c, ok := n.Cost(V2); !ok || c != 2 {
		t.Fatalf("Cost(V2) = %d, %v", c, ok)
	}
	if _, ok := n.Cost(V3); ok {
		t.Fatalf("expected V3 to be undefined")
	}
}

func TestUserExpandCall(t *testing.T) {
	u := &User{
		Hdr:    core.Header{Name: "f", Arity: 2},
		Params: []string{"a", "b"},
		Body:   &core.Ref{Name: "a"},
	}
	args := []core.Node{&core.Evaluated{Val: &core.Int{N: 1}}, &core.Evaluated{Val: &core.Int{N: 2}}}
	got := expandCall(u, args)

	outer, ok := got.(*core.Block)
	if !ok {
		t.Fatalf("expected top-level Block, got %T", got)
	}
	head, ok := outer.Decl.(*core.LetHead)
	if !ok || head.Name != "a" {
		t.Fatalf("expected first binding for 'a', got %+v", outer.Decl)
	}
	inner, ok := outer.Body.(*core.Block)
	if !ok {
		t.Fatalf("expected nested Block for second param, got %T", outer.Body)
	}
	innerHead, ok := inner.Decl.(*core.LetHead)
	if !ok || innerHead.Name != "b" {
		t.Fatalf("expected second binding for 'b', got %+v", inner.Decl)
	}
	if inner.Body != u.Body {
		t.Fatalf("expected the innermost body to be the function's body")
	}
}

func TestStdLibVersionString(t *testing.T) {
	cases := map[StdLibVersion]string{V1: "V1", V2: "V2", V3: "V3", StdLibVersion(99): "unknown"}
	for v, want := range cases {
		if got := v.String(); got != want {
			t.Fatalf("StdLibVersion(%d).String() = %q, want %q", v, got, want)
		}
	}
}
