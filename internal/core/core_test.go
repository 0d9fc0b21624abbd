package core

import "testing"

func TestAsLetHead_Let(t *testing.T) {
	n := &Let{Name: "x", Value: &Evaluated{Val: &Int{N: 1}}, Body: &Ref{Name: "x"}}
	name, value, body, ok := AsLetHead(n)
	if !ok || name != "x" || body != n.Body || value != n.Value {
		t.Fatalf("AsLetHead(Let) = %q, %v, %v, %v", name, value, body, ok)
	}
}

func TestAsLetHead_Block(t *testing.T) {
	n := NewLet("y", &Evaluated{Val: &Int{N: 2}}, &Ref{Name: "y"})
	name, value, body, ok := AsLetHead(n)
	if !ok || name != "y" {
		t.Fatalf("AsLetHead(Block) = %q, %v", name, ok)
	}
	if _, isInt := value.(*Evaluated); !isInt {
		t.Fatalf("unexpected value node: %v", value)
	}
	if body != n.Body {
		t.Fatalf("body mismatch")
	}
}

func TestAsLetHead_FuncDeclRejected(t *testing.T) {
	n := &Block{Decl: &FuncDecl{Name: "f", Params: []string{"a"}, Body: &Ref{Name: "a"}}, Body: &Ref{Name: "f"}}
	if _, _, _, ok := AsLetHead(n); ok {
		t.Fatalf("expected Block(FuncDecl) to not be a let head")
	}
}

func TestBoolOfSingletons(t *testing.T) {
	if BoolOf(true) != True {
		t.Fatalf("BoolOf(true) should return the True singleton")
	}
	if BoolOf(false) != False {
		t.Fatalf("BoolOf(false) should return the False singleton")
	}
}

func TestCaseObjStringIsDeterministic(t *testing.T) {
	obj := &CaseObj{TypeName: "Point", Fields: map[string]Value{
		"y": &Int{N: 9},
		"x": &Int{N: 7},
	}}
	want := "Point(x: 7, y: 9)"
	if got := obj.String(); got != want {
		t.Fatalf("CaseObj.String() = %q, want %q", got, want)
	}
}

func TestHeaderString(t *testing.T) {
	h := Header{Name: "+", Arity: 2}
	if got, want := h.String(), "+/2"; got != want {
		t.Fatalf("Header.String() = %q, want %q", got, want)
	}
}
