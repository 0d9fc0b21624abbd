package eval

import "github.com/ridelang/evalcore/internal/core"

// StdLibVersion selects the cost table a Native function charges against.
// Native-function costs are the only thing the evaluator varies by
// version; it never otherwise branches on it.
type StdLibVersion int

const (
	V1 StdLibVersion = iota + 1
	V2
	V3
)

func (v StdLibVersion) String() string {
	switch v {
	case V1:
		return "V1"
	case V2:
		return "V2"
	case V3:
		return "V3"
	default:
		return "unknown"
	}
}

// FuncDesc is a function descriptor: either a Native (a pure, total,
// externally-supplied implementation) or a User function (evaluated by
// beta-reduction into a Let-chain).
type FuncDesc interface {
	Header() core.Header
	isFuncDesc()
}

// Native wraps an externally-defined primitive. Impl must be pure and
// total over well-typed arguments; ill-typed invocations and
// domain-specific failures (division by zero, signature checks, ...) are
// reported through the error return, never a panic.
type Native struct {
	Hdr           core.Header
	CostByVersion map[StdLibVersion]int
	Impl          func(args []core.Value) (core.Value, error)
}

func (n *Native) Header() core.Header { return n.Hdr }
func (*Native) isFuncDesc()           {}

// Cost returns the cost charged for invoking n under version, and
// whether that version has a defined cost at all.
func (n *Native) Cost(version StdLibVersion) (int, bool) {
	c, ok := n.CostByVersion[version]
	return c, ok
}

// User is a user-defined function, evaluated by expanding a call into a
// right-nested chain of Lets binding each parameter to its argument.
type User struct {
	Hdr    core.Header
	Params []string
	Body   core.Node
}

func (u *User) Header() core.Header { return u.Hdr }
func (*User) isFuncDesc()           {}

// expandCall builds the Let-chain body for a User-function call:
// Let(param1, arg1, Let(param2, arg2, ... body)).
func expandCall(u *User, args []core.Node) core.Node {
	body := u.Body
	for i := len(u.Params) - 1; i >= 0; i-- {
		body = core.NewLet(u.Params[i], args[i], body)
	}
	return body
}
