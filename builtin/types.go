// Package builtin describes the data contract for the host's builtin
// function and library-module tables. It is a straight structural port
// of the infix frontend's own descriptor types (BuiltinFunction,
// ExportedFunction, LibraryModule): the tables this module ships are
// the shape those descriptors take, not the expansion logic that
// compiles a builtin call down to postfix, which spec's Non-goals place
// out of scope (only the inline bodies a library expands to matter, not
// how the expansion itself is driven).
package builtin

import "github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/token"

// Mode restricts which pixel-access mode a builtin or exported function
// may be used from, mirroring the original's ExportMode/mode_restriction
// fields. ModeAny means the function is valid in either mode.
type Mode int

const (
	ModeAny Mode = iota
	ModeExpr
	ModeSingleExpr
)

func (m Mode) String() string {
	switch m {
	case ModeExpr:
		return "expr"
	case ModeSingleExpr:
		return "single-expr"
	default:
		return "any"
	}
}

// ParamType is the declared type of one builtin function parameter.
// Only Value exists today (every builtin in the retrieved stdlib takes
// plain numeric operands) but the type is kept distinct from a bare
// int arity so a future array-valued builtin doesn't need a breaking
// change here.
type ParamType int

const (
	ParamValue ParamType = iota
)

// Descriptor is one overload of a builtin function: a name, its arity,
// the pixel-access mode it is restricted to (if any), and its parameter
// types. The infix lowering pass resolves a call to the Descriptor with
// matching arity and mode, then emits whatever postfix its own logic
// produces; this module never performs that resolution.
type Descriptor struct {
	Name            string
	Arity           int
	ModeRestriction Mode
	ParamTypes      []ParamType
}

// BuiltinHandler is the signature a host-side code generator would
// implement to lower a resolved Descriptor call to postfix tokens. No
// implementation lives in this module: the compilation strategy for a
// builtin call is explicitly out of scope, only the contract a handler
// must satisfy is.
type BuiltinHandler func(call Descriptor, args []token.Token) (token.Stream, error)

// LibraryModule is one stdlib-style module (the original's "std",
// "meta", ...): a name, the exported functions it contributes to the
// surrounding namespace, and the other modules it depends on.
type LibraryModule struct {
	Name         string
	Exports      []ExportedFunction
	Dependencies []string
}

// ExportedFunction is one function a LibraryModule makes available to
// user code, distinct from Descriptor in that it additionally carries
// the internal symbol a lowering pass would target.
type ExportedFunction struct {
	Name                 string
	ParamCount           int
	Mode                 Mode
	InternalNameOverride string
}
