package analysis

import "fmt"

// Kind is the closed set of reasons an analysis run can fail.
type Kind int

const (
	UnresolvedLabel Kind = iota
	StackUnderflow
	StackDepthMismatch
	TerminalDepthMismatch
	InconsistentPropertyType
	NoReachableTerminal
	PropertyNotAlwaysWritten
	DependencyCycle
	PassNotRun
)

func (k Kind) String() string {
	switch k {
	case UnresolvedLabel:
		return "UnresolvedLabel"
	case StackUnderflow:
		return "StackUnderflow"
	case StackDepthMismatch:
		return "StackDepthMismatch"
	case TerminalDepthMismatch:
		return "TerminalDepthMismatch"
	case InconsistentPropertyType:
		return "InconsistentPropertyType"
	case NoReachableTerminal:
		return "NoReachableTerminal"
	case PropertyNotAlwaysWritten:
		return "PropertyNotAlwaysWritten"
	case DependencyCycle:
		return "DependencyCycle"
	case PassNotRun:
		return "PassNotRun"
	default:
		return "Unknown"
	}
}

// Diagnostic is the single uniform error type every pass (and the
// manager itself) fails with. TokenIndex locates the failure in the
// input stream; a host with a source map (the infix pipeline) remaps it
// to a line/column before display.
type Diagnostic struct {
	Kind        Kind
	Message     string
	TokenIndex  int
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s (idx: %d)", d.Message, d.TokenIndex)
}

func newDiagnostic(kind Kind, idx int, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), TokenIndex: idx}
}
