package postfix

import "fmt"

// Error is one malformed lexeme encountered while parsing. Unlike
// analysis.Diagnostic, which locates a problem by token index into an
// already-valid stream, a postfix Error locates it by source position
// since the stream does not exist yet.
type Error struct {
	Pos Position
	Msg string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Pos, e.Msg) }

// ErrorList collects every malformed lexeme found during a single parse,
// mirroring go/scanner.ErrorList's "report everything, don't bail on the
// first mistake" behavior.
type ErrorList []*Error

func (l *ErrorList) add(pos Position, format string, args ...any) {
	*l = append(*l, &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
	}
}
