// Package vmabi is the shared specification of each token kind's
// (pops, pushes) stack contract. Spec's Open Questions note this table
// is VM-defined and "must be obtained from a shared specification, not
// reinvented" by each pass; this package is that specification, imported
// by both analysis.StackSafetyPass and the postfix parser so the two
// surfaces cannot silently drift apart.
package vmabi

import (
	"fmt"

	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/token"
)

// Contract is the number of values a token pops from, and pushes onto,
// the operand stack.
type Contract struct {
	Pops   int
	Pushes int
}

// opContracts is the named-opcode table for KindArith and KindStack
// tokens, where arity varies by opcode rather than by kind alone.
var opContracts = map[string]Contract{
	// binary arithmetic / comparison / logic
	"+": {2, 1}, "-": {2, 1}, "*": {2, 1}, "/": {2, 1}, "%": {2, 1},
	"pow": {2, 1}, "min": {2, 1}, "max": {2, 1}, "atan2": {2, 1},
	">": {2, 1}, "<": {2, 1}, ">=": {2, 1}, "<=": {2, 1}, "=": {2, 1}, "!=": {2, 1},
	"and": {2, 1}, "or": {2, 1}, "xor": {2, 1},
	// unary
	"not": {1, 1}, "abs": {1, 1}, "neg": {1, 1}, "sqrt": {1, 1},
	"exp": {1, 1}, "log": {1, 1}, "sin": {1, 1}, "cos": {1, 1}, "floor": {1, 1}, "round": {1, 1},
	// ternary select
	"?": {3, 1},
	// stack shuffling
	"dup": {1, 2}, "drop": {1, 0}, "swap": {2, 2}, "over": {2, 3},
}

// OpContract looks up the arity of a named arithmetic or stack opcode.
func OpContract(name string) (Contract, bool) {
	c, ok := opContracts[name]
	return c, ok
}

// RequiredTerminalDepth is VM-defined configuration for
// analysis.StackSafetyPass's terminal-depth check. A nil value means no
// fixed requirement is enforced.
type RequiredTerminalDepth = *int

// ForToken returns the stack contract for a single token, consulting
// OpContract for KindArith/KindStack tokens and a fixed rule for every
// other kind.
func ForToken(t token.Token) (Contract, error) {
	switch t.Kind {
	case token.KindConst:
		return Contract{0, 1}, nil
	case token.KindPixelAccess:
		p, ok := t.Payload.(token.PixelAccessPayload)
		if !ok {
			return Contract{}, fmt.Errorf("vmabi: KindPixelAccess token %d missing PixelAccessPayload", t.SourceIndex)
		}
		if p.Mode == token.AccessExpr {
			return Contract{2, 1}, nil
		}
		return Contract{0, 1}, nil
	case token.KindPropLoad:
		return Contract{0, 1}, nil
	case token.KindPropStore:
		return Contract{1, 0}, nil
	case token.KindArith, token.KindStack:
		op, ok := t.Payload.(token.OpPayload)
		if !ok {
			return Contract{}, fmt.Errorf("vmabi: token %d missing OpPayload", t.SourceIndex)
		}
		c, ok := OpContract(op.Name)
		if !ok {
			return Contract{}, fmt.Errorf("vmabi: unknown opcode %q at token %d", op.Name, t.SourceIndex)
		}
		return c, nil
	case token.KindLabelDef:
		return Contract{0, 0}, nil
	case token.KindJump:
		return Contract{0, 0}, nil
	case token.KindBranch:
		// Pops the branch condition; the taken/fall-through transfer
		// itself moves no further values.
		return Contract{1, 0}, nil
	case token.KindTerminal:
		return Contract{0, 0}, nil
	default:
		return Contract{}, fmt.Errorf("vmabi: unhandled token kind %v at token %d", t.Kind, t.SourceIndex)
	}
}
