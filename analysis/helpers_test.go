package analysis

import (
	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/token"
)

// tb is a tiny token-stream builder used across this package's tests so
// each test can express a program shape without hand-writing SourceIndex
// bookkeeping.
type tb struct {
	toks []token.Token
}

func (b *tb) add(k token.Kind, text string, payload token.Payload) *tb {
	b.toks = append(b.toks, token.Token{
		Kind:        k,
		Text:        text,
		SourceIndex: len(b.toks),
		Payload:     payload,
	})
	return b
}

func (b *tb) konst(v float64) *tb { return b.add(token.KindConst, "const", token.ConstPayload{Value: v}) }
func (b *tb) arith(op string) *tb { return b.add(token.KindArith, op, token.OpPayload{Name: op}) }
func (b *tb) dup() *tb            { return b.add(token.KindStack, "dup", token.OpPayload{Name: "dup"}) }
func (b *tb) drop() *tb           { return b.add(token.KindStack, "drop", token.OpPayload{Name: "drop"}) }

func (b *tb) label(name string) *tb {
	return b.add(token.KindLabelDef, name+":", token.LabelPayload{Name: name})
}

func (b *tb) jmp(target string) *tb {
	return b.add(token.KindJump, "jmp", token.JumpPayload{Target: target})
}

func (b *tb) branch(target string) *tb {
	return b.add(token.KindBranch, "jz", token.JumpPayload{Target: target})
}

func (b *tb) term() *tb { return b.add(token.KindTerminal, "ret", nil) }

func (b *tb) propStore(name string, pt token.PropType) *tb {
	return b.add(token.KindPropStore, "prop$", token.PropStorePayload{PropName: name, PropType: pt})
}

// store pushes a placeholder value and stores it, since KindPropStore
// pops the value it writes: every store in a stack-safety-checked
// program needs something underneath it.
func (b *tb) store(name string, pt token.PropType) *tb {
	return b.konst(0).propStore(name, pt)
}

func (b *tb) propLoad(name string) *tb {
	return b.add(token.KindPropLoad, "prop@", token.PropLoadPayload{PropName: name})
}

// lastIndex is the SourceIndex of the most recently added token.
func (b *tb) lastIndex() int { return len(b.toks) - 1 }

func (b *tb) stream() token.Stream { return token.Stream(b.toks) }
