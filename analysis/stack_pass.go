package analysis

import (
	"context"

	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/cfg"
	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/vmabi"
)

// Unset is the sentinel (⟂) recorded for a block's stack depth when it
// has not yet been determined reachable.
const Unset = -1

// StackSafetyResult is the published result of StackSafetyPass, indexed
// by cfg.BlockID.
type StackSafetyResult struct {
	DepthIn  []int
	DepthOut []int
}

// Reachable reports whether block id has a known stack depth, i.e.
// whether it is reachable per spec's "reachable block" definition.
func (r StackSafetyResult) Reachable(id cfg.BlockID) bool {
	return int(id) < len(r.DepthIn) && r.DepthIn[id] != Unset
}

// stackSafetyPass computes per-block stack depths across the CFG and
// verifies that no instruction ever pops from an empty stack and that
// control-flow joins agree on depth.
type stackSafetyPass struct {
	// RequiredTerminalDepth configures the optional terminal stack-depth
	// check (spec §4.3's "Terminal validation", VM-defined per §9).
	RequiredTerminalDepth vmabi.RequiredTerminalDepth
}

// StackPass is the default singleton identity, with no terminal-depth
// requirement configured.
var StackPass Pass = &stackSafetyPass{}

func (p *stackSafetyPass) Name() string { return "StackSafetyPass" }

func (p *stackSafetyPass) Run(ctx context.Context, m *Manager) (any, error) {
	blockRes, err := GetResult[BlockAnalysisResult](m, BlockPass)
	if err != nil {
		return nil, err
	}
	g := blockRes.CFG
	tokens := m.Tokens

	n := len(g.Blocks)
	depthIn := make([]int, n)
	depthOut := make([]int, n)
	for i := range depthIn {
		depthIn[i] = Unset
		depthOut[i] = Unset
	}
	if n == 0 {
		return StackSafetyResult{DepthIn: depthIn, DepthOut: depthOut}, nil
	}

	depthIn[0] = 0
	queue := []cfg.BlockID{0}
	for len(queue) > 0 {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		b := queue[0]
		queue = queue[1:]

		block := g.Block(b)
		depth := depthIn[b]
		for j := block.Start; j < block.End; j++ {
			contract, err := vmabi.ForToken(tokens[j])
			if err != nil {
				return nil, newDiagnostic(StackUnderflow, tokens[j].SourceIndex, "%v", err)
			}
			if depth < contract.Pops {
				return nil, newDiagnostic(StackUnderflow, tokens[j].SourceIndex,
					"instruction %q pops %d value(s) but only %d available on the stack",
					tokens[j].Text, contract.Pops, depth)
			}
			depth = depth - contract.Pops + contract.Pushes
		}
		depthOut[b] = depth

		for _, s := range block.Successors {
			propose := depthOut[b]
			if depthIn[s] == Unset {
				depthIn[s] = propose
				queue = append(queue, s)
			} else if depthIn[s] != propose {
				firstTok := g.Block(s).Start
				tokIdx := tokens[firstTok].SourceIndex
				return nil, newDiagnostic(StackDepthMismatch, tokIdx,
					"block %d expects incoming stack depth %d but predecessor block %d produces %d",
					s, depthIn[s], b, propose)
			}
		}
	}

	if p.RequiredTerminalDepth != nil {
		for _, b := range g.Blocks {
			if len(b.Successors) != 0 || depthIn[b.ID] == Unset {
				continue
			}
			if depthOut[b.ID] != *p.RequiredTerminalDepth {
				idx := b.Start
				if b.End > b.Start {
					idx = b.End - 1
				}
				return nil, newDiagnostic(TerminalDepthMismatch, tokens[idx].SourceIndex,
					"terminal block %d ends with stack depth %d, expected %d",
					b.ID, depthOut[b.ID], *p.RequiredTerminalDepth)
			}
		}
	}

	return StackSafetyResult{DepthIn: depthIn, DepthOut: depthOut}, nil
}
