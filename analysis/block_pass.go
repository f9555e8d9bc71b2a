package analysis

import (
	"context"
	"sort"

	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/cfg"
	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/token"
)

// BlockAnalysisResult is the published result of BlockAnalysisPass.
type BlockAnalysisResult struct {
	CFG *cfg.Graph
}

// blockAnalysisPass partitions the token stream into basic blocks and
// builds the CFG. It has no dependencies.
type blockAnalysisPass struct{}

// BlockPass is the singleton identity used to request BlockAnalysisPass's
// result from other passes or from a host.
var BlockPass Pass = blockAnalysisPass{}

func (blockAnalysisPass) Name() string { return "BlockAnalysisPass" }

func (blockAnalysisPass) Run(ctx context.Context, m *Manager) (any, error) {
	tokens := m.Tokens

	if len(tokens) == 0 {
		return BlockAnalysisResult{CFG: &cfg.Graph{}}, nil
	}

	leaders := map[int]bool{0: true}
	for i, t := range tokens {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		switch t.Kind {
		case token.KindLabelDef:
			if i == 0 || tokens[i-1].Kind != token.KindLabelDef {
				leaders[i] = true
			}
		case token.KindJump, token.KindBranch, token.KindTerminal:
			if i+1 < len(tokens) {
				leaders[i+1] = true
			}
		}
	}

	sorted := make([]int, 0, len(leaders))
	for idx := range leaders {
		sorted = append(sorted, idx)
	}
	sort.Ints(sorted)

	blocks := make([]cfg.Block, len(sorted))
	labelIndex := make(map[string]cfg.BlockID)
	for i, start := range sorted {
		end := len(tokens)
		if i+1 < len(sorted) {
			end = sorted[i+1]
		}
		id := cfg.BlockID(i)
		var labels []string
		for j := start; j < end && tokens[j].Kind == token.KindLabelDef; j++ {
			lp := tokens[j].Payload.(token.LabelPayload)
			labels = append(labels, lp.Name)
			labelIndex[lp.Name] = id
		}
		blocks[i] = cfg.Block{ID: id, Start: start, End: end, Labels: labels}
	}

	for i := range blocks {
		b := &blocks[i]
		if b.End == b.Start {
			continue
		}
		last := tokens[b.End-1]
		switch last.Kind {
		case token.KindJump:
			jp := last.Payload.(token.JumpPayload)
			target, ok := labelIndex[jp.Target]
			if !ok {
				return nil, newDiagnostic(UnresolvedLabel, last.SourceIndex, "jump to undefined label %q", jp.Target)
			}
			b.Successors = []cfg.BlockID{target}
		case token.KindBranch:
			jp := last.Payload.(token.JumpPayload)
			target, ok := labelIndex[jp.Target]
			if !ok {
				return nil, newDiagnostic(UnresolvedLabel, last.SourceIndex, "branch to undefined label %q", jp.Target)
			}
			succs := []cfg.BlockID{target}
			if i+1 < len(blocks) {
				succs = append(succs, cfg.BlockID(i+1))
			}
			b.Successors = succs
		case token.KindTerminal:
			b.Successors = nil
		default:
			if i+1 < len(blocks) {
				b.Successors = []cfg.BlockID{cfg.BlockID(i + 1)}
			}
		}
	}

	for i := range blocks {
		for _, s := range blocks[i].Successors {
			blocks[s].Predecessors = append(blocks[s].Predecessors, cfg.BlockID(i))
		}
	}

	return BlockAnalysisResult{CFG: &cfg.Graph{Blocks: blocks, TokenCount: len(tokens)}}, nil
}
