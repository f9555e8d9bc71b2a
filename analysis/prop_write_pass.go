package analysis

import (
	"context"
	"sort"

	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/cfg"
	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/token"
)

// PropWriteSafetyResult's presence signals success; it carries no data
// per spec §6.
type PropWriteSafetyResult struct{}

// occurrence is one write site of a property: its token index and the
// block that contains it.
type occurrence struct {
	tokenIndex int
	block      cfg.BlockID
}

// propWriteSafetyPass proves that every output-property write is
// guaranteed on every path to any reachable terminal block. It depends
// on block analysis (for the CFG) and stack safety (for which blocks are
// reachable at all).
type propWriteSafetyPass struct{}

// PropWritePass is the singleton identity for PropWriteSafetyPass.
var PropWritePass Pass = propWriteSafetyPass{}

func (propWriteSafetyPass) Name() string { return "PropWriteSafetyPass" }

func (propWriteSafetyPass) Run(ctx context.Context, m *Manager) (any, error) {
	blockRes, err := GetResult[BlockAnalysisResult](m, BlockPass)
	if err != nil {
		return nil, err
	}
	stackRes, err := GetResult[StackSafetyResult](m, StackPass)
	if err != nil {
		return nil, err
	}
	g := blockRes.CFG

	writesByName := make(map[string][]occurrence)
	for i, t := range g.Blocks {
		for j := t.Start; j < t.End; j++ {
			tok := m.Tokens[j]
			if tok.Kind != token.KindPropStore {
				continue
			}
			payload := tok.Payload.(token.PropStorePayload)
			writesByName[payload.PropName] = append(writesByName[payload.PropName], occurrence{
				tokenIndex: tok.SourceIndex,
				block:      cfg.BlockID(i),
			})
		}
	}

	if len(writesByName) == 0 {
		return PropWriteSafetyResult{}, nil
	}

	var terminals []cfg.BlockID
	for _, b := range g.Blocks {
		if len(b.Successors) == 0 && stackRes.Reachable(b.ID) {
			terminals = append(terminals, b.ID)
		}
	}

	if len(terminals) == 0 {
		firstIdx := earliestWrite(writesByName)
		return nil, newDiagnostic(NoReachableTerminal, firstIdx,
			"prop write operations exist but the expression has no reachable terminal points")
	}

	names := make([]string, 0, len(writesByName))
	for name := range writesByName {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		locations := writesByName[name]
		writeBlocks := make(map[cfg.BlockID]bool, len(locations))
		for _, loc := range locations {
			writeBlocks[loc.block] = true
		}

		if writeBlocks[0] {
			// Entry itself writes the property: safe regardless of the
			// rest of the control flow.
			continue
		}

		visited := map[cfg.BlockID]bool{0: true}
		queue := []cfg.BlockID{0}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, s := range g.Block(cur).Successors {
				if visited[s] || writeBlocks[s] {
					continue
				}
				visited[s] = true
				queue = append(queue, s)
			}
		}

		for _, t := range terminals {
			if visited[t] {
				return nil, newDiagnostic(PropertyNotAlwaysWritten, firstOccurrenceIdx(locations),
					"prop write to %q is not guaranteed to be executed on all paths", name)
			}
		}
	}

	return PropWriteSafetyResult{}, nil
}

func firstOccurrenceIdx(locs []occurrence) int {
	min := locs[0].tokenIndex
	for _, l := range locs[1:] {
		if l.tokenIndex < min {
			min = l.tokenIndex
		}
	}
	return min
}

func earliestWrite(byName map[string][]occurrence) int {
	first := -1
	for _, locs := range byName {
		idx := firstOccurrenceIdx(locs)
		if first == -1 || idx < first {
			first = idx
		}
	}
	return first
}
