package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackSafetyAcceptsBalancedLinearProgram(t *testing.T) {
	tokens := new(tb).konst(1).konst(2).arith("+").term().stream()
	m := NewManager(context.Background(), tokens)

	res, err := m.Execute(StackPass)
	require.NoError(t, err)
	r := res.(StackSafetyResult)
	assert.Equal(t, 0, r.DepthIn[0])
	assert.Equal(t, 1, r.DepthOut[0])
}

func TestStackSafetyDetectsUnderflow(t *testing.T) {
	tokens := new(tb).konst(1).arith("+").term().stream()
	_, err := NewManager(context.Background(), tokens).Execute(StackPass)
	require.Error(t, err)
	var diag *Diagnostic
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, StackUnderflow, diag.Kind)
}

func TestStackSafetyDetectsJoinDisagreement(t *testing.T) {
	// Diamond: block 0 branches to "b" or falls through; the two arms
	// push a different number of values before merging at "end", so the
	// merge block sees two different incoming depths.
	tokens := new(tb).
		konst(1).
		branch("b").
		konst(2).
		konst(3).
		jmp("end").
		label("b").
		konst(4).
		label("end").
		term().
		stream()

	_, err := NewManager(context.Background(), tokens).Execute(StackPass)
	require.Error(t, err)
	var diag *Diagnostic
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, StackDepthMismatch, diag.Kind)
}

func TestStackSafetyLeavesUnreachableBlocksUnset(t *testing.T) {
	tokens := new(tb).
		konst(1).
		term().
		label("dead").
		konst(2).
		term().
		stream()

	m := NewManager(context.Background(), tokens)
	res, err := m.Execute(StackPass)
	require.NoError(t, err)
	r := res.(StackSafetyResult)

	g := runBlocks(t, m)
	require.Len(t, g.Blocks, 2)
	assert.Equal(t, Unset, r.DepthIn[g.Blocks[1].ID])
}

func TestStackSafetyRequiredTerminalDepthMismatch(t *testing.T) {
	required := 2
	pass := &stackSafetyPass{RequiredTerminalDepth: &required}
	tokens := new(tb).konst(1).term().stream()

	m := NewManager(context.Background(), tokens)
	_, err := m.Execute(pass)
	require.Error(t, err)
	var diag *Diagnostic
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, TerminalDepthMismatch, diag.Kind)
}
