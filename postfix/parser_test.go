package postfix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/token"
)

func TestParseLinearArithmeticProgram(t *testing.T) {
	stream, err := Parse("1 2 + return")
	require.NoError(t, err)
	require.Len(t, stream, 4)

	assert.Equal(t, token.KindConst, stream[0].Kind)
	assert.Equal(t, token.ConstPayload{Value: 1}, stream[0].Payload)
	assert.Equal(t, token.KindArith, stream[2].Kind)
	assert.Equal(t, token.OpPayload{Name: "+"}, stream[2].Payload)
	assert.Equal(t, token.KindTerminal, stream[3].Kind)

	for i, tok := range stream {
		assert.Equal(t, i, tok.SourceIndex)
	}
}

func TestParsePixelAccessSingleAndExpr(t *testing.T) {
	stream, err := Parse("x y[] return")
	require.NoError(t, err)
	require.Len(t, stream, 3)

	assert.Equal(t, token.PixelAccessPayload{Plane: 0, Mode: token.AccessSingle}, stream[0].Payload)
	assert.Equal(t, token.PixelAccessPayload{Plane: 1, Mode: token.AccessExpr}, stream[1].Payload)
}

func TestParsePropLoadAndStore(t *testing.T) {
	stream, err := Parse("1 luma!f luma@ return")
	require.NoError(t, err)
	require.Len(t, stream, 4)
	assert.Equal(t, token.KindPropStore, stream[1].Kind)
	assert.Equal(t, token.PropStorePayload{PropName: "luma", PropType: token.PropFloat}, stream[1].Payload)
	assert.Equal(t, token.KindPropLoad, stream[2].Kind)
	assert.Equal(t, token.PropLoadPayload{PropName: "luma"}, stream[2].Payload)
}

func TestParseLabelsJumpsAndBranches(t *testing.T) {
	stream, err := Parse("#loop: 1 jz end jmp loop #end: return")
	require.NoError(t, err)

	require.Equal(t, token.KindLabelDef, stream[0].Kind)
	assert.Equal(t, token.LabelPayload{Name: "loop"}, stream[0].Payload)

	require.Equal(t, token.KindBranch, stream[2].Kind)
	assert.Equal(t, token.JumpPayload{Target: "end"}, stream[2].Payload)

	require.Equal(t, token.KindJump, stream[3].Kind)
	assert.Equal(t, token.JumpPayload{Target: "loop"}, stream[3].Payload)

	require.Equal(t, token.KindLabelDef, stream[4].Kind)
	assert.Equal(t, token.LabelPayload{Name: "end"}, stream[4].Payload)
}

func TestParseStackShufflingOps(t *testing.T) {
	stream, err := Parse("1 2 swap dup drop over return")
	require.NoError(t, err)
	for _, idx := range []int{2, 3, 4, 5} {
		assert.Equal(t, token.KindStack, stream[idx].Kind)
	}
}

func TestParseCollectsAllErrorsNotJustTheFirst(t *testing.T) {
	_, err := Parse("1 ???bad1 ???bad2 luma!zz return")
	require.Error(t, err)
	var list ErrorList
	require.ErrorAs(t, err, &list)
	assert.GreaterOrEqual(t, len(list), 3)
}

func TestParseEmptySourceYieldsEmptyStream(t *testing.T) {
	stream, err := Parse("   \n  \n")
	require.NoError(t, err)
	assert.Empty(t, stream)
}
