package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/token"
)

func TestPropWriteTypeSafetyAcceptsConsistentTypes(t *testing.T) {
	tokens := new(tb).
		propStore("p", token.PropFloat).
		propStore("p", token.PropFloat).
		term().
		stream()

	_, err := NewManager(context.Background(), tokens).Execute(PropTypePass)
	require.NoError(t, err)
}

func TestPropWriteTypeSafetyRejectsInconsistentTypes(t *testing.T) {
	tokens := new(tb).
		propStore("p", token.PropFloat). // idx 0
		propStore("p", token.PropInt).   // idx 1
		term().
		stream()

	_, err := NewManager(context.Background(), tokens).Execute(PropTypePass)
	require.Error(t, err)
	var diag *Diagnostic
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, InconsistentPropertyType, diag.Kind)
	assert.Equal(t, 1, diag.TokenIndex)
}

func TestPropWriteTypeSafetyIgnoresReachability(t *testing.T) {
	// A write inside an unreachable block still must be type-consistent:
	// spec resolves this Open Question as "yes, independent of reachability".
	tokens := new(tb).
		konst(1).
		term().
		propStore("p", token.PropFloat).
		propStore("p", token.PropInt).
		term().
		stream()

	_, err := NewManager(context.Background(), tokens).Execute(PropTypePass)
	require.Error(t, err)
	var diag *Diagnostic
	require.ErrorAs(t, err, &diag)
	assert.Equal(t, InconsistentPropertyType, diag.Kind)
}
