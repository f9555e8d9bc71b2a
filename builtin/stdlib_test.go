package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdExportsGetWidthInBothModes(t *testing.T) {
	var modes []Mode
	for _, e := range Std.Exports {
		if e.Name == "get_width" {
			modes = append(modes, e.Mode)
		}
	}
	assert.ElementsMatch(t, []Mode{ModeExpr, ModeSingleExpr}, modes)
}

func TestLookupFindsKnownBuiltin(t *testing.T) {
	found := Lookup("atan2")
	assert.Len(t, found, 1)
	assert.Equal(t, 2, found[0].Arity)
}

func TestLookupUnknownBuiltinReturnsEmpty(t *testing.T) {
	assert.Empty(t, Lookup("nope"))
}
