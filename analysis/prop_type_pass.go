package analysis

import (
	"context"

	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/token"
)

// PropWriteTypeSafetyResult's presence signals success; it carries no
// data per spec §6.
type PropWriteTypeSafetyResult struct{}

// propWriteTypeSafetyPass rejects programs where two PROP_STORE tokens
// name the same property but declare different types. It is a single
// linear walk with no dependencies: type consistency is a syntactic
// property, independent of reachability (spec §9's Open Question is
// answered explicitly: yes, it applies even to unreachable writes).
type propWriteTypeSafetyPass struct{}

// PropTypePass is the singleton identity for PropWriteTypeSafetyPass.
var PropTypePass Pass = propWriteTypeSafetyPass{}

func (propWriteTypeSafetyPass) Name() string { return "PropWriteTypeSafetyPass" }

type firstDecl struct {
	propType token.PropType
	tokenIdx int
}

func (propWriteTypeSafetyPass) Run(ctx context.Context, m *Manager) (any, error) {
	seen := make(map[string]firstDecl)

	for i, t := range m.Tokens {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if t.Kind != token.KindPropStore {
			continue
		}
		payload := t.Payload.(token.PropStorePayload)

		if first, ok := seen[payload.PropName]; ok {
			if first.propType != payload.PropType {
				return nil, newDiagnostic(InconsistentPropertyType, t.SourceIndex,
					"inconsistent types used for property %q: previous type %s (idx: %d), current type %s (idx: %d)",
					payload.PropName, first.propType, first.tokenIdx, payload.PropType, t.SourceIndex)
			}
			continue
		}
		seen[payload.PropName] = firstDecl{propType: payload.PropType, tokenIdx: i}
	}

	return PropWriteTypeSafetyResult{}, nil
}
