package analysis

import (
	"fmt"

	"golang.org/x/mod/semver"
)

// SchemaVersion is the contract version of Report published to downstream
// consumers (a code generator). It is validated with golang.org/x/mod's
// semver package at module init, so a typo here fails at build/test time
// rather than surfacing as a silent incompatibility downstream.
const SchemaVersion = "v1.0.0"

func init() {
	if !semver.IsValid(SchemaVersion) {
		panic(fmt.Sprintf("analysis: SchemaVersion %q is not a valid semantic version", SchemaVersion))
	}
}

// Report bundles the block-analysis and stack-safety results of a single
// successful run (the two prop-write passes publish empty results whose
// presence alone means success, so a Report exists only when they
// passed), handed to a downstream code generator alongside the token stream
// itself (spec §6: "the core does not emit text or bytecode").
type Report struct {
	SchemaVersion string
	Blocks        BlockAnalysisResult
	Stack         StackSafetyResult
}

// CompatibleSchema reports whether a downstream consumer built against
// wantVersion can safely read a Report stamped with SchemaVersion,
// i.e. whether wantVersion is a valid semantic version no newer than
// what this module produces.
func CompatibleSchema(wantVersion string) bool {
	return semver.IsValid(wantVersion) && semver.Compare(wantVersion, SchemaVersion) <= 0
}

// Run drives every pass to completion against m's token stream in
// dependency order and, on success, returns the aggregated Report. It is
// the ordinary way a host runs the full pipeline described in spec §2.
func Run(m *Manager) (*Report, error) {
	if _, err := m.Execute(PropTypePass); err != nil {
		return nil, err
	}
	if _, err := m.Execute(PropWritePass); err != nil {
		return nil, err
	}

	blocks, err := GetResult[BlockAnalysisResult](m, BlockPass)
	if err != nil {
		return nil, err
	}
	stack, err := GetResult[StackSafetyResult](m, StackPass)
	if err != nil {
		return nil, err
	}

	return &Report{
		SchemaVersion: SchemaVersion,
		Blocks:        blocks,
		Stack:         stack,
	}, nil
}
