package analysis

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/postfix"
)

// TestGoldenScenarios drives every txtar archive under testdata/ through
// the full postfix->analysis.Run pipeline and checks its outcome against
// the archive's "expect" file, following golang.org/x/tools' own
// convention of txtar-based golden fixtures for multi-file test cases.
func TestGoldenScenarios(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no golden scenarios found")

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			require.NoError(t, err)

			var program, expect string
			for _, f := range ar.Files {
				switch f.Name {
				case "program.postfix":
					program = string(f.Data)
				case "expect":
					expect = strings.TrimSpace(string(f.Data))
				}
			}
			require.NotEmpty(t, expect, "archive missing expect file")

			stream, err := postfix.Parse(program)
			require.NoError(t, err, "program.postfix failed to parse")

			m := NewManager(context.Background(), stream)
			_, runErr := Run(m)

			if expect == "ok" {
				assert.NoError(t, runErr)
				return
			}

			wantKind := strings.TrimPrefix(expect, "diagnostic ")
			require.Error(t, runErr)
			var diag *Diagnostic
			require.ErrorAs(t, runErr, &diag)
			assert.Equal(t, wantKind, diag.Kind.String())
		})
	}
}
