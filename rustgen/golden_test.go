package rustgen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/a11ykit/introgen/provider"
	"github.com/a11ykit/introgen/rustgen"
)

// TestGolden renders each testdata archive's input.xml and compares the
// result byte-for-byte against its expected.rs.
func TestGolden(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, archives, "no golden archives found")

	for _, path := range archives {
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			require.NoError(t, err)

			ar := txtar.Parse(data)
			files := make(map[string][]byte, len(ar.Files))
			for _, f := range ar.Files {
				files[f.Name] = f.Data
			}
			require.Contains(t, files, "input.xml")
			require.Contains(t, files, "expected.rs")

			descs, err := provider.Parse(files["input.xml"], path)
			require.NoError(t, err)

			got, err := rustgen.Render(descs, rustgen.Options{Accessors: true})
			require.NoError(t, err)
			require.Equal(t, string(files["expected.rs"]), string(got))
		})
	}
}
