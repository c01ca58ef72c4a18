package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "openapi.json")
	existing := filepath.Join(dir, "clean.json")
	realDir := filepath.Join(dir, "real")
	require.NoError(t, os.WriteFile(input, []byte("{}"), 0o600))
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0o600))
	require.NoError(t, os.Mkdir(realDir, 0o755))
	require.NoError(t, os.Symlink(existing, filepath.Join(dir, "link.json")))
	require.NoError(t, os.Symlink(realDir, filepath.Join(dir, "linkdir")))

	tests := []struct {
		name    string
		path    string
		inputs  []string
		want    string
		wantErr string
	}{
		{name: "new file", path: filepath.Join(dir, "out.yaml"), inputs: []string{input}, want: filepath.Join(dir, "out.yaml")},
		{name: "existing file is overwritten", path: existing, inputs: []string{input}, want: existing},
		{name: "dot-dot resolved", path: realDir + "/../out.yaml", want: filepath.Join(dir, "out.yaml")},
		{name: "same as input", path: input, inputs: []string{input}, wantErr: "would overwrite input file"},
		{name: "same as input via dot-dot", path: realDir + "/../openapi.json", inputs: []string{input}, wantErr: "would overwrite input file"},
		{name: "symlink file", path: filepath.Join(dir, "link.json"), wantErr: "symlink"},
		{name: "symlink directory", path: filepath.Join(dir, "linkdir"), wantErr: "symlink"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeOutputPath(tt.path, tt.inputs...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("relative path made absolute", func(t *testing.T) {
		got, err := SanitizeOutputPath("clean.yaml")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
	})
}
