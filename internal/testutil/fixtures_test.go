package testutil

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasrewrite/specdoc"
)

func TestFixturesLoad(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		format  specdoc.SourceFormat
		version string
		schemas int
	}{
		{"ClusterOAS3", ClusterOAS3, specdoc.SourceFormatJSON, "3.0.3", 4},
		{"PodOAS2", PodOAS2, specdoc.SourceFormatYAML, "2.0", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := LoadDocument(t, tt.src)
			assert.Equal(t, tt.format, doc.SourceFormat)
			assert.Equal(t, tt.version, doc.Version())
			assert.Equal(t, tt.schemas, doc.Stats().SchemaCount)
		})
	}
}

func TestWriteTemp(t *testing.T) {
	yamlPath := WriteTempYAML(t, PodOAS2)
	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, PodOAS2, string(data))
	assert.Contains(t, yamlPath, "test.yaml")

	jsonPath := WriteTempJSON(t, ClusterOAS3)
	doc, err := specdoc.Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, specdoc.SourceFormatJSON, doc.SourceFormat)
}

func TestRecordingHandler(t *testing.T) {
	h := NewRecordingHandler()
	logger := slog.New(h).With("source", "api.json")

	logger.Info("pass applied", "changes", 3)
	logger.Debug("renamed schema")
	logger.Warn("collision")

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, []string{"pass applied"}, h.Messages(slog.LevelInfo))
	assert.Equal(t, []string{"collision"}, h.Messages(slog.LevelWarn))

	v, ok := h.Attr("pass applied", "changes")
	require.True(t, ok)
	assert.Equal(t, int64(3), v.Int64())

	v, ok = h.Attr("collision", "source")
	require.True(t, ok)
	assert.Equal(t, "api.json", v.String())

	_, ok = h.Attr("renamed schema", "missing")
	assert.False(t, ok)
}
