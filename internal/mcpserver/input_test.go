package mcpserver

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasrewrite/internal/testutil"
	"github.com/erraggy/oasrewrite/oaserrors"
	"github.com/erraggy/oasrewrite/specdoc"
)

func TestSpecInputLoad(t *testing.T) {
	t.Run("content", func(t *testing.T) {
		doc, err := specInput{Content: testutil.PodOAS2}.load()
		require.NoError(t, err)
		assert.Equal(t, "2.0", doc.Version())
	})

	t.Run("file", func(t *testing.T) {
		path := testutil.WriteTempJSON(t, testutil.ClusterOAS3)
		doc, err := specInput{File: path}.load()
		require.NoError(t, err)
		assert.Equal(t, specdoc.SourceFormatJSON, doc.SourceFormat)
	})

	t.Run("fresh document per call", func(t *testing.T) {
		in := specInput{Content: testutil.PodOAS2}
		a, err := in.load()
		require.NoError(t, err)
		b, err := in.load()
		require.NoError(t, err)
		assert.NotSame(t, a.Root(), b.Root())
	})

	t.Run("none", func(t *testing.T) {
		_, err := specInput{}.load()
		assert.ErrorContains(t, err, "got 0")
	})

	t.Run("both", func(t *testing.T) {
		_, err := specInput{File: "a.yaml", Content: "openapi: 3.0.0"}.load()
		assert.ErrorContains(t, err, "got 2")
	})

	t.Run("too large", func(t *testing.T) {
		saved := cfg.MaxInlineSize
		cfg.MaxInlineSize = 16
		t.Cleanup(func() { cfg.MaxInlineSize = saved })

		_, err := specInput{Content: strings.Repeat("a", 17)}.load()
		assert.ErrorContains(t, err, "exceeds maximum")
	})

	t.Run("not a document", func(t *testing.T) {
		_, err := specInput{Content: "- just\n- a list\n"}.load()
		assert.True(t, errors.Is(err, oaserrors.ErrParse))
	})
}
