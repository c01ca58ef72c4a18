package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasrewrite/internal/fileutil"
	"github.com/erraggy/oasrewrite/internal/testutil"
	"github.com/erraggy/oasrewrite/oaserrors"
	"github.com/erraggy/oasrewrite/rewriter"
	"github.com/erraggy/oasrewrite/specdoc"
)

func TestSetupRewriteFlags(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		_, flags := SetupRewriteFlags()
		assert.Equal(t, "", flags.Output)
		assert.Equal(t, "", flags.Format)
		assert.Equal(t, rewriter.DefaultDuplicateSchema, flags.DuplicateSchema)
		assert.False(t, flags.Strict)
		assert.False(t, flags.Verify)
		assert.False(t, flags.Quiet)
	})

	t.Run("parse flags", func(t *testing.T) {
		fs, flags := SetupRewriteFlags()
		args := []string{"-o", "clean.yaml", "--format", "yaml", "--passes", "references", "--strict", "--verify", "-q", "input.json"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "clean.yaml", flags.Output)
		assert.Equal(t, "yaml", flags.Format)
		assert.Equal(t, "references", flags.Passes)
		assert.True(t, flags.Strict)
		assert.True(t, flags.Verify)
		assert.True(t, flags.Quiet)
		assert.Equal(t, "input.json", fs.Arg(0))
	})

	t.Run("long flags", func(t *testing.T) {
		fs, flags := SetupRewriteFlags()
		require.NoError(t, fs.Parse([]string{"--output", "out.json", "--quiet", "--duplicate-schema", "Bytes", "in.json"}))

		assert.Equal(t, "out.json", flags.Output)
		assert.Equal(t, "Bytes", flags.DuplicateSchema)
		assert.True(t, flags.Quiet)
	})
}

func TestHandleRewrite_Stdout(t *testing.T) {
	out, errOut := captureStreams(t, "")
	path := testutil.WriteTempJSON(t, testutil.ClusterOAS3)

	require.NoError(t, HandleRewrite([]string{path}))

	assert.True(t, json.Valid(out.Bytes()), "stdout should hold the JSON document")
	doc, err := specdoc.LoadBytes(out.Bytes(), "out.json")
	require.NoError(t, err)
	names, err := rewriter.CheckNames(doc)
	require.NoError(t, err)
	assert.Empty(t, names)

	assert.Contains(t, errOut.String(), "OpenAPI Document Rewriter")
	assert.Contains(t, errOut.String(), "Changes Applied (14):")
	assert.Contains(t, errOut.String(), "✓ Applied 14 change(s)")
}

func TestHandleRewrite_Stdin(t *testing.T) {
	out, errOut := captureStreams(t, testutil.PodOAS2)

	require.NoError(t, HandleRewrite([]string{"-q", "--verify", StdinFilePath}))

	assert.Empty(t, errOut.String(), "quiet mode writes nothing to stderr")
	doc, err := specdoc.LoadBytes(out.Bytes(), "out.yaml")
	require.NoError(t, err)
	assert.Equal(t, specdoc.SourceFormatYAML, doc.SourceFormat)
	assert.Equal(t, 2, doc.Stats().SchemaCount)
}

func TestHandleRewrite_OutputFile(t *testing.T) {
	_, errOut := captureStreams(t, "")
	in := testutil.WriteTempYAML(t, testutil.PodOAS2)
	outPath := filepath.Join(t.TempDir(), "clean.json")

	require.NoError(t, HandleRewrite([]string{"-o", outPath, "--format", "json", in}))
	assert.Contains(t, errOut.String(), "Output written to: "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Equal(t, fileutil.DocumentMode, info.Mode().Perm())

	t.Run("refuses to overwrite input", func(t *testing.T) {
		err := HandleRewrite([]string{"-q", "-o", in, in})
		assert.Error(t, err)
	})
}

func TestHandleRewrite_AlreadyClean(t *testing.T) {
	_, errOut := captureStreams(t, "")
	path := testutil.WriteTempYAML(t, "openapi: 3.0.0\ncomponents:\n  schemas:\n    Pod: {type: object}\n")

	require.NoError(t, HandleRewrite([]string{path}))
	assert.Contains(t, errOut.String(), "No changes needed")
}

func TestHandleRewrite_Collisions(t *testing.T) {
	const colliding = "openapi: 3.0.0\ncomponents:\n  schemas:\n    v1Pod: {description: a}\n    Pod: {description: b}\n"

	t.Run("warns by default", func(t *testing.T) {
		_, errOut := captureStreams(t, "")
		path := testutil.WriteTempYAML(t, colliding)

		require.NoError(t, HandleRewrite([]string{path}))
		assert.Contains(t, errOut.String(), "! /components/schemas: Pod produced by [v1Pod Pod]")
	})

	t.Run("strict fails", func(t *testing.T) {
		captureStreams(t, "")
		path := testutil.WriteTempYAML(t, colliding)

		err := HandleRewrite([]string{"--strict", path})
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrCollision)
	})
}

func TestHandleRewrite_Verify(t *testing.T) {
	_, errOut := captureStreams(t, "")
	path := testutil.WriteTempYAML(t, `openapi: 3.0.0
components:
  schemas:
    A:
      properties:
        b: {$ref: '#/components/schemas/v1Missing'}
`)

	err := HandleRewrite([]string{"--verify", path})
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrDanglingReference)
	assert.Contains(t, errOut.String(), "✗ /components/schemas/A/properties/b/$ref: #/components/schemas/Missing")
}

func TestHandleRewrite_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{}},
		{"two args", []string{"a.yaml", "b.yaml"}},
		{"bad format", []string{"--format", "xml", "a.yaml"}},
		{"unknown pass", []string{"--passes", "everything", "a.yaml"}},
		{"missing file", []string{"/nonexistent/api.yaml"}},
		{"unknown flag", []string{"--bogus", "a.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureStreams(t, "")
			assert.Error(t, HandleRewrite(tt.args))
		})
	}
}

func TestHandleRewrite_Help(t *testing.T) {
	captureStreams(t, "")
	assert.NoError(t, HandleRewrite([]string{"--help"}))
}
