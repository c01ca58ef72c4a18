package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasrewrite/internal/testutil"
	"github.com/erraggy/oasrewrite/rewriter"
	"github.com/erraggy/oasrewrite/specdoc"
)

const collidingSpec = `openapi: 3.0.0
components:
  schemas:
    v1Pod: {description: first}
    Pod: {description: second}
`

func TestRewriteTool_Content(t *testing.T) {
	input := rewriteInput{Spec: specInput{Content: testutil.ClusterOAS3}}
	result, output, err := handleRewrite(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 14, output.ChangeCount)
	assert.Equal(t, 14, output.Returned)
	assert.Equal(t, "3.0.3", output.Version)
	assert.Equal(t, "json", output.Format)
	assert.Equal(t, 4, output.PassCounts[string(rewriter.PassReferences)])
	assert.Equal(t, string(rewriter.ChangeTypeRemovedDuplicateSchema), output.Changes[0].Type)
	assert.Equal(t, string(rewriter.PassDuplicateSchema), output.Changes[0].Pass)
	assert.Empty(t, output.Document, "document is only returned on request")
}

func TestRewriteTool_IncludeDocument(t *testing.T) {
	input := rewriteInput{
		Spec:            specInput{Content: testutil.ClusterOAS3},
		IncludeDocument: true,
		Format:          "yaml",
	}
	_, output, err := handleRewrite(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "yaml", output.Format)
	doc, err := specdoc.LoadBytes([]byte(output.Document), "out.yaml")
	require.NoError(t, err)
	refs, err := rewriter.CheckReferences(doc)
	require.NoError(t, err)
	assert.Empty(t, refs)
	names, err := rewriter.CheckNames(doc)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRewriteTool_DryRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	input := rewriteInput{
		Spec:            specInput{Content: testutil.ClusterOAS3},
		DryRun:          true,
		IncludeDocument: true,
		Output:          out,
	}
	_, output, err := handleRewrite(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 14, output.ChangeCount)
	assert.Empty(t, output.Document)
	assert.Empty(t, output.WrittenTo)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRewriteTool_Output(t *testing.T) {
	in := testutil.WriteTempYAML(t, testutil.PodOAS2)
	out := filepath.Join(t.TempDir(), "clean.yaml")

	input := rewriteInput{Spec: specInput{File: in}, Output: out}
	_, output, err := handleRewrite(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, out, output.WrittenTo)

	doc, err := specdoc.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Stats().SchemaCount)

	t.Run("refuses to overwrite input", func(t *testing.T) {
		input := rewriteInput{Spec: specInput{File: in}, Output: in}
		result, _, err := handleRewrite(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})
}

func TestRewriteTool_Options(t *testing.T) {
	t.Run("passes", func(t *testing.T) {
		input := rewriteInput{
			Spec:   specInput{Content: testutil.ClusterOAS3},
			Passes: []string{"additional-properties"},
		}
		_, output, err := handleRewrite(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		assert.Equal(t, 2, output.ChangeCount)
		assert.Equal(t, map[string]int{"additional-properties": 2}, output.PassCounts)
	})

	t.Run("pagination", func(t *testing.T) {
		input := rewriteInput{Spec: specInput{Content: testutil.ClusterOAS3}, Offset: 11, Limit: 2}
		_, output, err := handleRewrite(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		assert.Equal(t, 14, output.ChangeCount)
		assert.Equal(t, 2, output.Returned)
		assert.Equal(t, "/components/schemas/ClusterList/properties/items/items/$ref", output.Changes[0].Path)
	})

	t.Run("collisions", func(t *testing.T) {
		input := rewriteInput{Spec: specInput{Content: collidingSpec}}
		_, output, err := handleRewrite(context.Background(), &mcp.CallToolRequest{}, input)
		require.NoError(t, err)
		require.Len(t, output.Collisions, 1)
		assert.Equal(t, collision{Registry: "/components/schemas", Name: "Pod", Sources: []string{"v1Pod", "Pod"}}, output.Collisions[0])
	})

	tests := []struct {
		name  string
		input rewriteInput
	}{
		{"strict collisions", rewriteInput{Spec: specInput{Content: collidingSpec}, StrictCollisions: true}},
		{"unknown pass", rewriteInput{Spec: specInput{Content: collidingSpec}, Passes: []string{"everything"}}},
		{"bad format", rewriteInput{Spec: specInput{Content: collidingSpec}, Format: "toml"}},
		{"missing spec", rewriteInput{}},
		{"missing file", rewriteInput{Spec: specInput{File: "/nonexistent/api.yaml"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleRewrite(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}

func TestRewriteTool_ServerDefaults(t *testing.T) {
	saved := *cfg
	t.Cleanup(func() { *cfg = saved })
	cfg.StrictCollisions = true

	result, _, err := handleRewrite(context.Background(), &mcp.CallToolRequest{}, rewriteInput{Spec: specInput{Content: collidingSpec}})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
