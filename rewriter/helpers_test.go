package rewriter

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasrewrite/specdoc"
)

// lookup follows keys from n and fails the test when one is missing.
func lookup(t *testing.T, n *yaml.Node, keys ...string) *yaml.Node {
	t.Helper()
	for _, k := range keys {
		next := specdoc.Resolve(specdoc.Get(specdoc.Resolve(n), k))
		require.NotNil(t, next, "missing key %q", k)
		n = next
	}
	return n
}

// has reports whether the path of keys exists below n.
func has(n *yaml.Node, keys ...string) bool {
	for _, k := range keys {
		n = specdoc.Resolve(specdoc.Get(specdoc.Resolve(n), k))
		if n == nil {
			return false
		}
	}
	return true
}

// str returns the string scalar at keys.
func str(t *testing.T, n *yaml.Node, keys ...string) string {
	t.Helper()
	v, ok := specdoc.StringValue(lookup(t, n, keys...))
	require.True(t, ok, "value at %v is not a string", keys)
	return v
}

func mustRewrite(t *testing.T, doc *specdoc.Document, opts ...Option) *Result {
	t.Helper()
	result, err := RewriteWithOptions(append([]Option{WithDocument(doc)}, opts...)...)
	require.NoError(t, err)
	return result
}
