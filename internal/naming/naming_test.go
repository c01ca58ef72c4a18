package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasVersionPrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "lowercase v", input: "v1ClusterProfile", want: true},
		{name: "uppercase V", input: "V1ClusterProfile", want: true},
		{name: "minimal match", input: "v1A", want: true},
		{name: "lowercase third char", input: "v1x", want: false},
		{name: "underscore third char", input: "v1_cluster", want: false},
		{name: "digit third char", input: "v12Cluster", want: false},
		{name: "v2 prefix", input: "v2Cluster", want: false},
		{name: "too short", input: "v1", want: false},
		{name: "empty", input: "", want: false},
		{name: "already clean", input: "ClusterProfile", want: false},
		{name: "non ascii uppercase", input: "v1Ärger", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasVersionPrefix(tt.input))
		})
	}
}

func TestStripVersionPrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase v", input: "v1ClusterProfile", want: "ClusterProfile"},
		{name: "uppercase V", input: "V1GetCluster", want: "GetCluster"},
		{name: "stacked prefixes", input: "v1V1Spec", want: "Spec"},
		{name: "unmatched v1x", input: "v1x", want: "v1x"},
		{name: "unmatched clean", input: "Cluster", want: "Cluster"},
		{name: "keeps dots", input: "v1Spectro.Cluster", want: "Spectro.Cluster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripVersionPrefix(tt.input)
			assert.Equal(t, tt.want, got)
			assert.False(t, HasVersionPrefix(got), "result must not keep the prefix")
		})
	}
}

func TestNormalize(t *testing.T) {
	got, changed := Normalize("v1Cluster")
	assert.Equal(t, "Cluster", got)
	assert.True(t, changed)

	got, changed = Normalize("Cluster")
	assert.Equal(t, "Cluster", got)
	assert.False(t, changed)
}
