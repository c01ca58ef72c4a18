package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasrewrite/internal/testutil"
)

const danglingDoc = `swagger: "2.0"
paths:
  /pods:
    get:
      operationId: v1ListPods
      responses:
        "200":
          description: OK
          schema: {$ref: '#/definitions/PodList'}
definitions:
  Pod: {type: object}
`

func TestSetupCheckFlags(t *testing.T) {
	fs, flags := SetupCheckFlags()
	assert.False(t, flags.Names)
	assert.False(t, flags.Quiet)

	require.NoError(t, fs.Parse([]string{"--names", "-q", "api.yaml"}))
	assert.True(t, flags.Names)
	assert.True(t, flags.Quiet)
	assert.Equal(t, "api.yaml", fs.Arg(0))
}

func TestHandleCheck(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		args     []string
		wantErr  bool
		contains []string
	}{
		{
			name:     "clean",
			doc:      testutil.PodOAS2,
			contains: []string{"OpenAPI Reference Check", "✓ All references resolve"},
		},
		{
			name:     "dangling",
			doc:      danglingDoc,
			wantErr:  true,
			contains: []string{"✗ /paths/~1pods/get/responses/200/schema/$ref: #/definitions/PodList does not exist in /definitions"},
		},
		{
			name:     "version-prefixed names",
			doc:      testutil.PodOAS2,
			args:     []string{"--names"},
			wantErr:  true,
			contains: []string{"! /definitions/v1Pod: version-prefixed name", "! /paths/~1pods/get/operationId: version-prefixed name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errOut := captureStreams(t, "")
			path := testutil.WriteTempYAML(t, tt.doc)

			err := HandleCheck(append(tt.args, path))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCheckFailed)
			} else {
				assert.NoError(t, err)
			}
			for _, s := range tt.contains {
				assert.Contains(t, errOut.String(), s)
			}
		})
	}
}

func TestHandleCheck_Quiet(t *testing.T) {
	_, errOut := captureStreams(t, testutil.PodOAS2)

	require.NoError(t, HandleCheck([]string{"-q", StdinFilePath}))
	assert.Empty(t, errOut.String())
}

func TestHandleCheck_Errors(t *testing.T) {
	captureStreams(t, "")
	assert.Error(t, HandleCheck([]string{}))
	assert.Error(t, HandleCheck([]string{"/nonexistent/api.yaml"}))
	assert.NoError(t, HandleCheck([]string{"--help"}))
}

func TestHandleMCP_Help(t *testing.T) {
	captureStreams(t, "")
	assert.NoError(t, HandleMCP([]string{"--help"}))
}
