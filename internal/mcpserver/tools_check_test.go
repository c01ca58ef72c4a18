package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasrewrite/internal/testutil"
)

const danglingSpec = `openapi: 3.0.0
paths:
  /a:
    get:
      operationId: v1GetA
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Gone'
components:
  schemas:
    A:
      properties:
        b: {$ref: '#/components/schemas/B'}
        c: {$ref: '#/components/schemas/Missing'}
    B: {type: string}
`

func TestCheckRefsTool(t *testing.T) {
	tests := []struct {
		name        string
		input       checkInput
		wantCount   int
		wantClean   bool
		wantNames   []string
		wantFirst   string
		wantReturns int
	}{
		{
			name:      "clean document",
			input:     checkInput{Spec: specInput{Content: testutil.PodOAS2}},
			wantClean: true,
		},
		{
			name:        "dangling references",
			input:       checkInput{Spec: specInput{Content: danglingSpec}},
			wantCount:   2,
			wantFirst:   "/paths/~1a/get/responses/200/content/application~1json/schema/$ref",
			wantReturns: 2,
		},
		{
			name:        "paginated",
			input:       checkInput{Spec: specInput{Content: danglingSpec}, Offset: 1, Limit: 1},
			wantCount:   2,
			wantFirst:   "/components/schemas/A/properties/c/$ref",
			wantReturns: 1,
		},
		{
			name:      "version-prefixed names",
			input:     checkInput{Spec: specInput{Content: testutil.PodOAS2}, Names: true},
			wantNames: []string{"/definitions/v1Pod", "/definitions/v1PodList", "/paths/~1pods/get/operationId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleCheckRefs(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.Nil(t, result)

			assert.Equal(t, tt.wantCount, output.DanglingCount)
			assert.Equal(t, tt.wantClean, output.Clean)
			assert.Equal(t, tt.wantNames, output.VersionPrefixed)
			assert.Equal(t, tt.wantReturns, output.Returned)
			if tt.wantFirst != "" {
				require.NotEmpty(t, output.Dangling)
				assert.Equal(t, tt.wantFirst, output.Dangling[0].Path)
				assert.Equal(t, "/components/schemas", output.Dangling[0].Registry)
			}
		})
	}
}

func TestCheckRefsTool_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input checkInput
	}{
		{"missing spec", checkInput{}},
		{"both sources", checkInput{Spec: specInput{File: "api.yaml", Content: "openapi: 3.0.0"}}},
		{"not a document", checkInput{Spec: specInput{Content: "- just\n- a list\n"}}},
		{"registry is a list", checkInput{Spec: specInput{Content: "swagger: \"2.0\"\ndefinitions: [a, b]\n"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := handleCheckRefs(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
		})
	}
}
