// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/erraggy/oasrewrite/specdoc"
)

// ClusterOAS3 is an OAS 3.0 JSON document in the shape a Kubernetes-style
// generator emits: version-prefixed schema names and operationIds, the
// urlEncodedBase64 duplicate, and schema-valued additionalProperties.
//
// A full rewrite applies 14 changes: 2 duplicate schema, 2 schema names,
// 3 operation renames plus 1 link, 4 references and 2 additionalProperties.
const ClusterOAS3 = `{
  "openapi": "3.0.3",
  "info": {"title": "Cluster API", "version": "1.0.0"},
  "paths": {
    "/api/v1/clusters": {
      "get": {
        "operationId": "v1ListClusters",
        "responses": {
          "200": {
            "description": "OK",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/v1ClusterList"}}},
            "links": {"GetCluster": {"operationId": "v1GetCluster"}}
          }
        }
      },
      "post": {
        "operationId": "V1CreateCluster",
        "requestBody": {"content": {"application/json": {"schema": {"$ref": "#/components/schemas/v1Cluster"}}}},
        "responses": {"201": {"description": "Created"}}
      }
    },
    "/api/v1/clusters/{name}": {
      "get": {
        "operationId": "v1GetCluster",
        "responses": {
          "200": {"description": "OK", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/v1Cluster"}}}}
        }
      }
    }
  },
  "components": {
    "schemas": {
      "v1Cluster": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "caData": {"$ref": "#/components/schemas/urlEncodedBase64"},
          "labels": {"type": "object", "additionalProperties": {"type": "string"}},
          "annotations": {"type": "object", "additionalProperties": true}
        }
      },
      "v1ClusterList": {
        "type": "object",
        "properties": {"items": {"type": "array", "items": {"$ref": "#/components/schemas/v1Cluster"}}}
      },
      "urlEncodedBase64": {"type": "string", "format": "byte"},
      "Status": {"type": "object", "additionalProperties": {}}
    }
  }
}
`

// PodOAS2 is a Swagger 2.0 YAML document using the definitions registry.
// One schema has a property literally named additionalProperties.
//
// A full rewrite applies 8 changes: 2 duplicate schema, 2 schema names,
// 1 operation, 2 references and 1 additionalProperties.
const PodOAS2 = `swagger: "2.0"
info:
  title: Legacy API
  version: "1.0"
paths:
  /pods:
    get:
      operationId: v1ListPods
      responses:
        "200":
          description: OK
          schema:
            $ref: '#/definitions/v1PodList'
definitions:
  v1Pod:
    type: object
    properties:
      secret:
        $ref: '#/definitions/urlEncodedBase64'
      additionalProperties:
        type: object
        additionalProperties:
          type: string
  v1PodList:
    type: object
    properties:
      items:
        type: array
        items:
          $ref: '#/definitions/v1Pod'
  urlEncodedBase64:
    type: string
    format: byte
`

// LoadDocument decodes src and fails the test on error.
func LoadDocument(t *testing.T, src string) *specdoc.Document {
	t.Helper()

	doc, err := specdoc.LoadBytes([]byte(src), "")
	if err != nil {
		t.Fatalf("Failed to load document: %v", err)
	}
	return doc
}

// WriteTempYAML writes YAML content to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, content string) string {
	t.Helper()
	return writeTemp(t, "test.yaml", content)
}

// WriteTempJSON writes JSON content to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, content string) string {
	t.Helper()
	return writeTemp(t, "test.json", content)
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(tmpFile, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temporary file: %v", err)
	}
	return tmpFile
}
