package mcpserver

import (
	"fmt"

	"github.com/erraggy/oasrewrite/internal/options"
	"github.com/erraggy/oasrewrite/specdoc"
)

// specInput represents the two ways an OAS document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OAS file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OAS document content (JSON or YAML)"`
}

// load decodes the document. Every call returns a fresh document, since the
// rewrite tool mutates what it is given.
func (s specInput) load() (*specdoc.Document, error) {
	if err := options.SingleInput("file or content", s.File != "", s.Content != ""); err != nil {
		return nil, err
	}
	if s.File != "" {
		return specdoc.Load(s.File)
	}
	if int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASREWRITE_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}
	return specdoc.LoadBytes([]byte(s.Content), "")
}
