package rewriter

import (
	"fmt"
	"io"

	"github.com/erraggy/oasrewrite/internal/nodewalk"
	"github.com/erraggy/oasrewrite/internal/options"
	"github.com/erraggy/oasrewrite/oaserrors"
	"github.com/erraggy/oasrewrite/specdoc"
)

// Option is a function that configures a rewrite operation
type Option func(*rewriteConfig) error

// rewriteConfig holds configuration for a rewrite operation
type rewriteConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	data     []byte
	document *specdoc.Document

	// Configuration options
	duplicateSchema  string
	enabledPasses    []PassType
	strictCollisions bool
	maxDepth         int
	copyInput        bool
	logger           Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*rewriteConfig, error) {
	cfg := &rewriteConfig{
		duplicateSchema: DefaultDuplicateSchema,
		maxDepth:        nodewalk.DefaultMaxDepth,
		logger:          NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	err := options.SingleInput("WithFilePath, WithReader, WithBytes or WithDocument",
		cfg.filePath != nil, cfg.reader != nil, cfg.data != nil, cfg.document != nil)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// load returns the configured input document.
func (cfg *rewriteConfig) load() (*specdoc.Document, error) {
	switch {
	case cfg.filePath != nil:
		return specdoc.Load(*cfg.filePath)
	case cfg.reader != nil:
		return specdoc.LoadReader(cfg.reader)
	case cfg.data != nil:
		return specdoc.LoadBytes(cfg.data, "")
	default:
		return cfg.document, nil
	}
}

// WithFilePath specifies the local file to rewrite
func WithFilePath(path string) Option {
	return func(cfg *rewriteConfig) error {
		if path == "" {
			return &oaserrors.ConfigError{Option: "file path", Message: "file path cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies a reader holding the document to rewrite
func WithReader(r io.Reader) Option {
	return func(cfg *rewriteConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies the raw document to rewrite
func WithBytes(data []byte) Option {
	return func(cfg *rewriteConfig) error {
		if len(data) == 0 {
			return &oaserrors.ConfigError{Option: "bytes", Message: "document is empty"}
		}
		cfg.data = data
		return nil
	}
}

// WithDocument specifies an already-loaded document to rewrite
func WithDocument(doc *specdoc.Document) Option {
	return func(cfg *rewriteConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "document", Message: "document cannot be nil"}
		}
		cfg.document = doc
		return nil
	}
}

// WithDuplicateSchema sets the schema name that is removed and inlined
func WithDuplicateSchema(name string) Option {
	return func(cfg *rewriteConfig) error {
		if name == "" {
			return &oaserrors.ConfigError{Option: "duplicate schema", Message: "schema name cannot be empty"}
		}
		cfg.duplicateSchema = name
		return nil
	}
}

// WithEnabledPasses restricts the rewrite to the given passes.
// Passes still run in pipeline order regardless of the order given here.
func WithEnabledPasses(passes ...PassType) Option {
	return func(cfg *rewriteConfig) error {
		for _, p := range passes {
			if _, err := ParsePassType(string(p)); err != nil {
				return err
			}
		}
		cfg.enabledPasses = passes
		return nil
	}
}

// WithStrictCollisions makes schema name collisions fail the rewrite
func WithStrictCollisions(strict bool) Option {
	return func(cfg *rewriteConfig) error {
		cfg.strictCollisions = strict
		return nil
	}
}

// WithMaxDepth bounds the nesting depth the passes traverse
func WithMaxDepth(depth int) Option {
	return func(cfg *rewriteConfig) error {
		if depth <= 0 {
			return &oaserrors.ConfigError{
				Option:  "max depth",
				Value:   depth,
				Message: fmt.Sprintf("must be positive (default %d)", nodewalk.DefaultMaxDepth),
			}
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithCopy rewrites a deep copy and leaves the input document untouched
func WithCopy(copyInput bool) Option {
	return func(cfg *rewriteConfig) error {
		cfg.copyInput = copyInput
		return nil
	}
}

// WithLogger sets the logger that receives pass progress
func WithLogger(l Logger) Option {
	return func(cfg *rewriteConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}
