package rewriter

import (
	"fmt"
	"io"
	"slices"

	"github.com/erraggy/oasrewrite/internal/nodewalk"
	"github.com/erraggy/oasrewrite/oaserrors"
	"github.com/erraggy/oasrewrite/specdoc"
)

// DefaultDuplicateSchema is the schema the generator emits as a second,
// conflicting spelling of a base64 byte string.
const DefaultDuplicateSchema = "urlEncodedBase64"

// Result contains the results of a rewrite.
type Result struct {
	// Document is the rewritten document. Unless WithCopy was used it is the
	// same document that was passed in.
	Document *specdoc.Document
	// SourceVersion is the "openapi" or "swagger" version string
	SourceVersion string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat specdoc.SourceFormat
	// SourcePath is the path to the source file
	SourcePath string
	// Changes contains every mutation in the order it was applied
	Changes []Change
	// ChangeCount is the total number of changes applied
	ChangeCount int
	// PassCounts holds the number of changes made by each pass that ran
	PassCounts map[PassType]int
	// Collisions lists schema names that several entries normalized to
	Collisions []Collision
	// Stats describes the rewritten document
	Stats specdoc.Stats
}

// HasChanges returns true if any changes were applied
func (r *Result) HasChanges() bool {
	return r.ChangeCount > 0
}

// CountFor returns the number of changes made by a pass.
func (r *Result) CountFor(pass PassType) int {
	return r.PassCounts[pass]
}

// CountByType returns the number of changes of one kind.
func (r *Result) CountByType(t ChangeType) int {
	n := 0
	for _, c := range r.Changes {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Rewriter applies the rewrite pipeline to OpenAPI documents.
// A Rewriter holds no per-run state and may be reused.
type Rewriter struct {
	// DuplicateSchema is the registry entry removed and inlined as a byte string.
	DuplicateSchema string
	// EnabledPasses specifies which passes to run.
	// If nil or empty, all passes run.
	EnabledPasses []PassType
	// StrictCollisions makes a schema name collision an error instead of a warning.
	StrictCollisions bool
	// MaxDepth bounds the nesting depth the passes will traverse.
	MaxDepth int
	// CopyInput rewrites a deep copy instead of the caller's document.
	CopyInput bool
	// Logger receives pass progress. Defaults to NopLogger.
	Logger Logger
}

// New creates a new Rewriter instance with default settings
func New() *Rewriter {
	return &Rewriter{
		DuplicateSchema: DefaultDuplicateSchema,
		MaxDepth:        nodewalk.DefaultMaxDepth,
		Logger:          NopLogger{},
	}
}

// RewriteWithOptions rewrites an OpenAPI document using functional options.
//
// Example:
//
//	result, err := rewriter.RewriteWithOptions(
//	    rewriter.WithFilePath("openapi.json"),
//	    rewriter.WithStrictCollisions(true),
//	)
func RewriteWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("rewriter: invalid options: %w", err)
	}

	rw := &Rewriter{
		DuplicateSchema:  cfg.duplicateSchema,
		EnabledPasses:    cfg.enabledPasses,
		StrictCollisions: cfg.strictCollisions,
		MaxDepth:         cfg.maxDepth,
		CopyInput:        cfg.copyInput,
		Logger:           cfg.logger,
	}

	doc, err := cfg.load()
	if err != nil {
		return nil, fmt.Errorf("rewriter: failed to load document: %w", err)
	}
	return rw.Rewrite(doc)
}

// RewriteFile loads and rewrites the document at path.
func (rw *Rewriter) RewriteFile(path string) (*Result, error) {
	doc, err := specdoc.Load(path)
	if err != nil {
		return nil, fmt.Errorf("rewriter: failed to load document: %w", err)
	}
	return rw.Rewrite(doc)
}

// RewriteReader loads and rewrites a document read from r.
func (rw *Rewriter) RewriteReader(r io.Reader) (*Result, error) {
	doc, err := specdoc.LoadReader(r)
	if err != nil {
		return nil, fmt.Errorf("rewriter: failed to load document: %w", err)
	}
	return rw.Rewrite(doc)
}

// Rewrite runs the enabled passes over doc in pipeline order.
//
// The document is mutated in place unless CopyInput is set. When a pass fails
// the pipeline stops and the error is returned; passes that already ran are
// not undone.
func (rw *Rewriter) Rewrite(doc *specdoc.Document) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("rewriter: %w", &oaserrors.ConfigError{Option: "document", Message: "nil document"})
	}
	if rw.CopyInput {
		doc = doc.Clone()
	}

	result := &Result{
		Document:      doc,
		SourceVersion: doc.Version(),
		SourceFormat:  doc.SourceFormat,
		SourcePath:    doc.SourcePath,
		Changes:       make([]Change, 0),
		PassCounts:    make(map[PassType]int),
	}

	log := rw.logger()
	if doc.SourcePath != "" {
		log = log.With("source", doc.SourcePath)
	}
	log.Debug("rewriting document", "version", result.SourceVersion, "passes", len(rw.passes()))

	r := &run{rw: rw, doc: doc, result: result, log: log}
	if err := r.apply(); err != nil {
		log.Error("rewrite failed", "error", err)
		return nil, err
	}

	result.ChangeCount = len(result.Changes)
	result.Stats = doc.Stats()
	log.Info("rewrite complete", "changes", result.ChangeCount, "collisions", len(result.Collisions))
	return result, nil
}

// isPassEnabled checks if a pass is enabled.
func (rw *Rewriter) isPassEnabled(pass PassType) bool {
	if len(rw.EnabledPasses) == 0 {
		return true
	}
	return slices.Contains(rw.EnabledPasses, pass)
}

// passes returns the enabled passes in pipeline order.
func (rw *Rewriter) passes() []PassType {
	var out []PassType
	for _, p := range AllPasses {
		if rw.isPassEnabled(p) {
			out = append(out, p)
		}
	}
	return out
}

func (rw *Rewriter) logger() Logger {
	if rw.Logger == nil {
		return NopLogger{}
	}
	return rw.Logger
}

func (rw *Rewriter) duplicateSchema() string {
	if rw.DuplicateSchema == "" {
		return DefaultDuplicateSchema
	}
	return rw.DuplicateSchema
}

func (rw *Rewriter) walkOptions() []nodewalk.Option {
	return []nodewalk.Option{nodewalk.WithMaxDepth(rw.MaxDepth)}
}
