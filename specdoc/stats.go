package specdoc

import "slices"

// HTTPMethods are the path item keys that hold operations.
var HTTPMethods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace", "query"}

// IsHTTPMethod reports whether a path item key names an operation.
func IsHTTPMethod(key string) bool {
	return slices.Contains(HTTPMethods, key)
}

// Stats contains statistical information about a document.
type Stats struct {
	PathCount      int
	OperationCount int
	SchemaCount    int
}

// Stats counts paths, operations and registry schemas. Malformed sections
// are skipped rather than reported.
func (d *Document) Stats() Stats {
	var s Stats
	paths, _ := GetMapping(d.Root(), "paths")
	for _, item := range All(paths) {
		s.PathCount++
		for method, op := range All(item) {
			if IsHTTPMethod(method) && IsMapping(op) {
				s.OperationCount++
			}
		}
	}
	registries, _ := d.SchemaRegistries()
	for _, r := range registries {
		s.SchemaCount += Len(r.Node)
	}
	return s
}
