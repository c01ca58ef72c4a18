// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import "strings"

// Schema registry pointer prefixes.
const (
	// RefPrefixDefinitions is the OAS 2.0 schema registry namespace.
	RefPrefixDefinitions = "#/definitions/"
	// RefPrefixSchemas is the OAS 3.x schema registry namespace.
	RefPrefixSchemas = "#/components/schemas/"
)

// RegistryPrefixes lists every namespace that locates a schema registry entry.
var RegistryPrefixes = []string{RefPrefixSchemas, RefPrefixDefinitions}

// SchemaRef builds "#/components/schemas/{name}" (OAS 3.x).
func SchemaRef(name string) string {
	return RefPrefixSchemas + name
}

// DefinitionRef builds "#/definitions/{name}" (OAS 2.0).
func DefinitionRef(name string) string {
	return RefPrefixDefinitions + name
}

// Ref is a local pointer into a schema registry.
type Ref struct {
	// Prefix is the registry namespace, including the trailing slash.
	Prefix string
	// Name is the registry entry name (still JSON Pointer escaped).
	Name string
	// Suffix holds any segments after the name, starting with "/".
	Suffix string
}

// ParseRef splits a local registry pointer into its components.
// It returns false for pointers into other documents, for pointers outside the
// schema registries, and for pointers with an empty name.
func ParseRef(ref string) (Ref, bool) {
	for _, prefix := range RegistryPrefixes {
		rest, ok := strings.CutPrefix(ref, prefix)
		if !ok {
			continue
		}
		name, suffix := rest, ""
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			name, suffix = rest[:i], rest[i:]
		}
		if name == "" {
			return Ref{}, false
		}
		return Ref{Prefix: prefix, Name: name, Suffix: suffix}, true
	}
	return Ref{}, false
}

// String re-serializes the pointer.
func (r Ref) String() string {
	return r.Prefix + r.Name + r.Suffix
}

// IsEntry reports whether the pointer locates a registry entry itself rather
// than a node nested inside one.
func (r Ref) IsEntry() bool {
	return r.Suffix == ""
}

// EntryName returns the registry entry name with JSON Pointer escapes decoded.
func (r Ref) EntryName() string {
	return UnescapeToken(r.Name)
}

// EscapeToken escapes a single JSON Pointer reference token (RFC 6901).
func EscapeToken(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}

// UnescapeToken reverses EscapeToken.
func UnescapeToken(s string) string {
	if !strings.Contains(s, "~") {
		return s
	}
	s = strings.ReplaceAll(s, "~1", "/")
	return strings.ReplaceAll(s, "~0", "~")
}
