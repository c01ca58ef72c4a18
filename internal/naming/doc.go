// Package naming provides the version-prefix rules shared by the rewriter's
// schema, operation and reference passes.
//
// A name carries a version prefix when it starts with "v1" or "V1" followed by
// an uppercase ASCII letter, e.g. "v1ClusterProfile". Names that merely start
// with "v1" ("v1x", "v1_cluster") are left alone.
//
// Every pass must normalize through [StripVersionPrefix] so that renamed
// registry entries and rewritten pointers agree.
package naming
