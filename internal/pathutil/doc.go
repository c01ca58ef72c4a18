// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides pointer and path helpers for rewriting OpenAPI
// documents.
//
// # Registry Pointers
//
// [ParseRef] decomposes a local $ref into the registry namespace, the entry name
// and any trailing segments, so a rename touches only the name:
//
//	ref, ok := pathutil.ParseRef("#/components/schemas/v1Cluster/properties/spec")
//	// ref.Prefix == "#/components/schemas/", ref.Name == "v1Cluster",
//	// ref.Suffix == "/properties/spec"
//	ref.Name = "Cluster"
//	ref.String() // "#/components/schemas/Cluster/properties/spec"
//
// # PathBuilder Usage
//
// [PathBuilder] builds RFC 6901 JSON Pointers with push/pop semantics while a
// traversal descends. Use [Get] to obtain a pooled PathBuilder, and [Put] to
// return it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("components")
//	path.Push("schemas")
//	path.String() // "/components/schemas"
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths, rejecting
// symlinks and paths that would overwrite an input file.
package pathutil
