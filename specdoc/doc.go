// Package specdoc loads OpenAPI documents into an ordered node tree and
// writes them back out.
//
// The tree is a [go.yaml.in/yaml/v4] node graph: every value is an object
// (mapping), array (sequence), scalar with a resolved tag (string, number,
// boolean, null) or an alias to an anchored node. JSON input is decoded by the
// same YAML decoder, so one representation serves both formats and mapping key
// order survives a round trip.
//
// # Loading
//
//	doc, err := specdoc.Load("api.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(doc.Version(), doc.Stats().SchemaCount)
//
// # Mapping helpers
//
// [Get], [Set], [Delete], [Index], [All] and [Keys] operate directly on mapping
// nodes. [Resolve] follows aliases; [IsMapping] and [IsBool] check value types
// after alias resolution.
//
// # Writing
//
// [Document.Marshal] writes JSON (indented, key order kept, numbers canonical)
// or block-style YAML.
package specdoc
