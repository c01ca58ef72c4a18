// Package fileutil holds the file modes used when writing rewritten documents.
package fileutil

import "os"

// DocumentMode is the permission mode for rewritten documents written by the
// CLI and the MCP server. Only the owner may read or write them.
const DocumentMode os.FileMode = 0o600
