package main

import (
	"errors"
	"os"

	"github.com/erraggy/oasrewrite"
	"github.com/erraggy/oasrewrite/cmd/oasrewrite/commands"
	"github.com/erraggy/oasrewrite/internal/cliutil"
)

// knownCommands lists every command name, used for typo suggestions.
var knownCommands = []string{"rewrite", "check", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		cliutil.Writef(os.Stdout, "oasrewrite v%s\n", oasrewrite.Version())
		cliutil.Writef(os.Stdout, "commit: %s\n", oasrewrite.Commit())
		cliutil.Writef(os.Stdout, "built: %s\n", oasrewrite.BuildTime())
		cliutil.Writef(os.Stdout, "go: %s\n", oasrewrite.GoVersion())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "rewrite":
		err = commands.HandleRewrite(os.Args[2:])
	case "check":
		err = commands.HandleCheck(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		// check has already reported what it found
		if !errors.Is(err, commands.ErrCheckFailed) {
			cliutil.Writef(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when
// nothing is within two edits.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, cmd := range knownCommands {
		if d := levenshtein(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}
	for j := 1; j <= len(b); j++ {
		curr[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func printUsage() {
	cliutil.Writef(os.Stdout, `oasrewrite - rewrite generated OpenAPI documents for client code generators

Usage:
  oasrewrite <command> [options]

Commands:
  rewrite     Apply the rewrite passes and write the cleaned document
  check       Report dangling schema references and version-prefixed names
  mcp         Serve the rewrite and check_refs tools over MCP on stdio
  version     Show version information
  help        Show this help message

Examples:
  oasrewrite rewrite openapi.json > clean.json
  oasrewrite rewrite --verify -o clean.yaml openapi.yaml
  oasrewrite check --names clean.yaml

Run 'oasrewrite <command> --help' for more information on a command.
`)
}
