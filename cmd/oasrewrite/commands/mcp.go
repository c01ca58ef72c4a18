package commands

import (
	"context"
	"errors"
	"flag"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasrewrite/internal/cliutil"
	"github.com/erraggy/oasrewrite/internal/mcpserver"
)

// HandleMCP starts the MCP server on stdio and blocks until the client
// disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasrewrite mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the rewrite and check_refs tools over MCP on stdio.\n")
		cliutil.Writef(fs.Output(), "Defaults come from OASREWRITE_* environment variables.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
