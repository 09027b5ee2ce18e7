// Astronomy-Explorer MCP server entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lucasferreyra/astroexplorer/internal/domain/tool"
	"github.com/lucasferreyra/astroexplorer/internal/infra/config"
	"github.com/lucasferreyra/astroexplorer/internal/infra/eventbus"
	"github.com/lucasferreyra/astroexplorer/internal/infra/tap"
	"github.com/lucasferreyra/astroexplorer/internal/server"
	"github.com/lucasferreyra/astroexplorer/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("astroexplorer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")
	serveHTTP := fs.Bool("http", false, "Serve MCP over HTTP instead of stdio")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(out, version.String()) //nolint:errcheck
		return 0
	}

	if *showHelp {
		printHelp(out)
		return 0
	}

	if err := serve(*serveHTTP); err != nil {
		log.Printf("server error: %v", err)
		return 1
	}
	return 0
}

func serve(useHTTP bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	tapSvc := tap.NewService(cfg.TAPBaseURL, cfg.TAPTimeout)
	bus := eventbus.New()

	registry, err := tool.NewBuiltinRegistry(tapSvc, bus)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, registry, tapSvc, bus)
	if err != nil {
		return err
	}

	if useHTTP {
		return srv.RunHTTP(ctx)
	}
	return srv.RunStdio(ctx)
}

func printHelp(out io.Writer) {
	helpText := `Astronomy-Explorer - servidor MCP de exoplanetas (NASA Exoplanet Archive)

Usage:
  astroexplorer [options]

Options:
  --version    Show version information
  --help       Show this help message
  --http       Serve MCP over HTTP (default: stdio)

Environment:
  TAP_BASE_URL         TAP service base URL
  TAP_TIMEOUT_SECONDS  TAP request timeout (default 30)
  HTTP_ADDR            HTTP listen address (default 0.0.0.0:8080)

Examples:
  astroexplorer --version
  astroexplorer
  HTTP_ADDR=127.0.0.1:9090 astroexplorer --http`
	fmt.Fprintln(out, helpText) //nolint:errcheck
}
