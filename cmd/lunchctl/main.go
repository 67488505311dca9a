// Command lunchctl runs the maintenance utilities against the configured
// store: duplicate cleanup and today's order summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"lunchbox/backend/internal/app"
	"lunchbox/backend/internal/config"
	"lunchbox/backend/internal/logger"
)

const usage = `usage: lunchctl [-timeout 30s] <command>

commands:
  cleanup   delete duplicate orders, keeping the latest per (date, user)
  stats     print today's order summary
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("lunchctl", flag.ContinueOnError)
	timeout := fs.Duration("timeout", 30*time.Second, "overall deadline")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lunchctl: %v\n", err)
		return 1
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch fs.Arg(0) {
	case "cleanup":
		deleted, err := a.Maintenance.Cleanup(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lunchctl: cleanup: %v\n", err)
			return 1
		}
		fmt.Printf("deleted %d duplicate rows\n", deleted)
	case "stats":
		summary, err := a.Maintenance.Stats(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lunchctl: stats: %v\n", err)
			return 1
		}
		if err := summary.Format(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "lunchctl: %v\n", err)
			return 1
		}
	default:
		fs.Usage()
		return 2
	}
	return 0
}
