package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/593413198/bst/config"
	"github.com/593413198/bst/logs"
	"github.com/pkg/errors"
)

const modes = `Modes:
  demo    insert the configured keys and print every walk (default)
  render  insert the configured keys and draw the tree
  serve   serve the tree over http

`

type app struct {
	log  config.LogConfig
	keys config.KeysConfig
	http config.HttpConfig
}

func (a *app) Use() string       { return "bst" }
func (a *app) EnvPrefix() string { return "BST" }
func (a *app) Binders() []config.Binder {
	return []config.Binder{&a.log, &a.keys, &a.http}
}

func (a *app) logger(w io.Writer) logs.Logger {
	return logs.NewLogrus(logs.LogrusLoggerProperties{
		Level:  logs.ParseLevel(a.log.Level),
		Output: w,
		Format: a.log.Format,
	})
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{}
	parser, err := config.Generate(a)
	if err != nil {
		return err
	}

	if err := parser.Parse(args); err != nil {
		return err
	}

	logger := a.logger(stderr).ForClass("main", "bst")

	mode := "demo"
	if rest := parser.Args(); len(rest) > 0 {
		mode = rest[0]
	}

	logger.Debug(ctx, "starting", logs.MapFields{"mode": mode, "keys": a.keys.Keys})

	switch mode {
	case "demo":
		return demo(stdout, a.keys.Keys)
	case "render":
		return render(stdout, a.keys.Keys)
	case "serve":
		return serve(ctx, a, logger)
	default:
		fmt.Fprint(stderr, modes)
		if err := parser.Usage(stderr); err != nil {
			return errors.Wrap(err, "failed to write usage")
		}
		return errors.Errorf("unknown mode %q", mode)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "bst: %v\n", err)
		stop()
		os.Exit(1)
	}
}
