package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"github.com/omnigui/omnigui/pkg/engine"
	"github.com/omnigui/omnigui/pkg/platform/terminal"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Run the demo interactively in the terminal",
		Long: `Run the demo tree in the current terminal. Click the text box to focus
it, type a name and press Enter. Press Ctrl+C to quit.

Flags:
  --debug ADDR     Serve the debug endpoints (/tree, /frames, /stats, /health)`,
		Usage: "omnigui run [--debug ADDR]",
		Run:   runTerminal,
	})
}

func runTerminal(args []string) error {
	fs := newFlagSet("run")
	debug := fs.String("debug", "", "debug server address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}

	events := terminal.NewEventSource()
	s, err := newSession(cfg, events, terminal.CellMeasurer{},
		engine.WithBackground(cfg.Background),
		engine.WithFrameTrace(0, 0),
	)
	if err != nil {
		return err
	}

	if *debug != "" {
		srv, err := s.host.StartDebugServer(*debug)
		if err != nil {
			return err
		}
		defer srv.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return terminal.Run(ctx, screen, s.host, events)
}
