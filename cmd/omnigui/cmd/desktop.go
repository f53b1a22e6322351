package cmd

import (
	"github.com/omnigui/omnigui/pkg/engine"
	"github.com/omnigui/omnigui/pkg/input"
	"github.com/omnigui/omnigui/pkg/platform/desktop"
	"github.com/omnigui/omnigui/pkg/platform/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "desktop",
		Short: "Run the demo in a desktop window",
		Long: `Open a window showing the demo tree, rasterized on every frame.

Flags:
  --width N        Window width
  --height N       Window height
  --debug ADDR     Serve the debug endpoints (/tree, /frames, /stats, /health)`,
		Usage: "omnigui desktop [--width N] [--height N] [--debug ADDR]",
		Run:   runDesktop,
	})
}

func runDesktop(args []string) error {
	fs := newFlagSet("desktop")
	var size sizeFlags
	size.register(fs)
	debug := fs.String("debug", "", "debug server address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := size.apply(cfg); err != nil {
		return err
	}

	events := input.NewSource()
	s, err := newSession(cfg, events, raster.FaceMeasurer{},
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

	return desktop.Run(cfg.Title, float32(cfg.Width), float32(cfg.Height), s.host, events)
}
