package cmd

import (
	"flag"
	"log/slog"
	"strings"

	"github.com/omnigui/omnigui/cmd/omnigui/internal/config"
	"github.com/omnigui/omnigui/cmd/omnigui/internal/demo"
	"github.com/omnigui/omnigui/pkg/engine"
	"github.com/omnigui/omnigui/pkg/errors"
	"github.com/omnigui/omnigui/pkg/graphics"
	"github.com/omnigui/omnigui/pkg/input"
	"github.com/omnigui/omnigui/pkg/layout"
)

// loadConfig resolves the project configuration and installs the logger
// and error handler it describes.
func loadConfig() (*config.Resolved, error) {
	root := projectDir
	if root == "" {
		var err error
		if root, err = config.FindProjectRoot(); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level})
	errors.SetLogger(slog.New(handler))
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Verbose})
	return cfg, nil
}

// session is a demo tree installed on a host.
type session struct {
	host *engine.Host
	demo *demo.Demo
}

func newSession(cfg *config.Resolved, events input.EventSource, m graphics.TextMeasurer, opts ...engine.Option) (*session, error) {
	host := engine.New(opts...)
	p := layout.NewPlatform(events, host)
	d, err := demo.Build(p, m, demo.DefaultModel(cfg.Title), cfg.States)
	if err != nil {
		return nil, err
	}
	host.SetRoot(d.Root)
	return &session{host: host, demo: d}, nil
}

// sizeFlags registers the viewport overrides shared by commands.
type sizeFlags struct {
	width, height int
}

func (s *sizeFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&s.width, "width", 0, "viewport width in layout units")
	fs.IntVar(&s.height, "height", 0, "viewport height in layout units")
}

func (s *sizeFlags) apply(cfg *config.Resolved) error {
	if s.width < 0 || s.height < 0 {
		return errors.New("--width and --height must be positive")
	}
	if s.width > 0 {
		cfg.Width = s.width
	}
	if s.height > 0 {
		cfg.Height = s.height
	}
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func errUnexpectedArgs(args []string) error {
	return errors.New("unexpected arguments: " + strings.Join(args, " "))
}
