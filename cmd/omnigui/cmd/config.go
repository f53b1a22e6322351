package cmd

import (
	"gopkg.in/yaml.v3"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Print the resolved configuration",
		Long: `Resolve omnigui.yaml or omnigui.toml (if present) with defaults and
print the result as YAML.`,
		Usage: "omnigui config",
		Run:   runConfig,
	})
}

type printedConfig struct {
	Resolved   map[string]any `yaml:",inline"`
	Background string         `yaml:"background"`
	Level      string         `yaml:"level"`
}

func runConfig(args []string) error {
	if len(args) > 0 {
		return errUnexpectedArgs(args)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Round-trip through a map so the derived fields print alongside.
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	out := printedConfig{Background: cfg.Background.String(), Level: cfg.Level.String()}
	if err := yaml.Unmarshal(data, &out.Resolved); err != nil {
		return err
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(out)
}
