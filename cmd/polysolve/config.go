package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/polysolve"
)

type config struct {
	Prompt    string `yaml:"prompt"`
	Precision uint   `yaml:"precision"`
	DB        string `yaml:"db"`
	Log       struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Serve struct {
		Addr string `yaml:"addr"`
	} `yaml:"serve"`
}

func defaultConfig() config {
	var c config
	c.Prompt = "> "
	c.Precision = 64
	c.Log.Level = "info"
	c.Log.Format = "auto"
	c.Serve.Addr = ":8080"
	return c
}

// loadConfig reads the YAML file at path over the defaults. An empty path
// gives the defaults.
func loadConfig(path string) (config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return c, nil
}

// applyEnv overrides fields with the environment variables that are set.
func (c *config) applyEnv(getenv func(string) string) {
	c.DB = orDefault(getenv("POLYSOLVE_DB"), c.DB)
	c.Log.Level = orDefault(getenv("POLYSOLVE_LOG_LEVEL"), c.Log.Level)
	c.Log.Format = orDefault(getenv("POLYSOLVE_LOG_FORMAT"), c.Log.Format)
	c.Serve.Addr = orDefault(getenv("POLYSOLVE_ADDR"), c.Serve.Addr)
}

func (c *config) validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "auto", "color", "text":
	default:
		return fmt.Errorf("unknown log format %q (want auto, color, or text)", c.Log.Format)
	}
	if c.Precision == 0 {
		return fmt.Errorf("precision must be positive")
	}
	return nil
}

func (c *config) envOptions() []polysolve.EnvOption {
	return []polysolve.EnvOption{polysolve.Prec(c.Precision)}
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
