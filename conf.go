package mkbase

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mkforge/mkbase/crew"
	"github.com/mkforge/mkbase/mklog"
)

// Config is the optional YAML surface of a build program, conventionally
// a mk.yaml next to the build program. All fields are optional.
type Config struct {
	// Workers bounds the worker pool (clamped like crew.MaxWorkers).
	Workers int `yaml:"workers"`
	// Log is the threshold level: info, warning, error or fatal.
	Log string `yaml:"log"`
	// Env tags merged into the build program's exec environment.
	Env map[string]string `yaml:"env"`
	// Targets the build program should run, in order.
	Targets []string `yaml:"targets"`
	// Includes are further config files merged over this one.
	Includes []string `yaml:"includes"`
	// ContinueOnError keeps a multi-target run going after a failure.
	ContinueOnError bool `yaml:"continue_on_error"`
}

// LoadConfig reads path and merges its includes over it. A missing
// include is a warning, not an error.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	for _, inc := range cfg.Includes {
		g, err := os.Open(inc)
		if err != nil {
			mklog.Warnf(crew.AnyWorker, "cannot load include '%s'", inc)
			continue
		}
		err = yaml.NewDecoder(g).Decode(&cfg)
		g.Close()
		if err != nil {
			return nil, fmt.Errorf("include %s: %w", inc, err)
		}
	}
	return &cfg, nil
}

// Apply puts the config into effect: log threshold, worker bound and env
// tags on env (when given).
func (cfg *Config) Apply(env *Env) error {
	if cfg.Log != "" {
		l, err := mklog.ParseLevel(cfg.Log)
		if err != nil {
			return err
		}
		mklog.SetLevel(l)
	}
	if cfg.Workers > 0 {
		crew.MaxWorkers = cfg.Workers
		if crew.MaxWorkers > 16 {
			crew.MaxWorkers = 16
		}
	}
	if env != nil {
		for k, v := range cfg.Env {
			env.SetTag(k, v)
		}
	}
	return nil
}
