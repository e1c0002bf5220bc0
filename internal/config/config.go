// Package config loads the settings for a training run of the demo programs.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osushkov/vectornn/trainers"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	// sizes of each layer, from input to output
	Layers []int `yaml:"layers"`

	Trainer    trainers.Config `yaml:"trainer"`
	Iterations int             `yaml:"iterations"`

	// 0 uses every logical core
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`

	TrainSamples int   `yaml:"train_samples"`
	EvalSamples  int   `yaml:"eval_samples"`
	Seed         int64 `yaml:"seed"`

	// where the final weights are written; empty means standard output
	WeightsPath string `yaml:"weights_path"`
}

// Overrides captures CLI supplied values. Zero values leave the config unchanged.
type Overrides struct {
	Trainer      string
	Iterations   int
	BatchSize    int
	Workers      int
	TrainSamples int
	Seed         int64
	StatusEvery  int
	WeightsPath  string
}

// Default returns the settings of the circle demo: a 2-3-1 network trained by the dynamic trainer.
func Default() *Config {
	return &Config{
		Layers: []int{2, 3, 1},
		Trainer: trainers.Config{
			Kind:        "dynamic",
			StartRate:   0.5,
			EndRate:     0.01,
			MaxRate:     0.5,
			Momentum:    0.25,
			BatchSize:   500,
			StatusEvery: 1000,
		},
		Iterations:   100000,
		TrainSamples: 8000,
		EvalSamples:  1000,
	}
}

// Load reads a Config from the YAML file at path, on top of Default, and validates it.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %q", path)
	}

	return cfg, nil
}

// Parse reads a Config from YAML, on top of Default, and validates it. Unknown keys are an error.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Trainer != "" {
		c.Trainer.Kind = o.Trainer
	}
	if o.Iterations > 0 {
		c.Iterations = o.Iterations
	}
	if o.BatchSize > 0 {
		c.Trainer.BatchSize = o.BatchSize
	}
	if o.Workers > 0 {
		c.Workers = o.Workers
	}
	if o.TrainSamples > 0 {
		c.TrainSamples = o.TrainSamples
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.StatusEvery > 0 {
		c.Trainer.StatusEvery = o.StatusEvery
	}
	if o.WeightsPath != "" {
		c.WeightsPath = o.WeightsPath
	}
}

// Validate verifies the config is runnable. The trainer settings themselves are checked by
// trainers.New.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Layers) < 2 {
		return errors.Errorf("layers must have at least 2 entries (got %v)", c.Layers)
	}
	for _, l := range c.Layers {
		if l <= 0 {
			return errors.Errorf("layer sizes must be > 0 (got %v)", c.Layers)
		}
	}
	if c.Iterations <= 0 {
		return errors.Errorf("iterations must be > 0 (got %d)", c.Iterations)
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must be >= 0 (got %d)", c.Workers)
	}
	if c.QueueSize < 0 {
		return errors.Errorf("queue_size must be >= 0 (got %d)", c.QueueSize)
	}
	if c.TrainSamples <= 0 {
		return errors.Errorf("train_samples must be > 0 (got %d)", c.TrainSamples)
	}
	if c.EvalSamples <= 0 {
		return errors.Errorf("eval_samples must be > 0 (got %d)", c.EvalSamples)
	}
	if c.Trainer.StatusEvery <= 0 {
		c.Trainer.StatusEvery = 1000
	}
	return nil
}
