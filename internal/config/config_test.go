package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
layers: [2, 8, 1]
iterations: 500
trainer:
  kind: simple
  start_rate: 1.5
  end_rate: 0.1
  batch_size: 32
seed: 9
`))
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.Layers) != 3 || cfg.Layers[1] != 8 {
		t.Fatalf("got layers %v", cfg.Layers)
	}
	if cfg.Iterations != 500 || cfg.Seed != 9 {
		t.Fatalf("got iterations %d, seed %d", cfg.Iterations, cfg.Seed)
	}
	if cfg.Trainer.Kind != "simple" || cfg.Trainer.StartRate != 1.5 || cfg.Trainer.BatchSize != 32 {
		t.Fatalf("got trainer %+v", cfg.Trainer)
	}

	// unset values keep their defaults
	if cfg.TrainSamples != 8000 || cfg.Trainer.Momentum != 0.25 {
		t.Fatalf("defaults not kept: %+v", cfg)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Trainer.Kind != "dynamic" || cfg.Iterations != 100000 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":  "learning_rate: 3\n",
		"one layer":    "layers: [4]\n",
		"empty layer":  "layers: [2, 0, 1]\n",
		"iterations":   "iterations: -1\n",
		"bad workers":  "workers: -2\n",
		"not yaml":     "layers: [2, 1\n",
		"eval samples": "eval_samples: 0\n",
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(src)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{Trainer: "simple", BatchSize: 10, Workers: 3, WeightsPath: "w.txt"})

	if cfg.Trainer.Kind != "simple" || cfg.Trainer.BatchSize != 10 || cfg.Workers != 3 || cfg.WeightsPath != "w.txt" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Iterations != 100000 {
		t.Fatalf("zero override changed iterations")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("iterations: 20\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	} else if cfg.Iterations != 20 {
		t.Fatalf("got %d iterations", cfg.Iterations)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
