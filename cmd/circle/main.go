// Command circle trains a network to tell whether a point lies within a circle, reports how well it
// does on unseen points, and writes out the learned weights.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/osushkov/vectornn"
	"github.com/osushkov/vectornn/datasets/circle"
	"github.com/osushkov/vectornn/executor"
	"github.com/osushkov/vectornn/internal/config"
	"github.com/osushkov/vectornn/trainers"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (defaults are used if empty)")
	trainer := flag.String("trainer", "", "Trainer kind: simple or dynamic")
	iterations := flag.Int("iterations", 0, "Number of training iterations")
	batchSize := flag.Int("batch-size", 0, "Samples per iteration")
	workers := flag.Int("workers", 0, "Number of gradient workers")
	trainSamples := flag.Int("train-samples", 0, "Number of training samples")
	seed := flag.Int64("seed", 0, "PRNG seed")
	statusEvery := flag.Int("status-every", 0, "Log every N iterations")
	weightsPath := flag.String("weights", "", "File to write the weights to")

	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	cfg.ApplyOverrides(config.Overrides{
		Trainer:      *trainer,
		Iterations:   *iterations,
		BatchSize:    *batchSize,
		Workers:      *workers,
		TrainSamples: *trainSamples,
		Seed:         *seed,
		StatusEvery:  *statusEvery,
		WeightsPath:  *weightsPath,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	pool := executor.New(executor.Options{Workers: cfg.Workers, QueueSize: cfg.QueueSize})
	defer pool.Close()

	net := vectornn.New(pool, cfg.Layers)
	if net.InputSize() != 2 || net.OutputSize() != 1 {
		log.Fatalf("circle network needs 2 inputs and 1 output (got layers %v)", cfg.Layers)
	}

	cfg.Trainer.Seed = rng.Int63()
	cfg.Trainer.Status = func(r trainers.Result) {
		log.Printf("iter=%d rate=%.4f err=%.5f iter_ms=%.3f", r.Iteration, r.LearningRate, r.Cost,
			r.AvgIteration.Seconds()*1000)
	}

	t, err := trainers.New(cfg.Trainer)
	if err != nil {
		log.Fatalf("failed to create trainer: %v", err)
	}

	log.Printf("net=%q trainer=%s workers=%d samples=%d iterations=%d", net, cfg.Trainer.Kind,
		pool.Workers(), cfg.TrainSamples, cfg.Iterations)

	start := time.Now()
	if err := t.Train(net, circle.Default.Generate(rng, cfg.TrainSamples), cfg.Iterations); err != nil {
		log.Fatalf("training failed: %v", err)
	}
	log.Printf("trained in %v", time.Since(start))

	cost, correct, err := net.Test(circle.Default.Generate(rng, cfg.EvalSamples), vectornn.CorrectThreshold(0.5, 0.4))
	if err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}
	log.Printf("eval_samples=%d err=%.5f correct=%.2f%%", cfg.EvalSamples, cost, correct*100)

	if cfg.WeightsPath == "" {
		if err := net.WriteWeights(os.Stdout); err != nil {
			log.Fatalf("failed to write weights: %v", err)
		}
		return
	}

	if err := net.Save(cfg.WeightsPath, true); err != nil {
		log.Fatalf("failed to save weights: %v", err)
	}
	log.Printf("weights written to %s", cfg.WeightsPath)
}
