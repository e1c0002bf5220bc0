package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/osushkov/vectornn"
	"github.com/osushkov/vectornn/executor"
	"github.com/osushkov/vectornn/trainers"
)

const (
	statusFrequency int = 500

	// main hyperparameters
	startRate     float32 = 4
	endRate       float32 = 0.5
	batchSize     int     = 4
	maxIterations int     = 5000
)

// where to save/load the network
var path = filepath.Join(os.TempDir(), "xor weights.txt")

func train(net *vectornn.Network, dataset []vectornn.Sample) {
	t := trainers.NewSimple(startRate, endRate, batchSize).Status(statusFrequency, func(r trainers.Result) {
		fmt.Printf("%d, %v, %v\n", r.Iteration, r.LearningRate, r.Cost)
	})

	fmt.Printf("Starting training %v...\n", net)
	fmt.Println("Iteration, Learning Rate, Status Cost")
	if err := t.Train(net, dataset, maxIterations); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done training!")
}

func test(net *vectornn.Network, dataset []vectornn.Sample) {
	fmt.Println("Testing...")
	for _, d := range dataset {
		fmt.Println(d.Input, d.Output, net.Process(d.Input))
	}

	cost, correct, err := net.Test(dataset, vectornn.CorrectRound)
	if err != nil {
		panic(err.Error())
	}
	fmt.Printf("Cost: %v, Correct: %v%%\n", cost, correct*100)
}

func save(net *vectornn.Network) {
	fmt.Println("Saving...")
	if err := net.Save(path, true); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")
}

func load(pool *executor.Pool) *vectornn.Network {
	fmt.Println("Loading...")
	net, err := vectornn.Load(pool, path)
	if err != nil {
		panic(err.Error())
	}
	fmt.Println("Done!")

	return net
}

func main() {
	dataset := []vectornn.Sample{
		{Input: []float32{-1, -1}, Output: []float32{0}},
		{Input: []float32{-1, 1}, Output: []float32{1}},
		{Input: []float32{1, -1}, Output: []float32{1}},
		{Input: []float32{1, 1}, Output: []float32{0}},
	}

	pool := executor.New(executor.Options{})
	defer pool.Close()

	fmt.Println("Setting up network...")
	net := vectornn.New(pool, []int{2, 3, 1})
	fmt.Println("Done!")

	train(net, dataset)
	test(net, dataset)
	save(net)
	net = load(pool)
	train(net, dataset)
	test(net, dataset)
}
