// Package main trains a small network on the XOR truth table and prints its
// predictions.
//
// A sigmoid network started from uniform [0,1) weights can settle in a local
// minimum on XOR. -restarts trains several independently seeded networks side
// by side (each on its own goroutine, each trained single-threaded) and keeps
// the one with the lowest mean squared error.
//
// Usage:
//
//	go run ./cmd/xor -epochs 100000 -lr 0.5 -hidden 3 -restarts 4
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvnn/matrix"
	"github.com/katalvlaran/lvnn/nn"
)

type xorConfig struct {
	epochs       int
	learningRate float64
	hidden       int
	seed         int64
	restarts     int
	every        int
	textbook     bool
}

var config xorConfig

var (
	xorInputs  = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	xorTargets = [][]float64{{0}, {1}, {1}, {0}}
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	flag.IntVar(&config.epochs, "epochs", 100_000, "Number of training epochs")
	flag.Float64Var(&config.learningRate, "lr", 0.5, "Learning rate")
	flag.IntVar(&config.hidden, "hidden", 3, "Hidden layer size")
	flag.Int64Var(&config.seed, "seed", 0, "Base seed (0 = time based)")
	flag.IntVar(&config.restarts, "restarts", 1, "Independently seeded networks to train")
	flag.IntVar(&config.every, "every", nn.DefaultProgressEvery, "Log progress every N epochs (0 = never)")
	flag.BoolVar(&config.textbook, "textbook", false, "Propagate error through pre-update weights")
	flag.Parse()

	if config.seed == 0 {
		config.seed = time.Now().UnixNano()
	}
	log.Printf("%+v", config)

	var err = run()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

type result struct {
	net  *nn.Network
	loss float64
}

func run() error {
	if config.restarts < 1 || config.hidden < 1 || config.epochs < 0 {
		return fmt.Errorf("invalid config: restarts=%d hidden=%d epochs=%d",
			config.restarts, config.hidden, config.epochs)
	}

	var results = make([]result, config.restarts)
	var g errgroup.Group
	for k := range results {
		k := k
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("run %d: %v", k, r)
				}
			}()
			results[k] = trainOne(k)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var best = 0
	for k := range results {
		if results[k].loss < results[best].loss {
			best = k
		}
	}
	log.Printf("best run %d, loss %.6f", best, results[best].loss)

	for _, x := range xorInputs {
		var out = results[best].net.Predict(matrix.FromVec(x))
		fmt.Printf("predict(%v) = %.6f\n", x, out.At(0, 0))
	}
	return nil
}

func trainOne(k int) result {
	var opts = []nn.Option{
		nn.WithSeed(nn.DeriveSeed(config.seed, uint64(k))),
	}
	if config.every > 0 {
		var logger = log.New(os.Stderr, fmt.Sprintf("[run %d] ", k), log.LstdFlags)
		opts = append(opts, nn.WithProgress(config.every, nn.LogProgress(logger)))
	}
	if config.textbook {
		opts = append(opts, nn.WithPropagation(nn.PropagateOriginal))
	}

	var net = nn.New([]int{2, config.hidden, 1}, nn.Sigmoid, config.learningRate, opts...)
	net.Train(xorInputs, xorTargets, config.epochs)

	return result{net: net, loss: net.MeanSquaredError(xorInputs, xorTargets)}
}
