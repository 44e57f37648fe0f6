// Command train_mlp trains a small feed-forward network on a dataset of
// scalar-target examples using the scalar autograd engine, then saves the
// trained parameters to a gob checkpoint.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/exp/rand"

	"github.com/golangast/scalargrad/neural/gobs"
	"github.com/golangast/scalargrad/neural/nn"
	"github.com/golangast/scalargrad/neural/train"
)

var (
	epochs       = flag.Int("epochs", 500, "Number of training epochs")
	learningRate = flag.Float64("learningRate", 0.5, "Learning rate")
	clipValue    = flag.Float64("clipValue", 0, "Gradient clip value, 0 to disable")
	hiddenSize   = flag.Int("hiddenSize", 4, "Width of the two hidden layers")
	dataFile     = flag.String("data", "", "Path to a JSON dataset (inputs/targets); uses the built-in toy dataset when empty")
	modelFile    = flag.String("model", "trained_model.gob", "Path to write the trained model checkpoint")
	logFile      = flag.String("logFile", "", "Path to the log file (stderr when empty)")
	seed         = flag.Uint64("seed", 42, "Seed for weight initialization and shuffling")
)

func main() {
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	ds := train.ToyDataset()
	if *dataFile != "" {
		var err error
		ds, err = train.LoadDatasetFromJSON(*dataFile)
		if err != nil {
			log.Fatalf("error loading dataset: %v", err)
		}
	}

	rng := rand.New(rand.NewSource(*seed))
	ds.Shuffle(rng)

	model := nn.NewMLP([]int{len(ds.Inputs[0]), *hiddenSize, *hiddenSize, 1}, rng)
	log.Printf("training %v network on %d examples with epochs=%d, learningRate=%f",
		model.Sizes, len(ds.Inputs), *epochs, *learningRate)

	logEvery := *epochs / 10
	if logEvery < 1 {
		logEvery = 1
	}
	losses, err := train.Train(model, ds, train.Config{
		Epochs:       *epochs,
		LearningRate: *learningRate,
		ClipValue:    *clipValue,
		LogEvery:     logEvery,
	})
	if err != nil {
		log.Fatalf("training failed: %v", err)
	}
	fmt.Printf("Final loss after %d epochs: %.6f\n", len(losses), losses[len(losses)-1])

	for i, row := range ds.Inputs {
		fmt.Printf("input %v -> predicted %.4f, target %.1f\n", row, train.Predict(model, row), ds.Targets[i])
	}

	if err := gobs.SaveModelToGOB(model, *modelFile); err != nil {
		log.Fatalf("error saving model: %v", err)
	}
	fmt.Println("Model saved to", *modelFile)
}
