package train

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/golangast/scalargrad/neural/nn"
)

func TestTrainReducesLoss(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ds := ToyDataset()
	model := nn.NewMLP([]int{3, 8, 1}, rng)

	losses, err := Train(model, ds, Config{
		Epochs:       2000,
		LearningRate: 1,
	})
	if err != nil {
		t.Fatalf("Train returned error: %v", err)
	}
	if len(losses) != 2000 {
		t.Fatalf("recorded %d losses, want 2000", len(losses))
	}

	first, last := losses[0], losses[len(losses)-1]
	if !(last < first) {
		t.Errorf("loss did not decrease: first %v, last %v", first, last)
	}
	if last > 0.15 {
		t.Errorf("final loss %v, want below 0.15 on the separable toy dataset", last)
	}
}

func TestTrainRejectsMultiOutputNetwork(t *testing.T) {
	model := nn.NewMLP([]int{3, 4, 2}, rand.New(rand.NewSource(1)))
	if _, err := Train(model, ToyDataset(), Config{Epochs: 1, LearningRate: 0.1}); err == nil {
		t.Error("Train with a 2-output network did not fail")
	}
}

func TestTrainRejectsWidthMismatch(t *testing.T) {
	model := nn.NewMLP([]int{5, 4, 1}, rand.New(rand.NewSource(1)))
	if _, err := Train(model, ToyDataset(), Config{Epochs: 1, LearningRate: 0.1}); err == nil {
		t.Error("Train with mismatched input width did not fail")
	}
}

func TestPredict(t *testing.T) {
	model := nn.NewMLP([]int{2, 3, 1}, rand.New(rand.NewSource(1)))
	got := Predict(model, []float64{0.5, -1})
	if math.IsNaN(got) || got <= 0 || got >= 1 {
		t.Errorf("Predict = %v, want a sigmoid value in (0, 1)", got)
	}
}
