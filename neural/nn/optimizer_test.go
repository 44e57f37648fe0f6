package nn

import (
	"math"
	"testing"

	"github.com/golangast/scalargrad/neural/tensor"
)

func TestSGDStep(t *testing.T) {
	p := tensor.New(1.0)
	p.Grad = 0.5
	opt := NewSGD([]*tensor.Tensor{p}, 0.1, 0)

	opt.Step()

	if math.Abs(p.Data-0.95) > tol {
		t.Errorf("p.Data = %v, want 0.95", p.Data)
	}
}

func TestSGDClipsGradients(t *testing.T) {
	p := tensor.New(0.0)
	p.Grad = 100
	opt := NewSGD([]*tensor.Tensor{p}, 1, 1)

	opt.Step()

	if math.Abs(p.Data-(-1)) > tol {
		t.Errorf("p.Data = %v, want -1 (clipped update)", p.Data)
	}
}

func TestSGDZeroGrad(t *testing.T) {
	a := tensor.New(1)
	b := tensor.New(2)
	a.Grad, b.Grad = 3, -4

	NewSGD([]*tensor.Tensor{a, b}, 0.1, 0).ZeroGrad()

	if a.Grad != 0 || b.Grad != 0 {
		t.Errorf("grads after ZeroGrad = %v, %v, want 0, 0", a.Grad, b.Grad)
	}
}

func TestSGDMinimizesQuadratic(t *testing.T) {
	// Minimize (x - 3)^2 by repeated backward + step; x must approach 3.
	x := tensor.New(0.0)
	opt := NewSGD([]*tensor.Tensor{x}, 0.1, 0)

	for i := 0; i < 100; i++ {
		diff := tensor.Sub(x, tensor.New(3))
		loss, err := tensor.Pow(diff, 2)
		if err != nil {
			t.Fatalf("Pow: %v", err)
		}
		opt.ZeroGrad()
		loss.Backward()
		opt.Step()
	}

	if math.Abs(x.Data-3) > 1e-6 {
		t.Errorf("x = %v after descent, want 3", x.Data)
	}
}
