// Package tensor implements reverse-mode automatic differentiation over
// scalar values. Every value in a computation is a Tensor node: it remembers
// the operation that produced it and the operands that fed that operation,
// so a full computation graph is discovered lazily as operations execute.
// Calling Backward on any node then propagates gradients to every node the
// root depends on, using the chain rule.
//
// The type is named Tensor for historical reasons even though it holds a
// single float64.
package tensor

// Tensor is a single scalar value plus its place in the differentiation
// graph. Data and the producing operation are fixed at construction; Grad
// accumulates across backward passes until it is explicitly zeroed.
type Tensor struct {
	Data    float64
	Grad    float64
	Creator Operation // nil for leaf nodes
}

// New creates a leaf tensor: an input, parameter or constant with no
// producing operation.
func New(v float64) *Tensor {
	return &Tensor{Data: v}
}

// Op reports which operation produced this tensor. It is diagnostic only.
func (t *Tensor) Op() OpKind {
	if t.Creator == nil {
		return OpNone
	}
	return t.Creator.Kind()
}

// ZeroGrad resets the accumulated gradient of this tensor to zero.
func (t *Tensor) ZeroGrad() {
	t.Grad = 0
}

// Backward computes, for every node reachable from t through operand edges,
// the partial derivative of t with respect to that node's Data, accumulating
// it into the node's Grad.
//
// Grads are never reset implicitly: calling Backward twice without zeroing
// adds a second set of gradients onto the first. Callers that want fresh
// gradients zero their parameters first (see the optimizer's ZeroGrad).
func (t *Tensor) Backward() {
	// Post-order topological sort: every node is appended only after all of
	// its operands. Walking the result in reverse then guarantees a node's
	// local rule runs only after every consumer has pushed its contribution
	// into the node's Grad.
	var topo []*Tensor
	visited := map[*Tensor]bool{}

	var build func(v *Tensor)
	build = func(v *Tensor) {
		if visited[v] {
			return
		}
		visited[v] = true
		if v.Creator != nil {
			for _, in := range v.Creator.Inputs() {
				build(in)
			}
		}
		topo = append(topo, v)
	}
	build(t)

	// The derivative of the root with respect to itself.
	t.Grad = 1

	for i := len(topo) - 1; i >= 0; i-- {
		v := topo[i]
		if v.Creator != nil {
			v.Creator.Backward(v)
		}
	}
}
