package tensor

import (
	"errors"
	"fmt"
	"math"
)

// Errors reported when an operation's forward value would be undefined.
// Both are detected eagerly at graph-construction time: the operation
// refuses to create a node rather than letting NaN or Inf propagate
// silently through the graph.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidDomain  = errors.New("invalid domain")
)

// OpKind tags which operation produced a tensor. It is used only for
// diagnostics and carries no behavior.
type OpKind int

const (
	OpNone OpKind = iota
	OpAdd
	OpMul
	OpDiv
	OpPow
	OpSigmoid
)

func (k OpKind) String() string {
	switch k {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpPow:
		return "pow"
	case OpSigmoid:
		return "sigmoid"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Operation represents the operation that produced a tensor. Each operation
// stores handles to its operands and knows the local derivative rule for its
// kind; Backward applies that rule, scaled by the output's Grad, adding into
// each operand's Grad.
//
// A Backward implementation may read only the output's Data and Grad and the
// operands' Data. It must never read an operand's Grad: during a backward
// pass an operand's Grad is still collecting contributions from its other
// consumers.
type Operation interface {
	Kind() OpKind
	Inputs() []*Tensor
	Backward(out *Tensor)
}

type addOp struct {
	a, b *Tensor
}

func (op *addOp) Kind() OpKind      { return OpAdd }
func (op *addOp) Inputs() []*Tensor { return []*Tensor{op.a, op.b} }

func (op *addOp) Backward(out *Tensor) {
	op.a.Grad += out.Grad
	op.b.Grad += out.Grad
}

// Add returns a new tensor holding a + b.
func Add(a, b *Tensor) *Tensor {
	return &Tensor{Data: a.Data + b.Data, Creator: &addOp{a, b}}
}

type mulOp struct {
	a, b *Tensor
}

func (op *mulOp) Kind() OpKind      { return OpMul }
func (op *mulOp) Inputs() []*Tensor { return []*Tensor{op.a, op.b} }

func (op *mulOp) Backward(out *Tensor) {
	op.a.Grad += op.b.Data * out.Grad
	op.b.Grad += op.a.Data * out.Grad
}

// Mul returns a new tensor holding a * b.
func Mul(a, b *Tensor) *Tensor {
	return &Tensor{Data: a.Data * b.Data, Creator: &mulOp{a, b}}
}

// Neg returns a new tensor holding -a, built as a * (-1).
func Neg(a *Tensor) *Tensor {
	return Mul(a, New(-1))
}

// Sub returns a new tensor holding a - b, built as a + (-b).
func Sub(a, b *Tensor) *Tensor {
	return Add(a, Neg(b))
}

type divOp struct {
	a, b *Tensor
}

func (op *divOp) Kind() OpKind      { return OpDiv }
func (op *divOp) Inputs() []*Tensor { return []*Tensor{op.a, op.b} }

func (op *divOp) Backward(out *Tensor) {
	op.a.Grad += out.Grad / op.b.Data
	op.b.Grad += -op.a.Data / (op.b.Data * op.b.Data) * out.Grad
}

// Div returns a new tensor holding a / b. It fails with ErrDivisionByZero
// when b holds exactly zero; no node is created in that case.
func Div(a, b *Tensor) (*Tensor, error) {
	if b.Data == 0 {
		return nil, fmt.Errorf("dividing %v by a zero denominator: %w", a.Data, ErrDivisionByZero)
	}
	return &Tensor{Data: a.Data / b.Data, Creator: &divOp{a, b}}, nil
}

type powOp struct {
	a *Tensor
	p float64
}

func (op *powOp) Kind() OpKind      { return OpPow }
func (op *powOp) Inputs() []*Tensor { return []*Tensor{op.a} }

func (op *powOp) Backward(out *Tensor) {
	op.a.Grad += op.p * math.Pow(op.a.Data, op.p-1) * out.Grad
}

// Pow returns a new tensor holding a raised to the plain numeric exponent p.
// A negative base with a non-integral exponent has no real result, so Pow
// fails with ErrInvalidDomain instead of producing NaN.
func Pow(a *Tensor, p float64) (*Tensor, error) {
	if a.Data < 0 && p != math.Trunc(p) {
		return nil, fmt.Errorf("raising negative base %v to non-integral exponent %v: %w", a.Data, p, ErrInvalidDomain)
	}
	return &Tensor{Data: math.Pow(a.Data, p), Creator: &powOp{a, p}}, nil
}

type sigmoidOp struct {
	a *Tensor
}

func (op *sigmoidOp) Kind() OpKind      { return OpSigmoid }
func (op *sigmoidOp) Inputs() []*Tensor { return []*Tensor{op.a} }

func (op *sigmoidOp) Backward(out *Tensor) {
	// d(sigmoid(x))/dx = sigmoid(x) * (1 - sigmoid(x)), and out.Data already
	// holds sigmoid(x).
	op.a.Grad += out.Data * (1 - out.Data) * out.Grad
}

// Sigmoid returns a new tensor holding 1 / (1 + e^-a). It is a full graph
// operation: gradients flow through it like any other op.
func Sigmoid(a *Tensor) *Tensor {
	s := 1 / (1 + math.Exp(-a.Data))
	return &Tensor{Data: s, Creator: &sigmoidOp{a}}
}
