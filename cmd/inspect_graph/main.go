// Command inspect_graph builds a small expression graph, runs a backward
// pass, and prints every node's value, gradient and producing operation.
// With -dump it also prints the full node structures.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/davecgh/go-spew/spew"

	"github.com/golangast/scalargrad/neural/tensor"
)

var dump = flag.Bool("dump", false, "dump the full graph structure")

func main() {
	flag.Parse()

	// out = (a*b + c) / d
	a := tensor.New(2)
	b := tensor.New(-3)
	c := tensor.New(10)
	d := tensor.New(2)

	prod := tensor.Mul(a, b)
	sum := tensor.Add(prod, c)
	out, err := tensor.Div(sum, d)
	if err != nil {
		log.Fatalf("building graph: %v", err)
	}

	out.Backward()

	names := map[*tensor.Tensor]string{
		a: "a", b: "b", c: "c", d: "d",
		prod: "a*b", sum: "a*b+c", out: "out",
	}
	for _, t := range collect(out) {
		fmt.Printf("%-6s op=%-7s value=%8.4f grad=%8.4f\n", names[t], t.Op(), t.Data, t.Grad)
	}

	if *dump {
		spew.Dump(out)
	}
}

// collect returns every node reachable from root, operands first.
func collect(root *tensor.Tensor) []*tensor.Tensor {
	var nodes []*tensor.Tensor
	visited := map[*tensor.Tensor]bool{}
	var walk func(t *tensor.Tensor)
	walk = func(t *tensor.Tensor) {
		if visited[t] {
			return
		}
		visited[t] = true
		if t.Creator != nil {
			for _, in := range t.Creator.Inputs() {
				walk(in)
			}
		}
		nodes = append(nodes, t)
	}
	walk(root)
	return nodes
}
