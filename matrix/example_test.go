package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/glmmda/matrix"
)

// ExampleBlockTrace reduces a two-bead mobility tensor (6×6) to the 2×2
// matrix of per-pair traces, inverts it and sums the entries, the same chain
// of kernels the GLM-MDA reduction uses.
func ExampleBlockTrace() {
	// Two isolated beads of radius a=1: self mobility 1/(6π) on the diagonal.
	self := 1 / (6 * math.Pi)
	mu, _ := matrix.NewDense(6, 6)
	for i := 0; i < 6; i++ {
		_ = mu.Set(i, i, self)
	}

	tr, _ := matrix.BlockTrace(mu, 3)
	inv, _ := matrix.Inverse(tr)
	total, _ := matrix.SumAll(inv)
	fmt.Printf("trace[0,0]*2π=%.3f\n", mustAt(tr, 0, 0)*2*math.Pi)
	fmt.Printf("sum(inv)/2π=%.3f\n", total/(2*math.Pi))
	// Output:
	// trace[0,0]*2π=1.000
	// sum(inv)/2π=2.000
}

func mustAt(m matrix.Matrix, i, j int) float64 {
	v, err := m.At(i, j)
	if err != nil {
		panic(err)
	}

	return v
}
