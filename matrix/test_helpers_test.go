// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/glmmda/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in the code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// RandomSPD returns a deterministic symmetric positive definite n×n matrix
// A = BᵀB + n·I for B with U(-1,1) entries.
func RandomSPD(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	b := make([][]float64, n)
	for i := range b {
		b[i] = make([]float64, n)
		for j := range b[i] {
			b[i][j] = rng.Float64()*2 - 1
		}
	}
	a := MustDense(t, n, n)
	var i, j, k int
	var s float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			s = 0
			for k = 0; k < n; k++ {
				s += b[k][i] * b[k][j]
			}
			if i == j {
				s += float64(n)
			}
			MustSet(t, a, i, j, s)
		}
	}

	return a
}

// MulOracle returns a×b computed by gonum, as a *Dense.
func MulOracle(t *testing.T, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	var prod mat.Dense
	prod.Mul(ToGonum(t, a), ToGonum(t, b))
	r, _ := prod.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, &prod)
	}

	return MustRows(t, rows)
}

// ToGonum copies m into a gonum Dense.
func ToGonum(t *testing.T, m matrix.Matrix) *mat.Dense {
	t.Helper()
	out := mat.NewDense(m.Rows(), m.Cols(), nil)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			out.Set(i, j, MustAt(t, m, i, j))
		}
	}

	return out
}

// AssertClose fails when any |want[i][j] - got[i,j]| > tol.
func AssertClose(t *testing.T, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		t.Fatalf("shape: want %dx%d, got %dx%d", len(want), len(want[0]), got.Rows(), got.Cols())
	}
	for i := range want {
		for j := range want[i] {
			if v := MustAt(t, got, i, j); math.Abs(v-want[i][j]) > tol {
				t.Fatalf("at [%d,%d]: want %v, got %v", i, j, want[i][j], v)
			}
		}
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want errors.Is(err, %v), got %v", target, err)
	}
}
