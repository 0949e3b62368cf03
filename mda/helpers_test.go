// SPDX-License-Identifier: MIT
package mda_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmmda/matrix"
)

// selfTensor is the 3×3 mobility tensor of one isolated bead of radius a.
func selfTensor(t *testing.T, a float64) *matrix.Dense {
	t.Helper()

	return diagTensor(t, 1/(6*math.Pi*a), 1/(6*math.Pi*a), 1/(6*math.Pi*a))
}

func diagTensor(t *testing.T, diag ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(diag), len(diag))
	require.NoError(t, err)
	for i, v := range diag {
		require.NoError(t, m.Set(i, i, v))
	}

	return m
}
