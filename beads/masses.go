// SPDX-License-Identifier: MIT

package beads

import "fmt"

// Masses maps a one-letter residue code to its residue mass in Dalton.
type Masses map[rune]float64

// standardMasses holds average residue masses of the 20 standard amino acids.
// The ambiguous and non-standard codes B, J, O, U, X, Z are present with mass
// 0 so they are accepted but do not add weight to a domain.
var standardMasses = [...]struct {
	code rune
	mass float64
}{
	{'A', 71.08}, {'C', 103.14}, {'D', 115.09}, {'E', 129.12},
	{'F', 147.18}, {'G', 57.06}, {'H', 137.15}, {'I', 113.17},
	{'K', 128.18}, {'L', 113.17}, {'M', 131.21}, {'N', 114.11},
	{'P', 97.12}, {'Q', 128.41}, {'R', 156.2}, {'S', 87.08},
	{'T', 101.11}, {'V', 99.14}, {'W', 186.21}, {'Y', 163.18},
	{'Z', 0}, {'O', 0}, {'U', 0}, {'J', 0}, {'X', 0}, {'B', 0},
}

// DefaultMasses returns a fresh copy of the standard residue mass table.
// Callers may modify the result freely.
func DefaultMasses() Masses {
	m := make(Masses, len(standardMasses))
	for _, e := range standardMasses {
		m[e.code] = e.mass
	}

	return m
}

// Mass returns the mass of code, or ErrUnknownResidue.
func (m Masses) Mass(code rune) (float64, error) {
	v, ok := m[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownResidue, code)
	}

	return v, nil
}

// Sum returns the total mass of residues.
func (m Masses) Sum(residues string) (float64, error) {
	var total float64
	for _, r := range residues {
		v, err := m.Mass(r)
		if err != nil {
			return 0, err
		}
		total += v
	}

	return total, nil
}
