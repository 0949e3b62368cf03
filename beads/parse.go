// SPDX-License-Identifier: MIT
// Package beads - sequence parser.
//
// Grammar:
//   sequence := (free | domain)+
//   free     := residue+            (any run not containing '[' or ']')
//   domain   := '[' UPPER residue* ']'
//
// Determinism & complexity:
//   - single left-to-right scan, O(len(sequence)); groups emitted in input order.

package beads

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

const (
	domainOpen  = '['
	domainClose = ']'
)

// Parse converts an annotated sequence into its compact bead description.
//
// Errors:
//   - ErrInvalidParameter when p fails Validate.
//   - ErrMalformedSequence for an empty sequence, an unmatched or nested
//     bracket, an empty or lowercase domain, or a domain of non-positive radius.
//   - ErrUnknownResidue for a residue absent from p.Masses.
func Parse(sequence string, p Params) (Description, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if sequence == "" {
		return nil, fmt.Errorf("%w: empty sequence", ErrMalformedSequence)
	}

	var (
		out Description
		pos int
	)
	for pos < len(sequence) {
		if sequence[pos] == domainOpen {
			g, next, err := parseDomain(sequence, pos, p)
			if err != nil {
				return nil, err
			}
			out = append(out, g)
			pos = next
			continue
		}

		end := strings.IndexAny(sequence[pos:], "[]")
		if end < 0 {
			end = len(sequence)
		} else {
			end += pos
		}
		if end < len(sequence) && sequence[end] == domainClose {
			return nil, malformed(sequence, end, "unmatched ']'")
		}
		g, err := parseFree(sequence[pos:end], p)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
		pos = end
	}

	return out, nil
}

// parseDomain reads the domain starting at sequence[start] == '[' and returns
// its bead together with the offset just past the closing bracket.
func parseDomain(sequence string, start int, p Params) (Group, int, error) {
	body := sequence[start+1:]
	closeAt := strings.IndexByte(body, domainClose)
	if closeAt < 0 {
		return Group{}, 0, malformed(sequence, start, "unmatched '['")
	}
	body = body[:closeAt]
	if body == "" {
		return Group{}, 0, malformed(sequence, start, "empty domain")
	}
	if nested := strings.IndexByte(body, domainOpen); nested >= 0 {
		return Group{}, 0, malformed(sequence, start+1+nested, "nested '['")
	}
	if first := rune(body[0]); first > unicode.MaxASCII || !unicode.IsUpper(first) {
		return Group{}, 0, malformed(sequence, start, "domain must start with an uppercase residue")
	}

	mass, err := p.Masses.Sum(body)
	if err != nil {
		return Group{}, 0, fmt.Errorf("domain at %d: %w", start, err)
	}
	radius := ExcludedVolumeRadius(mass, p.EffectiveDensity) + p.HydrationThickness
	if !(radius > 0) || math.IsInf(radius, 0) {
		return Group{}, 0, malformed(sequence, start, "domain radius is not positive")
	}

	return Group{HydrodynamicRadius: radius, StericRadius: radius, Count: 1}, start + 1 + closeAt + 1, nil
}

// parseFree turns a non-empty run of residues into one linker group.
// Only membership in the mass table is checked; linker masses are unused.
func parseFree(run string, p Params) (Group, error) {
	var count int
	for _, r := range run {
		if _, ok := p.Masses[r]; !ok {
			return Group{}, fmt.Errorf("%w: %q in %q", ErrUnknownResidue, r, run)
		}
		count++
	}

	return Group{HydrodynamicRadius: p.HydrodynamicRadius, StericRadius: p.StericRadius, Count: count}, nil
}

// ExcludedVolumeRadius returns the radius of a sphere of the given mass (Da)
// at the given density (Da/Å³): (mass·3/(4π)/density)^(1/3).
func ExcludedVolumeRadius(mass, density float64) float64 {
	return math.Cbrt(mass * 3 / (4 * math.Pi) / density)
}

// malformed formats ErrMalformedSequence with the offending substring.
func malformed(sequence string, at int, reason string) error {
	const window = 12
	end := at + window
	if end > len(sequence) {
		end = len(sequence)
	}

	return fmt.Errorf("%w: %s at offset %d near %q", ErrMalformedSequence, reason, at, sequence[at:end])
}
