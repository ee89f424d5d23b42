/*
 * compare.go, part of gocoord.
 *
 *
 * Copyright 2024 The gocoord developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package coord

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

//CompareStructures matches every atom of s1 to its nearest same-element
//atom in s2, for spotting equivalent structures whose atom ordering got
//scrambled. If symbol is not empty, only atoms of that element are
//matched; everything else gets index -1 and an infinite displacement.
//It returns, per atom of s1, the index of the chosen atom in s2 and the
//cartesian displacement to it. Structures of different sizes are an error
//of kind KindInputMismatch. An atom with no same-element partner in s2
//also gets -1/Inf rather than a bogus match.
func CompareStructures(s1, s2 *Structure, symbol string) ([]int, []float64, error) {
	if s1.Len() != s2.Len() {
		err := newError(KindInputMismatch, fmt.Sprintf("structures have %d and %d atoms", s1.Len(), s2.Len()))
		err.Decorate("CompareStructures")
		return nil, nil, err
	}
	symbol = normalizeSymbol(symbol)
	matches := make([]int, s1.Len())
	diffs := make([]float64, s1.Len())
	for i := 0; i < s1.Len(); i++ {
		matches[i] = -1
		diffs[i] = math.Inf(1)
		si := s1.Atom(i).Symbol
		if symbol != "" && si != symbol {
			continue
		}
		a := s1.Coord(i)
		for j := 0; j < s2.Len(); j++ {
			if s2.Atom(j).Symbol != si {
				continue
			}
			b := s2.Coord(j)
			d := math.Sqrt((b[0]-a[0])*(b[0]-a[0]) + (b[1]-a[1])*(b[1]-a[1]) + (b[2]-a[2])*(b[2]-a[2]))
			if d < diffs[i] {
				diffs[i] = d
				matches[i] = j
			}
		}
	}
	return matches, diffs, nil
}

//CompareBondLengths compares the pair-distance spectra of two structures:
//both sets of unique minimum-image distances are sorted and subtracted
//element-wise, and the absolute differences are returned (themselves in
//the sorted-spectrum order). Different atom counts are an error of kind
//KindInputMismatch.
func CompareBondLengths(s1, s2 *Structure) ([]float64, error) {
	if s1.Len() != s2.Len() {
		err := newError(KindInputMismatch, fmt.Sprintf("structures have %d and %d atoms", s1.Len(), s2.Len()))
		err.Decorate("CompareBondLengths")
		return nil, err
	}
	d1 := SortedDistances(s1, nil)
	d2 := SortedDistances(s2, nil)
	diff := make([]float64, len(d1))
	floats.SubTo(diff, d1, d2)
	for i := range diff {
		diff[i] = math.Abs(diff[i])
	}
	return diff, nil
}
