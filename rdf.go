/*
 * rdf.go, part of gocoord.
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

import "sort"

//SortedDistances returns every unique pairwise minimum-image distance in
//the structure, sorted ascending. If include is not nil, only pairs with
//at least one member in include contribute. This is the raw material for
//distance-distribution plots.
func SortedDistances(S *Structure, include []int) []float64 {
	n := S.Len()
	ret := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if include != nil && !isInInt(include, i) && !isInInt(include, j) {
				continue
			}
			ret = append(ret, Distance(S, i, j, true))
		}
	}
	sort.Float64s(ret)
	return ret
}

//RadialDistances returns the sorted minimum-image distances from the atom
//at index to every other atom, keeping only those within [rmin, rmax].
//It is the windowed radial-distribution extraction around one site.
//Panics if index is out of range, like the accessors it builds on.
func RadialDistances(S *Structure, index int, rmin, rmax float64) []float64 {
	ret := make([]float64, 0, S.Len())
	for j := 0; j < S.Len(); j++ {
		if j == index {
			continue
		}
		d := Distance(S, index, j, true)
		if d >= rmin && d <= rmax {
			ret = append(ret, d)
		}
	}
	sort.Float64s(ret)
	return ret
}
