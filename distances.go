/*
 * distances.go, part of gocoord.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

//Distance returns the distance between atoms i and j. If mic is true and
//the structure is periodic, the minimum-image convention applies: the
//shortest vector between the two atoms over the adjacent periodic images
//is used. The scan covers the 27 neighboring images, which is exact for
//cells whose lattice vectors are longer than twice any distance of
//interest, the usual situation for analysis cells.
func Distance(S *Structure, i, j int, mic bool) float64 {
	a := S.Coord(i)
	b := S.Coord(j)
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	dz := b[2] - a[2]
	if !mic || !S.Periodic() {
		return math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	cell := S.cell
	min := math.Inf(1)
	for n1 := -1; n1 <= 1; n1++ {
		for n2 := -1; n2 <= 1; n2++ {
			for n3 := -1; n3 <= 1; n3++ {
				tx := dx + float64(n1)*cell.At(0, 0) + float64(n2)*cell.At(1, 0) + float64(n3)*cell.At(2, 0)
				ty := dy + float64(n1)*cell.At(0, 1) + float64(n2)*cell.At(1, 1) + float64(n3)*cell.At(2, 1)
				tz := dz + float64(n1)*cell.At(0, 2) + float64(n2)*cell.At(1, 2) + float64(n3)*cell.At(2, 2)
				d2 := tx*tx + ty*ty + tz*tz
				if d2 < min {
					min = d2
				}
			}
		}
	}
	return math.Sqrt(min)
}

//DistanceMatrix returns the symmetric matrix of pairwise distances between
//all atoms of the structure, with zeros on the diagonal. It is recomputed
//on every call; nothing is cached. The mic flag is as in Distance.
func DistanceMatrix(S *Structure, mic bool) *mat.SymDense {
	n := S.Len()
	if n == 0 {
		return nil
	}
	dm := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dm.SetSym(i, j, Distance(S, i, j, mic))
		}
	}
	return dm
}
