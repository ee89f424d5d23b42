/*
 * neighbours.go, part of gocoord.
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
	"sort"

	"gonum.org/v1/gonum/mat"
)

//bondTol is the default extra margin, in A, added to the sum of covalent
//radii when deciding whether two atoms are bonded.
//Constant from DOI:10.1186/1758-2946-3-33.
const bondTol = 0.45

//NaturalCutoffs returns per-atom cutoff radii: the covalent radius of each
//atom scaled by mult. It returns an error of kind KindNotFound if any atom
//has an element with no tabulated radius.
func NaturalCutoffs(S *Structure, mult float64) ([]float64, error) {
	ret := make([]float64, S.Len())
	for i := 0; i < S.Len(); i++ {
		r, err := CovalentRadius(S.Atom(i).Symbol)
		if err != nil {
			return nil, errDecorate(err, "NaturalCutoffs")
		}
		ret[i] = r * mult
	}
	return ret, nil
}

//NeighbourList holds cutoff-based undirected connectivity between the
//atoms of a structure. Two atoms i,j are neighbors when their
//minimum-image distance is positive and at most cutoff(i)+cutoff(j)+skin.
//It is built fresh from a structure and never updated afterwards.
type NeighbourList struct {
	n    int
	self bool
	both bool
	conn *mat.Dense //0/1 entries
}

//NewNeighbourList builds the connectivity for S from per-atom cutoffs.
//skin is an extra margin added to every pairwise cutoff sum. With self
//true the diagonal entries are set; with bothways true both the (i,j) and
//(j,i) entries are set, otherwise only the upper triangle is.
func NewNeighbourList(S *Structure, cutoffs []float64, skin float64, self, bothways bool) (*NeighbourList, error) {
	n := S.Len()
	if len(cutoffs) != n {
		return nil, newError(KindOther, fmt.Sprintf("NewNeighbourList: %d cutoffs for %d atoms", len(cutoffs), n))
	}
	nl := &NeighbourList{n: n, self: self, both: bothways}
	if n == 0 { //a degenerate but tolerated input
		return nl, nil
	}
	nl.conn = mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		if self {
			nl.conn.Set(i, i, 1)
		}
		for j := i + 1; j < n; j++ {
			d := Distance(S, i, j, true)
			if d > 0 && d <= cutoffs[i]+cutoffs[j]+skin {
				nl.conn.Set(i, j, 1)
				if bothways {
					nl.conn.Set(j, i, 1)
				}
			}
		}
	}
	return nl, nil
}

//Len returns the number of atoms the list was built over.
func (nl *NeighbourList) Len() int {
	return nl.n
}

//Connectivity returns a copy of the n x n connectivity matrix, with 1 at
//every neighbor entry as configured at construction. It is nil for an
//empty structure.
func (nl *NeighbourList) Connectivity() *mat.Dense {
	if nl.conn == nil {
		return nil
	}
	return mat.DenseCopyOf(nl.conn)
}

//Neighbours returns the sorted indexes of the neighbors of atom i,
//excluding i itself. The result does not depend on the self or bothways
//settings: the list is undirected either way.
func (nl *NeighbourList) Neighbours(i int) []int {
	ret := make([]int, 0, 12)
	for j := 0; j < nl.n; j++ {
		if j == i {
			continue
		}
		if nl.conn.At(i, j) > 0 || nl.conn.At(j, i) > 0 {
			ret = append(ret, j)
		}
	}
	return ret
}

//NeighboursOf returns the sorted, deduplicated union of the neighbors of
//every given atom. The query atoms themselves are included only if they
//happen to neighbor one another.
func (nl *NeighbourList) NeighboursOf(indexes ...int) []int {
	lists := make([][]int, 0, len(indexes))
	for _, i := range indexes {
		lists = append(lists, nl.Neighbours(i))
	}
	return FlattenUnique(lists)
}

//Shells expands the given sites into successive neighbor shells. Shell 0
//is the (sorted) sites themselves, shell k the neighbors of shell k-1 that
//do not belong to any earlier shell. It returns the shells and the sorted
//union of all of them. No index appears in more than one shell.
func (nl *NeighbourList) Shells(sites []int, nshells int) ([][]int, []int) {
	seen := make(map[int]bool, len(sites))
	shell := append([]int{}, sites...)
	sort.Ints(shell)
	for _, i := range shell {
		seen[i] = true
	}
	shells := [][]int{shell}
	for k := 0; k < nshells; k++ {
		next := make([]int, 0, 12)
		for _, j := range nl.NeighboursOf(shells[k]...) {
			if !seen[j] {
				seen[j] = true
				next = append(next, j)
			}
		}
		sort.Ints(next)
		shells = append(shells, next)
	}
	all := make([]int, 0, len(seen))
	for j := range seen {
		all = append(all, j)
	}
	sort.Ints(all)
	return shells, all
}
