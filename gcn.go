/*
 * gcn.go, part of gocoord.
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
	"strings"
)

//Bulk coordination maxima for the lattices with a tabulated value.
var latticeCNMax = map[string]float64{
	"sc":  6,
	"bcc": 8,
	"fcc": 12,
	"hcp": 12,
}

//CNMax returns the bulk maximum coordination number for a lattice named
//by its symbolic alias (SC, BCC, FCC or HCP, case-insensitively). Any
//other name is an error of kind KindUnrecognizedLattice; there is no
//fallback, callers with an exotic lattice should pass the number itself
//to GCN.
func CNMax(lattice string) (float64, error) {
	cn, ok := latticeCNMax[strings.ToLower(lattice)]
	if !ok {
		err := newError(KindUnrecognizedLattice, fmt.Sprintf("no tabulated coordination maximum for lattice %q; give the bulk coordination number directly", lattice))
		err.Decorate("CNMax")
		return 0, err
	}
	return cn, nil
}

//GCN computes the generalized coordination number of the given site (or
//sites, for bridge and hollow positions): the first-neighbor shell of the
//sites is collected and deduplicated, the coordination number of each of
//its members is summed, and the sum is divided by cnMax, the coordination
//number of the same site in the bulk. Neighbors come from covalent-radius
//cutoffs with the standard bonding tolerance, minimum-image aware.
//
//See Calle-Vallejo et al., Angew. Chem. Int. Ed. 53 (2014) 8316.
//
//The result is a plain float and need not be integral. cnMax must be
//positive and every site index must be within the structure.
func GCN(S *Structure, sites []int, cnMax float64) (float64, error) {
	if cnMax <= 0 {
		return 0, newError(KindOther, fmt.Sprintf("GCN: the maximum coordination number must be positive, got %v", cnMax))
	}
	for _, i := range sites {
		if i < 0 || i >= S.Len() {
			err := newError(KindNotFound, fmt.Sprintf("site index %d outside the structure (%d atoms)", i, S.Len()))
			err.Decorate("GCN")
			return 0, err
		}
	}
	cutoffs, err := NaturalCutoffs(S, 1)
	if err != nil {
		return 0, errDecorate(err, "GCN")
	}
	nl, err := NewNeighbourList(S, cutoffs, bondTol, false, true)
	if err != nil {
		return 0, errDecorate(err, "GCN")
	}
	first := nl.NeighboursOf(sites...)
	sum := 0
	for _, j := range first {
		sum += len(nl.Neighbours(j))
	}
	return float64(sum) / cnMax, nil
}

//GCNLattice is GCN with cnMax looked up from a symbolic lattice name via
//CNMax. Passing "FCC" here and 12 to GCN give bit-identical results.
func GCNLattice(S *Structure, sites []int, lattice string) (float64, error) {
	cn, err := CNMax(lattice)
	if err != nil {
		return 0, errDecorate(err, "GCNLattice")
	}
	return GCN(S, sites, cn)
}

//Neighbours expands the given sites into nshells successive neighbor
//shells (shell 0 being the sites themselves) and returns the shells plus
//the sorted union of all shell members. Cutoffs are the covalent radii
//with the standard bonding tolerance. rep, if not nil, gets a per-shell
//summary.
func Neighbours(S *Structure, sites []int, nshells int, rep *Reporter) ([][]int, []int, error) {
	for _, i := range sites {
		if i < 0 || i >= S.Len() {
			err := newError(KindNotFound, fmt.Sprintf("site index %d outside the structure (%d atoms)", i, S.Len()))
			err.Decorate("Neighbours")
			return nil, nil, err
		}
	}
	cutoffs, err := NaturalCutoffs(S, 1)
	if err != nil {
		return nil, nil, errDecorate(err, "Neighbours")
	}
	nl, err := NewNeighbourList(S, cutoffs, bondTol, false, true)
	if err != nil {
		return nil, nil, errDecorate(err, "Neighbours")
	}
	shells, all := nl.Shells(sites, nshells)
	if rep != nil {
		for k, sh := range shells {
			rep.Printf("shell %d: %d atoms %v\n", k, len(sh), sh)
		}
	}
	return shells, all, nil
}
