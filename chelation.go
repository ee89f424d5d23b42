/*
 * chelation.go, part of gocoord.
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

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//Components decomposes a structure into connected molecular components
//after removing the metal center from the bonding graph. The graph edges
//come from a neighbor list built with per-atom covalent-radius cutoffs
//scaled by mult (self-interaction and bidirectional entries on, as the
//decomposition expects); every edge touching the metal atom is then
//severed, so the metal can never end up inside a ligand component: it is
//left as a component of its own.
//
//If several atoms of the metal symbol exist, only the first one is
//removed; the analysis is explicitly single-center. A structure with no
//atom of the metal symbol is a hard error of kind KindNotFound.
//
//It returns the number of components and a per-atom component label
//(length = atom count). Labels are canonical: components are numbered by
//their lowest atom index, so label 0 always contains atom 0.
func Components(S *Structure, metal string, mult float64) (int, []int, error) {
	metal = normalizeSymbol(metal)
	midx, err := S.FirstIndexOf(metal)
	if err != nil {
		return 0, nil, errDecorate(err, "Components")
	}
	cutoffs, err := NaturalCutoffs(S, mult)
	if err != nil {
		return 0, nil, errDecorate(err, "Components")
	}
	nl, err := NewNeighbourList(S, cutoffs, 0, true, true)
	if err != nil {
		return 0, nil, errDecorate(err, "Components")
	}
	n := S.Len()
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < n; i++ {
		if i == midx {
			continue
		}
		for _, j := range nl.Neighbours(i) {
			if j <= i || j == midx {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
		}
	}
	comps := topo.ConnectedComponents(g)
	//canonicalize: number the components by their lowest atom index
	lowest := make([]int, len(comps))
	for k, c := range comps {
		low := n
		for _, node := range c {
			if int(node.ID()) < low {
				low = int(node.ID())
			}
		}
		lowest[k] = low
	}
	order := make([]int, len(comps))
	for k := range order {
		order[k] = k
	}
	sort.Slice(order, func(a, b int) bool { return lowest[order[a]] < lowest[order[b]] })
	labels := make([]int, n)
	for rank, k := range order {
		for _, node := range comps[k] {
			labels[int(node.ID())] = rank
		}
	}
	return len(comps), labels, nil
}

//Ligand describes one molecule coordinating a metal center: the component
//label it carries in the decomposition, its chemical formula, and its
//denticity, i.e. through how many donor atoms it binds the metal (2 for a
//bidentate ligand, and so on).
type Ligand struct {
	Component int
	Formula   string
	Denticity int
}

//Chelation characterizes the coordination environment of the first atom
//with the metal symbol: which molecules bind it through atoms of the
//donor element, with what denticity, and what their formulas are. The
//metal-donor bonds come from the bond classifier; the molecules from
//Components with the same cutoff multiplier. Ligands are returned ordered
//by component label. No metal-donor bond at all gives an empty slice, not
//an error; a missing metal atom is an error of kind KindNotFound.
//
//The sum of the returned denticities always equals the number of
//metal-donor bonded pairs found. metal and donor must be different
//elements.
func Chelation(S *Structure, metal, donor string, mult float64, rep *Reporter) ([]Ligand, error) {
	metal = normalizeSymbol(metal)
	donor = normalizeSymbol(donor)
	if metal == donor {
		return nil, newError(KindOther, fmt.Sprintf("Chelation: metal and donor element are both %q; the analysis needs distinct elements", metal))
	}
	bonded, err := Bonds(S, metal, donor, nil)
	if err != nil {
		return nil, errDecorate(err, "Chelation")
	}
	ncomp, labels, err := Components(S, metal, mult)
	if err != nil {
		return nil, errDecorate(err, "Chelation")
	}
	if bonded == nil {
		return []Ligand{}, nil
	}
	denticity := make(map[int]int, 4)
	for _, pair := range bonded.Pairs {
		di := pair[0]
		if S.Atom(di).Symbol != donor {
			di = pair[1]
		}
		denticity[labels[di]]++
	}
	comps := make([]int, 0, len(denticity))
	for c := range denticity {
		comps = append(comps, c)
	}
	sort.Ints(comps)
	ligands := make([]Ligand, 0, len(comps))
	for _, c := range comps {
		members := make([]int, 0, 8)
		for i, l := range labels {
			if l == c {
				members = append(members, i)
			}
		}
		ligands = append(ligands, Ligand{Component: c, Formula: formula(S, members), Denticity: denticity[c]})
	}
	if rep != nil {
		rep.Divider()
		rep.Printf("%d molecular components; ligands on %s:\n", ncomp, metal)
		rep.Printf("%-12s%-16s%s\n", "Component", "Formula", "Denticity")
		for _, l := range ligands {
			rep.Printf("%-12d%-16s%d\n", l.Component, l.Formula, l.Denticity)
		}
		rep.Divider()
	}
	return ligands, nil
}

//formula builds the chemical formula of the atoms at the given indexes:
//element symbols in alphabetical order, each followed by its count, counts
//of one included ("C2H4O1", "H2O1"). No carbon-first convention.
func formula(S *Structure, indexes []int) string {
	counts := make(map[string]int, 4)
	for _, i := range indexes {
		counts[S.Atom(i).Symbol]++
	}
	syms := make([]string, 0, len(counts))
	for s := range counts {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	ret := ""
	for _, s := range syms {
		ret += fmt.Sprintf("%s%d", s, counts[s])
	}
	return ret
}
