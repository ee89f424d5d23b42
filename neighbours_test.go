/*
 * neighbours_test.go, part of gocoord.
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
	"testing"
)

func TestNaturalCutoffs(Te *testing.T) {
	S := twoWaters(Te)
	cutoffs, err := NaturalCutoffs(S, 1.2)
	if err != nil {
		Te.Fatal(err)
	}
	if len(cutoffs) != S.Len() {
		Te.Fatalf("%d cutoffs for %d atoms", len(cutoffs), S.Len())
	}
	if math.Abs(cutoffs[0]-0.31*1.2) > 1e-12 {
		Te.Errorf("H cutoff %v, want %v", cutoffs[0], 0.31*1.2)
	}
	if math.Abs(cutoffs[1]-0.66*1.2) > 1e-12 {
		Te.Errorf("O cutoff %v, want %v", cutoffs[1], 0.66*1.2)
	}
	bogus, err := FromSymbols([]string{"Xx"}, []float64{0, 0, 0}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err = NaturalCutoffs(bogus, 1); !IsNotFound(err) {
		Te.Errorf("untabulated element gave %v, want a NotFound error", err)
	}
}

func TestNeighbourListFlags(Te *testing.T) {
	S := twoWaters(Te)
	cutoffs, err := NaturalCutoffs(S, 1)
	if err != nil {
		Te.Fatal(err)
	}
	oneway, err := NewNeighbourList(S, cutoffs, bondTol, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	both, err := NewNeighbourList(S, cutoffs, bondTol, true, true)
	if err != nil {
		Te.Fatal(err)
	}
	co := oneway.Connectivity()
	cb := both.Connectivity()
	n := S.Len()
	for i := 0; i < n; i++ {
		if co.At(i, i) != 0 {
			Te.Errorf("one-way list set the diagonal at %d", i)
		}
		if cb.At(i, i) != 1 {
			Te.Errorf("self-including list left the diagonal clear at %d", i)
		}
		for j := i + 1; j < n; j++ {
			if co.At(j, i) != 0 {
				Te.Errorf("one-way list set the lower triangle at %d,%d", j, i)
			}
			if cb.At(i, j) != cb.At(j, i) {
				Te.Errorf("bothways list is asymmetric at %d,%d", i, j)
			}
			if co.At(i, j) != cb.At(i, j) {
				Te.Errorf("flag choice changed the bond decision at %d,%d", i, j)
			}
		}
	}
	//the neighbor queries must not depend on the storage flags
	for i := 0; i < n; i++ {
		a := oneway.Neighbours(i)
		b := both.Neighbours(i)
		if len(a) != len(b) {
			Te.Fatalf("atom %d: %v vs %v", i, a, b)
		}
		for k := range a {
			if a[k] != b[k] {
				Te.Errorf("atom %d: %v vs %v", i, a, b)
			}
		}
	}
}

func TestNeighboursSymmetric(Te *testing.T) {
	S := twoWaters(Te)
	cutoffs, err := NaturalCutoffs(S, 1)
	if err != nil {
		Te.Fatal(err)
	}
	nl, err := NewNeighbourList(S, cutoffs, bondTol, false, false)
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < S.Len(); i++ {
		for _, j := range nl.Neighbours(i) {
			if !isInInt(nl.Neighbours(j), i) {
				Te.Errorf("%d neighbors %d but not the other way around", i, j)
			}
		}
	}
	//the first O (atom 1) binds its two hydrogens plus the 0.3 A one
	if nb := nl.Neighbours(1); len(nb) != 2 || nb[0] != 0 || nb[1] != 2 {
		Te.Errorf("first oxygen neighbors %v, want [0 2]", nb)
	}
}

func TestNeighbourListBadInput(Te *testing.T) {
	S := twoWaters(Te)
	if _, err := NewNeighbourList(S, []float64{1, 2}, 0, false, false); err == nil {
		Te.Error("cutoff count mismatch accepted")
	}
}

func TestFlattenUnique(Te *testing.T) {
	got := FlattenUnique([][]int{{3, 1}, {2, 1}, {}, {3}})
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		Te.Fatalf("FlattenUnique %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			Te.Errorf("FlattenUnique %v, want %v", got, want)
		}
	}
}
